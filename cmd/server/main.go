package main

import (
	"log"
	"net/http"

	"trumphand/internal/config"
	"trumphand/internal/server"
)

func main() {
	log.Println("Starting trump hand results feed...")

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	hub := server.NewHub(cfg)
	go hub.Run()

	mux := http.NewServeMux()
	server.HandleRoutes(mux, hub)

	log.Printf("Listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}
