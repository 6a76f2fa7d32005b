package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"trumphand/internal/protocol"
)

// HandleRoutes registers the feed endpoints on mux.
func HandleRoutes(mux *http.ServeMux, hub *Hub) {
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	log.Println("Registered route: /ws")

	mux.HandleFunc("GET /api/simulate", func(w http.ResponseWriter, r *http.Request) {
		SimulateHandler(hub, w, r)
	})
	log.Println("Registered route: GET /api/simulate")
}

// SimulateHandler runs one batch and writes it as JSON.
// Query parameters rounds and hand_size are optional.
func SimulateHandler(hub *Hub, w http.ResponseWriter, r *http.Request) {
	var req protocol.SimulatePayload
	var err error

	if v := r.URL.Query().Get("rounds"); v != "" {
		if req.Rounds, err = strconv.Atoi(v); err != nil {
			http.Error(w, "rounds must be an integer", http.StatusBadRequest)
			return
		}
	}
	if v := r.URL.Query().Get("hand_size"); v != "" {
		if req.HandSize, err = strconv.Atoi(v); err != nil {
			http.Error(w, "hand_size must be an integer", http.StatusBadRequest)
			return
		}
	}

	batch, err := hub.RunBatch(req)
	if err != nil {
		if errors.Is(err, ErrBadRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to run simulation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(protocol.NewBatchPayload(batch)); err != nil {
		log.Printf("Error encoding batch %s: %v", batch.ID, err)
	}
}
