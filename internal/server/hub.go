package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"trumphand/internal/config"
	"trumphand/internal/game"
	"trumphand/internal/protocol"

	"github.com/google/uuid"
)

// MaxRounds caps a single batch request.
const MaxRounds = 10000

// ErrBadRequest marks batch requests that can never succeed.
var ErrBadRequest = errors.New("bad simulation request")

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

// Hub manages active WebSocket connections and fans simulation batches out to them.
type Hub struct {
	clients        map[*Client]bool
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	clientMu       sync.RWMutex

	cfg     config.Config
	newDeck game.DeckFactory
	simMu   sync.Mutex // newDeck may share one seeded source
}

// NewHub creates a new Hub instance using cfg for request defaults.
func NewHub(cfg config.Config) *Hub {
	return &Hub{
		clients:        make(map[*Client]bool),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		cfg:            cfg,
		newDeck:        cfg.DeckFactory(),
	}
}

// Run starts the Hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			client.ID = uuid.NewString()
			log.Printf("Client %s (%s) connected", client.ID, client.conn.RemoteAddr())
			h.clientMu.Lock()
			h.clients[client] = true
			h.clientMu.Unlock()

		case client := <-h.unregister:
			h.clientMu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("Client %s disconnected", client.ID)
			}
			h.clientMu.Unlock()

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.clientMu.RLock()
	defer h.clientMu.RUnlock()
	return len(h.clients)
}

// RunBatch plays a batch, filling zero fields of req from the config.
func (h *Hub) RunBatch(req protocol.SimulatePayload) (game.Batch, error) {
	rounds, handSize := req.Rounds, req.HandSize
	if rounds == 0 {
		rounds = h.cfg.Rounds
	}
	if handSize == 0 {
		handSize = h.cfg.HandSize
	}
	if rounds < 0 || rounds > MaxRounds {
		return game.Batch{}, fmt.Errorf("%w: rounds must be between 1 and %d, got %d", ErrBadRequest, MaxRounds, rounds)
	}

	h.simMu.Lock()
	defer h.simMu.Unlock()
	batch, err := game.Simulate(rounds, handSize, h.newDeck)
	if err != nil {
		return game.Batch{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	log.Printf("Simulated batch %s: %d rounds of %d cards", batch.ID, rounds, handSize)
	return batch, nil
}

// handleMessage processes a message received from a client.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	switch msg.Type {
	case protocol.TypeSimulate:
		h.handleSimulate(client, msg)
	case protocol.TypePing:
		pongMsg, _ := protocol.NewMessage(protocol.TypePong, nil)
		h.sendToClient(client, pongMsg)
	default:
		log.Printf("Received unknown message type '%s' from client %s", msg.Type, client.ID)
		h.sendErrorToClient(client, "Unknown message type.")
	}
}

// handleSimulate runs the requested batch and broadcasts it to every client.
func (h *Hub) handleSimulate(client *Client, msg protocol.Message) {
	var req protocol.SimulatePayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			log.Printf("Error unmarshalling simulate payload from client %s: %v", client.ID, err)
			h.sendErrorToClient(client, "Invalid simulate payload.")
			return
		}
	}

	batch, err := h.RunBatch(req)
	if err != nil {
		h.sendErrorToClient(client, err.Error())
		return
	}

	msgBytes, err := protocol.NewMessage(protocol.TypeSimulationResult, protocol.NewBatchPayload(batch))
	if err != nil {
		log.Printf("Error creating simulation_result message for batch %s: %v", batch.ID, err)
		return
	}
	h.broadcast(msgBytes)
}

// broadcast sends a message to every connected client.
func (h *Hub) broadcast(message []byte) {
	h.clientMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientMu.RUnlock()

	for _, c := range clients {
		h.sendToClient(c, message)
	}
}

// sendToClient does a non-blocking send and drops clients that cannot keep up.
func (h *Hub) sendToClient(client *Client, message []byte) {
	h.clientMu.RLock()
	defer h.clientMu.RUnlock()
	if !h.clients[client] {
		return
	}
	select {
	case client.send <- message:
	default:
		log.Printf("Failed to send message to client %s (channel full), initiating cleanup.", client.ID)
		// Run loop is the caller; unregister from a goroutine to avoid deadlock.
		go func() { h.unregister <- client }()
	}
}

// sendErrorToClient sends an error message to a specific client.
func (h *Hub) sendErrorToClient(client *Client, errorMsg string) {
	msgBytes, err := protocol.NewMessage(protocol.TypeError, protocol.ErrorPayload{Message: errorMsg})
	if err != nil {
		log.Printf("Error creating error message for client %s: %v", client.ID, err)
		return
	}
	h.sendToClient(client, msgBytes)
}
