package protocol

import (
	"encoding/json"
	"time"

	"trumphand/internal/game"
	"trumphand/internal/shared"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // e.g. "simulate", "simulation_result"
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, decoded per Type
}

const (
	TypeSimulate         = "simulate"
	TypePing             = "ping"
	TypePong             = "pong"
	TypeSimulationResult = "simulation_result"
	TypeError            = "error"
)

// --- Client -> Server Payload Structs ---

// SimulatePayload requests a batch. Zero values fall back to server defaults.
type SimulatePayload struct {
	Rounds   int `json:"rounds"`
	HandSize int `json:"hand_size"`
}

// --- Server -> Client Payload Structs ---

type RoundInfo struct {
	ID        string        `json:"id"`
	Rank      int           `json:"rank"` // 1 is the best hand of the batch
	Hand      []shared.Card `json:"hand"`
	Display   string        `json:"display"`
	Trump     shared.Suit   `json:"trump"`
	FinalRank shared.Rank   `json:"final_rank"`
	Score     float64       `json:"score"`
}

type BatchPayload struct {
	BatchID   string      `json:"batch_id"`
	CreatedAt time.Time   `json:"created_at"`
	HandSize  int         `json:"hand_size"`
	Rounds    []RoundInfo `json:"rounds"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewBatchPayload flattens a batch for the wire, keeping its ascending order.
func NewBatchPayload(b game.Batch) BatchPayload {
	rounds := make([]RoundInfo, len(b.Rounds))
	for i, r := range b.Rounds {
		rounds[i] = RoundInfo{
			ID:        r.ID,
			Rank:      len(b.Rounds) - i,
			Hand:      r.Hand,
			Display:   r.Hand.String(),
			Trump:     r.Trump,
			FinalRank: r.FinalRank,
			Score:     r.Score,
		}
	}
	return BatchPayload{
		BatchID:   b.ID,
		CreatedAt: b.CreatedAt,
		HandSize:  b.HandSize,
		Rounds:    rounds,
	}
}

// Helper function to create a JSON message
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}
