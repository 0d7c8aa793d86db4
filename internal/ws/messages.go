package ws

import (
	"encoding/json"

	"ecovolt/internal/model"
	"ecovolt/internal/simulator"
)

// Envelope wraps all WebSocket messages with a type discriminator.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client -> Server messages

type SelectPayload struct {
	Selection string `json:"selection"`
}

// Server -> Client messages

type SeriesPayload struct {
	Offset  int            `json:"offset"`
	Samples []model.Sample `json:"samples"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Message type constants
const (
	// Client -> Server
	TypeChartSelect = "chart:select"

	// Server -> Client
	TypeChartView    = "chart:view"
	TypeSeriesUpdate = "series:update"
	TypeError        = "error"
)

func NewEnvelope(msgType string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}

func SeriesFromUpdate(u simulator.Update) SeriesPayload {
	return SeriesPayload{
		Offset:  u.Offset,
		Samples: u.Series,
	}
}
