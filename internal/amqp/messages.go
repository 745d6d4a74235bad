package amqp

import (
	"encoding/json"
	"time"
)

// SlotChangedMessage names the slot whose value changed. Consumers fetch the
// current value themselves, so the message stays small.
type SlotChangedMessage struct {
	Slot      string    `json:"slot"`
	Timestamp time.Time `json:"timestamp"`
}

func NewSlotChangedMessage(slot string) *SlotChangedMessage {
	return &SlotChangedMessage{
		Slot:      slot,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *SlotChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// SlotChangedMessageFromJSON creates a message from JSON bytes
func SlotChangedMessageFromJSON(data []byte) (*SlotChangedMessage, error) {
	var msg SlotChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
