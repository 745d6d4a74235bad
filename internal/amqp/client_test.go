package amqp

import (
	"testing"
	"time"
)

func TestNewSlotChangedMessage(t *testing.T) {
	msg := NewSlotChangedMessage("expenses")

	if msg.Slot != "expenses" {
		t.Errorf("NewSlotChangedMessage() Slot = %v, want expenses", msg.Slot)
	}
	if msg.Timestamp.IsZero() {
		t.Error("NewSlotChangedMessage() Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("NewSlotChangedMessage() Timestamp should be recent")
	}
}

func TestSlotChangedMessage_JSON(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	msg := &SlotChangedMessage{
		Slot:      "goals",
		Timestamp: timestamp,
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := SlotChangedMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("SlotChangedMessageFromJSON() error = %v", err)
	}

	if parsed.Slot != msg.Slot {
		t.Errorf("Parsed Slot = %v, want %v", parsed.Slot, msg.Slot)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestSlotChangedMessage_InvalidJSON(t *testing.T) {
	invalidJSON := []byte(`{"slot": 42, "timestamp": "not-a-time"}`)

	if _, err := SlotChangedMessageFromJSON(invalidJSON); err == nil {
		t.Error("SlotChangedMessageFromJSON() should fail with invalid JSON")
	}
}
