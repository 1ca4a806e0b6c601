package ws

import "encoding/json"

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message types - Menu
const (
	TypeMenu          = "menu"
	TypeSelectVariant = "select_variant"
	TypeReturnToMenu  = "return_to_menu"
)

// Message types - Input
const (
	TypeKeyState         = "key_state"
	TypePointer          = "pointer"
	TypeActivateRecovery = "activate_recovery"
	TypeConfirm          = "confirm"
)

// Message types - Session output
const (
	TypeSessionStart   = "session_start"
	TypeFrame          = "frame"
	TypeCollision      = "collision"
	TypeRecoveryPrompt = "recovery_prompt"
	TypeEnding         = "ending"
	TypeTerminal       = "terminal"
)

// Message types - System
const (
	TypeError = "error"
)

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}

// Decode unmarshals the message payload into v. An absent payload leaves v untouched.
func (m Message) Decode(v any) error {
	if len(m.Data) == 0 {
		return nil
	}
	return json.Unmarshal(m.Data, v)
}
