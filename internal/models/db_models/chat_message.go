package db_models

type MessageStatus string

const (
	MessageSent MessageStatus = "sent"
	MessageRead MessageStatus = "read"
)

type ChatMessage struct {
	Callsign  string        `json:"callsign"`
	Message   string        `json:"message,omitempty"`
	GifURL    string        `json:"gifUrl,omitempty"`
	IsUser    bool          `json:"isUser"`
	Timestamp string        `json:"timestamp"`
	AvatarURL string        `json:"avatarUrl"`
	Status    MessageStatus `json:"status,omitempty"`
}
