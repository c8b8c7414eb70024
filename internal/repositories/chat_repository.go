package repositories

import (
	"sync"

	"atchub/internal/models/db_models"
)

// ChatRepository keeps one transcript per local callsign.
type ChatRepository interface {
	History(callsign string) []db_models.ChatMessage
	Append(callsign string, msg db_models.ChatMessage)
	// AppendReply appends a partner reply and flips the local user's earlier
	// messages from sent to read.
	AppendReply(callsign string, msg db_models.ChatMessage)
}

type inMemoryChatRepository struct {
	mu          sync.Mutex
	transcripts map[string][]db_models.ChatMessage
}

func NewInMemoryChatRepository() ChatRepository {
	return &inMemoryChatRepository{
		transcripts: make(map[string][]db_models.ChatMessage),
	}
}

func (r *inMemoryChatRepository) History(callsign string) []db_models.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	transcript := r.transcripts[callsign]
	out := make([]db_models.ChatMessage, len(transcript))
	copy(out, transcript)
	return out
}

func (r *inMemoryChatRepository) Append(callsign string, msg db_models.ChatMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transcripts[callsign] = append(r.transcripts[callsign], msg)
}

func (r *inMemoryChatRepository) AppendReply(callsign string, msg db_models.ChatMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	transcript := r.transcripts[callsign]
	for i := range transcript {
		if transcript[i].IsUser && transcript[i].Status == db_models.MessageSent {
			transcript[i].Status = db_models.MessageRead
		}
	}
	r.transcripts[callsign] = append(transcript, msg)
}
