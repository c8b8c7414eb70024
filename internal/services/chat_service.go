package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"atchub/internal/models/db_models"
	"atchub/internal/repositories"
	"atchub/pkg/utils"
)

type ChatServiceInterface interface {
	History(callsign string) []db_models.ChatMessage
	// Send appends the user's message and fires a non-blocking reply
	// generation; a provider failure degrades to the fixed System reply.
	Send(callsign, message, gifURL string) (db_models.ChatMessage, error)
	SearchGifs(ctx context.Context, query string) ([]string, error)
}

type chatService struct {
	chatRepo  repositories.ChatRepository
	directory DirectoryServiceInterface
	content   utils.ContentClientInterface
	timeout   time.Duration
}

func NewChatService(chatRepo repositories.ChatRepository, directory DirectoryServiceInterface, content utils.ContentClientInterface, timeout time.Duration) ChatServiceInterface {
	return &chatService{
		chatRepo:  chatRepo,
		directory: directory,
		content:   content,
		timeout:   timeout,
	}
}

func (s *chatService) History(callsign string) []db_models.ChatMessage {
	return s.chatRepo.History(callsign)
}

func (s *chatService) Send(callsign, message, gifURL string) (db_models.ChatMessage, error) {
	if message == "" && gifURL == "" {
		return db_models.ChatMessage{}, utils.ErrInvalidInput
	}

	msg := db_models.ChatMessage{
		Callsign:  callsign,
		Message:   message,
		GifURL:    gifURL,
		IsUser:    true,
		Timestamp: utils.DisplayTimestamp(time.Now()),
		AvatarURL: utils.AvatarURLFor(callsign),
		Status:    db_models.MessageSent,
	}
	s.chatRepo.Append(callsign, msg)

	go s.generateReply(callsign)

	return msg, nil
}

func (s *chatService) generateReply(callsign string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	roster, err := s.directory.Members(ctx)
	if err != nil {
		log.Printf("Chat roster unavailable: %v", err)
		s.chatRepo.AppendReply(callsign, *utils.SystemFallbackReply())
		return
	}

	reply, err := s.content.GenerateChatReply(ctx, s.chatRepo.History(callsign), roster, callsign)
	if err != nil {
		log.Printf("Chat reply generation failed: %v", err)
		s.chatRepo.AppendReply(callsign, *utils.SystemFallbackReply())
		return
	}
	if reply == nil {
		return
	}
	s.chatRepo.AppendReply(callsign, *reply)
}

func (s *chatService) SearchGifs(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	urls, err := s.content.SearchMediaClips(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrContentUnavailable, err)
	}
	return urls, nil
}
