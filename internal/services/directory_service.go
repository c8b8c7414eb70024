package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"atchub/internal/models/db_models"
	"atchub/pkg/utils"
)

type DirectoryServiceInterface interface {
	// Members returns the generated org directory, cached after the first
	// successful fetch. A failed fetch stays retryable.
	Members(ctx context.Context) ([]db_models.Member, error)
	// Operations fetches the operations log; not cached, each visit regenerates.
	Operations(ctx context.Context) ([]db_models.Operation, error)
}

type directoryService struct {
	content utils.ContentClientInterface
	timeout time.Duration

	mu     sync.Mutex
	roster []db_models.Member
}

func NewDirectoryService(content utils.ContentClientInterface, timeout time.Duration) DirectoryServiceInterface {
	return &directoryService{
		content: content,
		timeout: timeout,
	}
}

func (s *directoryService) Members(ctx context.Context) ([]db_models.Member, error) {
	s.mu.Lock()
	if s.roster != nil {
		cached := make([]db_models.Member, len(s.roster))
		copy(cached, s.roster)
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	members, err := s.content.FetchMemberDirectory(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrContentUnavailable, err)
	}

	s.mu.Lock()
	s.roster = members
	s.mu.Unlock()
	return members, nil
}

func (s *directoryService) Operations(ctx context.Context) ([]db_models.Operation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	ops, err := s.content.FetchOperationsLog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrContentUnavailable, err)
	}
	return ops, nil
}
