package services

import (
	"context"
	"fmt"
	"time"

	"atchub/internal/models/db_models"
	"atchub/internal/models/response_models"
	"atchub/internal/repositories"
	"atchub/pkg/utils"
)

type DashboardServiceInterface interface {
	// Stats is derived from the live stores on every call. Pending and denied
	// accounts contribute neither members nor ships to the totals.
	Stats(callsign string) response_models.DashboardStats
	Summary(ctx context.Context) (*db_models.DashboardSummary, error)
	ServerStatus(ctx context.Context) (db_models.ServerStatusValue, error)
}

type dashboardService struct {
	identity   IdentityServiceInterface
	raffleRepo repositories.RaffleRepository
	content    utils.ContentClientInterface
	timeout    time.Duration
}

func NewDashboardService(identity IdentityServiceInterface, raffleRepo repositories.RaffleRepository, content utils.ContentClientInterface, timeout time.Duration) DashboardServiceInterface {
	return &dashboardService{
		identity:   identity,
		raffleRepo: raffleRepo,
		content:    content,
		timeout:    timeout,
	}
}

func (s *dashboardService) Stats(callsign string) response_models.DashboardStats {
	approved := s.identity.ApprovedAccounts()
	totalShips := 0
	for _, a := range approved {
		totalShips += len(a.Ships)
	}

	return response_models.DashboardStats{
		TotalMembers:  len(approved),
		TotalShips:    totalShips,
		CurrentRaffle: s.raffleRepo.Current(),
		HasEntered:    s.raffleRepo.HasEntered(callsign),
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*db_models.DashboardSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	summary, err := s.content.FetchDashboardSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrContentUnavailable, err)
	}
	return summary, nil
}

func (s *dashboardService) ServerStatus(ctx context.Context) (db_models.ServerStatusValue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	status, err := s.content.FetchServerStatus(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrContentUnavailable, err)
	}
	return status, nil
}
