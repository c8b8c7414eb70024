package services

import (
	"time"

	"atchub/internal/models/db_models"
	"atchub/internal/models/response_models"
	"atchub/internal/repositories"
	"atchub/pkg/utils"
)

type RaffleServiceInterface interface {
	Overview(callsign string) response_models.RaffleOverview
	Past() []db_models.Raffle
	// Enter is idempotent per callsign: a repeat entry is silently ignored.
	// Entering with no active raffle is rejected.
	Enter(callsign string) error
	Start(prize string, endDate time.Time) (db_models.Raffle, error)
	// DrawWinner concludes the active raffle; with none active the stores are
	// untouched and ErrNoActiveRaffle is reported.
	DrawWinner() (db_models.Raffle, error)
	EntriesForCurrent() []db_models.RaffleEntry
}

type raffleService struct {
	raffleRepo repositories.RaffleRepository
}

func NewRaffleService(raffleRepo repositories.RaffleRepository) RaffleServiceInterface {
	return &raffleService{
		raffleRepo: raffleRepo,
	}
}

func (s *raffleService) Overview(callsign string) response_models.RaffleOverview {
	return response_models.RaffleOverview{
		Current:    s.raffleRepo.Current(),
		HasEntered: s.raffleRepo.HasEntered(callsign),
		Entries:    len(s.raffleRepo.EntriesForCurrent()),
	}
}

func (s *raffleService) Past() []db_models.Raffle {
	return s.raffleRepo.Past()
}

func (s *raffleService) Enter(callsign string) error {
	if s.raffleRepo.Current() == nil {
		return utils.ErrNoActiveRaffle
	}
	s.raffleRepo.Enter(callsign)
	return nil
}

func (s *raffleService) Start(prize string, endDate time.Time) (db_models.Raffle, error) {
	if prize == "" || endDate.IsZero() {
		return db_models.Raffle{}, utils.ErrInvalidInput
	}
	return s.raffleRepo.Start(prize, endDate), nil
}

func (s *raffleService) DrawWinner() (db_models.Raffle, error) {
	return s.raffleRepo.DrawWinner()
}

func (s *raffleService) EntriesForCurrent() []db_models.RaffleEntry {
	return s.raffleRepo.EntriesForCurrent()
}
