package services

import (
	"context"
	"log"
	"sync"
	"time"

	"atchub/internal/models/db_models"
	"atchub/internal/models/request_models"
	"atchub/internal/models/response_models"
	"atchub/internal/repositories"
	"atchub/pkg/utils"
)

type FleetServiceInterface interface {
	// EnsureLoaded performs the one-time catalogue fetch. It is a no-op while
	// a load is in flight or once the catalogue is populated, so duplicate
	// login triggers never refetch. Safe to call from a goroutine.
	EnsureLoaded()
	State() response_models.FleetState
	AddShip(req request_models.AddFleetShipRequest) (db_models.FleetShip, error)
	UpdateShip(name string, req request_models.UpdateFleetShipRequest) error
	RemoveShip(name string)
	// ResetCatalogue clears the fleet so the next login fetches fresh data.
	ResetCatalogue()
}

type fleetService struct {
	fleetRepo repositories.FleetRepository
	content   utils.ContentClientInterface
	timeout   time.Duration

	mu      sync.Mutex
	loading bool
	loadErr error
}

func NewFleetService(fleetRepo repositories.FleetRepository, content utils.ContentClientInterface, timeout time.Duration) FleetServiceInterface {
	return &fleetService{
		fleetRepo: fleetRepo,
		content:   content,
		timeout:   timeout,
	}
}

func (s *fleetService) EnsureLoaded() {
	s.mu.Lock()
	if s.loading || s.fleetRepo.Loaded() {
		s.mu.Unlock()
		return
	}
	s.loading = true
	s.loadErr = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	ships, err := s.content.FetchFleetCatalogue(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		log.Printf("Fleet catalogue load failed: %v", err)
		s.loadErr = err
		return
	}
	s.fleetRepo.Populate(ships)
}

func (s *fleetService) State() response_models.FleetState {
	s.mu.Lock()
	loading, loadErr := s.loading, s.loadErr
	s.mu.Unlock()

	state := response_models.FleetState{
		Ships:   s.fleetRepo.List(),
		Loaded:  s.fleetRepo.Loaded(),
		Loading: loading,
	}
	if loadErr != nil {
		state.Error = "Failed to fetch fleet data."
	}
	return state
}

func (s *fleetService) AddShip(req request_models.AddFleetShipRequest) (db_models.FleetShip, error) {
	if !db_models.ValidFleetRole(req.Role) || !db_models.ValidFleetStatus(req.Status) {
		return db_models.FleetShip{}, utils.ErrInvalidInput
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = utils.ShipImageURLFor(req.Model)
	}

	ship := db_models.FleetShip{
		Name:        req.Name,
		Model:       req.Model,
		Role:        db_models.FleetRole(req.Role),
		Status:      db_models.FleetStatus(req.Status),
		ImageURL:    imageURL,
		Description: utils.FallbackShipBlurb,
	}
	s.fleetRepo.AddFront(ship)

	// Enrichment never blocks the insert; the blurb lands whenever the
	// provider answers, last write wins.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		blurb := s.content.GenerateShipBlurb(ctx, req.Model, req.Role)
		s.fleetRepo.UpdateDescription(ship.Name, blurb)
	}()

	return ship, nil
}

func (s *fleetService) UpdateShip(name string, req request_models.UpdateFleetShipRequest) error {
	if !db_models.ValidFleetRole(req.Role) || !db_models.ValidFleetStatus(req.Status) {
		return utils.ErrInvalidInput
	}

	ship := db_models.FleetShip{
		Name:        req.Name,
		Model:       req.Model,
		Role:        db_models.FleetRole(req.Role),
		Status:      db_models.FleetStatus(req.Status),
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}
	if ship.ImageURL == "" {
		ship.ImageURL = utils.ShipImageURLFor(req.Model)
	}

	// Missing name is a silent no-op, matching removal semantics.
	s.fleetRepo.UpdateByName(name, ship)
	return nil
}

func (s *fleetService) RemoveShip(name string) {
	s.fleetRepo.RemoveByName(name)
}

func (s *fleetService) ResetCatalogue() {
	s.mu.Lock()
	s.loadErr = nil
	s.mu.Unlock()
	s.fleetRepo.Reset()
}
