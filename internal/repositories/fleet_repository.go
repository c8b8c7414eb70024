package repositories

import (
	"sync"

	"atchub/internal/models/db_models"
)

type FleetRepository interface {
	List() []db_models.FleetShip
	Loaded() bool
	// Populate replaces the whole catalogue and marks it loaded. A failed
	// fetch never reaches this point, so population is all-or-nothing.
	Populate(ships []db_models.FleetShip)
	// AddFront inserts at the head of the catalogue (most-recent-first).
	AddFront(ship db_models.FleetShip)
	// UpdateByName replaces the full record of the first ship matching name.
	UpdateByName(name string, ship db_models.FleetShip) bool
	// UpdateDescription rewrites only the description of the first match;
	// used by the background blurb enrichment.
	UpdateDescription(name, description string)
	// RemoveByName deletes the first ship matching name.
	RemoveByName(name string) bool
	// Reset clears the catalogue so the next login refetches it.
	Reset()
}

type inMemoryFleetRepository struct {
	mu     sync.Mutex
	ships  []db_models.FleetShip
	loaded bool
}

func NewInMemoryFleetRepository() FleetRepository {
	return &inMemoryFleetRepository{}
}

func (r *inMemoryFleetRepository) List() []db_models.FleetShip {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]db_models.FleetShip, len(r.ships))
	copy(out, r.ships)
	return out
}

func (r *inMemoryFleetRepository) Loaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaded
}

func (r *inMemoryFleetRepository) Populate(ships []db_models.FleetShip) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ships = make([]db_models.FleetShip, len(ships))
	copy(r.ships, ships)
	r.loaded = true
}

func (r *inMemoryFleetRepository) AddFront(ship db_models.FleetShip) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ships = append([]db_models.FleetShip{ship}, r.ships...)
}

func (r *inMemoryFleetRepository) UpdateByName(name string, ship db_models.FleetShip) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.ships {
		if r.ships[i].Name == name {
			r.ships[i] = ship
			return true
		}
	}
	return false
}

func (r *inMemoryFleetRepository) UpdateDescription(name, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.ships {
		if r.ships[i].Name == name {
			r.ships[i].Description = description
			return
		}
	}
}

func (r *inMemoryFleetRepository) RemoveByName(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.ships {
		if r.ships[i].Name == name {
			r.ships = append(r.ships[:i], r.ships[i+1:]...)
			return true
		}
	}
	return false
}

func (r *inMemoryFleetRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ships = nil
	r.loaded = false
}
