package repositories

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"atchub/internal/models/db_models"
	"atchub/pkg/utils"
)

type RaffleRepository interface {
	// Start deactivates every existing raffle before inserting the new active
	// one, so at most one raffle is ever active.
	Start(prize string, endDate time.Time) db_models.Raffle
	// Enter records one entry for callsign in the active raffle. Duplicate
	// entries and entries with no active raffle are silently ignored.
	Enter(callsign string) bool
	// DrawWinner concludes the active raffle: a uniformly random entrant wins,
	// or the no-entries sentinel is recorded. With no active raffle nothing is
	// mutated and ErrNoActiveRaffle is returned.
	DrawWinner() (db_models.Raffle, error)
	Current() *db_models.Raffle
	// Past returns concluded raffles ordered by end date descending.
	Past() []db_models.Raffle
	EntriesForCurrent() []db_models.RaffleEntry
	HasEntered(callsign string) bool
}

type inMemoryRaffleRepository struct {
	mu      sync.Mutex
	raffles []db_models.Raffle
	entries []db_models.RaffleEntry
	lastID  int64
}

func NewInMemoryRaffleRepository() RaffleRepository {
	nextMonth := time.Now().AddDate(0, 1, 0)
	return &inMemoryRaffleRepository{
		raffles: []db_models.Raffle{
			{ID: 1, Prize: "Aegis Redeemer Ship", EndDate: nextMonth, IsActive: true},
			{ID: 2, Prize: "1,000,000 aUEC", EndDate: time.Date(2024, 7, 31, 23, 59, 59, 0, time.UTC), IsActive: false, Winner: "Viper"},
		},
		entries: []db_models.RaffleEntry{},
		lastID:  2,
	}
}

func (r *inMemoryRaffleRepository) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *inMemoryRaffleRepository) currentLocked() *db_models.Raffle {
	for i := range r.raffles {
		if r.raffles[i].IsActive {
			return &r.raffles[i]
		}
	}
	return nil
}

func (r *inMemoryRaffleRepository) Start(prize string, endDate time.Time) db_models.Raffle {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.raffles {
		r.raffles[i].IsActive = false
	}
	raffle := db_models.Raffle{
		ID:       r.nextID(),
		Prize:    prize,
		EndDate:  endDate,
		IsActive: true,
	}
	r.raffles = append(r.raffles, raffle)
	return raffle
}

func (r *inMemoryRaffleRepository) Enter(callsign string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.currentLocked()
	if current == nil {
		return false
	}
	for _, e := range r.entries {
		if e.RaffleID == current.ID && e.UserCallsign == callsign {
			return false
		}
	}
	r.entries = append(r.entries, db_models.RaffleEntry{
		RaffleID:     current.ID,
		UserCallsign: callsign,
	})
	return true
}

func (r *inMemoryRaffleRepository) DrawWinner() (db_models.Raffle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.currentLocked()
	if current == nil {
		return db_models.Raffle{}, utils.ErrNoActiveRaffle
	}

	entrants := make([]db_models.RaffleEntry, 0)
	for _, e := range r.entries {
		if e.RaffleID == current.ID {
			entrants = append(entrants, e)
		}
	}

	if len(entrants) > 0 {
		current.Winner = entrants[rand.Intn(len(entrants))].UserCallsign
	} else {
		current.Winner = db_models.NoEntriesWinner
	}
	current.IsActive = false
	return *current, nil
}

func (r *inMemoryRaffleRepository) Current() *db_models.Raffle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current := r.currentLocked(); current != nil {
		found := *current
		return &found
	}
	return nil
}

func (r *inMemoryRaffleRepository) Past() []db_models.Raffle {
	r.mu.Lock()
	defer r.mu.Unlock()
	past := make([]db_models.Raffle, 0, len(r.raffles))
	for _, raffle := range r.raffles {
		if !raffle.IsActive {
			past = append(past, raffle)
		}
	}
	sort.Slice(past, func(i, j int) bool {
		return past[i].EndDate.After(past[j].EndDate)
	})
	return past
}

func (r *inMemoryRaffleRepository) EntriesForCurrent() []db_models.RaffleEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	current := r.currentLocked()
	if current == nil {
		return []db_models.RaffleEntry{}
	}
	entries := make([]db_models.RaffleEntry, 0)
	for _, e := range r.entries {
		if e.RaffleID == current.ID {
			entries = append(entries, e)
		}
	}
	return entries
}

func (r *inMemoryRaffleRepository) HasEntered(callsign string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	current := r.currentLocked()
	if current == nil {
		return false
	}
	for _, e := range r.entries {
		if e.RaffleID == current.ID && e.UserCallsign == callsign {
			return true
		}
	}
	return false
}
