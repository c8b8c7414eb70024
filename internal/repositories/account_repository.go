package repositories

import (
	"strings"
	"sync"
	"time"

	"atchub/internal/models/db_models"
	"atchub/pkg/utils"
)

type AccountRepository interface {
	List() []db_models.Account
	FindByID(id int64) *db_models.Account
	// FindByCallsign matches case-insensitively; callsign uniqueness makes the
	// first match the only match.
	FindByCallsign(callsign string) *db_models.Account
	// Register creates a pending account. Uniqueness is checked here, inside
	// the store lock, and only at creation time.
	Register(callsign, passwordHash string) (db_models.Account, error)
	SetApproval(id int64, status db_models.AccessStatus)
	Remove(id int64)
	UpdateRole(callsign, role string)
	UpdateAvatar(callsign, avatarURL string)
	AddShip(callsign, model, imageURL string) *db_models.OwnedShip
	RemoveShip(callsign string, shipID int64)
}

// StarterShipModel is seeded onto every new registration.
const StarterShipModel = "Aurora MR"

const recruitRole = "Recruit"

type inMemoryAccountRepository struct {
	mu       sync.Mutex
	accounts []db_models.Account
	lastID   int64
}

func NewInMemoryAccountRepository() AccountRepository {
	return &inMemoryAccountRepository{
		accounts: seedAccounts(),
	}
}

func seedAccounts() []db_models.Account {
	hash := func(password string) string {
		h, err := utils.HashPassword(password)
		if err != nil {
			panic(err)
		}
		return h
	}

	return []db_models.Account{
		{
			ID:           999,
			Callsign:     "ADMIN",
			PasswordHash: hash("Gracin8386"),
			AccessStatus: db_models.AccessApproved,
			AvatarURL:    utils.AvatarURLFor("ADMIN"),
			JoinDate:     time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC),
			Role:         "Org Leader",
			Ships: []db_models.OwnedShip{
				{ID: 99901, Model: "Aegis Javelin", ImageURL: "https://picsum.photos/seed/Aegis-Javelin/200/100"},
				{ID: 99902, Model: "Anvil Liberator"},
			},
		},
		{
			ID:           1,
			Callsign:     "Recker",
			PasswordHash: hash("password123"),
			AccessStatus: db_models.AccessApproved,
			AvatarURL:    utils.AvatarURLFor("Recker"),
			JoinDate:     time.Date(2022, 1, 15, 12, 0, 0, 0, time.UTC),
			Role:         "Combat Pilot / Squadron Leader",
			Ships: []db_models.OwnedShip{
				{ID: 101, Model: "Aegis Sabre", ImageURL: "https://picsum.photos/seed/Aegis-Sabre/200/100"},
				{ID: 102, Model: "Anvil F7C-M Super Hornet"},
				{ID: 103, Model: "Origin 890 Jump"},
			},
		},
		{
			ID:           2,
			Callsign:     "Viper",
			PasswordHash: hash("password123"),
			AccessStatus: db_models.AccessApproved,
			AvatarURL:    utils.AvatarURLFor("Viper"),
			JoinDate:     time.Date(2023, 8, 20, 18, 30, 0, 0, time.UTC),
			Role:         "Explorer / Data Runner",
			Ships: []db_models.OwnedShip{
				{ID: 201, Model: "Anvil Carrack", ImageURL: "https://picsum.photos/seed/Anvil-Carrack/200/100"},
				{ID: 202, Model: "Drake Herald"},
			},
		},
		{
			ID:           3,
			Callsign:     "Newbie",
			PasswordHash: hash("password123"),
			AccessStatus: db_models.AccessPending,
			AvatarURL:    utils.AvatarURLFor("Newbie"),
			JoinDate:     time.Now().UTC(),
			Role:         recruitRole,
			Ships: []db_models.OwnedShip{
				{ID: 301, Model: StarterShipModel},
			},
		},
		{
			ID:           4,
			Callsign:     "Washout",
			PasswordHash: hash("password123"),
			AccessStatus: db_models.AccessDenied,
			AvatarURL:    utils.AvatarURLFor("Washout"),
			JoinDate:     time.Now().UTC(),
			Role:         "N/A",
			Ships:        []db_models.OwnedShip{},
		},
	}
}

// nextID derives ids from creation time, bumped to stay distinct under rapid calls.
func (r *inMemoryAccountRepository) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func copyAccount(a db_models.Account) db_models.Account {
	out := a
	out.Ships = make([]db_models.OwnedShip, len(a.Ships))
	copy(out.Ships, a.Ships)
	return out
}

func (r *inMemoryAccountRepository) List() []db_models.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]db_models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, copyAccount(a))
	}
	return out
}

func (r *inMemoryAccountRepository) FindByID(id int64) *db_models.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.ID == id {
			found := copyAccount(a)
			return &found
		}
	}
	return nil
}

func (r *inMemoryAccountRepository) FindByCallsign(callsign string) *db_models.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if strings.EqualFold(a.Callsign, callsign) {
			found := copyAccount(a)
			return &found
		}
	}
	return nil
}

func (r *inMemoryAccountRepository) Register(callsign, passwordHash string) (db_models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if strings.EqualFold(a.Callsign, callsign) {
			return db_models.Account{}, utils.ErrCallsignTaken
		}
	}

	account := db_models.Account{
		ID:           r.nextID(),
		Callsign:     callsign,
		PasswordHash: passwordHash,
		AccessStatus: db_models.AccessPending,
		AvatarURL:    utils.AvatarURLFor(callsign),
		JoinDate:     time.Now().UTC(),
		Role:         recruitRole,
		Ships: []db_models.OwnedShip{
			{ID: r.nextID(), Model: StarterShipModel},
		},
	}
	r.accounts = append(r.accounts, account)
	return copyAccount(account), nil
}

func (r *inMemoryAccountRepository) SetApproval(id int64, status db_models.AccessStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.accounts {
		if r.accounts[i].ID == id {
			r.accounts[i].AccessStatus = status
		}
	}
}

func (r *inMemoryAccountRepository) Remove(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.accounts[:0]
	for _, a := range r.accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	r.accounts = kept
}

func (r *inMemoryAccountRepository) UpdateRole(callsign, role string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.accounts {
		if r.accounts[i].Callsign == callsign {
			r.accounts[i].Role = role
		}
	}
}

func (r *inMemoryAccountRepository) UpdateAvatar(callsign, avatarURL string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.accounts {
		if r.accounts[i].Callsign == callsign {
			r.accounts[i].AvatarURL = avatarURL
		}
	}
}

func (r *inMemoryAccountRepository) AddShip(callsign, model, imageURL string) *db_models.OwnedShip {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.accounts {
		if r.accounts[i].Callsign == callsign {
			ship := db_models.OwnedShip{
				ID:       r.nextID(),
				Model:    model,
				ImageURL: imageURL,
			}
			r.accounts[i].Ships = append(r.accounts[i].Ships, ship)
			return &ship
		}
	}
	return nil
}

func (r *inMemoryAccountRepository) RemoveShip(callsign string, shipID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.accounts {
		if r.accounts[i].Callsign != callsign {
			continue
		}
		kept := r.accounts[i].Ships[:0]
		for _, s := range r.accounts[i].Ships {
			if s.ID != shipID {
				kept = append(kept, s)
			}
		}
		r.accounts[i].Ships = kept
	}
}
