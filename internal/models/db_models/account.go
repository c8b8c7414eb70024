package db_models

import "time"

type AccessStatus string

const (
	AccessPending  AccessStatus = "pending"
	AccessApproved AccessStatus = "approved"
	AccessDenied   AccessStatus = "denied"
)

// Account is an org member identity. Callsign is unique case-insensitively and
// acts as the natural key for self-service mutations (role, avatar, owned ships).
type Account struct {
	ID           int64        `json:"id"`
	Callsign     string       `json:"callsign"`
	PasswordHash string       `json:"-"`
	AccessStatus AccessStatus `json:"accessStatus"`
	AvatarURL    string       `json:"avatarUrl"`
	JoinDate     time.Time    `json:"joinDate"`
	Role         string       `json:"role"`
	Ships        []OwnedShip  `json:"ships"`
}

// OwnedShip belongs to exactly one account and is addressed by id within it.
type OwnedShip struct {
	ID       int64  `json:"id"`
	Model    string `json:"model"`
	ImageURL string `json:"imageUrl,omitempty"`
}
