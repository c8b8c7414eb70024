package utils

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCallsignTaken      = errors.New("callsign already taken")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNoActiveRaffle     = errors.New("no active raffle")
	ErrInvalidInput       = errors.New("invalid input")
	ErrContentUnavailable = errors.New("content provider unavailable")
)
