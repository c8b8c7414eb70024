package db_models

import "time"

// NoEntriesWinner is recorded when a raffle concludes without a single entry.
const NoEntriesWinner = "No entries"

type Raffle struct {
	ID       int64     `json:"id"`
	Prize    string    `json:"prize"`
	EndDate  time.Time `json:"endDate"`
	IsActive bool      `json:"isActive"`
	Winner   string    `json:"winner,omitempty"`
}

type RaffleEntry struct {
	RaffleID     int64  `json:"raffleId"`
	UserCallsign string `json:"userCallsign"`
}
