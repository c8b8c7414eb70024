package response_models

import "atchub/internal/models/db_models"

type RaffleOverview struct {
	Current    *db_models.Raffle `json:"current,omitempty"`
	HasEntered bool              `json:"hasEntered"`
	Entries    int               `json:"entries"`
}
