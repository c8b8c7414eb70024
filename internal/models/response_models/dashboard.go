package response_models

import "atchub/internal/models/db_models"

// DashboardStats is recomputed from the stores on every request, never cached.
// Ship and member totals count approved accounts only.
type DashboardStats struct {
	TotalMembers  int               `json:"totalMembers"`
	TotalShips    int               `json:"totalShips"`
	CurrentRaffle *db_models.Raffle `json:"currentRaffle,omitempty"`
	HasEntered    bool              `json:"hasEntered"`
}
