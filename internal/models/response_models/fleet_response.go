package response_models

import "atchub/internal/models/db_models"

// FleetState is the catalogue plus its load state, so a failed fetch surfaces
// as a retryable per-screen error instead of an empty roster.
type FleetState struct {
	Ships   []db_models.FleetShip `json:"ships"`
	Loaded  bool                  `json:"loaded"`
	Loading bool                  `json:"loading"`
	Error   string                `json:"error,omitempty"`
}
