package request_models

import "time"

type StartRaffleRequest struct {
	Prize   string    `json:"prize" binding:"required"`
	EndDate time.Time `json:"endDate" binding:"required"`
}
