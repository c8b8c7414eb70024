package controllers

import (
	"github.com/gin-gonic/gin"

	"atchub/internal/services"
	"atchub/pkg/utils"
)

type RaffleController struct {
	raffleService services.RaffleServiceInterface
}

func NewRaffleController(raffleService services.RaffleServiceInterface) *RaffleController {
	return &RaffleController{
		raffleService: raffleService,
	}
}

// Current godoc
// @Summary Get the active raffle and the caller's entry state
// @Tags Raffles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /raffles/current [get]
func (r *RaffleController) Current(c *gin.Context) {
	utils.RespondSuccess(c, r.raffleService.Overview(c.GetString("callsign")), "Raffle fetched successfully")
}

// Past godoc
// @Summary List concluded raffles, most recently ended first
// @Tags Raffles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /raffles/past [get]
func (r *RaffleController) Past(c *gin.Context) {
	utils.RespondSuccess(c, r.raffleService.Past(), "Past raffles fetched successfully")
}

// Enter godoc
// @Summary Enter the active raffle
// @Description Re-entry is silently ignored; entering with no active raffle fails
// @Tags Raffles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /raffles/enter [post]
func (r *RaffleController) Enter(c *gin.Context) {
	if err := r.raffleService.Enter(c.GetString("callsign")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Entered raffle")
}
