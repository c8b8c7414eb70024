package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"atchub/internal/models/db_models"
	"atchub/internal/models/request_models"
	"atchub/internal/services"
	"atchub/pkg/utils"
)

type AdminController struct {
	identityService services.IdentityServiceInterface
	raffleService   services.RaffleServiceInterface
}

func NewAdminController(identityService services.IdentityServiceInterface, raffleService services.RaffleServiceInterface) *AdminController {
	return &AdminController{
		identityService: identityService,
		raffleService:   raffleService,
	}
}

func accountID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid account id")
		return 0, false
	}
	return id, true
}

// ListAccounts godoc
// @Summary List every account regardless of approval status
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/accounts [get]
func (a *AdminController) ListAccounts(c *gin.Context) {
	utils.RespondSuccess(c, a.identityService.AllAccounts(), "Accounts fetched successfully")
}

// Approve godoc
// @Summary Approve a pending application
// @Tags Admin
// @Produce json
// @Param id path int true "Account id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/accounts/{id}/approve [post]
func (a *AdminController) Approve(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}
	a.identityService.SetApproval(id, db_models.AccessApproved)
	utils.RespondSuccess(c, nil, "Account approved")
}

// Deny godoc
// @Summary Deny a pending application
// @Tags Admin
// @Produce json
// @Param id path int true "Account id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/accounts/{id}/deny [post]
func (a *AdminController) Deny(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}
	a.identityService.SetApproval(id, db_models.AccessDenied)
	utils.RespondSuccess(c, nil, "Account denied")
}

// RemoveAccount godoc
// @Summary Delete an account and its owned ships
// @Tags Admin
// @Produce json
// @Param id path int true "Account id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/accounts/{id} [delete]
func (a *AdminController) RemoveAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}
	a.identityService.Remove(id)
	utils.RespondSuccess(c, nil, "Account removed")
}

// StartRaffle godoc
// @Summary Start a new raffle, concluding any currently active one
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.StartRaffleRequest true "Raffle payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/raffles [post]
func (a *AdminController) StartRaffle(c *gin.Context) {
	var req request_models.StartRaffleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	raffle, err := a.raffleService.Start(req.Prize, req.EndDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, raffle, "Raffle started")
}

// DrawWinner godoc
// @Summary Conclude the active raffle and record its winner
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/raffles/draw [post]
func (a *AdminController) DrawWinner(c *gin.Context) {
	raffle, err := a.raffleService.DrawWinner()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, raffle, "Winner drawn")
}

// ListEntries godoc
// @Summary List entries for the active raffle
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/raffles/entries [get]
func (a *AdminController) ListEntries(c *gin.Context) {
	utils.RespondSuccess(c, a.raffleService.EntriesForCurrent(), "Entries fetched successfully")
}
