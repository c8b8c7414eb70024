package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atchub/internal/models/request_models"
	"atchub/internal/services"
	"atchub/pkg/utils"
)

type FleetController struct {
	fleetService services.FleetServiceInterface
}

func NewFleetController(fleetService services.FleetServiceInterface) *FleetController {
	return &FleetController{
		fleetService: fleetService,
	}
}

// GetFleet godoc
// @Summary Get the org fleet catalogue and its load state
// @Tags Fleet
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /fleet [get]
func (f *FleetController) GetFleet(c *gin.Context) {
	utils.RespondSuccess(c, f.fleetService.State(), "Fleet fetched successfully")
}

// Reload godoc
// @Summary Retry a failed catalogue load
// @Tags Fleet
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /fleet/reload [post]
func (f *FleetController) Reload(c *gin.Context) {
	f.fleetService.EnsureLoaded()
	utils.RespondSuccess(c, f.fleetService.State(), "Fleet reload finished")
}

// AddShip godoc
// @Summary Add a ship to the org catalogue
// @Description The description is enriched in the background; the insert never waits on it
// @Tags Fleet
// @Accept json
// @Produce json
// @Param request body request_models.AddFleetShipRequest true "Ship payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /fleet [post]
func (f *FleetController) AddShip(c *gin.Context) {
	var req request_models.AddFleetShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ship, err := f.fleetService.AddShip(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, ship, "Ship added to fleet")
}

// UpdateShip godoc
// @Summary Replace the catalogue record of the ship named in the path
// @Tags Fleet
// @Accept json
// @Produce json
// @Param name path string true "Current ship name"
// @Param request body request_models.UpdateFleetShipRequest true "Replacement record"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /fleet/{name} [put]
func (f *FleetController) UpdateShip(c *gin.Context) {
	var req request_models.UpdateFleetShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := f.fleetService.UpdateShip(c.Param("name"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Ship updated")
}

// RemoveShip godoc
// @Summary Remove the first catalogue ship matching the path name
// @Tags Fleet
// @Produce json
// @Param name path string true "Ship name"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /fleet/{name} [delete]
func (f *FleetController) RemoveShip(c *gin.Context) {
	f.fleetService.RemoveShip(c.Param("name"))
	utils.RespondSuccess(c, nil, "Ship removed")
}
