package controllers

import (
	"github.com/gin-gonic/gin"

	"atchub/internal/services"
	"atchub/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Stats godoc
// @Summary Get live org stats derived from the stores
// @Description Member and ship totals cover approved accounts only
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (d *DashboardController) Stats(c *gin.Context) {
	utils.RespondSuccess(c, d.dashboardService.Stats(c.GetString("callsign")), "Stats fetched successfully")
}

// Summary godoc
// @Summary Get the generated dashboard summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (d *DashboardController) Summary(c *gin.Context) {
	summary, err := d.dashboardService.Summary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Summary fetched successfully")
}

// ServerStatus godoc
// @Summary Get the live game server status
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/server-status [get]
func (d *DashboardController) ServerStatus(c *gin.Context) {
	status, err := d.dashboardService.ServerStatus(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"status": status}, "Server status fetched successfully")
}
