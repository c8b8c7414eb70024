package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"atchub/internal/models/request_models"
	"atchub/internal/services"
	"atchub/pkg/utils"
)

type MembersController struct {
	identityService  services.IdentityServiceInterface
	directoryService services.DirectoryServiceInterface
}

func NewMembersController(identityService services.IdentityServiceInterface, directoryService services.DirectoryServiceInterface) *MembersController {
	return &MembersController{
		identityService:  identityService,
		directoryService: directoryService,
	}
}

// ListApproved godoc
// @Summary List approved org members
// @Tags Members
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members [get]
func (m *MembersController) ListApproved(c *gin.Context) {
	utils.RespondSuccess(c, m.identityService.ApprovedAccounts(), "Members fetched successfully")
}

// Directory godoc
// @Summary Fetch the generated org directory used as the chat roster
// @Tags Members
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/directory [get]
func (m *MembersController) Directory(c *gin.Context) {
	members, err := m.directoryService.Members(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, members, "Directory fetched successfully")
}

// UpdateAvatar godoc
// @Summary Update the caller's avatar
// @Tags Members
// @Accept json
// @Produce json
// @Param request body request_models.UpdateAvatarRequest true "Avatar payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/avatar [put]
func (m *MembersController) UpdateAvatar(c *gin.Context) {
	var req request_models.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	m.identityService.UpdateAvatar(c.GetString("callsign"), req.AvatarURL)
	utils.RespondSuccess(c, nil, "Avatar updated")
}

// UpdateRole godoc
// @Summary Update the caller's displayed role
// @Tags Members
// @Accept json
// @Produce json
// @Param request body request_models.UpdateRoleRequest true "Role payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/role [put]
func (m *MembersController) UpdateRole(c *gin.Context) {
	var req request_models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	m.identityService.UpdateRole(c.GetString("callsign"), req.Role)
	utils.RespondSuccess(c, nil, "Role updated")
}

// AddShip godoc
// @Summary Add a ship to the caller's hangar
// @Tags Members
// @Accept json
// @Produce json
// @Param request body request_models.AddOwnedShipRequest true "Ship payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/ships [post]
func (m *MembersController) AddShip(c *gin.Context) {
	var req request_models.AddOwnedShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ship, err := m.identityService.AddOwnedShip(c.GetString("callsign"), req.Model, req.ImageURL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, ship, "Ship added")
}

// RemoveShip godoc
// @Summary Remove a ship from the caller's hangar
// @Tags Members
// @Produce json
// @Param id path int true "Owned ship id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/ships/{id} [delete]
func (m *MembersController) RemoveShip(c *gin.Context) {
	shipID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid ship id")
		return
	}

	m.identityService.RemoveOwnedShip(c.GetString("callsign"), shipID)
	utils.RespondSuccess(c, nil, "Ship removed")
}
