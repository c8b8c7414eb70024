package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atchub/internal/models/request_models"
	"atchub/internal/services"
	"atchub/pkg/utils"
)

type AuthController struct {
	sessionService  services.SessionServiceInterface
	identityService services.IdentityServiceInterface
}

func NewAuthController(sessionService services.SessionServiceInterface, identityService services.IdentityServiceInterface) *AuthController {
	return &AuthController{
		sessionService:  sessionService,
		identityService: identityService,
	}
}

// Login godoc
// @Summary Log in with callsign and password
// @Description Authenticate an approved member and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.sessionService.Login(req.Callsign, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Login successful")
}

// Register godoc
// @Summary Apply for org membership
// @Description Create a pending account awaiting admin approval
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.identityService.Register(req.Callsign, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Application submitted! Awaiting admin approval.")
}

// Logout godoc
// @Summary End the current session
// @Description Revoke the presented token and clear session-scoped fleet data
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	a.sessionService.Logout(c.GetString("token"))
	utils.RespondSuccess(c, nil, "Logged out")
}
