package controllers

import (
	"github.com/gin-gonic/gin"

	"atchub/internal/services"
	"atchub/pkg/utils"
)

type OperationsController struct {
	directoryService services.DirectoryServiceInterface
}

func NewOperationsController(directoryService services.DirectoryServiceInterface) *OperationsController {
	return &OperationsController{
		directoryService: directoryService,
	}
}

// List godoc
// @Summary Fetch the generated operations log
// @Tags Operations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /operations [get]
func (o *OperationsController) List(c *gin.Context) {
	ops, err := o.directoryService.Operations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, ops, "Operations fetched successfully")
}
