package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atchub/internal/models/request_models"
	"atchub/internal/services"
	"atchub/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// History godoc
// @Summary Get the caller's chat transcript
// @Tags Chat
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/history [get]
func (ch *ChatController) History(c *gin.Context) {
	utils.RespondSuccess(c, ch.chatService.History(c.GetString("callsign")), "History fetched successfully")
}

// Send godoc
// @Summary Send a chat message (text or GIF)
// @Description A partner reply is generated in the background and lands in the transcript
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.SendMessageRequest true "Message payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/messages [post]
func (ch *ChatController) Send(c *gin.Context) {
	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	msg, err := ch.chatService.Send(c.GetString("callsign"), req.Message, req.GifURL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, msg, "Message sent")
}

// SearchGifs godoc
// @Summary Search for GIFs to attach to a message
// @Tags Chat
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/gifs [get]
func (ch *ChatController) SearchGifs(c *gin.Context) {
	urls, err := ch.chatService.SearchGifs(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, urls, "Gifs fetched successfully")
}
