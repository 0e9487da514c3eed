package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/coordination-api/internal/core/ports"
)

type ChatbotHandler struct {
	chatbot ports.ChatbotService
}

func NewChatbotHandler(chatbot ports.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbot: chatbot}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Message answers a free-text question about donors, stock, campaigns
// or eligibility.
//
// @Summary      Ask the assistant
// @Tags         chatbot
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Question"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Router       /chatbot [post]
func (h *ChatbotHandler) Message(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.chatbot.Reply(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}

// Health reports that the assistant is up.
//
// @Summary      Assistant health
// @Tags         chatbot
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /chatbot/health [get]
func (h *ChatbotHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "chatbot",
	})
}
