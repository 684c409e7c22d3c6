package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"sherlok/internal/agent"
)

type Conversationalist interface {
	Chat(ctx context.Context, sessionID, query, symbol string) *agent.ChatResult
	Reset(sessionID string)
}

type ChatHandler struct {
	agent Conversationalist
}

func NewChatHandler(agent Conversationalist) *ChatHandler {
	return &ChatHandler{agent: agent}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	result := h.agent.Chat(c.Request.Context(), req.SessionID, req.Message, req.Symbol)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"session_id": result.SessionID,
		"intent":     result.Intent,
		"response":   result.Response,
		"stock_data": result.StockData,
	})
}

func (h *ChatHandler) Reset(c *gin.Context) {
	var req ResetRequest
	// Session id is optional; resetting nothing is still a success.
	_ = c.ShouldBindJSON(&req)

	if req.SessionID != "" {
		h.agent.Reset(req.SessionID)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
