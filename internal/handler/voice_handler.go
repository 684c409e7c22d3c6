package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sherlok/internal/model"
	"sherlok/pkg/voice"
)

type CallRelay interface {
	HandleEvent(ctx context.Context, event model.VoiceEvent) voice.WebhookOutcome
	Dial(ctx context.Context, toNumber string) voice.CommandResult
	Speak(ctx context.Context, callControlID, text string) voice.CommandResult
	SendSMS(ctx context.Context, toNumber, text string) voice.CommandResult
	Enabled() bool
}

type VoiceHandler struct {
	relay CallRelay
}

func NewVoiceHandler(relay CallRelay) *VoiceHandler {
	return &VoiceHandler{relay: relay}
}

// Webhook receives Telnyx call lifecycle events. The payload is
// always acknowledged with 200; an unusable body is simply marked
// received so the provider does not retry.
func (h *VoiceHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	event := voice.ParseWebhook(body)
	if event.EventType == "" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	outcome := h.relay.HandleEvent(c.Request.Context(), event)
	slog.Info("voice webhook handled", "event_type", event.EventType, "status", outcome.Status)

	c.JSON(http.StatusOK, outcome)
}

// Call triggers an outbound analysis call. Relay failures, including
// disabled mode, come back as success=false payloads, not errors.
func (h *VoiceHandler) Call(c *gin.Context) {
	var req OutboundCallRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ToNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to_number is required"})
		return
	}

	result := h.relay.Dial(c.Request.Context(), req.ToNumber)
	if result.Success && req.Ticker != "" && result.CallControlID != "" {
		h.relay.Speak(c.Request.Context(), result.CallControlID, "Here is the analysis for "+req.Ticker)
	}

	c.JSON(http.StatusOK, result)
}

// SMSAlert texts a short stock insight to a subscriber.
func (h *VoiceHandler) SMSAlert(c *gin.Context) {
	var req SMSAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ToNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to_number is required"})
		return
	}

	text := "Sherlok Alert: " + req.Ticker + "\n\n" + clipSummary(req.Summary)
	result := h.relay.SendSMS(c.Request.Context(), req.ToNumber, text)

	c.JSON(http.StatusOK, result)
}

// clipSummary keeps SMS bodies within a single segment-ish budget.
func clipSummary(summary string) string {
	if len(summary) <= 140 {
		return summary
	}
	return summary[:140] + "..."
}
