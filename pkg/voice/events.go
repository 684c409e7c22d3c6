package voice

import (
	"context"
	"encoding/json"

	"sherlok/internal/model"
)

// Telnyx call lifecycle events the relay reacts to.
const (
	EventCallInitiated = "call.initiated"
	EventCallAnswered  = "call.answered"
	EventSpeakEnded    = "call.speak.ended"
)

type WebhookOutcome struct {
	Status        string `json:"status"`
	EventType     string `json:"event_type,omitempty"`
	CallControlID string `json:"call_control_id,omitempty"`
}

// ParseWebhook extracts the internal event shape from a raw Telnyx
// webhook body. Missing structure yields zero-valued fields; it never
// fails.
func ParseWebhook(body []byte) model.VoiceEvent {
	var raw struct {
		Data struct {
			EventType string         `json:"event_type"`
			Payload   map[string]any `json:"payload"`
		} `json:"data"`
	}

	event := model.VoiceEvent{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return event
	}

	event.EventType = raw.Data.EventType
	event.Payload = raw.Data.Payload
	if id, ok := raw.Data.Payload["call_control_id"].(string); ok {
		event.CallControlID = id
	}
	return event
}

// HandleEvent dispatches one parsed webhook event: answer on
// call.initiated, greet once the carrier reports call.answered, then
// open a speech gather after each speak finishes. Unrecognized events
// are acknowledged and ignored.
func (r *Relay) HandleEvent(ctx context.Context, event model.VoiceEvent) WebhookOutcome {
	switch event.EventType {
	case EventCallInitiated:
		result := r.Answer(ctx, event.CallControlID)
		status := "answered"
		if !result.Success {
			status = "error"
		}
		return WebhookOutcome{Status: status, EventType: event.EventType, CallControlID: event.CallControlID}

	case EventCallAnswered:
		result := r.Speak(ctx, event.CallControlID, greeting)
		status := "greeting_sent"
		if !result.Success {
			status = "error"
		}
		return WebhookOutcome{Status: status, EventType: event.EventType, CallControlID: event.CallControlID}

	case EventSpeakEnded:
		result := r.GatherSpeech(ctx, event.CallControlID)
		status := "gathering"
		if !result.Success {
			status = "error"
		}
		return WebhookOutcome{Status: status, EventType: event.EventType, CallControlID: event.CallControlID}

	default:
		return WebhookOutcome{Status: "ignored", EventType: event.EventType}
	}
}
