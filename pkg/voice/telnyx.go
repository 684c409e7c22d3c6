// Package voice relays call commands to the Telnyx Call Control API
// and reshapes its webhooks into internal events. Every command is a
// single best-effort call whose failure is reported as data, never as
// an error; with no credential configured the relay is fully disabled.
package voice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.telnyx.com/v2"

const greeting = "Hello! I am Sherlok, your AI-powered stock research assistant. " +
	"I can help you analyze mid-cap and early-stage tech companies. " +
	"Please say the ticker symbol of the company you'd like to research."

const gatherPrompt = "Which company would you like to hear about next?"

type CommandResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	CallControlID string `json:"call_control_id,omitempty"`
}

type Relay struct {
	client       *resty.Client
	phoneNumber  string
	connectionID string
	enabled      bool
}

// NewRelay builds a relay. An empty API key disables it: every
// operation then reports failure without touching the network.
func NewRelay(apiKey, phoneNumber, connectionID string) *Relay {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &Relay{
		client:       client,
		phoneNumber:  phoneNumber,
		connectionID: connectionID,
		enabled:      apiKey != "",
	}
}

// SetBaseURL redirects API traffic, used by tests.
func (r *Relay) SetBaseURL(u string) {
	r.client.SetBaseURL(u)
}

func (r *Relay) Enabled() bool {
	return r.enabled
}

func (r *Relay) Answer(ctx context.Context, callControlID string) CommandResult {
	return r.command(ctx, fmt.Sprintf("/calls/%s/actions/answer", callControlID), map[string]any{}, callControlID)
}

func (r *Relay) Speak(ctx context.Context, callControlID, text string) CommandResult {
	body := map[string]any{
		"payload":  text,
		"voice":    "female",
		"language": "en-US",
	}
	return r.command(ctx, fmt.Sprintf("/calls/%s/actions/speak", callControlID), body, callControlID)
}

func (r *Relay) GatherSpeech(ctx context.Context, callControlID string) CommandResult {
	body := map[string]any{
		"payload":  gatherPrompt,
		"voice":    "female",
		"language": "en-US",
	}
	return r.command(ctx, fmt.Sprintf("/calls/%s/actions/gather_using_speak", callControlID), body, callControlID)
}

func (r *Relay) Hangup(ctx context.Context, callControlID string) CommandResult {
	return r.command(ctx, fmt.Sprintf("/calls/%s/actions/hangup", callControlID), map[string]any{}, callControlID)
}

// Dial places an outbound call from the configured number and
// reports the new call's control id on success.
func (r *Relay) Dial(ctx context.Context, toNumber string) CommandResult {
	if !r.enabled {
		return CommandResult{Success: false, Message: "voice relay not configured"}
	}

	body := map[string]any{
		"connection_id": r.connectionID,
		"to":            toNumber,
		"from":          r.phoneNumber,
	}

	var created struct {
		Data struct {
			CallControlID string `json:"call_control_id"`
		} `json:"data"`
	}

	resp, err := r.client.R().SetContext(ctx).SetBody(body).SetResult(&created).Post("/calls")
	if err != nil {
		slog.Error("telnyx dial failed", "to", toNumber, "error", err)
		return CommandResult{Success: false, Message: err.Error()}
	}
	if !resp.IsSuccess() {
		slog.Error("telnyx dial rejected", "to", toNumber, "status", resp.StatusCode())
		return CommandResult{Success: false, Message: fmt.Sprintf("telnyx returned %d", resp.StatusCode())}
	}

	return CommandResult{Success: true, Message: "ok", CallControlID: created.Data.CallControlID}
}

func (r *Relay) SendSMS(ctx context.Context, toNumber, text string) CommandResult {
	body := map[string]any{
		"from": r.phoneNumber,
		"to":   toNumber,
		"text": text,
	}
	return r.command(ctx, "/messages", body, "")
}

// HandleIncoming answers the call and then speaks the greeting. The
// two commands are independent; a failed greeting does not retract
// the answer.
func (r *Relay) HandleIncoming(ctx context.Context, callControlID string) CommandResult {
	answer := r.Answer(ctx, callControlID)
	if !answer.Success {
		return answer
	}

	if spoken := r.Speak(ctx, callControlID, greeting); !spoken.Success {
		slog.Warn("greeting failed after answer", "call_control_id", callControlID, "message", spoken.Message)
	}
	return answer
}

func (r *Relay) command(ctx context.Context, path string, body map[string]any, callControlID string) CommandResult {
	if !r.enabled {
		return CommandResult{Success: false, Message: "voice relay not configured"}
	}

	resp, err := r.client.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		slog.Error("telnyx command failed", "path", path, "error", err)
		return CommandResult{Success: false, Message: err.Error(), CallControlID: callControlID}
	}
	if !resp.IsSuccess() {
		slog.Error("telnyx command rejected", "path", path, "status", resp.StatusCode())
		return CommandResult{Success: false, Message: fmt.Sprintf("telnyx returned %d", resp.StatusCode()), CallControlID: callControlID}
	}

	return CommandResult{Success: true, Message: "ok", CallControlID: callControlID}
}
