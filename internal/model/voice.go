package model

// VoiceEvent is the internal shape of a telephony webhook. Fields are
// zero-valued when the inbound payload is missing the expected
// structure; callers must not assume they are set.
type VoiceEvent struct {
	EventType     string         `json:"event_type"`
	CallControlID string         `json:"call_control_id"`
	Payload       map[string]any `json:"payload,omitempty"`
}
