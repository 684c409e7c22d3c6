package llm

import "context"

type Message struct {
	Role    string
	Content string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Client is a chat-completion provider. Complete sends a system
// prompt plus an ordered message sequence and returns the model's
// text reply.
type Client interface {
	Complete(ctx context.Context, system string, messages []Message) (string, error)
	Name() string
}

// NewFromConfig picks a provider by name. It returns nil when the
// matching credential is absent; callers treat a nil client as
// degraded mode.
func NewFromConfig(provider, openAIKey, anthropicKey string) Client {
	switch provider {
	case "anthropic":
		if anthropicKey != "" {
			return NewAnthropicClient(anthropicKey)
		}
	default:
		if openAIKey != "" {
			return NewOpenAIClient(openAIKey)
		}
	}
	return nil
}
