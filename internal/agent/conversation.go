package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sherlok/internal/model"
	"sherlok/internal/session"
	"sherlok/pkg/llm"
)

// ChatDegradedNotice is the fixed reply used when no LLM credential
// is configured; no external call is attempted in that mode.
const ChatDegradedNotice = "The conversational assistant is not configured. Set an OpenAI or Anthropic API key to enable chat. You can still use the analysis and scan endpoints for stock data."

var intentLabels = map[string]bool{
	model.IntentStockPrice:      true,
	model.IntentCompanyAnalysis: true,
	model.IntentMarketTrend:     true,
	model.IntentEducation:       true,
	model.IntentGeneral:         true,
}

type ChatResult struct {
	SessionID string           `json:"session_id"`
	Intent    string           `json:"intent"`
	Response  string           `json:"response"`
	StockData *model.StockData `json:"stock_data,omitempty"`
}

// queryContext is the assembled input for response synthesis. Purely
// structural; building it cannot fail.
type queryContext struct {
	Query     string
	Timestamp time.Time
	StockData *model.StockData
}

// ConversationAgent runs a three-stage pipeline per query: intent
// classification, context assembly, response synthesis. Stages never
// branch or retry; every failure degrades to a usable reply.
type ConversationAgent struct {
	llm      llm.Client
	data     MarketData
	sessions *session.Store
	now      func() time.Time
}

func NewConversationAgent(client llm.Client, data MarketData, sessions *session.Store) *ConversationAgent {
	return &ConversationAgent{llm: client, data: data, sessions: sessions, now: time.Now}
}

// Chat answers one user query. A symbol, when given, has its snapshot
// fetched and serialized into the model context. The returned result
// always carries a usable response; errors are folded into it.
func (a *ConversationAgent) Chat(ctx context.Context, sessionID, query, symbol string) *ChatResult {
	sessionID = a.sessions.Ensure(sessionID)

	result := &ChatResult{SessionID: sessionID}

	if symbol != "" {
		result.StockData = a.data.GetStockData(ctx, symbol)
	}

	result.Intent = a.classifyIntent(ctx, query)

	qc := queryContext{
		Query:     query,
		Timestamp: a.now(),
		StockData: result.StockData,
	}

	result.Response = a.respond(ctx, sessionID, qc)
	return result
}

// Reset clears the session's conversation history.
func (a *ConversationAgent) Reset(sessionID string) {
	a.sessions.Reset(sessionID)
}

// classifyIntent maps the query onto a closed label set. Any model
// failure, an unrecognized label, or degraded mode yields general.
func (a *ConversationAgent) classifyIntent(ctx context.Context, query string) string {
	if a.llm == nil {
		return model.IntentGeneral
	}

	reply, err := a.llm.Complete(ctx, chatPersona, []llm.Message{
		{Role: llm.RoleUser, Content: fmt.Sprintf(intentPrompt, query)},
	})
	if err != nil {
		slog.Warn("intent classification failed, defaulting to general", "error", err)
		return model.IntentGeneral
	}

	label := strings.ToLower(strings.Trim(strings.TrimSpace(reply), ".\"'"))
	if !intentLabels[label] {
		return model.IntentGeneral
	}
	return label
}

func (a *ConversationAgent) respond(ctx context.Context, sessionID string, qc queryContext) string {
	if a.llm == nil {
		return ChatDegradedNotice
	}

	content := qc.Query
	if qc.StockData != nil {
		if serialized, err := json.Marshal(qc.StockData); err == nil {
			content = fmt.Sprintf("%s\n\nCurrent data for %s:\n%s", qc.Query, qc.StockData.Symbol, serialized)
		}
	}

	messages := make([]llm.Message, 0, 8)
	for _, turn := range a.sessions.Turns(sessionID) {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: content})

	reply, err := a.llm.Complete(ctx, chatPersona, messages)
	if err != nil {
		slog.Error("chat completion failed", "session_id", sessionID, "error", err)
		return fmt.Sprintf("I'm sorry, I couldn't process that request: %v. Please try again.", err)
	}

	a.sessions.Append(sessionID,
		model.Turn{Role: model.RoleUser, Content: qc.Query},
		model.Turn{Role: model.RoleAssistant, Content: reply},
	)

	return reply
}
