package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"sherlok/internal/model"
	"sherlok/internal/session"
	"sherlok/pkg/llm"
)

// fakeLLM replays scripted replies in order and counts calls.
type fakeLLM struct {
	replies []string
	err     error
	calls   int
	lastMsg []llm.Message
}

func (f *fakeLLM) Complete(_ context.Context, _ string, messages []llm.Message) (string, error) {
	f.calls++
	f.lastMsg = messages
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "ok", nil
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

func (f *fakeLLM) Name() string { return "fake" }

func newChatAgent(client llm.Client) (*ConversationAgent, *session.Store) {
	store := session.NewStore()
	market := &fakeMarket{table: map[string]*model.StockData{
		"AAPL": {Symbol: "AAPL", CurrentPrice: 178.25, Sector: "Technology", Source: model.SourceFallback},
	}}
	return NewConversationAgent(client, market, store), store
}

func TestChat_DegradedModeMakesNoCalls(t *testing.T) {
	agent, store := newChatAgent(nil)

	result := agent.Chat(context.Background(), "s1", "what is a P/E ratio?", "")

	assert.Equal(t, model.IntentGeneral, result.Intent)
	assert.Equal(t, ChatDegradedNotice, result.Response)
	assert.Equal(t, 0, len(store.Turns("s1")))
}

func TestChat_ClassifiesIntentAndResponds(t *testing.T) {
	client := &fakeLLM{replies: []string{"company_analysis", "PLTR looks interesting."}}
	agent, store := newChatAgent(client)

	result := agent.Chat(context.Background(), "s1", "tell me about PLTR", "")

	assert.Equal(t, model.IntentCompanyAnalysis, result.Intent)
	assert.Equal(t, "PLTR looks interesting.", result.Response)
	assert.Equal(t, 2, client.calls)

	turns := store.Turns("s1")
	assert.Equal(t, 2, len(turns))
	assert.Equal(t, model.RoleUser, turns[0].Role)
	assert.Equal(t, "tell me about PLTR", turns[0].Content)
	assert.Equal(t, model.RoleAssistant, turns[1].Role)
}

func TestChat_UnknownIntentLabelDefaultsToGeneral(t *testing.T) {
	client := &fakeLLM{replies: []string{"buy_signal", "answer"}}
	agent, _ := newChatAgent(client)

	result := agent.Chat(context.Background(), "s1", "hello", "")

	assert.Equal(t, model.IntentGeneral, result.Intent)
}

func TestChat_NormalizesIntentLabel(t *testing.T) {
	client := &fakeLLM{replies: []string{" Stock_Price.\n", "answer"}}
	agent, _ := newChatAgent(client)

	result := agent.Chat(context.Background(), "s1", "AAPL price?", "")

	assert.Equal(t, model.IntentStockPrice, result.Intent)
}

func TestChat_ModelFailureReturnsApology(t *testing.T) {
	client := &fakeLLM{err: errors.New("rate limited")}
	agent, store := newChatAgent(client)

	result := agent.Chat(context.Background(), "s1", "hello", "")

	assert.Equal(t, model.IntentGeneral, result.Intent)
	if !strings.Contains(result.Response, "rate limited") {
		t.Errorf("apology should embed error text, got %q", result.Response)
	}
	// Failed exchanges are not recorded.
	assert.Equal(t, 0, len(store.Turns("s1")))
}

func TestChat_SymbolInlinesStockData(t *testing.T) {
	client := &fakeLLM{replies: []string{"stock_price", "it trades at 178.25"}}
	agent, _ := newChatAgent(client)

	result := agent.Chat(context.Background(), "s1", "price?", "AAPL")

	assert.Equal(t, "AAPL", result.StockData.Symbol)

	last := client.lastMsg[len(client.lastMsg)-1]
	if !strings.Contains(last.Content, "178.25") {
		t.Errorf("stock data not inlined into prompt: %q", last.Content)
	}
}

func TestChat_HistoryCappedAfterSevenExchanges(t *testing.T) {
	replies := make([]string, 0, 14)
	for i := 0; i < 7; i++ {
		replies = append(replies, model.IntentGeneral, fmt.Sprintf("answer %d", i))
	}
	client := &fakeLLM{replies: replies}
	agent, store := newChatAgent(client)

	for i := 0; i < 7; i++ {
		agent.Chat(context.Background(), "s1", fmt.Sprintf("question %d", i), "")
	}

	turns := store.Turns("s1")
	assert.Equal(t, 6, len(turns))
	assert.Equal(t, "question 4", turns[0].Content)

	// The 7th request saw only the surviving window plus itself.
	assert.Equal(t, 7, len(client.lastMsg))
}

func TestReset_ClearsHistory(t *testing.T) {
	client := &fakeLLM{replies: []string{"general", "hi"}}
	agent, store := newChatAgent(client)

	agent.Chat(context.Background(), "s1", "hello", "")
	assert.Equal(t, 2, len(store.Turns("s1")))

	agent.Reset("s1")
	assert.Equal(t, 0, len(store.Turns("s1")))
}

func TestChat_MintsSessionIDWhenMissing(t *testing.T) {
	agent, _ := newChatAgent(nil)

	result := agent.Chat(context.Background(), "", "hello", "")
	assert.NotEqual(t, "", result.SessionID)
}
