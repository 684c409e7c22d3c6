package agent

import (
	"context"
	"fmt"
	"time"

	"sherlok/internal/model"
	"sherlok/pkg/llm"
)

// DegradedNotice is returned in place of model output whenever no LLM
// credential is configured.
const DegradedNotice = "AI analysis is not configured. Set an OpenAI or Anthropic API key to enable generated analysis. Stock data shown is still available."

type AnalysisResult struct {
	Ticker      string           `json:"ticker"`
	CompanyName string           `json:"company_name"`
	StockData   *model.StockData `json:"stock_data"`
	Analysis    string           `json:"analysis"`
	Timestamp   string           `json:"timestamp"`
}

type SummaryResult struct {
	Ticker     string `json:"ticker"`
	ReportType string `json:"report_type"`
	Summary    string `json:"summary"`
	Timestamp  string `json:"timestamp"`
}

type InsightsResult struct {
	Ticker    string         `json:"ticker"`
	Insights  string         `json:"insights"`
	StockData map[string]any `json:"stock_data"`
	Timestamp string         `json:"timestamp"`
}

type MetricsResult struct {
	Ticker    string        `json:"ticker"`
	Metrics   model.Metrics `json:"metrics"`
	Timestamp string        `json:"timestamp"`
}

// ResearchAgent wraps single-shot LLM calls around fetched stock
// data. Each operation fetches fresh data, makes at most one model
// call, and never retries.
type ResearchAgent struct {
	data MarketData
	llm  llm.Client
	now  func() time.Time
}

func NewResearchAgent(data MarketData, client llm.Client) *ResearchAgent {
	return &ResearchAgent{data: data, llm: client, now: time.Now}
}

func (a *ResearchAgent) Analyze(ctx context.Context, ticker, companyName string) (*AnalysisResult, error) {
	data := a.data.GetStockData(ctx, ticker)
	if companyName == "" {
		companyName = data.Symbol
	}

	analysis, err := a.complete(ctx, analystPersona, buildAnalysisPrompt(companyName, data))
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", data.Symbol, err)
	}

	return &AnalysisResult{
		Ticker:      data.Symbol,
		CompanyName: companyName,
		StockData:   data,
		Analysis:    analysis,
		Timestamp:   a.now().UTC().Format(time.RFC3339),
	}, nil
}

func (a *ResearchAgent) Summarize(ctx context.Context, ticker, reportType string) (*SummaryResult, error) {
	if reportType == "" {
		reportType = "earnings"
	}
	data := a.data.GetStockData(ctx, ticker)

	summary, err := a.complete(ctx, summaryPersona, buildSummaryPrompt(reportType, data))
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", data.Symbol, err)
	}

	return &SummaryResult{
		Ticker:     data.Symbol,
		ReportType: reportType,
		Summary:    summary,
		Timestamp:  a.now().UTC().Format(time.RFC3339),
	}, nil
}

func (a *ResearchAgent) Insights(ctx context.Context, ticker string) (*InsightsResult, error) {
	data := a.data.GetStockData(ctx, ticker)

	insights, err := a.complete(ctx, insightsPersona, buildInsightsPrompt(data))
	if err != nil {
		return nil, fmt.Errorf("insights %s: %w", data.Symbol, err)
	}

	return &InsightsResult{
		Ticker:   data.Symbol,
		Insights: insights,
		StockData: map[string]any{
			"price":      data.CurrentPrice,
			"market_cap": data.MarketCap,
			"sector":     data.Sector,
		},
		Timestamp: a.now().UTC().Format(time.RFC3339),
	}, nil
}

// Metrics computes price statistics without any LLM involvement.
func (a *ResearchAgent) Metrics(ctx context.Context, ticker string) *MetricsResult {
	data := a.data.GetStockData(ctx, ticker)
	closes := a.data.History(ctx, ticker)

	return &MetricsResult{
		Ticker:    data.Symbol,
		Metrics:   ComputeMetrics(closes, data),
		Timestamp: a.now().UTC().Format(time.RFC3339),
	}
}

func (a *ResearchAgent) complete(ctx context.Context, persona, prompt string) (string, error) {
	if a.llm == nil {
		return DegradedNotice, nil
	}
	return a.llm.Complete(ctx, persona, []llm.Message{{Role: llm.RoleUser, Content: prompt}})
}
