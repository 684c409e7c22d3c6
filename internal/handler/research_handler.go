package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sherlok/internal/agent"
	"sherlok/internal/model"
)

type Researcher interface {
	Analyze(ctx context.Context, ticker, companyName string) (*agent.AnalysisResult, error)
	Summarize(ctx context.Context, ticker, reportType string) (*agent.SummaryResult, error)
	Insights(ctx context.Context, ticker string) (*agent.InsightsResult, error)
	Metrics(ctx context.Context, ticker string) *agent.MetricsResult
}

type SectorScanner interface {
	ScanSector(ctx context.Context, sector, marketCapBand string) *model.ScanResult
}

type ResearchHandler struct {
	researcher   Researcher
	scanner      SectorScanner
	voiceEnabled bool
}

func NewResearchHandler(researcher Researcher, scanner SectorScanner, voiceEnabled bool) *ResearchHandler {
	return &ResearchHandler{researcher: researcher, scanner: scanner, voiceEnabled: voiceEnabled}
}

func (h *ResearchHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"service":       "Sherlok Research Agent",
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
		"voice_enabled": h.voiceEnabled,
	})
}

func (h *ResearchHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker symbol is required"})
		return
	}

	analysis, err := h.researcher.Analyze(c.Request.Context(), req.Ticker, req.CompanyName)
	if err != nil {
		slog.Error("analysis failed", "ticker", req.Ticker, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"ticker":   analysis.Ticker,
		"analysis": analysis,
	})
}

func (h *ResearchHandler) Scan(c *gin.Context) {
	var req ScanRequest
	// Both fields are optional; an empty body is a valid scan request.
	_ = c.ShouldBindJSON(&req)
	if req.Sector == "" {
		req.Sector = "technology"
	}
	if req.MarketCap == "" {
		req.MarketCap = "mid"
	}

	result := h.scanner.ScanSector(c.Request.Context(), req.Sector, req.MarketCap)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"signals": result,
	})
}

func (h *ResearchHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker symbol is required"})
		return
	}

	summary, err := h.researcher.Summarize(c.Request.Context(), req.Ticker, req.ReportType)
	if err != nil {
		slog.Error("summarization failed", "ticker", req.Ticker, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Summarization failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"ticker":      summary.Ticker,
		"report_type": summary.ReportType,
		"summary":     summary,
	})
}

func (h *ResearchHandler) Insights(c *gin.Context) {
	var req TickerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker symbol is required"})
		return
	}

	insights, err := h.researcher.Insights(c.Request.Context(), req.Ticker)
	if err != nil {
		slog.Error("insights failed", "ticker", req.Ticker, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Insights generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"ticker":   insights.Ticker,
		"insights": insights,
	})
}

func (h *ResearchHandler) Metrics(c *gin.Context) {
	var req TickerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker symbol is required"})
		return
	}

	metrics := h.researcher.Metrics(c.Request.Context(), req.Ticker)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"ticker":  metrics.Ticker,
		"metrics": metrics,
	})
}
