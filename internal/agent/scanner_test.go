package agent

import (
	"context"
	"testing"

	"github.com/go-playground/assert/v2"

	"sherlok/internal/model"
	"sherlok/internal/universe"
)

type fakeMarket struct {
	table   map[string]*model.StockData
	history []float64
}

func (f *fakeMarket) GetStockData(_ context.Context, symbol string) *model.StockData {
	if data, ok := f.table[symbol]; ok {
		return data
	}
	return &model.StockData{Symbol: symbol, CurrentPrice: 100, Sector: "Unknown", Industry: "Unknown", RecentTrend: model.TrendDown, Source: model.SourceFallback}
}

func (f *fakeMarket) History(_ context.Context, _ string) []float64 {
	return f.history
}

func testUniverse() *universe.Universe {
	return &universe.Universe{Sectors: map[string][]string{
		"technology": {"AAA", "BBB", "CCC"},
	}}
}

func TestScanSector_RanksByScoreDescending(t *testing.T) {
	market := &fakeMarket{table: map[string]*model.StockData{
		"AAA": {CurrentPrice: 10, RevenueGrowth: 0.25, RecentTrend: model.TrendUp, MarketCap: 10e9, ProfitMargins: 0.15, Sector: "Technology"},
		"BBB": {CurrentPrice: 20, RecentTrend: model.TrendUp, Sector: "Technology"},
		"CCC": {CurrentPrice: 30, RevenueGrowth: 0.25, RecentTrend: model.TrendDown, Sector: "Technology"},
	}}
	scanner := NewScanner(market, testUniverse(), 20)

	result := scanner.ScanSector(context.Background(), "technology", "mid")

	assert.Equal(t, 3, len(result.Signals))
	assert.Equal(t, "AAA", result.Signals[0].Ticker)
	assert.Equal(t, 100, result.Signals[0].Score)
	assert.Equal(t, "CCC", result.Signals[1].Ticker)
	assert.Equal(t, 30, result.Signals[1].Score)
	assert.Equal(t, "BBB", result.Signals[2].Ticker)
	assert.Equal(t, 20, result.Signals[2].Score)

	for _, s := range result.Signals {
		if len(s.Reasons) == 0 {
			t.Errorf("signal %s has no reasons", s.Ticker)
		}
	}
}

func TestScanSector_OmitsBelowThreshold(t *testing.T) {
	market := &fakeMarket{table: map[string]*model.StockData{
		"AAA": {RevenueGrowth: 0.25, RecentTrend: model.TrendUp, Sector: "Technology"},
		"BBB": {RecentTrend: model.TrendUp, Sector: "Technology"},
		"CCC": {RecentTrend: model.TrendDown, Sector: "Technology"},
	}}
	scanner := NewScanner(market, testUniverse(), 25)

	result := scanner.ScanSector(context.Background(), "technology", "mid")

	assert.Equal(t, 1, len(result.Signals))
	assert.Equal(t, "AAA", result.Signals[0].Ticker)
	for _, s := range result.Signals {
		if s.Score < 25 {
			t.Errorf("signal %s below threshold: %d", s.Ticker, s.Score)
		}
	}
}

func TestScanSector_TiesKeepCandidateOrder(t *testing.T) {
	market := &fakeMarket{table: map[string]*model.StockData{
		"AAA": {RecentTrend: model.TrendUp, Sector: "Technology"},
		"BBB": {RecentTrend: model.TrendUp, Sector: "Technology"},
		"CCC": {RecentTrend: model.TrendUp, Sector: "Technology"},
	}}
	scanner := NewScanner(market, testUniverse(), 20)

	result := scanner.ScanSector(context.Background(), "technology", "mid")

	assert.Equal(t, []string{"AAA", "BBB", "CCC"}, []string{
		result.Signals[0].Ticker, result.Signals[1].Ticker, result.Signals[2].Ticker,
	})
}

func TestScanSector_EchoesBandAndSummary(t *testing.T) {
	market := &fakeMarket{table: map[string]*model.StockData{}}
	scanner := NewScanner(market, testUniverse(), 20)

	result := scanner.ScanSector(context.Background(), "technology", "large")

	assert.Equal(t, "technology", result.Sector)
	assert.Equal(t, "large", result.MarketCap)
	assert.Equal(t, "Found 0 promising signals in technology sector", result.Summary)
	assert.Equal(t, 0, len(result.Signals))
}

func TestScoreCandidate_MidCapBandBoundaries(t *testing.T) {
	inside := scoreCandidate("X", &model.StockData{MarketCap: 10e9, RecentTrend: model.TrendDown})
	assert.Equal(t, weightMidCap, inside.Score)

	atFloor := scoreCandidate("X", &model.StockData{MarketCap: midCapFloor, RecentTrend: model.TrendDown})
	assert.Equal(t, 0, atFloor.Score)

	atCeiling := scoreCandidate("X", &model.StockData{MarketCap: midCapCeiling, RecentTrend: model.TrendDown})
	assert.Equal(t, 0, atCeiling.Score)
}
