package marketdata

import (
	"context"
	"math"
	"strings"

	"sherlok/internal/model"
)

// MockProvider serves a fixed in-memory table. It backs the accessor
// whenever no live credential is configured or a live call fails, and
// never returns an error.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Name() string {
	return "Mock"
}

var mockTable = map[string]model.StockData{
	"AAPL": {CurrentPrice: 178.25, Change: 1.32, ChangePercent: 0.75, MarketCap: 2.8e12, PERatio: 29.4, RevenueGrowth: 0.02, ProfitMargins: 0.25, Sector: "Technology", Industry: "Consumer Electronics", Summary: "Apple designs and sells consumer electronics, software and services.", AvgVolume: 58_000_000, RecentTrend: model.TrendUp},
	"PLTR": {CurrentPrice: 24.50, Change: 0.85, ChangePercent: 3.59, MarketCap: 52e9, PERatio: 245.0, RevenueGrowth: 0.25, ProfitMargins: 0.18, Sector: "Technology", Industry: "Software - Infrastructure", Summary: "Palantir builds data integration and analytics platforms.", AvgVolume: 41_000_000, RecentTrend: model.TrendUp},
	"SNOW": {CurrentPrice: 158.10, Change: -2.40, ChangePercent: -1.49, MarketCap: 45e9, PERatio: 0, RevenueGrowth: 0.32, ProfitMargins: -0.35, Sector: "Technology", Industry: "Software - Application", Summary: "Snowflake provides a cloud data warehousing platform.", AvgVolume: 6_500_000, RecentTrend: model.TrendDown},
	"CRWD": {CurrentPrice: 305.75, Change: 4.10, ChangePercent: 1.36, MarketCap: 72e9, PERatio: 0, RevenueGrowth: 0.33, ProfitMargins: 0.05, Sector: "Technology", Industry: "Software - Infrastructure", Summary: "CrowdStrike delivers cloud-native endpoint security.", AvgVolume: 3_900_000, RecentTrend: model.TrendUp},
	"NET":  {CurrentPrice: 78.90, Change: 0.55, ChangePercent: 0.70, MarketCap: 26e9, PERatio: 0, RevenueGrowth: 0.28, ProfitMargins: -0.09, Sector: "Technology", Industry: "Software - Infrastructure", Summary: "Cloudflare operates a global edge network.", AvgVolume: 3_100_000, RecentTrend: model.TrendUp},
	"DDOG": {CurrentPrice: 112.30, Change: -0.95, ChangePercent: -0.84, MarketCap: 37e9, PERatio: 0, RevenueGrowth: 0.27, ProfitMargins: 0.02, Sector: "Technology", Industry: "Software - Application", Summary: "Datadog provides cloud monitoring and observability.", AvgVolume: 2_800_000, RecentTrend: model.TrendDown},
	"ZS":   {CurrentPrice: 164.40, Change: 2.25, ChangePercent: 1.39, MarketCap: 24e9, PERatio: 0, RevenueGrowth: 0.40, ProfitMargins: -0.08, Sector: "Technology", Industry: "Software - Infrastructure", Summary: "Zscaler sells cloud security services.", AvgVolume: 1_700_000, RecentTrend: model.TrendUp},
	"TDOC": {CurrentPrice: 21.80, Change: -0.30, ChangePercent: -1.36, MarketCap: 2.8e9, PERatio: 0, RevenueGrowth: -0.02, ProfitMargins: -0.10, Sector: "Healthcare", Industry: "Health Information Services", Summary: "Teladoc offers virtual healthcare services.", AvgVolume: 4_200_000, RecentTrend: model.TrendDown},
	"VEEV": {CurrentPrice: 198.65, Change: 1.75, ChangePercent: 0.89, MarketCap: 32e9, PERatio: 48.2, RevenueGrowth: 0.12, ProfitMargins: 0.25, Sector: "Healthcare", Industry: "Health Information Services", Summary: "Veeva provides cloud software for the life sciences industry.", AvgVolume: 1_200_000, RecentTrend: model.TrendUp},
	"HIMS": {CurrentPrice: 13.45, Change: 0.40, ChangePercent: 3.07, MarketCap: 4.5e9, PERatio: 0, RevenueGrowth: 0.45, ProfitMargins: 0.08, Sector: "Healthcare", Industry: "Medical Care Facilities", Summary: "Hims & Hers runs a telehealth platform.", AvgVolume: 9_800_000, RecentTrend: model.TrendUp},
	"SOFI": {CurrentPrice: 8.20, Change: 0.15, ChangePercent: 1.86, MarketCap: 7.9e9, PERatio: 0, RevenueGrowth: 0.35, ProfitMargins: 0.02, Sector: "Finance", Industry: "Credit Services", Summary: "SoFi offers digital lending and banking products.", AvgVolume: 35_000_000, RecentTrend: model.TrendUp},
	"UPST": {CurrentPrice: 27.35, Change: -1.10, ChangePercent: -3.87, MarketCap: 2.1e9, PERatio: 0, RevenueGrowth: -0.05, ProfitMargins: -0.15, Sector: "Finance", Industry: "Credit Services", Summary: "Upstart operates an AI lending marketplace.", AvgVolume: 8_600_000, RecentTrend: model.TrendDown},
	"AFRM": {CurrentPrice: 34.60, Change: -0.70, ChangePercent: -1.98, MarketCap: 12e9, PERatio: 0, RevenueGrowth: 0.22, ProfitMargins: -0.20, Sector: "Finance", Industry: "Credit Services", Summary: "Affirm provides buy-now-pay-later financing.", AvgVolume: 11_000_000, RecentTrend: model.TrendDown},
}

const (
	placeholderPrice  = 100.0
	placeholderVolume = 1_000_000
)

func (p *MockProvider) StockData(_ context.Context, symbol string) (*model.StockData, error) {
	symbol = strings.ToUpper(symbol)

	if entry, ok := mockTable[symbol]; ok {
		entry.Symbol = symbol
		entry.Source = model.SourceFallback
		return &entry, nil
	}

	// Unknown symbols get a deterministic placeholder instead of an error.
	return &model.StockData{
		Symbol:       symbol,
		CurrentPrice: placeholderPrice,
		Sector:       "Unknown",
		Industry:     "Unknown",
		Summary:      "No data available for " + symbol,
		AvgVolume:    placeholderVolume,
		RecentTrend:  model.TrendDown,
		Source:       model.SourceFallback,
	}, nil
}

// History synthesizes a deterministic six-month daily close series
// that drifts toward the table price in the direction of the recorded
// trend, with a small repeating wobble.
func (p *MockProvider) History(ctx context.Context, symbol string) ([]float64, error) {
	data, _ := p.StockData(ctx, symbol)

	const days = 126
	drift := 0.2
	if data.RecentTrend == model.TrendDown {
		drift = -0.1
	}

	start := data.CurrentPrice / (1 + drift)
	closes := make([]float64, days)
	for i := range closes {
		progress := float64(i) / float64(days-1)
		base := start * (1 + drift*progress)
		wobble := 1 + 0.01*math.Sin(float64(i)/5)
		closes[i] = base * wobble
	}
	closes[days-1] = data.CurrentPrice

	return closes, nil
}
