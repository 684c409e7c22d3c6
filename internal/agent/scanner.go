package agent

import (
	"context"
	"fmt"
	"sort"

	"sherlok/internal/model"
	"sherlok/internal/universe"
)

// MarketData is the slice of the market data accessor the agents
// depend on. Implementations never fail; they return best-effort
// records with a provenance tag.
type MarketData interface {
	GetStockData(ctx context.Context, symbol string) *model.StockData
	History(ctx context.Context, symbol string) []float64
}

// Signal weights. Contributions are additive and positive only; a
// factor that does not fire contributes nothing.
const (
	weightRevenueGrowth = 30
	weightMomentum      = 20
	weightMidCap        = 25
	weightProfitMargins = 25

	revenueGrowthBar = 0.20
	profitMarginBar  = 0.10
	midCapFloor      = 2e9
	midCapCeiling    = 50e9

	scanCandidateLimit = 3
)

type Scanner struct {
	data     MarketData
	universe *universe.Universe
	minScore int
}

func NewScanner(data MarketData, u *universe.Universe, minScore int) *Scanner {
	return &Scanner{data: data, universe: u, minScore: minScore}
}

// ScanSector scores each candidate in the sector's static list and
// returns the qualifying signals ranked by descending score. The
// marketCapBand parameter is informational only; it is echoed in the
// result and never filters candidates.
func (s *Scanner) ScanSector(ctx context.Context, sector, marketCapBand string) *model.ScanResult {
	signals := make([]model.Signal, 0, scanCandidateLimit)

	for _, ticker := range s.universe.Candidates(sector, scanCandidateLimit) {
		data := s.data.GetStockData(ctx, ticker)
		if data == nil {
			continue
		}

		signal := scoreCandidate(ticker, data)
		if signal.Score < s.minScore {
			continue
		}
		signals = append(signals, signal)
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].Score > signals[j].Score
	})

	return &model.ScanResult{
		Sector:    sector,
		MarketCap: marketCapBand,
		Signals:   signals,
		Summary:   fmt.Sprintf("Found %d promising signals in %s sector", len(signals), sector),
	}
}

func scoreCandidate(ticker string, data *model.StockData) model.Signal {
	score := 0
	reasons := []string{}

	if data.RevenueGrowth > revenueGrowthBar {
		score += weightRevenueGrowth
		reasons = append(reasons, "Strong revenue growth")
	}

	if data.RecentTrend == model.TrendUp {
		score += weightMomentum
		reasons = append(reasons, "Positive momentum")
	}

	if data.MarketCap > midCapFloor && data.MarketCap < midCapCeiling {
		score += weightMidCap
		reasons = append(reasons, "Mid-cap sweet spot")
	}

	if data.ProfitMargins > profitMarginBar {
		score += weightProfitMargins
		reasons = append(reasons, "Healthy profit margins")
	}

	return model.Signal{
		Ticker:       ticker,
		Score:        score,
		Reasons:      reasons,
		CurrentPrice: data.CurrentPrice,
		Sector:       data.Sector,
	}
}
