package agent

import (
	"math"

	"sherlok/internal/model"
)

// sixMonthWindow is roughly six months of trading days.
const sixMonthWindow = 120

// ComputeMetrics derives price statistics from a daily close series
// (oldest first) plus fundamentals. Series too short for a given
// metric leave that metric at zero.
func ComputeMetrics(closes []float64, data *model.StockData) model.Metrics {
	m := model.Metrics{
		WeeklyChange:       percentChange(closes, 7),
		MonthlyChange:      percentChange(closes, 30),
		SixMonthTrendSlope: round4(sixMonthSlope(closes)),
		Volatility:         round4(returnStddev(closes)),
	}

	if data != nil {
		m.RevenueGrowthYoY = round4(data.RevenueGrowth)
		m.MarketCap = data.MarketCap
		m.AvgVolume30d = data.AvgVolume
	}

	m.GrowthScore = growthScore(m)
	return m
}

// percentChange compares the last close against the close n-1 entries
// back, matching a lookback of n trading days.
func percentChange(closes []float64, n int) float64 {
	if len(closes) < n {
		return 0
	}
	base := closes[len(closes)-n]
	if base == 0 {
		return 0
	}
	return round2((closes[len(closes)-1] - base) / base * 100)
}

// sixMonthSlope fits a trend over the last sixMonthWindow closes.
// Shorter series carry no six-month signal and score zero.
func sixMonthSlope(closes []float64) float64 {
	if len(closes) < sixMonthWindow {
		return 0
	}
	return trendSlope(tail(closes, sixMonthWindow))
}

// trendSlope is the least-squares slope of close price over index.
func trendSlope(closes []float64) float64 {
	n := float64(len(closes))
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range closes {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// returnStddev is the population standard deviation of simple daily
// returns.
func returnStddev(closes []float64) float64 {
	if len(closes) < 2 {
		return 0
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, (closes[i]-closes[i-1])/closes[i-1])
	}
	if len(returns) == 0 {
		return 0
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns))

	return math.Sqrt(variance)
}

// growthScore is a weighted composite of normalized metrics on a 0-10
// scale: 25% weekly change, 25% monthly change, 25% revenue growth,
// 15% trend slope, 10% inverse volatility.
func growthScore(m model.Metrics) float64 {
	weeklyNorm := normalize(m.WeeklyChange, -20, 20)
	monthlyNorm := normalize(m.MonthlyChange, -50, 50)
	revenueNorm := normalize(m.RevenueGrowthYoY, -0.5, 1.0)
	trendNorm := normalize(m.SixMonthTrendSlope, -1, 1)

	volNorm := 0.5
	if m.Volatility > 0 {
		volNorm = 1 - normalize(m.Volatility, 0, 0.1)
	}

	score := 0.25*weeklyNorm +
		0.25*monthlyNorm +
		0.25*revenueNorm +
		0.15*trendNorm +
		0.10*volNorm

	return round2(score * 10)
}

func normalize(value, min, max float64) float64 {
	if max == min {
		return 0.5
	}
	n := (value - min) / (max - min)
	return math.Max(0, math.Min(1, n))
}

func tail(closes []float64, n int) []float64 {
	if len(closes) <= n {
		return closes
	}
	return closes[len(closes)-n:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
