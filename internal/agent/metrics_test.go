package agent

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"sherlok/internal/model"
)

func linearSeries(start float64, n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + float64(i)
	}
	return closes
}

func TestPercentChange(t *testing.T) {
	closes := linearSeries(100, 30) // 100..129

	assert.Equal(t, 4.88, percentChange(closes, 7))  // (129-123)/123
	assert.Equal(t, 29.0, percentChange(closes, 30)) // (129-100)/100
}

func TestPercentChange_ShortSeries(t *testing.T) {
	assert.Equal(t, 0.0, percentChange(linearSeries(100, 5), 7))
	assert.Equal(t, 0.0, percentChange(nil, 7))
}

func TestTrendSlope_LinearSeries(t *testing.T) {
	assert.Equal(t, 1.0, trendSlope(linearSeries(50, 120)))
}

func TestTrendSlope_FlatAndShort(t *testing.T) {
	flat := []float64{10, 10, 10, 10}
	assert.Equal(t, 0.0, trendSlope(flat))
	assert.Equal(t, 0.0, trendSlope([]float64{10}))
}

func TestSixMonthSlope_RequiresFullWindow(t *testing.T) {
	// Fewer than 120 closes cannot support a six-month trend.
	assert.Equal(t, 0.0, sixMonthSlope(linearSeries(100, 50)))
	assert.Equal(t, 0.0, ComputeMetrics(linearSeries(100, 50), nil).SixMonthTrendSlope)

	// At the window boundary the slope kicks in.
	assert.Equal(t, 1.0, sixMonthSlope(linearSeries(100, 120)))
}

func TestReturnStddev_ConstantSeries(t *testing.T) {
	assert.Equal(t, 0.0, returnStddev([]float64{10, 10, 10}))
	assert.Equal(t, 0.0, returnStddev([]float64{10}))
}

func TestComputeMetrics_EmptyInputs(t *testing.T) {
	m := ComputeMetrics(nil, nil)

	assert.Equal(t, 0.0, m.WeeklyChange)
	assert.Equal(t, 0.0, m.MonthlyChange)
	assert.Equal(t, 0.0, m.SixMonthTrendSlope)
	assert.Equal(t, 0.0, m.Volatility)
	// All-zero metrics land mid-range on every factor except revenue.
	assert.Equal(t, 4.58, m.GrowthScore)
}

func TestComputeMetrics_CarriesFundamentals(t *testing.T) {
	data := &model.StockData{RevenueGrowth: 0.25, MarketCap: 10e9, AvgVolume: 5_000_000}

	m := ComputeMetrics(linearSeries(100, 126), data)

	assert.Equal(t, 0.25, m.RevenueGrowthYoY)
	assert.Equal(t, 10e9, m.MarketCap)
	assert.Equal(t, int64(5_000_000), m.AvgVolume30d)
	if m.GrowthScore < 0 || m.GrowthScore > 10 {
		t.Errorf("growth score out of range: %f", m.GrowthScore)
	}
}

func TestGrowthScore_BoundedForExtremes(t *testing.T) {
	high := growthScore(model.Metrics{WeeklyChange: 100, MonthlyChange: 200, RevenueGrowthYoY: 5, SixMonthTrendSlope: 10})
	if high > 10 {
		t.Errorf("growth score exceeds 10: %f", high)
	}

	low := growthScore(model.Metrics{WeeklyChange: -100, MonthlyChange: -200, RevenueGrowthYoY: -5, SixMonthTrendSlope: -10, Volatility: 1})
	if low < 0 {
		t.Errorf("growth score below 0: %f", low)
	}
}
