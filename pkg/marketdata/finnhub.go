package marketdata

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"sherlok/internal/model"
)

type FinnhubProvider struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubProvider(apiKey string) *FinnhubProvider {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubProvider{client: client}
}

func (p *FinnhubProvider) Name() string {
	return "Finnhub"
}

func (p *FinnhubProvider) StockData(ctx context.Context, symbol string) (*model.StockData, error) {
	quote, _, err := p.client.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub quote %s: %w", symbol, err)
	}
	if quote.C == nil || *quote.C == 0 {
		return nil, fmt.Errorf("finnhub quote %s: no price", symbol)
	}

	data := &model.StockData{
		Symbol:       symbol,
		CurrentPrice: float64(*quote.C),
		Source:       model.SourceLive,
	}

	if quote.D != nil {
		data.Change = float64(*quote.D)
	}
	if quote.Dp != nil {
		data.ChangePercent = float64(*quote.Dp)
	}
	if data.Change >= 0 {
		data.RecentTrend = model.TrendUp
	} else {
		data.RecentTrend = model.TrendDown
	}

	profile, _, err := p.client.CompanyProfile2(ctx).Symbol(symbol).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub profile %s: %w", symbol, err)
	}

	if profile.MarketCapitalization != nil {
		// Finnhub reports market cap in millions.
		data.MarketCap = float64(*profile.MarketCapitalization) * 1e6
	}
	if profile.FinnhubIndustry != nil {
		data.Sector = *profile.FinnhubIndustry
		data.Industry = *profile.FinnhubIndustry
	}
	if profile.Name != nil {
		data.Summary = *profile.Name
	}

	financials, _, err := p.client.CompanyBasicFinancials(ctx).Symbol(symbol).Metric("all").Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub financials %s: %w", symbol, err)
	}

	metrics := financials.GetMetric()
	if v, ok := metricFloat(metrics, "revenueGrowthTTMYoy"); ok {
		data.RevenueGrowth = v / 100
	}
	if v, ok := metricFloat(metrics, "netProfitMarginTTM"); ok {
		data.ProfitMargins = v / 100
	}
	if v, ok := metricFloat(metrics, "peBasicExclExtraTTM"); ok {
		data.PERatio = v
	}
	if v, ok := metricFloat(metrics, "10DayAverageTradingVolume"); ok {
		data.AvgVolume = int64(v * 1e6)
	}

	return data, nil
}

func (p *FinnhubProvider) History(ctx context.Context, symbol string) ([]float64, error) {
	to := time.Now()
	from := to.AddDate(0, -6, 0)

	candles, _, err := p.client.StockCandles(ctx).
		Symbol(symbol).
		Resolution("D").
		From(from.Unix()).
		To(to.Unix()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub candles %s: %w", symbol, err)
	}

	raw := candles.GetC()
	if len(raw) == 0 {
		return nil, fmt.Errorf("finnhub candles %s: empty series", symbol)
	}

	closes := make([]float64, len(raw))
	for i, c := range raw {
		closes[i] = float64(c)
	}
	return closes, nil
}

func metricFloat(metrics map[string]interface{}, key string) (float64, bool) {
	raw, ok := metrics[key]
	if !ok {
		return 0, false
	}
	v, ok := raw.(float64)
	return v, ok
}
