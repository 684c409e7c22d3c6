package marketdata

import (
	"context"
	"log/slog"
	"strings"

	"sherlok/internal/model"
)

// Accessor is the degrade-gracefully entry point for market data. It
// tries the live provider first when one is configured and falls back
// to the mock table on any failure, so it never errors. Callers must
// treat every field as informational and check Source for provenance.
type Accessor struct {
	live Provider
	mock *MockProvider
}

// NewAccessor builds an accessor. An empty API key leaves the live
// provider unset and every lookup answers from the fallback table.
func NewAccessor(finnhubAPIKey string) *Accessor {
	a := &Accessor{mock: NewMockProvider()}
	if finnhubAPIKey != "" {
		a.live = NewFinnhubProvider(finnhubAPIKey)
	}
	return a
}

func (a *Accessor) GetStockData(ctx context.Context, symbol string) *model.StockData {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if a.live != nil {
		data, err := a.live.StockData(ctx, symbol)
		if err == nil {
			return data
		}
		slog.Warn("live stock data failed, using fallback", "symbol", symbol, "provider", a.live.Name(), "error", err)
	}

	data, _ := a.mock.StockData(ctx, symbol)
	return data
}

func (a *Accessor) History(ctx context.Context, symbol string) []float64 {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if a.live != nil {
		closes, err := a.live.History(ctx, symbol)
		if err == nil {
			return closes
		}
		slog.Warn("live price history failed, using fallback", "symbol", symbol, "provider", a.live.Name(), "error", err)
	}

	closes, _ := a.mock.History(ctx, symbol)
	return closes
}
