package marketdata

import (
	"context"

	"sherlok/internal/model"
)

// Provider fetches quote and company data for one symbol. History
// returns roughly six months of daily closes, oldest first.
type Provider interface {
	StockData(ctx context.Context, symbol string) (*model.StockData, error)
	History(ctx context.Context, symbol string) ([]float64, error)
	Name() string
}
