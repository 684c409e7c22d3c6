package marketdata

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"sherlok/internal/model"
)

type failingProvider struct {
	calls int
}

func (f *failingProvider) StockData(ctx context.Context, symbol string) (*model.StockData, error) {
	f.calls++
	return nil, errors.New("provider down")
}

func (f *failingProvider) History(ctx context.Context, symbol string) ([]float64, error) {
	f.calls++
	return nil, errors.New("provider down")
}

func (f *failingProvider) Name() string { return "failing" }

func TestGetStockData_KnownSymbol(t *testing.T) {
	a := NewAccessor("")

	data := a.GetStockData(context.Background(), "aapl")

	assert.Equal(t, "AAPL", data.Symbol)
	assert.Equal(t, model.SourceFallback, data.Source)
	assert.Equal(t, "Technology", data.Sector)
}

func TestGetStockData_UnknownSymbolPlaceholder(t *testing.T) {
	a := NewAccessor("")

	data := a.GetStockData(context.Background(), "zzzz")

	assert.Equal(t, "ZZZZ", data.Symbol)
	assert.Equal(t, placeholderPrice, data.CurrentPrice)
	assert.Equal(t, 0.0, data.Change)
	assert.Equal(t, "Unknown", data.Sector)
	assert.Equal(t, "Unknown", data.Industry)
	assert.Equal(t, model.SourceFallback, data.Source)
}

func TestGetStockData_LiveFailureFallsBack(t *testing.T) {
	live := &failingProvider{}
	a := &Accessor{live: live, mock: NewMockProvider()}

	data := a.GetStockData(context.Background(), "PLTR")

	assert.Equal(t, 1, live.calls)
	assert.Equal(t, model.SourceFallback, data.Source)
	assert.Equal(t, "PLTR", data.Symbol)
}

func TestHistory_FallbackIsDeterministic(t *testing.T) {
	a := NewAccessor("")

	first := a.History(context.Background(), "PLTR")
	second := a.History(context.Background(), "PLTR")

	assert.Equal(t, len(first), 126)
	assert.Equal(t, first, second)
}

func TestHistory_TrendDirectionMatchesTable(t *testing.T) {
	a := NewAccessor("")

	up := a.History(context.Background(), "PLTR")
	if up[len(up)-1] <= up[0] {
		t.Errorf("expected rising series for PLTR, first=%f last=%f", up[0], up[len(up)-1])
	}

	down := a.History(context.Background(), "SNOW")
	if down[len(down)-1] >= down[0] {
		t.Errorf("expected falling series for SNOW, first=%f last=%f", down[0], down[len(down)-1])
	}
}
