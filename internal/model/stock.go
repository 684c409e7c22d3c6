package model

const (
	TrendUp   = "up"
	TrendDown = "down"

	SourceLive     = "live"
	SourceFallback = "fallback"
)

// StockData is the per-ticker fundamentals snapshot. It is rebuilt on
// every request and never persisted. Source records whether the data
// came from the live provider or the fallback table.
type StockData struct {
	Symbol        string  `json:"symbol"`
	CurrentPrice  float64 `json:"current_price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	MarketCap     float64 `json:"market_cap"`
	PERatio       float64 `json:"pe_ratio"`
	RevenueGrowth float64 `json:"revenue_growth"`
	ProfitMargins float64 `json:"profit_margins"`
	Sector        string  `json:"sector"`
	Industry      string  `json:"industry"`
	Summary       string  `json:"summary"`
	AvgVolume     int64   `json:"avg_volume"`
	RecentTrend   string  `json:"recent_trend"`
	Source        string  `json:"source"`
}

type Signal struct {
	Ticker       string   `json:"ticker"`
	Score        int      `json:"score"`
	Reasons      []string `json:"reasons"`
	CurrentPrice float64  `json:"current_price"`
	Sector       string   `json:"sector"`
}

type ScanResult struct {
	Sector    string   `json:"sector"`
	MarketCap string   `json:"market_cap"`
	Signals   []Signal `json:"signals"`
	Summary   string   `json:"summary"`
}

// Metrics are price and fundamental statistics computed over roughly
// six months of daily closes.
type Metrics struct {
	WeeklyChange       float64 `json:"weekly_change"`
	MonthlyChange      float64 `json:"monthly_change"`
	SixMonthTrendSlope float64 `json:"six_month_trend_slope"`
	Volatility         float64 `json:"volatility"`
	RevenueGrowthYoY   float64 `json:"revenue_growth_yoy"`
	MarketCap          float64 `json:"market_cap"`
	AvgVolume30d       int64   `json:"avg_volume_30d"`
	GrowthScore        float64 `json:"growth_score"`
}
