package model

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	IntentStockPrice      = "stock_price"
	IntentCompanyAnalysis = "company_analysis"
	IntentMarketTrend     = "market_trend"
	IntentEducation       = "education"
	IntentGeneral         = "general"
)

type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
