package handler

type AnalyzeRequest struct {
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name"`
}

type ScanRequest struct {
	Sector    string `json:"sector"`
	MarketCap string `json:"market_cap"`
}

type SummarizeRequest struct {
	Ticker     string `json:"ticker"`
	ReportType string `json:"report_type"`
}

type TickerRequest struct {
	Ticker string `json:"ticker"`
}

type ChatRequest struct {
	Message   string `json:"message"`
	Symbol    string `json:"symbol"`
	SessionID string `json:"session_id"`
}

type ResetRequest struct {
	SessionID string `json:"session_id"`
}

type OutboundCallRequest struct {
	ToNumber string `json:"to_number"`
	Ticker   string `json:"ticker"`
}

type SMSAlertRequest struct {
	ToNumber string `json:"to_number"`
	Ticker   string `json:"ticker"`
	Summary  string `json:"summary"`
}
