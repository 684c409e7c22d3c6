package agent

import (
	"fmt"

	"sherlok/internal/model"
)

const analystPersona = "You are Sherlok, an AI research agent specializing in analyzing mid-cap and early-stage tech companies for retail investors. Provide clear, actionable insights."

const summaryPersona = "You are Sherlok, an expert at summarizing financial reports for retail investors."

const insightsPersona = "You are Sherlok, providing actionable investment insights."

const chatPersona = `You are Sherlok, a friendly AI stock research assistant for retail investors.
You analyze companies and explain market concepts in plain language.
You do NOT give financial advice. Keep answers concise and conversational.`

const intentPrompt = `Classify the user's query into exactly one of these categories:
stock_price, company_analysis, market_trend, education, general

Reply with the category name only, nothing else.

Query: %s`

func buildAnalysisPrompt(companyName string, data *model.StockData) string {
	return fmt.Sprintf(`As an expert financial analyst specializing in mid-cap and early-stage tech companies,
analyze the following company data and provide clear, actionable insights for retail investors.

Company: %s
Ticker: %s

Financial Data:
- Current Price: $%.2f
- Market Cap: $%.0f
- P/E Ratio: %.2f
- Revenue Growth: %.4f
- Profit Margins: %.4f
- Sector: %s
- Industry: %s
- Recent Trend: %s

Business Summary:
%s

Provide:
1. Key Strengths (2-3 points)
2. Key Risks (2-3 points)
3. Growth Potential Assessment
4. Clear Recommendation (Buy, Hold, Sell, or Monitor)
5. Price Target Range (if applicable)

Keep the analysis concise and actionable for retail investors.`,
		companyName, data.Symbol, data.CurrentPrice, data.MarketCap, data.PERatio,
		data.RevenueGrowth, data.ProfitMargins, data.Sector, data.Industry,
		data.RecentTrend, data.Summary)
}

func buildSummaryPrompt(reportType string, data *model.StockData) string {
	return fmt.Sprintf(`Summarize the latest %s report for %s (%s sector).

Based on the following company information, provide a concise summary:
- Industry: %s
- Revenue Growth: %.4f
- Profit Margins: %.4f
- Recent Trend: %s

Provide:
1. Key Financial Highlights
2. Management Commentary (based on typical patterns)
3. Forward Guidance Implications
4. What Investors Should Watch

Keep it concise and focused on actionable takeaways.`,
		reportType, data.Symbol, data.Sector, data.Industry,
		data.RevenueGrowth, data.ProfitMargins, data.RecentTrend)
}

func buildInsightsPrompt(data *model.StockData) string {
	return fmt.Sprintf(`As Sherlok, provide actionable investment insights for %s.

Company Data:
- Sector: %s
- Industry: %s
- Current Price: $%.2f
- Market Cap: $%.0f
- P/E Ratio: %.2f
- Revenue Growth: %.4f

Provide actionable insights:
1. Entry Points: When to consider buying
2. Exit Strategy: Price targets and stop-loss recommendations
3. Risk Management: Position sizing suggestions
4. Timeline: Short-term vs. long-term outlook
5. Catalysts to Watch: Upcoming events or milestones

Be specific and practical for a retail investor.`,
		data.Symbol, data.Sector, data.Industry, data.CurrentPrice,
		data.MarketCap, data.PERatio, data.RevenueGrowth)
}
