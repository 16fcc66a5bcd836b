package session

import (
	"fmt"

	"moneypath/engine"
)

// FeedbackKind classifies an end-of-game note.
type FeedbackKind string

const (
	FeedbackImprovement FeedbackKind = "improvement"
	FeedbackSuccess     FeedbackKind = "success"
	FeedbackTip         FeedbackKind = "tip"
)

// FeedbackItem is one coaching note shown on the end screen.
type FeedbackItem struct {
	Kind    FeedbackKind
	Title   string
	Message string
}

// GenerateFeedback inspects the final state and returns coaching notes on
// the habits the campaign surfaced. Successful players with no missteps get
// a generic tip rather than nothing.
func GenerateFeedback(st engine.PlayerState) []FeedbackItem {
	var feedback []FeedbackItem
	netWorth := st.NetWorth()
	p := st.Portfolio

	if !st.Flags.Opted401K && netWorth < 1000000 {
		feedback = append(feedback, FeedbackItem{
			Kind:    FeedbackImprovement,
			Title:   "Maximize Employer Match",
			Message: "Sarah maxed her 401(k) match from age 22 and had $1.2M by 65. John skipped it until 30 and ended with $600k. Same salary, same age; the 8 missed years of free employer match cost John $600k in retirement. Always contribute up to the match, it is essentially a 100% return.",
		})
	}

	if st.Flags.UsedCreditCard && netWorth < 500000 {
		feedback = append(feedback, FeedbackItem{
			Kind:    FeedbackImprovement,
			Title:   "Build an Emergency Fund",
			Message: "Maria's $400 car repair became $650 in 2 years on a credit card at 24.59% APR. With a $3,000 emergency fund it would have cost $400 total. No emergency fund means an expensive debt spiral; aim for 3-6 months of expenses.",
		})
	}

	totalAssets := p.Cash + p.Stocks
	var stockShare float64
	if totalAssets > 0 {
		stockShare = p.Stocks / totalAssets
	}
	if stockShare < 0.5 && netWorth < 1000000 {
		feedback = append(feedback, FeedbackItem{
			Kind:    FeedbackImprovement,
			Title:   "Increase Stock Allocation",
			Message: "The S&P 500 averaged 10.3% annually from 1957 to 2023 versus 0-1% for cash. You kept too much in cash; over the long term stocks historically outperform cash by 9-10% a year.",
		})
	} else if stockShare > 0.9 && netWorth < 500000 {
		feedback = append(feedback, FeedbackItem{
			Kind:    FeedbackImprovement,
			Title:   "Diversify Your Portfolio",
			Message: "The S&P 500 moves more than 1% in a day every 9 days on average. Too much in stocks means high volatility; adding bonds at 3-5% returns reduces risk.",
		})
	}

	if st.Flags.PanicSold {
		feedback = append(feedback, FeedbackItem{
			Kind:    FeedbackImprovement,
			Title:   "Hold Through Volatility",
			Message: "In the 2008 crash, an investor who held $100k reached $250k by 2021. One who sold at the bottom kept $61.5k forever. Markets recover; panic selling locks in losses permanently. Time in the market beats timing the market.",
		})
	}

	if !st.Flags.InvestedEarly && netWorth < 1000000 {
		feedback = append(feedback, FeedbackItem{
			Kind:    FeedbackImprovement,
			Title:   "Start Investing Early",
			Message: "Investing $5,000 at age 22 instead of 32 yields about $95,000 more by 65 at 7% returns. Compound interest needs decades to work; time is your biggest asset.",
		})
	}

	if p.Debt > 0 {
		feedback = append(feedback, FeedbackItem{
			Kind:    FeedbackImprovement,
			Title:   "Avoid High-Interest Debt",
			Message: fmt.Sprintf("Average credit card APR is 24.59%% while the S&P 500 returns 10.3%% annually. You ended with %s in debt. Debt at 25%% destroys wealth faster than stocks at 10%% can build it; pay off anything above 4%% APR before investing.", formatDollars(p.Debt)),
		})
	}

	if len(st.Badges) >= 4 {
		feedback = append(feedback, FeedbackItem{
			Kind:    FeedbackSuccess,
			Title:   "Excellent Strategy!",
			Message: "You made smart financial decisions throughout and earned multiple badges by following best practices.",
		})
	}

	if netWorth >= 1000000 {
		feedback = append(feedback, FeedbackItem{
			Kind:    FeedbackSuccess,
			Title:   "Millionaire Status!",
			Message: "You reached millionaire status. Under the 4% rule you can safely withdraw $40k a year for 30+ years with a 95% success rate. Excellent financial discipline!",
		})
	} else if netWorth < 200000 {
		feedback = append(feedback, FeedbackItem{
			Kind:    FeedbackImprovement,
			Title:   "Improve Your Strategy",
			Message: "Your net worth ended lower than ideal. Focus on investing early, taking the employer 401(k) match, and avoiding credit card debt.",
		})
	}

	if len(feedback) == 0 {
		feedback = append(feedback, FeedbackItem{
			Kind:    FeedbackTip,
			Title:   "General Tips",
			Message: "Start early, invest consistently, diversify, hold through volatility, and always take the employer match.",
		})
	}

	return feedback
}

func formatDollars(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	n := len(s)
	if n <= 3 {
		return "$" + s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return "$" + string(out)
}
