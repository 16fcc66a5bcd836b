package catalog

import "moneypath/rng"

// EventImpact carries the signed effects of a random exogenous event.
// Cash is a flat dollar delta, Stocks a fractional multiplier delta
// (-0.05 means a 5% drawdown), IncomeBonus a flat yearly income bump.
type EventImpact struct {
	Cash        float64
	Stocks      float64
	IncomeBonus float64
}

// RandomEvent fires between questions with an independent probability.
type RandomEvent struct {
	ID          string
	Title       string
	Story       string
	Impact      EventImpact
	Probability float64
}

var randomEvents = []RandomEvent{
	{ID: "bonus", Title: "Bonus Windfall", Story: "you received an unexpected bonus at work!", Impact: EventImpact{Cash: 2000}, Probability: 0.3},
	{ID: "medical", Title: "Medical Emergency", Story: "you had a medical emergency that insurance didn't fully cover.", Impact: EventImpact{Cash: -1500}, Probability: 0.25},
	{ID: "side_hustle", Title: "Side Hustle Success", Story: "your side project finally took off!", Impact: EventImpact{Cash: 3000, IncomeBonus: 5000}, Probability: 0.2},
	{ID: "market_dip", Title: "Minor Market Dip", Story: "markets had a temporary 5% correction.", Impact: EventImpact{Stocks: -0.05}, Probability: 0.3},
	{ID: "market_surge", Title: "Market Surge", Story: "markets had an unexpected 10% surge!", Impact: EventImpact{Stocks: 0.10}, Probability: 0.25},
	{ID: "tax_refund", Title: "Tax Refund", Story: "you got a larger than expected tax refund!", Impact: EventImpact{Cash: 1500}, Probability: 0.3},
	{ID: "home_repair", Title: "Major Home Repair", Story: "your home needed urgent repairs.", Impact: EventImpact{Cash: -2000}, Probability: 0.25},
	{ID: "inheritance", Title: "Inheritance", Story: "you received a small inheritance from a relative.", Impact: EventImpact{Cash: 5000}, Probability: 0.15},
	{ID: "job_offer", Title: "Better Job Offer", Story: "you got a better job offer with higher pay!", Impact: EventImpact{IncomeBonus: 10000}, Probability: 0.2},
	{ID: "vacation", Title: "Unexpected Vacation Costs", Story: "you had to take an emergency trip.", Impact: EventImpact{Cash: -1000}, Probability: 0.3},
}

// RandomEvents returns the full random-event table.
func RandomEvents() []RandomEvent {
	return randomEvents
}

// DrawRandomEvent rolls every event's probability independently and returns
// one uniformly chosen survivor, or nil when no roll succeeds.
func DrawRandomEvent(r rng.Rand) *RandomEvent {
	var possible []RandomEvent
	for _, ev := range randomEvents {
		if r.Float64() < ev.Probability {
			possible = append(possible, ev)
		}
	}
	if len(possible) == 0 {
		return nil
	}
	ev := possible[r.IntN(len(possible))]
	return &ev
}

// ExpenseEvent is a negative surprise expense with a uniform cost range.
type ExpenseEvent struct {
	ID      string
	Name    string
	MinCost float64
	MaxCost float64
}

var expenseEvents = []ExpenseEvent{
	{ID: "medical", Name: "Medical Emergency", MinCost: 1000, MaxCost: 5000},
	{ID: "car_repair", Name: "Car Repair", MinCost: 500, MaxCost: 3000},
	{ID: "home_repair", Name: "Home Repair", MinCost: 1500, MaxCost: 5000},
	{ID: "tax_bill", Name: "Unexpected Tax Bill", MinCost: 500, MaxCost: 2500},
	{ID: "unexpected_expense", Name: "Unexpected Expense", MinCost: 300, MaxCost: 2000},
}

// DrawExpenseEvent picks a surprise expense uniformly and rolls its cost.
func DrawExpenseEvent(r rng.Rand) (ExpenseEvent, float64) {
	ev := expenseEvents[r.IntN(len(expenseEvents))]
	cost := float64(int(ev.MinCost + r.Float64()*(ev.MaxCost-ev.MinCost)))
	return ev, cost
}
