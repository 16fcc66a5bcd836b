package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CashNote is one itemized cash movement. Delta is the signed effect on
// cash; notes for stock-only or income-only impacts carry a zero delta.
type CashNote struct {
	Text  string  `json:"text"`
	Delta float64 `json:"delta"`
}

// RoundLedger is the audit record of one round: before/after snapshots plus
// every itemized cash movement. UI feedback only, never authoritative state.
type RoundLedger struct {
	QuestionID      string     `json:"question_id"`
	TotalAnswered   int        `json:"total_answered"`
	PortfolioBefore Portfolio  `json:"portfolio_before"`
	PortfolioAfter  Portfolio  `json:"portfolio_after"`
	AgeBefore       int        `json:"age_before"`
	AgeAfter        int        `json:"age_after"`
	IncomeBefore    float64    `json:"income_before"`
	IncomeAfter     float64    `json:"income_after"`
	ExpensesBefore  float64    `json:"expenses_before"`
	ExpensesAfter   float64    `json:"expenses_after"`
	Notes           []CashNote `json:"notes"`
	CashDelta       float64    `json:"cash_delta"`
	SalaryDeposit   float64    `json:"salary_deposit"`
}

// NoteDeltaSum is the total of all itemized cash deltas.
func (l RoundLedger) NoteDeltaSum() float64 {
	var sum float64
	for _, n := range l.Notes {
		sum += n.Delta
	}
	return sum
}

// LossWarning is a non-fatal business condition, not an error: the position
// has become risky and the UI should say so.
type LossWarning struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// money renders a dollar amount with thousands separators, as shown in
// ledger notes ("$1,234").
func money(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(math.Round(v)), 'f', 0, 64)

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

func notef(delta float64, format string, args ...any) CashNote {
	return CashNote{Text: fmt.Sprintf(format, args...), Delta: delta}
}
