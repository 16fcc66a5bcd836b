package engine

import (
	"math"

	"moneypath/catalog"
)

// Portfolio is the player's money position. All three fields are >= 0 and
// rounded to cents whenever a round result is observed externally.
type Portfolio struct {
	Cash   float64 `json:"cash"`
	Stocks float64 `json:"stocks"`
	Debt   float64 `json:"debt"`
}

// NetWorth is cash plus stocks minus debt.
func (p Portfolio) NetWorth() float64 {
	return p.Cash + p.Stocks - p.Debt
}

// GameFlags tracks campaign-scoped behavioral choices and shocks.
type GameFlags struct {
	Opted401K               bool `json:"opted_401k"`
	InvestedEarly           bool `json:"invested_early"`
	UsedCreditCard          bool `json:"used_credit_card"`
	PanicSold               bool `json:"panic_sold"`
	HasLostJob              bool `json:"has_lost_job"`
	HasRecoveredFromJobLoss bool `json:"has_recovered_from_job_loss"`
}

// PlayerState is the full simulated position. The session owns the only
// mutable reference; the engine takes a snapshot and returns a new value.
type PlayerState struct {
	Age             int             `json:"age"`
	Portfolio       Portfolio       `json:"portfolio"`
	YearlyIncome    float64         `json:"yearly_income"`
	YearlyExpenses  float64         `json:"yearly_expenses"`
	Badges          []catalog.Badge `json:"badges"`
	NetWorthHistory []float64       `json:"net_worth_history"`
	Flags           GameFlags       `json:"flags"`
}

// NewPlayerState builds the state for a rolled starting scenario.
func NewPlayerState(start catalog.Start) PlayerState {
	cash := math.Round(start.Cash*100) / 100
	return PlayerState{
		Age:             start.Age,
		Portfolio:       Portfolio{Cash: cash},
		YearlyIncome:    start.YearlyIncome,
		YearlyExpenses:  start.YearlyExpenses,
		NetWorthHistory: []float64{cash},
	}
}

// Clone returns a deep copy so the engine never aliases caller-owned slices.
func (s PlayerState) Clone() PlayerState {
	out := s
	out.Badges = append([]catalog.Badge(nil), s.Badges...)
	out.NetWorthHistory = append([]float64(nil), s.NetWorthHistory...)
	return out
}

// NetWorth of the current portfolio.
func (s PlayerState) NetWorth() float64 {
	return s.Portfolio.NetWorth()
}

// AddBadge awards a badge at most once per name. Re-awarding is a no-op.
func (s *PlayerState) AddBadge(key catalog.BadgeKey) bool {
	badge, ok := catalog.BadgeByKey(key)
	if !ok {
		return false
	}
	for _, b := range s.Badges {
		if b.Name == badge.Name {
			return false
		}
	}
	s.Badges = append(s.Badges, badge)
	return true
}

// appendNetWorth records a history snapshot, skipping consecutive
// duplicates from out-of-band calls.
func (s *PlayerState) appendNetWorth(v float64) {
	if n := len(s.NetWorthHistory); n > 0 && s.NetWorthHistory[n-1] == v {
		return
	}
	s.NetWorthHistory = append(s.NetWorthHistory, v)
}

// ChoiceSet maps choice ids to the selected option label. Every choice
// declared by the question must be present before a round can run.
type ChoiceSet map[string]string
