// Package engine implements the financial state-transition core: one
// completed question produces exactly one state transition, computed by a
// fixed, order-sensitive sequence of difficulty scaling, exogenous shocks,
// choice effects, growth, debt service and invariant enforcement.
package engine

import (
	"math"
	"strings"
	"sync/atomic"

	"moneypath/catalog"
	"moneypath/growth"
	"moneypath/rng"
)

// creditCardAPR is the annual rate applied to all consumer debt.
const creditCardAPR = 0.2459

// incomeFloor is the minimum yearly income after a job-loss shock.
const incomeFloor = 20000

// Difficulty tables indexed by zero-based level.
var (
	raiseChance        = [catalog.LevelCount]float64{1.0, 0.7, 0.5, 0.3, 0.2}
	raisePercent       = [catalog.LevelCount]float64{0.08, 0.06, 0.04, 0.03, 0.02}
	inflationChance    = [catalog.LevelCount]float64{0.2, 0.4, 0.5, 0.6, 0.7}
	inflationPercent   = [catalog.LevelCount]float64{0.02, 0.04, 0.05, 0.06, 0.08}
	expenseEventChance = [catalog.LevelCount]float64{0.05, 0.15, 0.25, 0.35, 0.45}
)

// RoundStatus tags the result of an ApplyRound call.
type RoundStatus int

const (
	// RoundCompleted means the round ran to the finalized ledger.
	RoundCompleted RoundStatus = iota
	// RoundAwaitingEvent means a random event interrupted the round; the
	// caller must acknowledge it and resume the round as a no-op.
	RoundAwaitingEvent
)

// RoundResult is the outcome of one ApplyRound invocation.
type RoundResult struct {
	Status  RoundStatus
	State   PlayerState
	Ledger  RoundLedger
	Event   *catalog.RandomEvent
	Warning *LossWarning
}

// Engine applies rounds. It holds no game state: callers pass a snapshot in
// and receive a new state out. At most one round may be in flight at a time.
type Engine struct {
	rnd      rng.Rand
	inFlight atomic.Bool
}

// New returns an engine using the given random source, or a time-seeded one
// when r is nil.
func New(r rng.Rand) *Engine {
	if r == nil {
		r = rng.New()
	}
	return &Engine{rnd: r}
}

// round carries the working state of one ApplyRound invocation.
type round struct {
	r       rng.Rand
	q       catalog.Question
	choices ChoiceSet
	level   int // 1..5
	qIdx    int // 0..6
	total   int // questions answered including this one

	st         PlayerState
	notes      []CashNote
	cashBefore float64
	multiplier float64
	paidEarly  bool
	deposit    float64
	warning    *LossWarning
	event      *catalog.RandomEvent
}

// ApplyRound runs one round. The exact step order is load-bearing:
// difficulty scaling, job shocks, inflation, surprise expenses, salary,
// early debt service, risk penalties, choice effects, scripted crashes,
// growth, debt interest, auto payment, aging, the random-event roll, then
// finalization, failure checks and ledger assembly.
func (e *Engine) ApplyRound(st PlayerState, q catalog.Question, choices ChoiceSet, level, qIdx int) (RoundResult, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return RoundResult{}, ErrRoundInFlight
	}
	defer e.inFlight.Store(false)

	if err := validateInput(q, choices, level, qIdx); err != nil {
		return RoundResult{}, err
	}

	c := &round{
		r:          e.rnd,
		q:          q,
		choices:    choices,
		level:      level,
		qIdx:       qIdx,
		total:      (level-1)*catalog.QuestionsPerLevel + qIdx + 1,
		st:         st.Clone(),
		cashBefore: st.Portfolio.Cash,
		multiplier: q.EventMultiplier(),
	}

	before := c.st
	ageBefore := before.Age
	incomeBefore := before.YearlyIncome
	expensesBefore := before.YearlyExpenses
	portfolioBefore := before.Portfolio

	c.applyRaise()
	c.applyJobLoss()
	c.applyJobRecovery()
	c.applyJobOffer()
	c.applyExpenseInflation()
	c.applySurpriseExpense()
	c.applySalary()
	c.applyEarlyDebtPayment()
	c.applyRiskMarkers()
	c.applyChoiceEffects()
	c.applyScriptedCrash()
	c.applyGrowth()
	c.applyDebtInterest()
	c.applyAutoDebtPayment()
	c.st.Age++

	interrupted := c.maybeRandomEvent()
	if !interrupted {
		c.finalize()
		c.checkFailureConditions()
	}

	c.st.appendNetWorth(c.st.NetWorth())

	ledger := RoundLedger{
		QuestionID:      q.ID,
		TotalAnswered:   c.total,
		PortfolioBefore: portfolioBefore,
		PortfolioAfter:  c.st.Portfolio,
		AgeBefore:       ageBefore,
		AgeAfter:        c.st.Age,
		IncomeBefore:    incomeBefore,
		IncomeAfter:     c.st.YearlyIncome,
		ExpensesBefore:  expensesBefore,
		ExpensesAfter:   c.st.YearlyExpenses,
		Notes:           c.notes,
		CashDelta:       c.st.Portfolio.Cash - c.cashBefore,
		SalaryDeposit:   c.deposit,
	}

	res := RoundResult{
		Status:  RoundCompleted,
		State:   c.st,
		Ledger:  ledger,
		Warning: c.warning,
	}
	if interrupted {
		res.Status = RoundAwaitingEvent
		res.Event = c.event
	}
	return res, nil
}

func validateInput(q catalog.Question, choices ChoiceSet, level, qIdx int) error {
	if q.ID == "" || len(q.Choices) == 0 {
		return validationf("missing question")
	}
	if level < 1 || level > catalog.LevelCount {
		return validationf("level %d out of range", level)
	}
	if qIdx < 0 || qIdx >= catalog.QuestionsPerLevel {
		return validationf("question index %d out of range", qIdx)
	}
	for _, ch := range q.Choices {
		if choices[ch.ID] == "" {
			return validationf("choice %q not answered", ch.ID)
		}
	}
	return nil
}

// Step 1: every 6th answered question rolls a level-scaled raise.
func (c *round) applyRaise() {
	if c.total%6 != 0 {
		return
	}
	if c.r.Float64() >= raiseChance[c.level-1] {
		return
	}
	raise := math.Floor(c.st.YearlyIncome * raisePercent[c.level-1])
	c.st.YearlyIncome += raise
	c.notes = append(c.notes, notef(0, "Raise +%s/year", money(raise)))
}

// Step 2: a one-time job-loss shock in the mid game.
func (c *round) applyJobLoss() {
	if c.st.Flags.HasLostJob || c.st.Flags.HasRecoveredFromJobLoss {
		return
	}
	if c.total < 8 || c.total >= 15 || c.r.Float64() >= 0.10 {
		return
	}
	drop := math.Floor(c.st.YearlyIncome * 0.4)
	c.st.YearlyIncome = math.Max(incomeFloor, c.st.YearlyIncome-drop)
	c.st.YearlyExpenses = math.Floor(c.st.YearlyExpenses * 0.7)
	c.st.Flags.HasLostJob = true
	c.notes = append(c.notes, notef(0, "Job loss: income -%s/year", money(drop)))
}

// Step 3: recovery restores income to 150% of the reduced level.
func (c *round) applyJobRecovery() {
	if !c.st.Flags.HasLostJob || c.total < 10 || c.r.Float64() >= 0.5 {
		return
	}
	c.st.YearlyIncome = math.Floor(c.st.YearlyIncome * 1.5)
	c.st.YearlyExpenses = math.Floor(c.st.YearlyExpenses / 0.7)
	c.st.Flags.HasLostJob = false
	c.st.Flags.HasRecoveredFromJobLoss = true
	c.notes = append(c.notes, notef(0, "New job: income %s/year", money(c.st.YearlyIncome)))
}

// Step 4: low earners occasionally get a better offer.
func (c *round) applyJobOffer() {
	if c.st.Flags.HasLostJob || c.st.YearlyIncome >= incomeFloor || c.r.Float64() >= 0.15 {
		return
	}
	bump := float64(c.r.IntN(10000) + 5000)
	c.st.YearlyIncome += bump
	c.notes = append(c.notes, notef(0, "Job offer: income +%s/year", money(bump)))
}

// Step 5: expense inflation, level-scaled, suppressed while unemployed.
func (c *round) applyExpenseInflation() {
	if c.st.Flags.HasLostJob || c.r.Float64() >= inflationChance[c.level-1] {
		return
	}
	inc := math.Floor(c.st.YearlyExpenses * inflationPercent[c.level-1])
	c.st.YearlyExpenses += inc
}

// Step 6: level-scaled surprise expenses, paid from cash first with any
// shortfall converted to one year of compounded card debt, plus a nested
// black-swan drawdown roll.
func (c *round) applySurpriseExpense() {
	if c.level <= 1 || c.r.Float64() >= expenseEventChance[c.level-1] {
		return
	}
	ev, cost := catalog.DrawExpenseEvent(c.r)

	p := &c.st.Portfolio
	if p.Cash >= cost {
		p.Cash -= cost
		c.notes = append(c.notes, notef(-cost, "%s -%s", ev.Name, money(cost)))
	} else {
		shortfall := cost - p.Cash
		paid := p.Cash
		p.Cash = 0
		debt := shortfall * math.Pow(1+creditCardAPR, 1)
		p.Debt += debt
		c.notes = append(c.notes, notef(-paid, "%s paid via debt +%s", ev.Name, money(debt)))
	}

	if c.r.Float64() < 0.10 {
		if p.Stocks > 0 && c.r.Float64() < 0.6 {
			drop := 0.3 + c.r.Float64()*0.2
			p.Stocks = math.Max(0, math.Round(p.Stocks*(1-drop)))
			c.notes = append(c.notes, notef(0, "Black swan: stocks -%d%%", int(math.Round(drop*100))))
		} else if p.Cash > 0 {
			loss := math.Floor(p.Cash * (0.15 + c.r.Float64()*0.15))
			p.Cash = math.Max(0, p.Cash-loss)
			c.notes = append(c.notes, notef(-loss, "Black swan: cash -%s", money(loss)))
		}
	}
}

// Step 7: one month of net salary lands every 7th answered question. The
// deposit amount is recorded for UI display on every round.
func (c *round) applySalary() {
	monthly := math.Max(0, (c.st.YearlyIncome-c.st.YearlyExpenses)/12)
	if c.total%catalog.QuestionsPerLevel != 0 {
		c.deposit = 0
		return
	}
	c.deposit = math.Round(monthly)
	if c.deposit > 0 {
		c.st.Portfolio.Cash += c.deposit
		c.notes = append(c.notes, notef(c.deposit, "Salary deposit +%s", money(c.deposit)))
	}
}

// Step 8: service debt before choice cash flows so choices act on the
// post-payment balance. Suppresses the post-growth payment in step 14.
func (c *round) applyEarlyDebtPayment() {
	p := &c.st.Portfolio
	if p.Debt <= 0 || p.Cash <= 0 {
		return
	}
	payment := math.Min(p.Cash, math.Max(p.Debt*0.02, 50))
	if payment <= 0 {
		return
	}
	p.Cash -= payment
	p.Debt = math.Max(0, p.Debt-payment)
	c.paidEarly = true
	c.notes = append(c.notes, notef(-payment, "Debt payment -%s", money(payment)))
}

// Step 9: [Heavy]/[Light] markers on selected options impose friction after
// level 1. Light picks always cost a small cash nick; there is no reward
// branch.
func (c *round) applyRiskMarkers() {
	if c.level <= 1 {
		return
	}
	heavy, light := 0, 0
	for _, label := range c.choices {
		if strings.Contains(label, "[Heavy]") {
			heavy++
		} else if strings.Contains(label, "[Light]") {
			light++
		}
	}

	p := &c.st.Portfolio
	for i := 0; i < heavy; i++ {
		if p.Stocks > 0 && c.r.Float64() < 0.6 {
			drop := 0.15 + c.r.Float64()*0.20
			p.Stocks = math.Max(0, math.Round(p.Stocks*(1-drop)))
			c.notes = append(c.notes, notef(0, "Heavy impact: stocks -%d%%", int(math.Round(drop*100))))
		} else if p.Cash > 0 {
			loss := math.Floor(p.Cash * (0.10 + c.r.Float64()*0.15))
			p.Cash = math.Max(0, p.Cash-loss)
			c.notes = append(c.notes, notef(-loss, "Heavy impact: cash -%s", money(loss)))
		}
	}
	for i := 0; i < light; i++ {
		if p.Cash > 0 {
			loss := math.Floor(p.Cash * (0.01 + c.r.Float64()*0.04))
			p.Cash = math.Max(0, p.Cash-loss)
			c.notes = append(c.notes, notef(-loss, "Light impact: cash -%s", money(loss)))
		}
	}
}

// Step 11: scripted crash/recession questions hit stocks before growth.
func (c *round) applyScriptedCrash() {
	p := &c.st.Portfolio
	if p.Stocks <= 0 {
		return
	}
	switch c.q.ID {
	case "l4q1":
		p.Stocks *= 0.6
	case "l5q2":
		p.Stocks *= 0.8
	}
}

// Step 12: stochastic growth at the level-penalized return rate.
func (c *round) applyGrowth() {
	p := &c.st.Portfolio
	if p.Stocks <= 0 {
		return
	}
	rate := c.q.BaseReturn
	if c.level > 1 {
		rate = math.Max(rate-0.5*float64(c.level-1), 3)
	}
	p.Stocks = growth.Stochastic(c.r, p.Stocks, 1, rate, c.multiplier)
}

// Step 13: debt compounds one year at card APR.
func (c *round) applyDebtInterest() {
	p := &c.st.Portfolio
	if p.Debt > 0 {
		p.Debt *= 1 + creditCardAPR
	}
}

// Step 14: post-growth debt payment. The literal formula pays the larger of
// the 2%/$50 minimum or the whole balance, capped by available cash, so any
// nonzero debt drains all cash up to the balance.
func (c *round) applyAutoDebtPayment() {
	p := &c.st.Portfolio
	if c.paidEarly || p.Debt <= 0 || p.Cash <= 0 {
		return
	}
	minPayment := math.Max(p.Debt*0.02, 50)
	payment := math.Min(p.Cash, math.Max(minPayment, p.Debt))
	if payment <= 0 {
		return
	}
	p.Cash -= payment
	p.Debt = math.Max(0, p.Debt-payment)
	c.notes = append(c.notes, notef(-payment, "Debt payment -%s", money(payment)))
}

// Step 16: a 30% roll may interrupt the round with a random event, never on
// the campaign's final question. The portfolio is still rounded and clamped
// before it becomes observable.
func (c *round) maybeRandomEvent() bool {
	isLast := c.level == catalog.LevelCount && c.qIdx == catalog.QuestionsPerLevel-1
	if isLast || c.r.Float64() >= 0.3 {
		return false
	}
	ev := catalog.DrawRandomEvent(c.r)
	if ev == nil {
		return false
	}

	p := &c.st.Portfolio
	if ev.Impact.Cash != 0 {
		p.Cash += ev.Impact.Cash
		sign := "+"
		if ev.Impact.Cash < 0 {
			sign = "-"
		}
		c.notes = append(c.notes, notef(ev.Impact.Cash, "Random event cash %s%s", sign, money(math.Abs(ev.Impact.Cash))))
	}
	if ev.Impact.Stocks != 0 && p.Stocks > 0 {
		factor := 1 + ev.Impact.Stocks
		if factor > 0 {
			p.Stocks = math.Max(0, math.Round(p.Stocks*factor))
		}
	}
	if ev.Impact.IncomeBonus != 0 {
		c.st.YearlyIncome += ev.Impact.IncomeBonus
	}

	p.Cash = clampCents(p.Cash)
	p.Stocks = clampCents(p.Stocks)
	p.Debt = clampCents(p.Debt)

	c.event = ev
	return true
}

// Step 17: round to cents, clamp to zero, and revert any cash increase that
// no ledger note accounts for.
func (c *round) finalize() {
	p := &c.st.Portfolio
	p.Stocks = clampCents(p.Stocks)
	p.Cash = clampCents(p.Cash)
	p.Debt = clampCents(p.Debt)

	unexplained := (p.Cash - c.cashBefore) - c.noteDeltaSum()
	if unexplained > 0.005 {
		p.Cash = clampCents(p.Cash - unexplained)
		c.notes = append(c.notes, notef(-unexplained, "Correction -%s (reverted unexplained increase)", money(unexplained)))
	}
}

// Step 18: leverage checks after level 1. A crisis also raises expenses by
// 10% as a stress penalty.
func (c *round) checkFailureConditions() {
	if c.level <= 1 {
		return
	}
	p := c.st.Portfolio
	netWorth := p.NetWorth()

	var debtToIncome float64
	if p.Debt > 0 && c.st.YearlyIncome > 0 {
		debtToIncome = p.Debt / c.st.YearlyIncome
	}

	if netWorth < 0 && debtToIncome > 0.5 {
		c.warning = &LossWarning{
			Title:   "Financial Warning",
			Message: "Negative net worth with high debt-to-income. Build a cash buffer and reduce debt.",
		}
	}
	if debtToIncome > 2.0 {
		c.st.YearlyExpenses = math.Floor(c.st.YearlyExpenses * 1.1)
		c.warning = &LossWarning{
			Title:   "Financial Crisis",
			Message: "Debt exceeds 200% of your annual income. Expenses increased due to stress. Prioritize paying down high-interest debt.",
		}
	}
}

func (c *round) noteDeltaSum() float64 {
	var sum float64
	for _, n := range c.notes {
		sum += n.Delta
	}
	return sum
}

func clampCents(v float64) float64 {
	return math.Max(0, math.Round(v*100)/100)
}
