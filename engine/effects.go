package engine

import (
	"math"
	"strings"

	"moneypath/catalog"
	"moneypath/growth"
)

// effectFunc mutates the round state for one selected option.
type effectFunc func(c *round, label string)

// effectRule binds a choice ID to its handler. Rules run in declaration
// order; handlers dispatch on the exact option label the player selected.
type effectRule struct {
	choiceID string
	apply    effectFunc
}

// effectRules is the full decision-consequence table. Label strings must
// match the option labels in the catalog byte for byte.
var effectRules = []effectRule{
	{"401k_yes", effect401K},
	{"savings_rate", effectSavingsRate},
	{"savings_choice", effectSavingsChoice},
	{"starting_amount", effectStartingAmount},
	{"small_emergency", effectSmallEmergency},
	{"emergency_fund", effectEmergencyFund},
	{"learning_invest", effectLearningInvest},
	{"first_invest", effectFirstInvest},
	{"social_spending", effectSocialSpending},
	{"tech_invest", effectTechInvest},
	{"panic_sell", effectPanicSell},
	{"529_plan", effect529Plan},
}

// Step 10: apply the consequences of the player's selected options.
func (c *round) applyChoiceEffects() {
	for _, rule := range effectRules {
		label, ok := c.choices[rule.choiceID]
		if !ok {
			continue
		}
		rule.apply(c, label)
	}
}

// invest moves up to amount from cash into stocks and records it.
func (c *round) invest(amount float64) {
	p := &c.st.Portfolio
	amount = math.Min(p.Cash, amount)
	if amount <= 0 {
		return
	}
	p.Cash -= amount
	p.Stocks += amount
	c.notes = append(c.notes, notef(-amount, "Invested %s in stocks", money(amount)))
}

// borrow converts an unpaid cost into one year of compounded card debt.
func (c *round) borrow(cost float64) {
	debt := cost * math.Pow(1+creditCardAPR, 1)
	c.st.Portfolio.Debt += debt
	c.notes = append(c.notes, notef(0, "Borrowed %s at card rates, owing %s", money(cost), money(debt)))
}

func effect401K(c *round, label string) {
	if label != "Yes, take the free money!" {
		return
	}
	match := c.st.YearlyIncome * 0.045
	c.st.Portfolio.Cash += match
	c.st.YearlyIncome += match
	c.notes = append(c.notes, notef(match, "Employer 401k match +%s", money(match)))
	if c.st.AddBadge(catalog.BadgeFreeMoneyFinder) {
		c.notes = append(c.notes, notef(0, "Badge earned: Free Money Finder"))
	}
	c.st.Flags.Opted401K = true
}

func effectSavingsRate(c *round, label string) {
	rate := 0.3
	switch {
	case strings.Contains(label, "10%"):
		rate = 0.1
	case strings.Contains(label, "20%"):
		rate = 0.2
	}
	cap := c.st.YearlyIncome * (1 - rate)
	if c.st.YearlyExpenses > cap {
		c.st.YearlyExpenses = cap
	}
}

func effectSavingsChoice(c *round, label string) {
	switch label {
	case "Invest it in the stock market":
		c.invest(c.st.Portfolio.Cash * 0.5)
		c.st.Flags.InvestedEarly = true
	case "Spend it on fun things":
		p := &c.st.Portfolio
		spend := math.Min(p.Cash, 1000)
		p.Cash -= spend
		c.st.YearlyExpenses += 500
		c.notes = append(c.notes, notef(-spend, "Spent %s on lifestyle", money(spend)))
	}
}

func effectStartingAmount(c *round, label string) {
	switch label {
	case "Invest in stocks":
		c.invest(math.Min(c.st.Portfolio.Cash, 5000))
		c.st.Flags.InvestedEarly = true
	case "Buy something expensive":
		p := &c.st.Portfolio
		spend := math.Min(p.Cash, 5000)
		p.Cash -= spend
		c.st.YearlyExpenses += 2000
		c.notes = append(c.notes, notef(-spend, "Bought something expensive -%s", money(spend)))
	}
}

func effectSmallEmergency(c *round, label string) {
	const cost = 500
	p := &c.st.Portfolio
	switch label {
	case "Use your savings":
		if p.Cash >= cost {
			p.Cash -= cost
			c.notes = append(c.notes, notef(-cost, "Emergency paid in cash -%s", money(cost)))
			if c.st.AddBadge(catalog.BadgeSafetyNetShield) {
				c.notes = append(c.notes, notef(0, "Badge earned: Safety Net Shield"))
			}
		} else {
			c.borrow(cost)
		}
	case "Use a credit card":
		c.borrow(cost)
		c.st.Flags.UsedCreditCard = true
	}
}

func effectEmergencyFund(c *round, label string) {
	const cost = 3000
	p := &c.st.Portfolio
	switch label {
	case "Use your savings (smart!)":
		if p.Cash >= cost {
			p.Cash -= cost
			c.notes = append(c.notes, notef(-cost, "Emergency paid in cash -%s", money(cost)))
			if c.st.AddBadge(catalog.BadgeSafetyNetShield) {
				c.notes = append(c.notes, notef(0, "Badge earned: Safety Net Shield"))
			}
		} else {
			c.borrow(cost)
		}
	case "Use a credit card (expensive!)":
		c.borrow(cost)
		c.st.Flags.UsedCreditCard = true
	case "Sell investments":
		if p.Stocks >= cost {
			p.Stocks -= cost
			c.notes = append(c.notes, notef(0, "Sold %s of stocks for the emergency", money(cost)))
		} else {
			remaining := cost - p.Stocks
			p.Stocks = 0
			c.borrow(remaining)
		}
	}
}

func effectLearningInvest(c *round, label string) {
	switch label {
	case "Start investing small amounts now":
		c.invest(math.Min(c.st.Portfolio.Cash, 1000))
		c.st.Flags.InvestedEarly = true
	case "Invest everything you have":
		c.invest(math.Floor(c.st.Portfolio.Cash * 0.8))
	}
}

func effectFirstInvest(c *round, label string) {
	if label != "Invest in a stock market fund" {
		return
	}
	c.invest(math.Min(c.st.Portfolio.Cash, 2000))
}

func effectSocialSpending(c *round, label string) {
	p := &c.st.Portfolio
	var spend float64
	switch label {
	case "Spend everything on fun":
		spend = math.Min(p.Cash, 2000)
	case "Go but spend wisely":
		spend = math.Min(p.Cash, 500)
	default:
		return
	}
	p.Cash -= spend
	c.notes = append(c.notes, notef(-spend, "Social spending -%s", money(spend)))
}

func effectTechInvest(c *round, label string) {
	if label != "Yes, invest $2,000 in tech" && label != "Yes ($2,000)" {
		return
	}
	c.invest(math.Min(c.st.Portfolio.Cash, 2000))
	c.multiplier = 1.15
	if c.st.AddBadge(catalog.BadgeTechVisionary) {
		c.notes = append(c.notes, notef(0, "Badge earned: Tech Visionary"))
	}
}

func effectPanicSell(c *round, label string) {
	p := &c.st.Portfolio
	switch label {
	case "Sell everything now (panic!)":
		if p.Stocks > 0 {
			c.notes = append(c.notes, notef(p.Stocks, "Sold all stocks for %s", money(p.Stocks)))
			p.Cash += p.Stocks
			p.Stocks = 0
		}
		c.st.Flags.PanicSold = true
	case "Buy more while prices are low":
		c.invest(math.Min(p.Cash, 5000))
		c.awardCrashBadges()
	case "Hold and wait for recovery":
		c.awardCrashBadges()
	}
}

// awardCrashBadges recognizes riding out the 2008-style crash question.
func (c *round) awardCrashBadges() {
	if c.q.ID != "l4q1" {
		return
	}
	if c.st.AddBadge(catalog.BadgeWarSurvivor) {
		c.notes = append(c.notes, notef(0, "Badge earned: War Survivor"))
	}
	if c.st.AddBadge(catalog.BadgeHodlHero) {
		c.notes = append(c.notes, notef(0, "Badge earned: HODL Hero"))
	}
}

func effect529Plan(c *round, label string) {
	if label != "Yes, save $1,000/year" && label != "Yes, save $1,000/year for college" {
		return
	}
	p := &c.st.Portfolio
	if p.Cash < 1000 {
		return
	}
	p.Cash -= 1000
	p.Stocks += growth.Compound(1000, 9, 1, 0)
	c.notes = append(c.notes, notef(-1000, "529 plan contribution -%s", money(1000)))
	if c.st.AddBadge(catalog.BadgeLegacyBuilder) {
		c.notes = append(c.notes, notef(0, "Badge earned: Legacy Builder"))
	}
}
