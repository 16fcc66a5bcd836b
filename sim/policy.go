// Package sim runs unattended campaigns under an answering policy and
// aggregates the outcomes, which is how balance changes get sanity-checked.
package sim

import (
	"fmt"
	"strings"

	"moneypath/catalog"
	"moneypath/engine"
	"moneypath/rng"
)

// Policy picks an option for every choice on a question.
type Policy interface {
	Name() string
	Choose(q catalog.Question, st engine.PlayerState, r rng.Rand) engine.ChoiceSet
}

// PolicyByName resolves a policy by its CLI name.
func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "prudent":
		return Prudent{}, nil
	case "reckless":
		return Reckless{}, nil
	case "random":
		return RandomPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q (supported: prudent, reckless, random)", name)
	}
}

// prudentPicks are the textbook answers, matched by exact option label.
var prudentPicks = map[string]bool{
	"Yes, take the free money!":         true,
	"Invest it in the stock market":     true,
	"Invest in stocks":                  true,
	"Use your savings":                  true,
	"Use your savings (smart!) [Light]": true,
	"Start investing small amounts now": true,
	"Invest in a stock market fund":     true,
	"Hold and wait for recovery":        true,
	"Go but spend wisely":               true,
	"30%+ (aggressive)":                 true,
	"Yes, save $1,000/year":             true,
	"Yes, save $1,000/year for college": true,
}

// Prudent follows textbook advice and avoids high-risk options.
type Prudent struct{}

func (Prudent) Name() string { return "prudent" }

func (Prudent) Choose(q catalog.Question, _ engine.PlayerState, _ rng.Rand) engine.ChoiceSet {
	choices := engine.ChoiceSet{}
	for _, ch := range q.Choices {
		pick := ch.Options[0]
		for _, opt := range ch.Options {
			if prudentPicks[opt] {
				pick = opt
				break
			}
		}
		if strings.Contains(pick, "[Heavy]") {
			for _, opt := range ch.Options {
				if !strings.Contains(opt, "[Heavy]") {
					pick = opt
					break
				}
			}
		}
		choices[ch.ID] = pick
	}
	return choices
}

// recklessPicks are the mistakes the game punishes.
var recklessPicks = map[string]bool{
	"No, keep my full paycheck":      true,
	"Spend it on fun things":         true,
	"Buy something expensive":        true,
	"Use a credit card":              true,
	"Use a credit card (expensive!)": true,
	"Spend everything on fun":        true,
	"Sell everything now (panic!)":   true,
	"10%":                            true,
}

// Reckless chases risk and spends freely.
type Reckless struct{}

func (Reckless) Name() string { return "reckless" }

func (Reckless) Choose(q catalog.Question, _ engine.PlayerState, _ rng.Rand) engine.ChoiceSet {
	choices := engine.ChoiceSet{}
	for _, ch := range q.Choices {
		pick := ch.Options[len(ch.Options)-1]
		for _, opt := range ch.Options {
			if recklessPicks[opt] || strings.Contains(opt, "[Heavy]") {
				pick = opt
				break
			}
		}
		choices[ch.ID] = pick
	}
	return choices
}

// RandomPolicy picks uniformly at random.
type RandomPolicy struct{}

func (RandomPolicy) Name() string { return "random" }

func (RandomPolicy) Choose(q catalog.Question, _ engine.PlayerState, r rng.Rand) engine.ChoiceSet {
	choices := engine.ChoiceSet{}
	for _, ch := range q.Choices {
		choices[ch.ID] = ch.Options[r.IntN(len(ch.Options))]
	}
	return choices
}
