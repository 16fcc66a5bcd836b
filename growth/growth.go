// Package growth implements the deterministic and stochastic return math
// behind the simulator: closed-form compound interest and a year-by-year
// regime model for invested assets.
package growth

import (
	"math"

	"moneypath/rng"
)

// Regime bounds for a single simulated year, in percent.
const (
	bullLower = 0
	bullUpper = 30
	baseLower = -20
	baseUpper = 30
	bearLower = -20
	bearUpper = 10
)

// Compound returns the future value of principal at annualRatePercent over
// the given number of years, optionally with a yearly payment contributed at
// the same rate:
//
//	FV = P(1+r)^n + PMT*((1+r)^n - 1)/r
//
// The payment term is omitted when yearlyPayment is zero; at a zero rate
// payments accumulate linearly instead of dividing by zero.
func Compound(principal, annualRatePercent float64, years int, yearlyPayment float64) float64 {
	rate := annualRatePercent / 100
	factor := math.Pow(1+rate, float64(years))
	fv := principal * factor
	if yearlyPayment > 0 {
		if rate == 0 {
			fv += yearlyPayment * float64(years)
		} else {
			fv += yearlyPayment * ((factor - 1) / rate)
		}
	}
	return fv
}

// Stochastic compounds initialValue over the given number of years using a
// per-year regime draw: 10% bull years bounded to [0,30]%, 20% soft-bear
// years bounded to [-20,10]%, otherwise base years bounded to [-20,30]%.
// Within the regime the year's rate is the event-adjusted base rate with
// ±25% jitter, clamped to the regime bounds. The running value is floored at
// zero each year and the result is rounded to cents.
//
// Values <= 0 and non-positive year counts are returned unchanged.
func Stochastic(r rng.Rand, initialValue float64, years int, baseRatePercent, eventMultiplier float64) float64 {
	if initialValue <= 0 || years <= 0 {
		return initialValue
	}

	adjusted := baseRatePercent * eventMultiplier
	adjusted = math.Max(-50, math.Min(50, adjusted))

	value := initialValue
	for year := 0; year < years; year++ {
		lower, upper := float64(baseLower), float64(baseUpper)
		switch roll := r.Float64(); {
		case roll < 0.10:
			lower, upper = bullLower, bullUpper
		case roll > 0.90:
			lower, upper = bearLower, bearUpper
		}

		// 50% variation band around the adjusted rate.
		rate := adjusted * (1 + (r.Float64()-0.5)*0.5)
		rate = math.Max(lower, math.Min(upper, rate))

		value = math.Max(0, value*(1+rate/100))
	}

	return math.Max(0, math.Round(value*100)/100)
}
