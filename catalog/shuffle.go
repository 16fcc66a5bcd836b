package catalog

import "moneypath/rng"

// PlayOrder produces the question order actually played for a level: the
// first question stays fixed, the remainder is Fisher-Yates shuffled, and
// the result is truncated to QuestionsPerLevel. Generated once per level at
// campaign start; callers must not reshuffle mid-level.
func PlayOrder(r rng.Rand, lvl Level) []Question {
	if len(lvl.Questions) == 0 {
		return nil
	}

	order := make([]Question, len(lvl.Questions))
	copy(order, lvl.Questions)

	rest := order[1:]
	for i := len(rest) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		rest[i], rest[j] = rest[j], rest[i]
	}

	if len(order) > QuestionsPerLevel {
		order = order[:QuestionsPerLevel]
	}
	return order
}
