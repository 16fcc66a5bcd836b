// Package catalog holds the static game data: the scripted question levels,
// badge definitions, random exogenous events, negative-expense table and
// starting scenarios. Everything here is design-time constant; the engine
// consumes it read-only.
package catalog

import "fmt"

// QuestionsPerLevel is the number of scripted questions played per level.
// Levels may declare more; the play order truncates to this count.
const QuestionsPerLevel = 7

// LevelCount is the number of life-stage levels in a campaign.
const LevelCount = 5

// Choice is one decision within a question. Every choice must be answered
// before the round can be submitted.
type Choice struct {
	ID      string
	Prompt  string
	Options []string
}

// Question is one scripted financial dilemma. IDs follow the l<level>q<n>
// scheme; l4q1 and l5q2 carry scripted crash markers handled by the engine.
type Question struct {
	ID            string
	Title         string
	Story         string // narrative fragment, prefixed with the player name
	Choices       []Choice
	BaseReturn    float64
	Multiplier    float64 // event multiplier applied to BaseReturn, 0 means 1
	RecoveryYears int
	RecoveryRate  float64
}

// Narrative renders the question story for a player.
func (q Question) Narrative(name string) string {
	return fmt.Sprintf("%s, %s", name, q.Story)
}

// EventMultiplier returns the question's growth multiplier, defaulting to 1.
func (q Question) EventMultiplier() float64 {
	if q.Multiplier == 0 {
		return 1
	}
	return q.Multiplier
}

// Level is a block of scripted questions representing a life stage.
type Level struct {
	Number    int
	Name      string
	AgeRange  [2]int
	Questions []Question
}

// Levels returns the five campaign levels in order.
func Levels() []Level {
	return gameLevels
}

// LevelByNumber returns the level numbered 1..5.
func LevelByNumber(n int) (Level, bool) {
	if n < 1 || n > len(gameLevels) {
		return Level{}, false
	}
	return gameLevels[n-1], true
}

// FindQuestion looks a question up by id across all levels.
func FindQuestion(id string) (Question, bool) {
	for _, lvl := range gameLevels {
		for _, q := range lvl.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}
