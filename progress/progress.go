// Package progress tracks position in a 35-question campaign: five levels of
// seven questions each, with a feedback beat after every level and a level
// summary between levels.
package progress

import (
	"fmt"

	"moneypath/catalog"
)

// Phase is the interaction the campaign is waiting on.
type Phase int

const (
	// PhaseQuestion waits for the current question to be answered.
	PhaseQuestion Phase = iota
	// PhaseFeedback waits for the end-of-level feedback to be dismissed.
	PhaseFeedback
	// PhaseLevelSummary waits for the level recap to be dismissed.
	PhaseLevelSummary
	// PhaseEnded means the campaign is over.
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseQuestion:
		return "question"
	case PhaseFeedback:
		return "feedback"
	case PhaseLevelSummary:
		return "level-summary"
	case PhaseEnded:
		return "ended"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Tracker is a small state machine over (level, question, phase). Levels and
// questions are zero-based internally; Level() reports the one-based number
// the rest of the game uses.
type Tracker struct {
	level    int
	question int
	phase    Phase
}

// NewTracker starts at the first question of the first level.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Level is the one-based current level number.
func (t *Tracker) Level() int { return t.level + 1 }

// QuestionIndex is the zero-based index within the current level.
func (t *Tracker) QuestionIndex() int { return t.question }

// TotalAnswered is how many questions a completed current question would
// bring the campaign to.
func (t *Tracker) TotalAnswered() int {
	return t.level*catalog.QuestionsPerLevel + t.question + 1
}

// Phase reports what the campaign is waiting on.
func (t *Tracker) Phase() Phase { return t.phase }

// IsFinalQuestion reports whether the current question is the last of the
// whole campaign.
func (t *Tracker) IsFinalQuestion() bool {
	return t.level == catalog.LevelCount-1 && t.question == catalog.QuestionsPerLevel-1
}

// Complete records that the current question finished. Within a level it
// advances to the next question; after the seventh it moves to the feedback
// beat.
func (t *Tracker) Complete() error {
	if t.phase != PhaseQuestion {
		return fmt.Errorf("progress: cannot complete a question in phase %s", t.phase)
	}
	if t.question+1 < catalog.QuestionsPerLevel {
		t.question++
		return nil
	}
	t.phase = PhaseFeedback
	return nil
}

// AcknowledgeFeedback dismisses the end-of-level feedback. The last level
// ends the campaign directly; there is no summary screen after it.
func (t *Tracker) AcknowledgeFeedback() error {
	if t.phase != PhaseFeedback {
		return fmt.Errorf("progress: no feedback pending in phase %s", t.phase)
	}
	if t.level == catalog.LevelCount-1 {
		t.phase = PhaseEnded
		return nil
	}
	t.phase = PhaseLevelSummary
	return nil
}

// AcknowledgeSummary dismisses the level recap and starts the next level.
func (t *Tracker) AcknowledgeSummary() error {
	if t.phase != PhaseLevelSummary {
		return fmt.Errorf("progress: no summary pending in phase %s", t.phase)
	}
	t.level++
	t.question = 0
	t.phase = PhaseQuestion
	return nil
}
