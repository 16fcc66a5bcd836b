package session

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneypath/engine"
	"moneypath/journal"
	"moneypath/progress"
)

type memJournal struct {
	rounds   []journal.RoundRecord
	sessions []journal.SessionRecord
}

func (m *memJournal) RecordRound(r journal.RoundRecord) error {
	m.rounds = append(m.rounds, r)
	return nil
}

func (m *memJournal) RecordSession(s journal.SessionRecord) error {
	m.sessions = append(m.sessions, s)
	return nil
}

func (m *memJournal) Close() error { return nil }

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// playToEnd drives a session to completion, always picking each choice's
// first option, and returns how many rounds were interrupted by events.
func playToEnd(t *testing.T, s *Session) int {
	t.Helper()

	interrupted := 0
	for s.Phase() != progress.PhaseEnded {
		switch s.Phase() {
		case progress.PhaseQuestion:
			q, err := s.CurrentQuestion()
			require.NoError(t, err)

			choices := engine.ChoiceSet{}
			for _, ch := range q.Choices {
				choices[ch.ID] = ch.Options[0]
			}

			res, err := s.Submit(choices)
			require.NoError(t, err)

			if res.Status == engine.RoundAwaitingEvent {
				interrupted++
				require.NotNil(t, s.PendingEvent())

				_, err := s.Submit(choices)
				assert.ErrorIs(t, err, ErrEventPending)

				require.NoError(t, s.AcknowledgeEvent())
			}
		case progress.PhaseFeedback:
			require.NoError(t, s.AcknowledgeFeedback())
		case progress.PhaseLevelSummary:
			require.NoError(t, s.AcknowledgeSummary())
		}
	}
	return interrupted
}

func TestSessionUnknownScenario(t *testing.T) {
	_, err := New(WithScenario("does_not_exist"), WithLogger(quiet()))
	require.Error(t, err)
}

func TestSessionSeedReproducible(t *testing.T) {
	a, err := New(WithSeed(42), WithLogger(quiet()))
	require.NoError(t, err)
	b, err := New(WithSeed(42), WithLogger(quiet()))
	require.NoError(t, err)

	assert.Equal(t, a.Start().Scenario.ID, b.Start().Scenario.ID)
	assert.Equal(t, a.Start().Cash, b.Start().Cash)

	qa, err := a.CurrentQuestion()
	require.NoError(t, err)
	qb, err := b.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, qa.ID, qb.ID)
}

func TestSessionFullCampaign(t *testing.T) {
	jrnl := &memJournal{}
	s, err := New(WithSeed(7), WithJournal(jrnl), WithLogger(quiet()))
	require.NoError(t, err)

	playToEnd(t, s)

	assert.Equal(t, progress.PhaseEnded, s.Phase())
	assert.Equal(t, s.Start().Age+35, s.State().Age)

	_, err = s.CurrentQuestion()
	assert.ErrorIs(t, err, ErrSessionEnded)

	require.Len(t, jrnl.sessions, 1)
	assert.Equal(t, s.ID(), jrnl.sessions[0].SessionID)
	assert.Equal(t, 35, jrnl.sessions[0].Rounds)
	assert.Equal(t, int64(7), jrnl.sessions[0].Seed)
	assert.Len(t, jrnl.rounds, 35)
	for _, r := range jrnl.rounds {
		assert.Equal(t, s.ID(), r.SessionID)
	}
}

func TestSessionEventsInterruptAndResume(t *testing.T) {
	// some seed in a small range is bound to fire events; find one so the
	// pending-event path is exercised
	for seed := int64(0); seed < 10; seed++ {
		s, err := New(WithSeed(seed), WithLogger(quiet()))
		require.NoError(t, err)

		if playToEnd(t, s) > 0 {
			assert.Nil(t, s.PendingEvent())
			return
		}
	}
	t.Fatal("no random event fired across 10 seeds")
}

func TestSessionNoQuestionOutsidePhase(t *testing.T) {
	s, err := New(WithSeed(1), WithLogger(quiet()))
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		q, err := s.CurrentQuestion()
		require.NoError(t, err)

		choices := engine.ChoiceSet{}
		for _, ch := range q.Choices {
			choices[ch.ID] = ch.Options[0]
		}
		res, err := s.Submit(choices)
		require.NoError(t, err)
		if res.Status == engine.RoundAwaitingEvent {
			require.NoError(t, s.AcknowledgeEvent())
		}
	}

	assert.Equal(t, progress.PhaseFeedback, s.Phase())
	_, err = s.CurrentQuestion()
	assert.Error(t, err)
	_, err = s.Submit(engine.ChoiceSet{})
	assert.Error(t, err)
}

func TestSessionFeedbackAfterEnd(t *testing.T) {
	s, err := New(WithSeed(3), WithLogger(quiet()))
	require.NoError(t, err)

	playToEnd(t, s)
	assert.NotEmpty(t, s.Feedback())
}

func TestAcknowledgeEventWithoutPending(t *testing.T) {
	s, err := New(WithSeed(1), WithLogger(quiet()))
	require.NoError(t, err)
	assert.ErrorIs(t, s.AcknowledgeEvent(), ErrNoPendingEvent)
}
