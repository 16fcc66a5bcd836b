// Package session orchestrates one campaign: it owns the player state, the
// progression tracker and the per-level question order, routes answers
// through the engine, and journals what happened.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"moneypath/catalog"
	"moneypath/engine"
	"moneypath/internal/id"
	"moneypath/journal"
	"moneypath/progress"
	"moneypath/rng"
)

var (
	// ErrEventPending is returned when an answer arrives while a random
	// event still awaits acknowledgement.
	ErrEventPending = errors.New("session: random event pending acknowledgement")
	// ErrNoPendingEvent is returned when there is no event to acknowledge.
	ErrNoPendingEvent = errors.New("session: no pending event")
	// ErrSessionEnded is returned by any action on a finished campaign.
	ErrSessionEnded = errors.New("session: campaign has ended")
)

// Option configures a new session.
type Option func(*Session)

// WithSeed makes the whole campaign reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed; s.seeded = true }
}

// WithScenario pins the starting scenario instead of drawing one.
func WithScenario(scenarioID string) Option {
	return func(s *Session) { s.scenarioID = scenarioID }
}

// WithJournal records every round and the final summary to j. The session
// does not close the journal.
func WithJournal(j journal.Journal) Option {
	return func(s *Session) { s.jrnl = j }
}

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// Session is a single campaign in progress. It is not safe for concurrent
// use; drive it from one goroutine.
type Session struct {
	id         string
	seed       int64
	seeded     bool
	scenarioID string

	rnd     rng.Rand
	eng     *engine.Engine
	tracker *progress.Tracker
	state   engine.PlayerState
	start   catalog.Start
	order   [catalog.LevelCount][]catalog.Question

	pending   *catalog.RandomEvent
	rounds    int
	warnings  int
	jrnl      journal.Journal
	log       *slog.Logger
	startedAt time.Time
}

// New starts a campaign. Question order within each level is drawn up front
// so a seed pins the entire run.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		id:        id.New(),
		tracker:   progress.NewTracker(),
		log:       slog.Default(),
		startedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if !s.seeded {
		s.seed = time.Now().UnixNano()
	}
	s.rnd = rng.NewSeeded(s.seed)
	s.eng = engine.New(s.rnd)

	scenario := catalog.RandomScenario(s.rnd)
	if s.scenarioID != "" {
		var ok bool
		scenario, ok = catalog.ScenarioByID(s.scenarioID)
		if !ok {
			return nil, fmt.Errorf("session: unknown scenario %q", s.scenarioID)
		}
	}
	s.start = scenario.Roll(s.rnd)
	s.state = engine.NewPlayerState(s.start)

	for i := 0; i < catalog.LevelCount; i++ {
		lvl, ok := catalog.LevelByNumber(i + 1)
		if !ok {
			return nil, fmt.Errorf("session: missing level %d", i+1)
		}
		s.order[i] = catalog.PlayOrder(s.rnd, lvl)
	}

	s.log.Info("session started",
		"session_id", s.id,
		"scenario", scenario.ID,
		"seed", s.seed,
		"age", s.start.Age,
		"cash", s.start.Cash,
	)
	return s, nil
}

// ID is the session's ULID.
func (s *Session) ID() string { return s.id }

// Seed is the RNG seed driving this campaign.
func (s *Session) Seed() int64 { return s.seed }

// Start is the rolled starting scenario.
func (s *Session) Start() catalog.Start { return s.start }

// State is a snapshot of the current player state.
func (s *Session) State() engine.PlayerState { return s.state.Clone() }

// Phase reports what the session is waiting on.
func (s *Session) Phase() progress.Phase { return s.tracker.Phase() }

// Level is the one-based current level number.
func (s *Session) Level() int { return s.tracker.Level() }

// Warnings is how many loss warnings the campaign has triggered.
func (s *Session) Warnings() int { return s.warnings }

// PendingEvent returns the unacknowledged random event, if any.
func (s *Session) PendingEvent() *catalog.RandomEvent { return s.pending }

// CurrentQuestion returns the question awaiting an answer.
func (s *Session) CurrentQuestion() (catalog.Question, error) {
	if s.tracker.Phase() == progress.PhaseEnded {
		return catalog.Question{}, ErrSessionEnded
	}
	if s.tracker.Phase() != progress.PhaseQuestion {
		return catalog.Question{}, fmt.Errorf("session: no question in phase %s", s.tracker.Phase())
	}
	return s.order[s.tracker.Level()-1][s.tracker.QuestionIndex()], nil
}

// Submit answers the current question and applies the round. When the round
// is interrupted by a random event its effects are already in the returned
// state; progression holds until AcknowledgeEvent.
func (s *Session) Submit(choices engine.ChoiceSet) (engine.RoundResult, error) {
	if s.pending != nil {
		return engine.RoundResult{}, ErrEventPending
	}
	q, err := s.CurrentQuestion()
	if err != nil {
		return engine.RoundResult{}, err
	}

	res, err := s.eng.ApplyRound(s.state, q, choices, s.tracker.Level(), s.tracker.QuestionIndex())
	if err != nil {
		return engine.RoundResult{}, err
	}

	s.state = res.State
	if res.Warning != nil {
		s.warnings++
		s.log.Warn("loss warning", "session_id", s.id, "title", res.Warning.Title, "question", q.ID)
	}
	s.recordRound(q, res)

	if res.Status == engine.RoundAwaitingEvent {
		s.pending = res.Event
		s.log.Info("random event", "session_id", s.id, "event", res.Event.ID, "question", q.ID)
		return res, nil
	}

	s.rounds++
	if err := s.tracker.Complete(); err != nil {
		return res, err
	}
	return res, nil
}

// AcknowledgeEvent dismisses the pending random event and moves the
// campaign forward. The event's effects were applied when it fired.
func (s *Session) AcknowledgeEvent() error {
	if s.pending == nil {
		return ErrNoPendingEvent
	}
	s.pending = nil
	s.rounds++
	return s.tracker.Complete()
}

// AcknowledgeFeedback dismisses the end-of-level feedback. Dismissing the
// final level's feedback ends the campaign and journals the summary.
func (s *Session) AcknowledgeFeedback() error {
	if err := s.tracker.AcknowledgeFeedback(); err != nil {
		return err
	}
	if s.tracker.Phase() == progress.PhaseEnded {
		s.finish()
	}
	return nil
}

// AcknowledgeSummary dismisses the level recap and starts the next level.
func (s *Session) AcknowledgeSummary() error {
	return s.tracker.AcknowledgeSummary()
}

// Feedback returns end-of-game coaching notes for the final state.
func (s *Session) Feedback() []FeedbackItem {
	return GenerateFeedback(s.state)
}

func (s *Session) recordRound(q catalog.Question, res engine.RoundResult) {
	if s.jrnl == nil {
		return
	}
	rec := journal.RoundRecord{
		RoundID:       id.New(),
		SessionID:     s.id,
		QuestionID:    q.ID,
		Level:         s.tracker.Level(),
		TotalAnswered: res.Ledger.TotalAnswered,
		Age:           res.State.Age,
		Cash:          res.State.Portfolio.Cash,
		Stocks:        res.State.Portfolio.Stocks,
		Debt:          res.State.Portfolio.Debt,
		NetWorth:      res.State.NetWorth(),
		Income:        res.State.YearlyIncome,
		Expenses:      res.State.YearlyExpenses,
		CashDelta:     res.Ledger.CashDelta,
		CreatedAt:     time.Now().UTC(),
	}
	if res.Event != nil {
		rec.EventID = res.Event.ID
	}
	if res.Warning != nil {
		rec.WarningTitle = res.Warning.Title
	}
	if err := s.jrnl.RecordRound(rec); err != nil {
		s.log.Error("journal round failed", "session_id", s.id, "err", err)
	}
}

func (s *Session) finish() {
	badges := make([]string, 0, len(s.state.Badges))
	for _, b := range s.state.Badges {
		badges = append(badges, b.Name)
	}
	s.log.Info("session ended",
		"session_id", s.id,
		"rounds", s.rounds,
		"net_worth", s.state.NetWorth(),
		"badges", len(badges),
		"warnings", s.warnings,
	)

	if s.jrnl == nil {
		return
	}
	rec := journal.SessionRecord{
		SessionID:     s.id,
		Scenario:      s.start.Scenario.ID,
		Seed:          s.seed,
		StartedAt:     s.startedAt,
		EndedAt:       time.Now().UTC(),
		Rounds:        s.rounds,
		FinalNetWorth: s.state.NetWorth(),
		Badges:        strings.Join(badges, ","),
		Warnings:      s.warnings,
	}
	if err := s.jrnl.RecordSession(rec); err != nil {
		s.log.Error("journal session failed", "session_id", s.id, "err", err)
	}
}
