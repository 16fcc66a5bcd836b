package sim

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"moneypath/engine"
	"moneypath/journal"
	"moneypath/progress"
	"moneypath/rng"
	"moneypath/session"
)

// Runner plays Runs full campaigns under Policy. Seed pins the whole batch;
// run i uses Seed+i.
type Runner struct {
	Policy   Policy
	Runs     int
	Seed     int64
	Scenario string          // empty lets each run draw its own
	Journal  journal.Journal // optional
	Logger   *slog.Logger    // optional
}

// Result aggregates a batch of campaign outcomes.
type Result struct {
	Runs          int
	Policy        string
	MeanNetWorth  float64
	BestNetWorth  float64
	WorstNetWorth float64
	Millionaires  int
	TotalWarnings int
	BadgeCounts   map[string]int
}

// Run executes the batch. The context is checked between campaigns.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.Policy == nil {
		return Result{}, fmt.Errorf("sim: Policy is required")
	}
	if r.Runs <= 0 {
		return Result{}, fmt.Errorf("sim: Runs must be positive")
	}

	log := r.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	res := Result{
		Runs:        r.Runs,
		Policy:      r.Policy.Name(),
		BadgeCounts: map[string]int{},
	}

	var total float64
	for i := 0; i < r.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		seed := r.Seed + int64(i)
		opts := []session.Option{
			session.WithSeed(seed),
			session.WithLogger(log),
		}
		if r.Scenario != "" {
			opts = append(opts, session.WithScenario(r.Scenario))
		}
		if r.Journal != nil {
			opts = append(opts, session.WithJournal(r.Journal))
		}

		s, err := session.New(opts...)
		if err != nil {
			return Result{}, fmt.Errorf("sim: run %d: %w", i, err)
		}
		if err := r.play(s); err != nil {
			return Result{}, fmt.Errorf("sim: run %d (seed %d): %w", i, seed, err)
		}

		st := s.State()
		netWorth := st.NetWorth()
		total += netWorth
		if i == 0 || netWorth > res.BestNetWorth {
			res.BestNetWorth = netWorth
		}
		if i == 0 || netWorth < res.WorstNetWorth {
			res.WorstNetWorth = netWorth
		}
		if netWorth >= 1000000 {
			res.Millionaires++
		}
		res.TotalWarnings += s.Warnings()
		for _, b := range st.Badges {
			res.BadgeCounts[b.Name]++
		}
	}

	res.MeanNetWorth = total / float64(r.Runs)
	return res, nil
}

func (r *Runner) play(s *session.Session) error {
	rnd := rng.NewSeeded(s.Seed() ^ 0x5eed)
	for s.Phase() != progress.PhaseEnded {
		switch s.Phase() {
		case progress.PhaseQuestion:
			q, err := s.CurrentQuestion()
			if err != nil {
				return err
			}
			res, err := s.Submit(r.Policy.Choose(q, s.State(), rnd))
			if err != nil {
				return err
			}
			if res.Status == engine.RoundAwaitingEvent {
				if err := s.AcknowledgeEvent(); err != nil {
					return err
				}
			}
		case progress.PhaseFeedback:
			if err := s.AcknowledgeFeedback(); err != nil {
				return err
			}
		case progress.PhaseLevelSummary:
			if err := s.AcknowledgeSummary(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unexpected phase %s", s.Phase())
		}
	}
	return nil
}
