package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	rounds   *csv.Writer
	sessions *csv.Writer
	rf, sf   *os.File
}

func NewCSV(roundsPath, sessionsPath string) (*CSVJournal, error) {
	rf, err := os.Create(roundsPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(sessionsPath)
	if err != nil {
		return nil, err
	}

	rw := csv.NewWriter(rf)
	sw := csv.NewWriter(sf)

	if err := rw.Write([]string{"round_id", "session_id", "question_id", "level", "total_answered", "age", "cash", "stocks", "debt", "net_worth", "income", "expenses", "cash_delta", "event_id", "warning_title", "created_at"}); err != nil {
		return nil, err
	}
	if err := sw.Write([]string{"session_id", "scenario", "seed", "started_at", "ended_at", "rounds", "final_net_worth", "badges", "warnings"}); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{rw, sw, rf, sf}, nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

func (j *CSVJournal) RecordRound(r RoundRecord) error {
	err := j.rounds.Write([]string{
		r.RoundID,
		r.SessionID,
		r.QuestionID,
		strconv.Itoa(r.Level),
		strconv.Itoa(r.TotalAnswered),
		strconv.Itoa(r.Age),
		f(r.Cash),
		f(r.Stocks),
		f(r.Debt),
		f(r.NetWorth),
		f(r.Income),
		f(r.Expenses),
		f(r.CashDelta),
		r.EventID,
		r.WarningTitle,
		r.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.rounds.Flush()
	return j.rounds.Error()
}

func (j *CSVJournal) RecordSession(s SessionRecord) error {
	err := j.sessions.Write([]string{
		s.SessionID,
		s.Scenario,
		strconv.FormatInt(s.Seed, 10),
		s.StartedAt.Format(time.RFC3339),
		s.EndedAt.Format(time.RFC3339),
		strconv.Itoa(s.Rounds),
		f(s.FinalNetWorth),
		s.Badges,
		strconv.Itoa(s.Warnings),
	})
	if err != nil {
		return err
	}

	j.sessions.Flush()
	return j.sessions.Error()
}

func (j *CSVJournal) Close() error {
	j.rounds.Flush()
	if err := j.rounds.Error(); err != nil {
		return err
	}
	j.sessions.Flush()
	if err := j.sessions.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	return j.sf.Close()
}
