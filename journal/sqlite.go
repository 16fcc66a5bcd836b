package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRound(r RoundRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO rounds
		(round_id, session_id, question_id, level, total_answered, age, cash, stocks, debt, net_worth, income, expenses, cash_delta, event_id, warning_title, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID, r.SessionID, r.QuestionID, r.Level, r.TotalAnswered, r.Age,
		r.Cash, r.Stocks, r.Debt, r.NetWorth, r.Income, r.Expenses,
		r.CashDelta, r.EventID, r.WarningTitle, r.CreatedAt,
	)
	return err
}

func (j *SQLiteJournal) RecordSession(s SessionRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO sessions
		(session_id, scenario, seed, started_at, ended_at, rounds, final_net_worth, badges, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.SessionID, s.Scenario, s.Seed, s.StartedAt, s.EndedAt,
		s.Rounds, s.FinalNetWorth, s.Badges, s.Warnings,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
