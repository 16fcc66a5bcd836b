package journal

import (
	"database/sql"
	"fmt"
)

// GetSession returns a single session summary by ID.
func (j *SQLiteJournal) GetSession(sessionID string) (SessionRecord, error) {
	var rec SessionRecord

	row := j.db.QueryRow(`
		SELECT session_id, scenario, seed, started_at, ended_at, rounds, final_net_worth, badges, warnings
		FROM sessions
		WHERE session_id = ?`, sessionID)

	err := row.Scan(
		&rec.SessionID,
		&rec.Scenario,
		&rec.Seed,
		&rec.StartedAt,
		&rec.EndedAt,
		&rec.Rounds,
		&rec.FinalNetWorth,
		&rec.Badges,
		&rec.Warnings,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return SessionRecord{}, fmt.Errorf("session %q not found", sessionID)
		}
		return SessionRecord{}, err
	}
	return rec, nil
}

// ListSessions returns all session summaries, most recent first.
func (j *SQLiteJournal) ListSessions() ([]SessionRecord, error) {
	rows, err := j.db.Query(`
		SELECT session_id, scenario, seed, started_at, ended_at, rounds, final_net_worth, badges, warnings
		FROM sessions
		ORDER BY session_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(
			&rec.SessionID,
			&rec.Scenario,
			&rec.Seed,
			&rec.StartedAt,
			&rec.EndedAt,
			&rec.Rounds,
			&rec.FinalNetWorth,
			&rec.Badges,
			&rec.Warnings,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRoundsBySession returns a session's rounds in play order.
func (j *SQLiteJournal) ListRoundsBySession(sessionID string) ([]RoundRecord, error) {
	rows, err := j.db.Query(`
		SELECT round_id, session_id, question_id, level, total_answered, age, cash, stocks, debt, net_worth, income, expenses, cash_delta, event_id, warning_title, created_at
		FROM rounds
		WHERE session_id = ?
		ORDER BY total_answered ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RoundRecord
	for rows.Next() {
		var rec RoundRecord
		if err := rows.Scan(
			&rec.RoundID,
			&rec.SessionID,
			&rec.QuestionID,
			&rec.Level,
			&rec.TotalAnswered,
			&rec.Age,
			&rec.Cash,
			&rec.Stocks,
			&rec.Debt,
			&rec.NetWorth,
			&rec.Income,
			&rec.Expenses,
			&rec.CashDelta,
			&rec.EventID,
			&rec.WarningTitle,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// NetWorthSeries returns a session's net worth after each round, in play
// order.
func (j *SQLiteJournal) NetWorthSeries(sessionID string) ([]float64, error) {
	rows, err := j.db.Query(`
		SELECT net_worth
		FROM rounds
		WHERE session_id = ?
		ORDER BY total_answered ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
