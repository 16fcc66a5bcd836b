// Package journal persists campaign history: one row per completed round and
// one summary row per finished session, to SQLite or CSV.
package journal

import "time"

// RoundRecord is the persisted outcome of a single round.
type RoundRecord struct {
	RoundID       string
	SessionID     string
	QuestionID    string
	Level         int
	TotalAnswered int
	Age           int
	Cash          float64
	Stocks        float64
	Debt          float64
	NetWorth      float64
	Income        float64
	Expenses      float64
	CashDelta     float64
	EventID       string
	WarningTitle  string
	CreatedAt     time.Time
}

// SessionRecord summarizes a finished campaign.
type SessionRecord struct {
	SessionID     string
	Scenario      string
	Seed          int64
	StartedAt     time.Time
	EndedAt       time.Time
	Rounds        int
	FinalNetWorth float64
	Badges        string
	Warnings      int
}

type Journal interface {
	RecordRound(RoundRecord) error
	RecordSession(SessionRecord) error
	Close() error
}
