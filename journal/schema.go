package journal

const Schema = `
CREATE TABLE IF NOT EXISTS rounds (
	round_id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	question_id TEXT NOT NULL,
	level INTEGER NOT NULL,
	total_answered INTEGER NOT NULL,
	age INTEGER NOT NULL,
	cash REAL NOT NULL,
	stocks REAL NOT NULL,
	debt REAL NOT NULL,
	net_worth REAL NOT NULL,
	income REAL NOT NULL,
	expenses REAL NOT NULL,
	cash_delta REAL NOT NULL,
	event_id TEXT NOT NULL,
	warning_title TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	session_id TEXT PRIMARY KEY,
	scenario TEXT NOT NULL,
	seed INTEGER NOT NULL,
	started_at DATETIME NOT NULL,
	ended_at DATETIME NOT NULL,
	rounds INTEGER NOT NULL,
	final_net_worth REAL NOT NULL,
	badges TEXT NOT NULL,
	warnings INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id);
`
