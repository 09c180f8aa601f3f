// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	snapshot_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	source TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS accounts (
	snapshot_id TEXT NOT NULL,
	account_id TEXT NOT NULL,
	account_name TEXT NOT NULL,
	is_default INTEGER NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (snapshot_id, account_id)
);

CREATE TABLE IF NOT EXISTS trades (
	snapshot_id TEXT NOT NULL,
	trade_id TEXT NOT NULL,
	account_id TEXT NOT NULL,
	pair TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_price REAL NOT NULL,
	stop_loss REAL,
	take_profit REAL,
	status TEXT NOT NULL,
	result TEXT NOT NULL,
	session TEXT NOT NULL,
	news_risk TEXT NOT NULL,
	notes TEXT,
	entry_datetime DATETIME NOT NULL,
	exit_datetime DATETIME,
	position INTEGER NOT NULL,
	PRIMARY KEY (snapshot_id, trade_id)
);

CREATE INDEX IF NOT EXISTS idx_trades_exit ON trades(exit_datetime);
`
