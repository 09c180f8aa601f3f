package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradedash/pkg/id"
)

// SQLite keeps local snapshots of fetched dashboards so a journal can be
// reviewed offline. Each snapshot is immutable once written.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// SaveSnapshot stores accounts and trades under a new snapshot id and
// returns that id. Collection order is preserved.
func (j *SQLite) SaveSnapshot(ctx context.Context, source string, accounts []Account, trades []TradeRecord) (string, error) {
	snapID := id.New()

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (snapshot_id, created, source)
		VALUES (?, ?, ?)`, snapID, time.Now().UTC(), source); err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}

	for i, a := range accounts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO accounts (snapshot_id, account_id, account_name, is_default, position)
			VALUES (?, ?, ?, ?, ?)`, snapID, a.ID, a.Name, a.IsDefault, i); err != nil {
			return "", fmt.Errorf("insert account %s: %w", a.ID, err)
		}
	}

	for i, t := range trades {
		if err := insertTrade(ctx, tx, snapID, i, t); err != nil {
			return "", fmt.Errorf("insert trade %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return snapID, nil
}

func insertTrade(ctx context.Context, tx *sql.Tx, snapID string, pos int, t TradeRecord) error {
	var exit sql.NullTime
	if t.ExitTime != nil {
		exit = sql.NullTime{Time: t.ExitTime.UTC(), Valid: true}
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO trades
		(snapshot_id, trade_id, account_id, pair, direction, entry_price, stop_loss, take_profit,
		 status, result, session, news_risk, notes, entry_datetime, exit_datetime, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snapID, t.ID, t.Account, t.Pair, string(t.Direction), t.EntryPrice,
		nullFloat(t.StopLoss), nullFloat(t.TakeProfit),
		string(t.Status), string(t.Result), t.Session, t.NewsRisk, nullString(t.Notes),
		t.EntryTime.UTC(), exit, pos,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func nullFloat(x *float64) sql.NullFloat64 {
	if x == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *x, Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
