package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoSnapshot is returned when the store holds no snapshot yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

const tradeColumns = `trade_id, account_id, pair, direction, entry_price, stop_loss, take_profit,
	status, result, session, news_risk, notes, entry_datetime, exit_datetime`

// LatestSnapshot returns the id of the most recently saved snapshot.
func (j *SQLite) LatestSnapshot(ctx context.Context) (string, error) {
	var snapID string
	err := j.db.QueryRowContext(ctx, `
		SELECT snapshot_id FROM snapshots
		ORDER BY snapshot_id DESC
		LIMIT 1`).Scan(&snapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoSnapshot
		}
		return "", err
	}
	return snapID, nil
}

// ListAccounts returns a snapshot's accounts in their original order.
func (j *SQLite) ListAccounts(ctx context.Context, snapID string) ([]Account, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT account_id, account_name, is_default
		FROM accounts
		WHERE snapshot_id = ?
		ORDER BY position ASC`, snapID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Name, &a.IsDefault); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTrades returns a snapshot's trades in their original order.
func (j *SQLite) ListTrades(ctx context.Context, snapID string) ([]TradeRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT `+tradeColumns+`
		FROM trades
		WHERE snapshot_id = ?
		ORDER BY position ASC`, snapID)
	if err != nil {
		return nil, err
	}
	return scanTrades(rows)
}

// GetTrade returns a single trade record from a snapshot by ID.
func (j *SQLite) GetTrade(ctx context.Context, snapID, tradeID string) (TradeRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT `+tradeColumns+`
		FROM trades
		WHERE snapshot_id = ? AND trade_id = ?`, snapID, tradeID)
	if err != nil {
		return TradeRecord{}, err
	}
	recs, err := scanTrades(rows)
	if err != nil {
		return TradeRecord{}, err
	}
	if len(recs) == 0 {
		return TradeRecord{}, fmt.Errorf("trade %q not found", tradeID)
	}
	return recs[0], nil
}

// ListTradesClosedBetween returns a snapshot's trades whose exit time is within [start, end).
func (j *SQLite) ListTradesClosedBetween(ctx context.Context, snapID string, start, end time.Time) ([]TradeRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT `+tradeColumns+`
		FROM trades
		WHERE snapshot_id = ? AND status = ? AND exit_datetime >= ? AND exit_datetime < ?
		ORDER BY exit_datetime ASC, position ASC`, snapID, string(Closed), start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	return scanTrades(rows)
}

func scanTrades(rows *sql.Rows) ([]TradeRecord, error) {
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var (
			rec                  TradeRecord
			direction, status    string
			result               string
			stopLoss, takeProfit sql.NullFloat64
			notes                sql.NullString
			exit                 sql.NullTime
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Account,
			&rec.Pair,
			&direction,
			&rec.EntryPrice,
			&stopLoss,
			&takeProfit,
			&status,
			&result,
			&rec.Session,
			&rec.NewsRisk,
			&notes,
			&rec.EntryTime,
			&exit,
		); err != nil {
			return nil, err
		}
		rec.Direction = Direction(direction)
		rec.Status = Status(status)
		rec.Result = Result(result)
		if stopLoss.Valid {
			rec.StopLoss = &stopLoss.Float64
		}
		if takeProfit.Valid {
			rec.TakeProfit = &takeProfit.Float64
		}
		if notes.Valid {
			rec.Notes = &notes.String
		}
		if exit.Valid {
			xt := exit.Time.UTC()
			rec.ExitTime = &xt
		}
		rec.EntryTime = rec.EntryTime.UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
