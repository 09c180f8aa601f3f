package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

var (
	tradeHeader  = []string{"id", "account", "pair", "direction", "entry_price", "stop_loss", "take_profit", "status", "result", "session", "news_risk", "entry_datetime", "exit_datetime", "notes"}
	equityHeader = []string{"date", "timestamp", "pnl", "cumulative", "trade_id"}
)

// CSVJournal writes trades and equity points to two CSV files. Either path
// may be empty to skip that file.
type CSVJournal struct {
	trades *csv.Writer
	equity *csv.Writer
	tf, ef *os.File
}

func NewCSV(tradesPath, equityPath string) (*CSVJournal, error) {
	j := &CSVJournal{}

	if tradesPath != "" {
		tf, err := os.Create(tradesPath)
		if err != nil {
			return nil, err
		}
		j.tf = tf
		j.trades = csv.NewWriter(tf)
		if err := j.writeRow(j.trades, tradeHeader); err != nil {
			j.Close()
			return nil, err
		}
	}

	if equityPath != "" {
		ef, err := os.Create(equityPath)
		if err != nil {
			j.Close()
			return nil, err
		}
		j.ef = ef
		j.equity = csv.NewWriter(ef)
		if err := j.writeRow(j.equity, equityHeader); err != nil {
			j.Close()
			return nil, err
		}
	}

	return j, nil
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	if j.trades == nil {
		return nil
	}
	exit := ""
	if t.ExitTime != nil {
		exit = t.ExitTime.UTC().Format(time.RFC3339)
	}
	notes := ""
	if t.Notes != nil {
		notes = *t.Notes
	}
	return j.writeRow(j.trades, []string{
		t.ID,
		t.Account,
		t.Pair,
		string(t.Direction),
		f(t.EntryPrice),
		optf(t.StopLoss),
		optf(t.TakeProfit),
		string(t.Status),
		string(t.Result),
		t.Session,
		t.NewsRisk,
		t.EntryTime.UTC().Format(time.RFC3339),
		exit,
		notes,
	})
}

func (j *CSVJournal) RecordEquity(p EquityPoint) error {
	if j.equity == nil {
		return nil
	}
	return j.writeRow(j.equity, []string{
		p.Date,
		p.Timestamp.UTC().Format(time.RFC3339),
		strconv.Itoa(p.PnL),
		strconv.Itoa(p.Cumulative),
		p.TradeID,
	})
}

func (j *CSVJournal) writeRow(w *csv.Writer, row []string) error {
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (j *CSVJournal) Close() error {
	if j.trades != nil {
		j.trades.Flush()
		if err := j.trades.Error(); err != nil {
			return err
		}
	}
	if j.equity != nil {
		j.equity.Flush()
		if err := j.equity.Error(); err != nil {
			return err
		}
	}

	if j.tf != nil {
		if err := j.tf.Close(); err != nil {
			return err
		}
	}
	if j.ef != nil {
		if err := j.ef.Close(); err != nil {
			return err
		}
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 5, 64)
}

func optf(x *float64) string {
	if x == nil {
		return ""
	}
	return f(*x)
}
