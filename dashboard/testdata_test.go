package dashboard

const samplePayload = `{
  "user": {"telegram_id": 12345, "username": "fxjane", "name": "Jane Doe"},
  "accounts": [
    {"account_id": "ACC-1", "account_name": "Main", "is_default": true},
    {"account_id": "ACC-2", "account_name": "Prop", "is_default": false}
  ],
  "stats": {
    "total_trades": 4, "wins": 2, "losses": 1, "break_even": 0, "win_rate": 66.67,
    "open_trades": 1, "closed_trades": 3, "max_win_streak": 2, "max_loss_streak": 1,
    "profit_factor": "N/A", "expectancy": "0.33"
  },
  "recent_trades": [
    {"id": "T1", "account": "ACC-1", "pair": "EURUSD", "direction": "BUY", "entry_price": 1.1,
     "stop_loss": 1.098, "take_profit": 1.105, "status": "CLOSED", "result": "W",
     "session": "London", "news_risk": "LOW", "notes": "clean retest",
     "entry_datetime": "2024-01-02T08:00:00", "exit_datetime": "2024-01-02T10:00:00"},
    {"id": "T2", "account": "ACC-2", "pair": "GBPUSD", "direction": "SELL", "entry_price": 1.27,
     "stop_loss": null, "take_profit": null, "status": "CLOSED", "result": "L",
     "session": null, "news_risk": null, "notes": null,
     "entry_datetime": "2024-01-01T14:00:00", "exit_datetime": "2024-01-01T16:00:00"},
    {"id": "T3", "account": "ACC-1", "pair": "EURJPY", "direction": "BUY", "entry_price": 160.5,
     "status": "CLOSED", "result": "W", "session": "Asia",
     "entry_datetime": "2024-01-03T02:00:00", "exit_datetime": "2024-01-03T05:00:00"},
    {"id": "T4", "account": "ACC-1", "pair": "USDJPY", "direction": "SELL", "entry_price": 151.2,
     "status": "OPEN", "result": null, "entry_datetime": "2024-01-04T09:00:00", "exit_datetime": null}
  ],
  "equity_curve": [
    {"date": "2024-01-01", "timestamp": "2024-01-01T16:00:00", "pnl": -1, "cumulative": -1, "trade_id": "T2"},
    {"date": "2024-01-02", "timestamp": "2024-01-02T10:00:00", "pnl": 1, "cumulative": 0, "trade_id": "T1"},
    {"date": "2024-01-03", "timestamp": "2024-01-03T05:00:00", "pnl": 1, "cumulative": 1, "trade_id": "T3"}
  ],
  "pair_stats": {
    "EURUSD": {"total": 1, "wins": 1, "losses": 0, "win_rate": 100},
    "GBPUSD": {"total": 1, "wins": 0, "losses": 1, "win_rate": 0}
  },
  "session_stats": {
    "London": {"total": 1, "wins": 1, "losses": 0, "win_rate": 100}
  },
  "account_stats": {
    "ACC-1": {"account_name": "Main", "is_default": true, "total_trades": 3, "wins": 2, "losses": 0,
              "break_even": 0, "win_rate": 100, "open_trades": 1, "closed_trades": 2},
    "ACC-2": {"account_name": "Prop", "is_default": false, "total_trades": "1", "wins": 0, "losses": 1,
              "break_even": 0, "win_rate": 0, "open_trades": 0, "closed_trades": 1}
  }
}`
