package journal

import (
	"time"
	_ "time/tzdata"
)

const (
	SessionAsia    = "Asia"
	SessionLondon  = "London"
	SessionNewYork = "New York"
)

var london = loadLondon()

func loadLondon() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		return time.UTC
	}
	return loc
}

// SessionAt tags t with the market session by UK wall-clock hour:
// Asia 00-06, London 07-12, New York 13-23.
func SessionAt(t time.Time) string {
	h := t.In(london).Hour()
	switch {
	case h < 7:
		return SessionAsia
	case h < 13:
		return SessionLondon
	default:
		return SessionNewYork
	}
}
