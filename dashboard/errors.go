package dashboard

import "errors"

var (
	// ErrMissingToken means no usable token was found; no request is made.
	ErrMissingToken = errors.New("missing or invalid dashboard token")
	// ErrUnauthorized is the server rejecting an expired or invalid token.
	ErrUnauthorized = errors.New("dashboard token unauthorized")
	// ErrFetchFailed covers every other transport or response failure.
	ErrFetchFailed = errors.New("dashboard fetch failed")
	// ErrNoData is a successful response with an empty payload.
	ErrNoData = errors.New("dashboard returned no data")
)

const (
	MsgMissingToken = "Invalid dashboard link. Please generate a new link from Telegram."
	MsgUnauthorized = "Dashboard link expired or invalid. Please generate a new link from Telegram using /dashboard command."
	MsgFetchFailed  = "Failed to load dashboard data. Please try again."
	MsgNoData       = "No data available"
)

// UserMessage maps an error from this package to the static message shown
// to the user. Unknown errors get the generic fetch failure message.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingToken):
		return MsgMissingToken
	case errors.Is(err, ErrUnauthorized):
		return MsgUnauthorized
	case errors.Is(err, ErrNoData):
		return MsgNoData
	default:
		return MsgFetchFailed
	}
}
