package dashboard

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrMissingToken, MsgMissingToken},
		{ErrUnauthorized, MsgUnauthorized},
		{ErrNoData, MsgNoData},
		{ErrFetchFailed, MsgFetchFailed},
		{fmt.Errorf("%w: API error (status 500)", ErrFetchFailed), MsgFetchFailed},
		{fmt.Errorf("wrapped: %w", ErrUnauthorized), MsgUnauthorized},
		{errors.New("something else"), MsgFetchFailed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UserMessage(tt.err), fmt.Sprint(tt.err))
	}
}

func TestUserMessagesAreDistinct(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, m := range []string{MsgMissingToken, MsgUnauthorized, MsgFetchFailed, MsgNoData} {
		assert.False(t, seen[m], m)
		seen[m] = true
	}
}
