package dashboard

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// placeholderToken is the last path segment of a bare /dashboard link.
const placeholderToken = "dashboard"

// ResolveToken extracts the dashboard token from a link. The token query
// parameter wins; otherwise the trailing path segment is used. A bare token
// with no URL structure is returned as is.
func ResolveToken(link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", ErrMissingToken
	}

	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingToken, err)
	}

	token := u.Query().Get("token")
	if token == "" {
		p := strings.TrimRight(u.Path, "/")
		if p != "" {
			token = path.Base(p)
		}
	}

	if token == "" || token == "/" || token == placeholderToken {
		return "", ErrMissingToken
	}
	return token, nil
}
