package ports

import "context"

// TokenProvider supplies a valid carrier API token, refreshing it
// transparently when the cached one expires. The cache is the only
// state shared across order requests.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
