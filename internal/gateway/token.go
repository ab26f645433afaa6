package gateway

import "github.com/google/uuid"

// TokenSource yields the short random tokens embedded in transaction
// references. Implementations must be safe for concurrent use.
type TokenSource interface {
	Token() string
}

type uuidTokenSource struct{}

func (uuidTokenSource) Token() string {
	return uuid.New().String()[:8]
}

// UUIDTokens returns the default token source: the first 8 characters of a
// fresh UUID per call. Collisions are possible in principle but vanishingly
// unlikely; the tokens are not security-sensitive.
func UUIDTokens() TokenSource {
	return uuidTokenSource{}
}
