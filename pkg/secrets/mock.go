package secrets

import "context"

// NewMock returns a simple token getter that returns a fixed token.
//
// An empty token causes requests to be sent unauthenticated.
func NewMock(token string) MockToken {
	return MockToken(token)
}

// MockToken implements the TokenGetter with a fixed value.
type MockToken string

// Token implements the TokenGetter interface.
func (m MockToken) Token(ctx context.Context) (string, error) {
	return string(m), nil
}
