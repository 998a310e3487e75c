package secrets

import "context"

// TokenGetter is provided by values that can look up the token used to
// authenticate requests to the hosting service.
type TokenGetter interface {
	Token(ctx context.Context) (string, error)
}
