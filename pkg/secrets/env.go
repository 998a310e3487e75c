package secrets

import (
	"context"
	"fmt"
	"os"
)

// DefaultTokenEnvVars lists the environment variables checked for a token,
// in priority order.
var DefaultTokenEnvVars = []string{
	"GITHUB_TOKEN",
	"GH_TOKEN",
}

// EnvTokenGetter looks up the token in the environment.
type EnvTokenGetter struct {
	vars   []string
	lookup func(string) (string, bool)
}

// NewEnv creates and returns an EnvTokenGetter that checks the provided
// variables in order, or DefaultTokenEnvVars if none are provided.
func NewEnv(vars ...string) *EnvTokenGetter {
	if len(vars) == 0 {
		vars = DefaultTokenEnvVars
	}
	return &EnvTokenGetter{vars: vars, lookup: os.LookupEnv}
}

// Token returns the value of the first non-empty variable.
func (e *EnvTokenGetter) Token(ctx context.Context) (string, error) {
	for _, name := range e.vars {
		if v, ok := e.lookup(name); ok && v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("no token found: set one of %v in your environment", e.vars)
}
