package git

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// HookScope is implemented by the contexts that own hooks, it provides the
// Client to issue requests through and the API route of a hook.
type HookScope interface {
	Root() *Client
	HookRoute(id int64) string
}

// HookResource is the set of operations shared by every hook, regardless of
// what owns it.
type HookResource interface {
	Ping(ctx context.Context) error
	Delete(ctx context.Context) error
	Events() (EventSet, error)
	Config() map[string]string
}

var _ HookResource = (*Hook)(nil)

var (
	_ HookScope = (*Repository)(nil)
	_ HookScope = (*Organization)(nil)
)

// Hook is a webhook subscription, owned by a repository or organization.
type Hook struct {
	ID        int64
	URL       string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	events []string
	config map[string]string
	scope  HookScope
}

type hookJSON struct {
	ID        int64             `json:"id"`
	URL       string            `json:"url"`
	Name      string            `json:"name"`
	Events    []string          `json:"events"`
	Active    bool              `json:"active"`
	Config    map[string]string `json:"config"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (h *Hook) UnmarshalJSON(b []byte) error {
	var raw hookJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*h = Hook{
		ID:        raw.ID,
		URL:       raw.URL,
		Name:      raw.Name,
		Active:    raw.Active,
		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
		events:    raw.Events,
		config:    raw.Config,
		scope:     h.scope,
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (h *Hook) MarshalJSON() ([]byte, error) {
	return json.Marshal(hookJSON{
		ID:        h.ID,
		URL:       h.URL,
		Name:      h.Name,
		Events:    h.RawEvents(),
		Active:    h.Active,
		Config:    h.Config(),
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	})
}

// Scope returns the owner of this hook.
func (h *Hook) Scope() HookScope {
	return h.scope
}

func (h *Hook) wrap(s HookScope) *Hook {
	h.scope = s
	return h
}

// RawEvents returns the event names as stored by the service.
func (h *Hook) RawEvents() []string {
	return append([]string{}, h.events...)
}

// Events returns the events that the hook is subscribed to.
//
// The "*" subscription is returned as EventAll, any name that is not a known
// event fails with an *UnknownEventError.
func (h *Hook) Events() (EventSet, error) {
	return NewEventSet(h.events...)
}

// Config returns a copy of the hook configuration.
func (h *Hook) Config() map[string]string {
	c := make(map[string]string, len(h.config))
	for k, v := range h.config {
		c[k] = v
	}
	return c
}

// Ping triggers a ping event to be sent to the hook.
func (h *Hook) Ping(ctx context.Context) error {
	if h.scope == nil {
		return ErrUnscoped
	}
	return h.scope.Root().NewRequester("ping_hook").Method(http.MethodPost).Send(ctx, h.scope.HookRoute(h.ID)+"/pings")
}

// Delete deletes the hook.
//
// Deleting a hook that no longer exists is reported by the service as a not
// found error, see IsNotFound.
func (h *Hook) Delete(ctx context.Context) error {
	if h.scope == nil {
		return ErrUnscoped
	}
	return h.scope.Root().NewRequester("delete_hook").Method(http.MethodDelete).Send(ctx, h.scope.HookRoute(h.ID))
}

// NewHook returns a handle for an existing hook owned by s, without
// fetching it.
func NewHook(s HookScope, id int64) *Hook {
	return (&Hook{ID: id}).wrap(s)
}

// GetHook fetches the hook with the provided id from the owner s.
func GetHook(ctx context.Context, s HookScope, id int64) (*Hook, error) {
	h := &Hook{}
	if err := s.Root().NewRequester("get_hook").To(ctx, s.HookRoute(id), h); err != nil {
		return nil, err
	}
	return h.wrap(s), nil
}
