// Package context carries the authenticated admin through a request.
package context

import (
	"context"
)

type usernameKey struct{}

// Manager stores and reads the authenticated username in a request context.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetUsernameToContext returns a copy of ctx carrying username.
func (m *Manager) SetUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey{}, username)
}

// GetUsernameFromContext returns the username set by the authentication
// middleware. It reports false when the request is anonymous.
func (m *Manager) GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey{}).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
