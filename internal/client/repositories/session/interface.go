// Package session persists the locally cached user identity as simple
// key/value pairs (user_id, email, name).
package session

import "context"

// Repository is the local session store.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
}
