// Package watchlist persists the client-local watchlist: a set of product
// identifiers kept independently of the server.
package watchlist

import "context"

// Repository is the watchlist set. Membership mutations persist
// immediately; there is no batching.
type Repository interface {
	IsWatched(ctx context.Context, productID string) (bool, error)
	Add(ctx context.Context, productID string) error
	Remove(ctx context.Context, productID string) error
	List(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}
