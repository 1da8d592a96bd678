// Package api talks to the marketplace backend over HTTP. It owns the wire
// contract: JSON bodies, one multipart upload, cookie-carried sessions, and
// the normalization of the backend's inconsistent success conventions into
// a single error taxonomy.
package api

import (
	"context"

	"github.com/onkmade/secondhand/internal/client/models"
)

// Client is the full backend surface the application services consume.
//
// Contract:
//   - All methods honor context cancellation and timeouts.
//   - Transport failures map to ErrUnavailable, missing sessions to
//     ErrNotAuthenticated, unknown ids to ErrNotFound; any other
//     well-formed failure surfaces as *RejectionError.
//   - The client never retries; every retry is a fresh user action.
type Client interface {
	Register(ctx context.Context, email, password string) (models.Session, error)
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (models.Session, error)

	Feed(ctx context.Context, category string) ([]models.Product, error)
	Product(ctx context.Context, id string) (models.ProductDetail, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	MyListings(ctx context.Context) ([]models.Product, error)

	SubmitListing(ctx context.Context, d *models.Draft) (models.ListingReceipt, error)
	Activate(ctx context.Context, id string) (string, error)
	Verify(ctx context.Context, id string) (models.VerifyResult, error)
	Transfer(ctx context.Context, id, newOwnerID string) (string, error)

	ToggleWatchlist(ctx context.Context, id string) (string, error)
	Watchlist(ctx context.Context) ([]models.Product, error)

	Ping(ctx context.Context) error
	Close() error
}
