package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/onkmade/secondhand/internal/client/api"
	"github.com/onkmade/secondhand/internal/client/models"
	"github.com/onkmade/secondhand/internal/client/repositories/session"
	"github.com/onkmade/secondhand/internal/client/repositories/watchlist"
	"github.com/onkmade/secondhand/internal/dbx"
)

// WatchlistService merges the client-local watchlist overlay with the
// backend's per-user watchlist.
//
// Anonymous clients toggle purely locally. With a session, the backend
// toggle endpoint is authoritative: its returned status is mirrored into
// the local store so rendering stays read-local, and a failed call leaves
// local state untouched.
type WatchlistService interface {
	IsWatched(ctx context.Context, productID string) (bool, error)
	Toggle(ctx context.Context, productID string) (bool, error)
	Products(ctx context.Context) ([]models.Product, error)
}

type watchlistService struct {
	client api.Client
	db     *sql.DB
}

// NewWatchlistService constructs a WatchlistService over the API client
// and the local database.
func NewWatchlistService(client api.Client, db *sql.DB) WatchlistService {
	return &watchlistService{client: client, db: db}
}

func (s *watchlistService) hasSession(ctx context.Context) bool {
	repo := session.NewSQLiteRepository(s.db)
	userID, err := repo.Get(ctx, "user_id")
	return err == nil && userID != ""
}

// IsWatched reads local membership only; rendering never waits on the
// network for the watch marker.
func (s *watchlistService) IsWatched(ctx context.Context, productID string) (bool, error) {
	repo := watchlist.NewSQLiteRepository(s.db)
	return repo.IsWatched(ctx, productID)
}

// Toggle flips membership and returns the new state. Every successful
// mutation persists immediately.
func (s *watchlistService) Toggle(ctx context.Context, productID string) (bool, error) {
	if s.hasSession(ctx) {
		status, err := s.client.ToggleWatchlist(ctx, productID)
		if err != nil {
			return false, err
		}
		added := status == "added"

		repo := watchlist.NewSQLiteRepository(s.db)
		if added {
			err = repo.Add(ctx, productID)
		} else {
			err = repo.Remove(ctx, productID)
		}
		if err != nil {
			return added, fmt.Errorf("mirroring watchlist state: %w", err)
		}
		return added, nil
	}

	var added bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := watchlist.NewSQLiteRepository(tx)
		watched, err := repo.IsWatched(ctx, productID)
		if err != nil {
			return err
		}
		if watched {
			added = false
			return repo.Remove(ctx, productID)
		}
		added = true
		return repo.Add(ctx, productID)
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

// Products returns the watched products. With a session the backend list
// is used; anonymously the feed is filtered down to locally watched ids.
func (s *watchlistService) Products(ctx context.Context) ([]models.Product, error) {
	if s.hasSession(ctx) {
		return s.client.Watchlist(ctx)
	}

	repo := watchlist.NewSQLiteRepository(s.db)
	ids, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Product{}, nil
	}

	watched := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		watched[id] = struct{}{}
	}

	feed, err := s.client.Feed(ctx, "")
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(ids))
	for _, p := range feed {
		if _, ok := watched[p.ProductID]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}
