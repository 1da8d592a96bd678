package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onkmade/secondhand/internal/client/models"
)

func TestFeed_RendersCardsWithWatchMarker(t *testing.T) {
	a, out := newTestApp(t, "")
	a.products = &fakeProductSvc{
		feedFn: func(_ context.Context, category string) ([]models.Product, error) {
			require.Empty(t, category)
			return []models.Product{
				{ProductID: "P1", Title: "Desk", Category: "furniture", Price: 45, Location: "Pune", Images: []string{"desk.png"}},
				{ProductID: "P2", Title: "Lamp", Category: "furniture", Price: 9.5, Location: "Pune"},
			}, nil
		},
	}
	a.watch = &fakeWatchSvc{
		isWatchedFn: func(_ context.Context, id string) (bool, error) {
			return id == "P1", nil
		},
	}

	require.NoError(t, a.Feed(context.Background()))

	s := out.String()
	require.Contains(t, s, "[*] P1 | Desk | furniture | Rs 45.00 | Pune")
	require.Contains(t, s, "desk.png")
	require.Contains(t, s, "[ ] P2 | Lamp | furniture | Rs 9.50 | Pune")
	require.Contains(t, s, "(no image)")
}

func TestFeed_EmptyStateIsExplicit(t *testing.T) {
	a, out := newTestApp(t, "")

	require.NoError(t, a.Feed(context.Background()))
	require.Contains(t, out.String(), "No products found.")
}

func TestFeed_ErrorLineInsteadOfCards(t *testing.T) {
	a, out := newTestApp(t, "")
	a.products = &fakeProductSvc{
		feedFn: func(context.Context, string) ([]models.Product, error) {
			return nil, errors.New("boom")
		},
	}

	require.Error(t, a.Feed(context.Background()))
	require.Contains(t, out.String(), "Could not load feed: boom")
}

func TestFeed_StaleResponseIsNotRendered(t *testing.T) {
	a, out := newTestApp(t, "")
	a.products = &fakeProductSvc{
		feedFn: func(_ context.Context, category string) ([]models.Product, error) {
			if category == "" {
				// Simulate the user switching section while the feed
				// request is still in flight.
				a.router.Begin(CategorySection("furniture"))
				return []models.Product{{ProductID: "STALE", Title: "Old"}}, nil
			}
			return nil, nil
		},
	}

	require.NoError(t, a.Feed(context.Background()))
	require.NotContains(t, out.String(), "STALE")
}

func TestCategory_UnknownNameIsRejectedLocally(t *testing.T) {
	a, out := newTestApp(t, "")
	called := false
	a.products = &fakeProductSvc{
		feedFn: func(context.Context, string) ([]models.Product, error) {
			called = true
			return nil, nil
		},
	}

	require.NoError(t, a.Category(context.Background(), "pianos"))
	require.False(t, called)
	require.Contains(t, out.String(), "Unknown category")
}

func TestSearch_ShortQueryIsRejectedLocally(t *testing.T) {
	a, out := newTestApp(t, "")
	called := false
	a.products = &fakeProductSvc{
		searchFn: func(context.Context, string) ([]models.Product, error) {
			called = true
			return nil, nil
		},
	}

	require.NoError(t, a.Search(context.Background(), "x"))
	require.False(t, called)
	require.Contains(t, out.String(), "at least 2 characters")
}

func TestShow_RendersDetailAndVerification(t *testing.T) {
	a, out := newTestApp(t, "")
	a.products = &fakeProductSvc{
		getFn: func(_ context.Context, id string) (models.ProductDetail, error) {
			return models.ProductDetail{
				Product: models.Product{
					ProductID:   id,
					Title:       "Desk",
					Category:    "furniture",
					Condition:   "Used",
					Price:       45,
					Location:    "Pune",
					SellerName:  "Alice",
					Description: "Solid oak desk in good shape",
				},
				BlockchainVerified: true,
			}, nil
		},
	}

	require.NoError(t, a.Show(context.Background(), "P1"))

	s := out.String()
	require.Contains(t, s, "Desk (P1)")
	require.Contains(t, s, "Rs 45.00")
	require.Contains(t, s, "Blockchain verified: yes")
}

func TestWatch_ReportsNewState(t *testing.T) {
	a, out := newTestApp(t, "")
	state := false
	a.watch = &fakeWatchSvc{
		toggleFn: func(context.Context, string) (bool, error) {
			state = !state
			return state, nil
		},
	}

	require.NoError(t, a.Watch(context.Background(), "P1"))
	require.Contains(t, out.String(), "Added P1")

	out.Reset()
	require.NoError(t, a.Watch(context.Background(), "P1"))
	require.Contains(t, out.String(), "Removed P1")
}

func TestMyListings_RequiresSession(t *testing.T) {
	a, out := newTestApp(t, "")

	require.NoError(t, a.MyListings(context.Background()))
	require.True(t, strings.Contains(out.String(), "Login first"))
}
