package cli

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/onkmade/secondhand/internal/client/models"
)

// loadSection is the shared view-load path. It navigates the router to
// section, fetches the product list, and renders it only if no newer
// navigation happened while the fetch was in flight. The previously
// rendered content is replaced in one step: nothing is printed until the
// full result (or its error) is known.
func (a *App) loadSection(ctx context.Context, section Section, title string, fetch func(context.Context) ([]models.Product, error)) error {
	gen := a.router.Begin(section)

	products, err := fetch(ctx)
	if !a.router.Keep(gen) {
		// Superseded by a newer navigation. Drop the response.
		return nil
	}
	if err != nil {
		fmt.Fprintf(a.out, "Could not load %s: %s\n", title, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "-- %s --\n", title)
	a.renderProducts(ctx, products)
	return nil
}

// renderProducts prints one card per product. An empty list gets an
// explicit empty-state line instead of silence.
func (a *App) renderProducts(ctx context.Context, products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found.")
		return
	}

	for _, p := range products {
		marker := " "
		if watched, err := a.watch.IsWatched(ctx, p.ProductID); err == nil && watched {
			marker = "*"
		}

		image := p.PrimaryImage()
		if image == "" {
			image = "(no image)"
		}

		fmt.Fprintf(a.out, "[%s] %s | %s | %s | Rs %.2f | %s\n", marker, p.ProductID, p.Title, p.Category, p.Price, p.Location)
		fmt.Fprintf(a.out, "    %s\n", image)
	}
}

// Feed loads and renders the full product feed.
func (a *App) Feed(ctx context.Context) error {
	return a.loadSection(ctx, SectionFeed, "feed", func(ctx context.Context) ([]models.Product, error) {
		return a.products.Feed(ctx, "")
	})
}

// Category loads one category section. Unknown names are rejected before
// any network work.
func (a *App) Category(ctx context.Context, name string) error {
	if !models.ValidCategory(name) {
		fmt.Fprintf(a.out, "Unknown category %q. Categories: %v\n", name, models.Categories)
		return nil
	}
	return a.loadSection(ctx, CategorySection(name), name, func(ctx context.Context) ([]models.Product, error) {
		return a.products.Feed(ctx, name)
	})
}

// Search runs a full-text search. Queries shorter than two characters are
// rejected locally.
func (a *App) Search(ctx context.Context, query string) error {
	if utf8.RuneCountInString(query) < 2 {
		fmt.Fprintln(a.out, "Search needs at least 2 characters")
		return nil
	}
	return a.loadSection(ctx, SectionSearch, "search: "+query, func(ctx context.Context) ([]models.Product, error) {
		return a.products.Search(ctx, query)
	})
}

// WatchlistView renders the watched products.
func (a *App) WatchlistView(ctx context.Context) error {
	return a.loadSection(ctx, SectionWatchlist, "watchlist", func(ctx context.Context) ([]models.Product, error) {
		return a.watch.Products(ctx)
	})
}

// MyListings renders the user's own listings. Requires a session.
func (a *App) MyListings(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login first")
		return nil
	}
	return a.loadSection(ctx, SectionMyListings, "my listings", func(ctx context.Context) ([]models.Product, error) {
		return a.products.MyListings(ctx)
	})
}
