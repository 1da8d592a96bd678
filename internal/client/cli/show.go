package cli

import (
	"context"
	"fmt"
)

// Show fetches and displays a single product: every descriptive field plus
// the backend's blockchain verification verdict. All fields are read-only;
// the client never mutates a product.
func (a *App) Show(ctx context.Context, id string) error {
	detail, err := a.products.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load product %s: %s\n", id, err.Error())
		return err
	}

	p := detail.Product

	fmt.Fprintf(a.out, "%s (%s)\n", p.Title, p.ProductID)
	fmt.Fprintf(a.out, "Category:  %s\n", p.Category)
	fmt.Fprintf(a.out, "Condition: %s\n", p.Condition)
	fmt.Fprintf(a.out, "Price:     Rs %.2f\n", p.Price)
	fmt.Fprintf(a.out, "Location:  %s\n", p.Location)
	if p.Brand != "" {
		fmt.Fprintf(a.out, "Brand:     %s\n", p.Brand)
	}
	fmt.Fprintf(a.out, "Seller:    %s", p.SellerName)
	if p.SellerContact != "" {
		fmt.Fprintf(a.out, " <%s>", p.SellerContact)
	}
	fmt.Fprintln(a.out)
	if p.Description != "" {
		fmt.Fprintln(a.out, p.Description)
	}
	for _, img := range p.Images {
		fmt.Fprintf(a.out, "Image: %s\n", img)
	}
	if p.Views > 0 {
		fmt.Fprintf(a.out, "Views:     %d\n", p.Views)
	}
	if detail.BlockchainVerified {
		fmt.Fprintln(a.out, "Blockchain verified: yes")
	} else {
		fmt.Fprintln(a.out, "Blockchain verified: no")
	}

	if watched, err := a.watch.IsWatched(ctx, p.ProductID); err == nil && watched {
		fmt.Fprintln(a.out, "On your watchlist")
	}
	return nil
}

// Watch toggles the watchlist membership of a product and reports the new
// state.
func (a *App) Watch(ctx context.Context, id string) error {
	added, err := a.watch.Toggle(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Could not update watchlist: %s\n", err.Error())
		return err
	}
	if added {
		fmt.Fprintf(a.out, "Added %s to the watchlist\n", id)
	} else {
		fmt.Fprintf(a.out, "Removed %s from the watchlist\n", id)
	}
	return nil
}

// Verify asks the backend to verify a product's nano tag.
func (a *App) Verify(ctx context.Context, id string) error {
	res, err := a.products.Verify(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Verification failed: %s\n", err.Error())
		return err
	}
	if res.Verified {
		fmt.Fprintf(a.out, "Verified. Hash: %s\n", res.Hash)
	} else {
		fmt.Fprintln(a.out, "Not verified")
	}
	return nil
}

// Transfer moves ownership of a product to another user.
func (a *App) Transfer(ctx context.Context, id, newOwnerID string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login first")
		return nil
	}
	blockID, err := a.products.Transfer(ctx, id, newOwnerID)
	if err != nil {
		fmt.Fprintf(a.out, "Transfer failed: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Transferred. Block: %s\n", blockID)
	return nil
}
