package services

import (
	"context"

	"github.com/onkmade/secondhand/internal/client/models"
)

// fakeClient implements api.Client with overridable function fields.
// Unset methods succeed with zero values.
type fakeClient struct {
	registerFn func(ctx context.Context, email, password string) (models.Session, error)
	loginFn    func(ctx context.Context, email, password string) (models.Session, error)
	logoutFn   func(ctx context.Context) error
	meFn       func(ctx context.Context) (models.Session, error)

	feedFn       func(ctx context.Context, category string) ([]models.Product, error)
	productFn    func(ctx context.Context, id string) (models.ProductDetail, error)
	searchFn     func(ctx context.Context, query string) ([]models.Product, error)
	myListingsFn func(ctx context.Context) ([]models.Product, error)

	submitFn   func(ctx context.Context, d *models.Draft) (models.ListingReceipt, error)
	activateFn func(ctx context.Context, id string) (string, error)
	verifyFn   func(ctx context.Context, id string) (models.VerifyResult, error)
	transferFn func(ctx context.Context, id, newOwnerID string) (string, error)

	toggleFn    func(ctx context.Context, id string) (string, error)
	watchlistFn func(ctx context.Context) ([]models.Product, error)

	pingFn func(ctx context.Context) error
}

func (f *fakeClient) Register(ctx context.Context, email, password string) (models.Session, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, email, password)
	}
	return models.Session{}, nil
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return models.Session{}, nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	if f.logoutFn != nil {
		return f.logoutFn(ctx)
	}
	return nil
}

func (f *fakeClient) Me(ctx context.Context) (models.Session, error) {
	if f.meFn != nil {
		return f.meFn(ctx)
	}
	return models.Session{}, nil
}

func (f *fakeClient) Feed(ctx context.Context, category string) ([]models.Product, error) {
	if f.feedFn != nil {
		return f.feedFn(ctx, category)
	}
	return nil, nil
}

func (f *fakeClient) Product(ctx context.Context, id string) (models.ProductDetail, error) {
	if f.productFn != nil {
		return f.productFn(ctx, id)
	}
	return models.ProductDetail{}, nil
}

func (f *fakeClient) Search(ctx context.Context, query string) ([]models.Product, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, query)
	}
	return nil, nil
}

func (f *fakeClient) MyListings(ctx context.Context) ([]models.Product, error) {
	if f.myListingsFn != nil {
		return f.myListingsFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) SubmitListing(ctx context.Context, d *models.Draft) (models.ListingReceipt, error) {
	if f.submitFn != nil {
		return f.submitFn(ctx, d)
	}
	return models.ListingReceipt{}, nil
}

func (f *fakeClient) Activate(ctx context.Context, id string) (string, error) {
	if f.activateFn != nil {
		return f.activateFn(ctx, id)
	}
	return "", nil
}

func (f *fakeClient) Verify(ctx context.Context, id string) (models.VerifyResult, error) {
	if f.verifyFn != nil {
		return f.verifyFn(ctx, id)
	}
	return models.VerifyResult{}, nil
}

func (f *fakeClient) Transfer(ctx context.Context, id, newOwnerID string) (string, error) {
	if f.transferFn != nil {
		return f.transferFn(ctx, id, newOwnerID)
	}
	return "", nil
}

func (f *fakeClient) ToggleWatchlist(ctx context.Context, id string) (string, error) {
	if f.toggleFn != nil {
		return f.toggleFn(ctx, id)
	}
	return "", nil
}

func (f *fakeClient) Watchlist(ctx context.Context) ([]models.Product, error) {
	if f.watchlistFn != nil {
		return f.watchlistFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) Ping(ctx context.Context) error {
	if f.pingFn != nil {
		return f.pingFn(ctx)
	}
	return nil
}

func (f *fakeClient) Close() error { return nil }
