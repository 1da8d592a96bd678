package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/onkmade/secondhand/internal/client/models"
)

// Fake services with overridable function fields. Unset methods succeed
// with zero values.

type fakeAuthSvc struct {
	loginFn  func(ctx context.Context, email string, password []byte) (models.Session, error)
	logoutFn func(ctx context.Context) error
}

func (f *fakeAuthSvc) Register(ctx context.Context, email string, password []byte) (models.Session, error) {
	return models.Session{}, nil
}
func (f *fakeAuthSvc) Login(ctx context.Context, email string, password []byte) (models.Session, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return models.Session{}, nil
}
func (f *fakeAuthSvc) Logout(ctx context.Context) error {
	if f.logoutFn != nil {
		return f.logoutFn(ctx)
	}
	return nil
}
func (f *fakeAuthSvc) Probe(ctx context.Context) (models.Session, error) {
	return models.Session{}, nil
}
func (f *fakeAuthSvc) Current(ctx context.Context) (models.Session, error) {
	return models.Session{}, nil
}
func (f *fakeAuthSvc) Close(ctx context.Context) error { return nil }

type fakeProductSvc struct {
	feedFn     func(ctx context.Context, category string) ([]models.Product, error)
	searchFn   func(ctx context.Context, query string) ([]models.Product, error)
	getFn      func(ctx context.Context, id string) (models.ProductDetail, error)
	submitFn   func(ctx context.Context, d *models.Draft) (models.ListingReceipt, error)
	activateFn func(ctx context.Context, id string) (string, error)
}

func (f *fakeProductSvc) Feed(ctx context.Context, category string) ([]models.Product, error) {
	if f.feedFn != nil {
		return f.feedFn(ctx, category)
	}
	return nil, nil
}
func (f *fakeProductSvc) Search(ctx context.Context, query string) ([]models.Product, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, query)
	}
	return nil, nil
}
func (f *fakeProductSvc) Get(ctx context.Context, id string) (models.ProductDetail, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return models.ProductDetail{}, nil
}
func (f *fakeProductSvc) MyListings(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}
func (f *fakeProductSvc) Submit(ctx context.Context, d *models.Draft) (models.ListingReceipt, error) {
	if f.submitFn != nil {
		return f.submitFn(ctx, d)
	}
	return models.ListingReceipt{}, nil
}
func (f *fakeProductSvc) Activate(ctx context.Context, id string) (string, error) {
	if f.activateFn != nil {
		return f.activateFn(ctx, id)
	}
	return "", nil
}
func (f *fakeProductSvc) Verify(ctx context.Context, id string) (models.VerifyResult, error) {
	return models.VerifyResult{}, nil
}
func (f *fakeProductSvc) Transfer(ctx context.Context, id, newOwnerID string) (string, error) {
	return "", nil
}

type fakeWatchSvc struct {
	isWatchedFn func(ctx context.Context, id string) (bool, error)
	toggleFn    func(ctx context.Context, id string) (bool, error)
	productsFn  func(ctx context.Context) ([]models.Product, error)
}

func (f *fakeWatchSvc) IsWatched(ctx context.Context, id string) (bool, error) {
	if f.isWatchedFn != nil {
		return f.isWatchedFn(ctx, id)
	}
	return false, nil
}
func (f *fakeWatchSvc) Toggle(ctx context.Context, id string) (bool, error) {
	if f.toggleFn != nil {
		return f.toggleFn(ctx, id)
	}
	return false, nil
}
func (f *fakeWatchSvc) Products(ctx context.Context) ([]models.Product, error) {
	if f.productsFn != nil {
		return f.productsFn(ctx)
	}
	return nil, nil
}

// newTestApp builds an App over the fakes with buffered output and
// scripted stdin.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &App{
		auth:     &fakeAuthSvc{},
		products: &fakeProductSvc{},
		watch:    &fakeWatchSvc{},
		draft:    models.NewDraft(),
		router:   NewRouter(),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}, out
}
