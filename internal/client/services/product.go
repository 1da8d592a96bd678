package services

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/onkmade/secondhand/internal/client/api"
	"github.com/onkmade/secondhand/internal/client/models"
	"github.com/onkmade/secondhand/internal/client/validation"
)

// ErrBusy is returned when a submit or activate call is already in flight.
// The caller retries only on an explicit new user action.
var ErrBusy = errors.New("operation already in flight")

// ProductService coordinates listing submission and the product read
// operations. Submission validates the draft before any network work,
// holds a single in-flight slot, and resets the draft only on success.
type ProductService interface {
	Feed(ctx context.Context, category string) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.ProductDetail, error)
	MyListings(ctx context.Context) ([]models.Product, error)

	Submit(ctx context.Context, d *models.Draft) (models.ListingReceipt, error)
	Activate(ctx context.Context, id string) (string, error)
	Verify(ctx context.Context, id string) (models.VerifyResult, error)
	Transfer(ctx context.Context, id, newOwnerID string) (string, error)
}

type productService struct {
	client api.Client

	submitting atomic.Bool
	activating atomic.Bool
}

// NewProductService constructs a ProductService over the given API client.
func NewProductService(client api.Client) ProductService {
	return &productService{client: client}
}

func (p *productService) Feed(ctx context.Context, category string) ([]models.Product, error) {
	return p.client.Feed(ctx, category)
}

func (p *productService) Search(ctx context.Context, query string) ([]models.Product, error) {
	return p.client.Search(ctx, query)
}

func (p *productService) Get(ctx context.Context, id string) (models.ProductDetail, error) {
	return p.client.Product(ctx, id)
}

func (p *productService) MyListings(ctx context.Context) ([]models.Product, error) {
	return p.client.MyListings(ctx)
}

// Submit validates the draft and, if eligible, issues the multipart
// listing request. A failed validation never reaches the network and a
// rejected submission leaves the draft intact, so no user input is lost.
// On success the draft is reset.
func (p *productService) Submit(ctx context.Context, d *models.Draft) (models.ListingReceipt, error) {
	if res := validation.CheckDraft(d); !res.Valid {
		return models.ListingReceipt{}, &validation.Error{Result: res}
	}

	if !p.submitting.CompareAndSwap(false, true) {
		return models.ListingReceipt{}, ErrBusy
	}
	defer p.submitting.Store(false)

	receipt, err := p.client.SubmitListing(ctx, d)
	if err != nil {
		return models.ListingReceipt{}, err
	}

	d.Reset()
	return receipt, nil
}

// Activate is the explicit "tag attached" acknowledgment. It is never
// inferred from a successful submission; only a user action triggers it.
func (p *productService) Activate(ctx context.Context, id string) (string, error) {
	if !p.activating.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer p.activating.Store(false)

	return p.client.Activate(ctx, id)
}

func (p *productService) Verify(ctx context.Context, id string) (models.VerifyResult, error) {
	return p.client.Verify(ctx, id)
}

func (p *productService) Transfer(ctx context.Context, id, newOwnerID string) (string, error) {
	return p.client.Transfer(ctx, id, newOwnerID)
}
