package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/onkmade/secondhand/internal/client/models"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 8 << 20

// HTTPClient is the concrete Client over net/http. Session state lives in
// the cookie jar, mirroring how the browser frontend talked to the same
// backend.
type HTTPClient struct {
	base *url.URL
	hc   *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://localhost:5000/api". The timeout applies per request.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	return &HTTPClient{
		base: base,
		hc:   &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// do issues one request and decodes the normalized response into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	return decodeResponse(resp.StatusCode, data, out)
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, http.MethodPost, path, nil, body, "application/json", out)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type identityResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (models.Session, error) {
	var resp identityResponse
	err := c.postJSON(ctx, "/auth/register", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{UserID: resp.UserID, Email: resp.Email, Name: resp.Name}, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	var resp identityResponse
	err := c.postJSON(ctx, "/auth/login", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{UserID: resp.UserID, Email: resp.Email, Name: resp.Name}, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.postJSON(ctx, "/auth/logout", nil, nil)
}

func (c *HTTPClient) Me(ctx context.Context) (models.Session, error) {
	var resp struct {
		User models.Session `json:"user"`
	}
	if err := c.getJSON(ctx, "/auth/me", nil, &resp); err != nil {
		return models.Session{}, err
	}
	return resp.User, nil
}

func (c *HTTPClient) Feed(ctx context.Context, category string) ([]models.Product, error) {
	var query url.Values
	if category != "" {
		query = url.Values{"category": {category}}
	}
	var resp struct {
		Products []models.Product `json:"products"`
	}
	if err := c.getJSON(ctx, "/products/feed", query, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *HTTPClient) Product(ctx context.Context, id string) (models.ProductDetail, error) {
	var resp models.ProductDetail
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(id), nil, &resp); err != nil {
		return models.ProductDetail{}, err
	}
	return resp, nil
}

func (c *HTTPClient) Search(ctx context.Context, queryText string) ([]models.Product, error) {
	var resp struct {
		Products []models.Product `json:"products"`
	}
	if err := c.getJSON(ctx, "/search", url.Values{"q": {queryText}}, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *HTTPClient) MyListings(ctx context.Context) ([]models.Product, error) {
	var resp struct {
		Listings []models.Product `json:"listings"`
	}
	if err := c.getJSON(ctx, "/user/listings", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Listings, nil
}

// SubmitListing serializes the draft as multipart form data: scalar fields
// as text parts, every attachment as a binary part under the shared
// "images" field name, preserving selection order.
func (c *HTTPClient) SubmitListing(ctx context.Context, d *models.Draft) (models.ListingReceipt, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"title", d.Title},
		{"category", d.Category},
		{"condition", d.Condition},
		{"price", d.Price},
		{"description", d.Description},
		{"location", d.Location},
		{"brand", d.Brand},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return models.ListingReceipt{}, fmt.Errorf("writing field %s: %w", f.name, err)
		}
	}

	for _, img := range d.Images {
		part, err := w.CreateFormFile("images", img.Name)
		if err != nil {
			return models.ListingReceipt{}, fmt.Errorf("creating file part %s: %w", img.Name, err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return models.ListingReceipt{}, fmt.Errorf("writing file part %s: %w", img.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return models.ListingReceipt{}, fmt.Errorf("finalizing multipart body: %w", err)
	}

	var resp models.ListingReceipt
	err := c.do(ctx, http.MethodPost, "/products/list", nil, &buf, w.FormDataContentType(), &resp)
	if err != nil {
		return models.ListingReceipt{}, err
	}
	return resp, nil
}

func (c *HTTPClient) Activate(ctx context.Context, id string) (string, error) {
	var resp struct {
		BlockID string `json:"block_id"`
	}
	err := c.postJSON(ctx, "/products/activate/"+url.PathEscape(id), nil, &resp)
	if err != nil {
		return "", err
	}
	return resp.BlockID, nil
}

func (c *HTTPClient) Verify(ctx context.Context, id string) (models.VerifyResult, error) {
	var resp models.VerifyResult
	err := c.getJSON(ctx, "/products/verify/"+url.PathEscape(id), nil, &resp)
	if err != nil {
		return models.VerifyResult{}, err
	}
	return resp, nil
}

func (c *HTTPClient) Transfer(ctx context.Context, id, newOwnerID string) (string, error) {
	var resp struct {
		BlockID string `json:"block_id"`
	}
	in := struct {
		NewOwnerID string `json:"new_owner_id"`
	}{NewOwnerID: newOwnerID}
	err := c.postJSON(ctx, "/products/transfer/"+url.PathEscape(id), in, &resp)
	if err != nil {
		return "", err
	}
	return resp.BlockID, nil
}

func (c *HTTPClient) ToggleWatchlist(ctx context.Context, id string) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	err := c.postJSON(ctx, "/watchlist/toggle/"+url.PathEscape(id), nil, &resp)
	if err != nil {
		return "", err
	}
	return resp.Status, nil
}

func (c *HTTPClient) Watchlist(ctx context.Context) ([]models.Product, error) {
	var resp struct {
		Products []models.Product `json:"products"`
	}
	if err := c.getJSON(ctx, "/watchlist", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.getJSON(ctx, "/health", nil, nil)
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}
