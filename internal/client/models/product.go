// Package models holds the data types exchanged between the marketplace
// client layers: server-owned product snapshots, the client-owned draft
// listing, and local session state.
package models

// NanoTag is the backend-issued physical tag bound to a listing. QRCode is
// the base64-encoded PNG the seller prints and attaches to the item.
type NanoTag struct {
	TagID  string `json:"tag_id"`
	QRCode string `json:"qr_code"`
}

// Product is a read-only snapshot of a listing as the backend reports it.
// The client never mutates products; it only renders them.
type Product struct {
	ProductID     string   `json:"product_id"`
	SellerID      string   `json:"seller_id"`
	SellerName    string   `json:"seller_name"`
	SellerContact string   `json:"seller_contact"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Condition     string   `json:"condition"`
	Price         float64  `json:"price"`
	Description   string   `json:"description"`
	Brand         string   `json:"brand"`
	Location      string   `json:"location"`
	Images        []string `json:"images"`
	Status        string   `json:"status"`
	Views         int      `json:"views"`
	AIScore       *float64 `json:"ai_score,omitempty"`
	NanoTag       *NanoTag `json:"nano_tag,omitempty"`
}

// PrimaryImage returns the first image reference, or "" when the listing
// has no images and the renderer should fall back to a placeholder.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// ProductDetail is the single-product response: the snapshot plus the
// backend's blockchain verification verdict.
type ProductDetail struct {
	Product            Product `json:"product"`
	BlockchainVerified bool    `json:"blockchain_verified"`
}

// ListingReceipt is returned by a successful listing submission. The
// listing stays "pending" until the seller explicitly activates it.
type ListingReceipt struct {
	ProductID string  `json:"product_id"`
	Status    string  `json:"status"`
	NanoTag   NanoTag `json:"nano_tag"`
}

// VerifyResult is the nano-tag verification verdict for a product.
type VerifyResult struct {
	Verified bool   `json:"verified"`
	Hash     string `json:"hash"`
}
