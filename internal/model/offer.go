package model

import "time"

// OfferEntry is one retailer's currently displayed offer. The list of entries
// is owned by the caller; the latest-price merger updates Price and
// LastUpdatedAt in place and never creates or removes entries.
type OfferEntry struct {
	RetailerID    string    `json:"retailer_id"`
	Price         float64   `json:"price"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}
