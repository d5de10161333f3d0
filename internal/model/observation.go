package model

import "time"

// RawObservation is a single price report exactly as the fetch layer delivers it.
// The timestamp arrives as an RFC 3339 string and may be malformed.
type RawObservation struct {
	RetailerID    string  `json:"retailer_id"`
	Price         float64 `json:"price"`
	Timestamp     string  `json:"timestamp"`
	LocationLabel string  `json:"location"`
	ObservationID string  `json:"observation_id"`
}

// PriceObservation is a parsed, validated price report. Immutable once created.
// Timestamps are always UTC; day boundaries are computed in UTC regardless of
// device locale so cross-retailer comparisons stay consistent.
type PriceObservation struct {
	RetailerID    string
	Price         float64
	Timestamp     time.Time
	LocationLabel string
	ObservationID string
}

// Day returns the observation's calendar day at midnight UTC.
func (o PriceObservation) Day() time.Time {
	y, m, d := o.Timestamp.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
