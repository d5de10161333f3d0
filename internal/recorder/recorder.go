package recorder

import "PriceScout/internal/model"

// RefreshSnapshot holds the derived output of one engine run.
type RefreshSnapshot struct {
	ProductID     string
	RawCount      int
	DailyCount    int
	TimelineLen   int
	RetailerCount int
	WeekCount     int
	Range         *model.PriceRangeSummary
	ChartPoints   int
}

// OfferUpdate records one retailer's offer price after a refresh.
type OfferUpdate struct {
	ProductID string
	Offer     model.OfferEntry
}

// Recorder persists refresh history for analysis.
type Recorder interface {
	RecordRefresh(snap *RefreshSnapshot) error
	RecordOfferUpdate(evt *OfferUpdate) error
	Close() error
}
