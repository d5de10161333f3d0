package history

import (
	"PriceScout/internal/model"
)

// MergeLatest folds the most recent real observation per retailer into the
// caller's offer list, updating Price and LastUpdatedAt in place. It works on
// normalized observations, never on the filled timeline — synthesized entries
// must not masquerade as fresh quotes. When two observations share the exact
// latest timestamp, the one with the greater ObservationID wins.
// Retailers with no observations at all are left untouched.
func MergeLatest(daily []model.PriceObservation, offers []model.OfferEntry) {
	latest := make(map[string]model.PriceObservation, len(offers))
	for _, obs := range daily {
		cur, ok := latest[obs.RetailerID]
		switch {
		case !ok:
			latest[obs.RetailerID] = obs
		case obs.Timestamp.After(cur.Timestamp):
			latest[obs.RetailerID] = obs
		case obs.Timestamp.Equal(cur.Timestamp) && obs.ObservationID > cur.ObservationID:
			latest[obs.RetailerID] = obs
		}
	}

	for i := range offers {
		obs, ok := latest[offers[i].RetailerID]
		if !ok {
			continue
		}
		offers[i].Price = obs.Price
		offers[i].LastUpdatedAt = obs.Timestamp
	}
}
