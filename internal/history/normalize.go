package history

import (
	"sort"
	"time"

	"PriceScout/internal/model"
)

type dayKey struct {
	retailerID string
	day        time.Time
}

// Normalize parses raw price reports into at most one observation per
// retailer per calendar day. Records with malformed timestamps or negative
// prices are dropped silently. Within a retailer/day group the highest price
// wins; on an exact price tie the record encountered first in input order is
// kept. Days strictly after now's calendar day are discarded.
// The result is sorted ascending by timestamp.
func Normalize(raw []model.RawObservation, now time.Time) []model.PriceObservation {
	today := dayOf(now)

	best := make(map[dayKey]model.PriceObservation)
	var seen []dayKey

	for _, r := range raw {
		ts, err := time.Parse(time.RFC3339, r.Timestamp)
		if err != nil {
			continue
		}
		if r.Price < 0 {
			continue
		}
		obs := model.PriceObservation{
			RetailerID:    r.RetailerID,
			Price:         r.Price,
			Timestamp:     ts.UTC(),
			LocationLabel: r.LocationLabel,
			ObservationID: r.ObservationID,
		}
		k := dayKey{retailerID: obs.RetailerID, day: obs.Day()}
		cur, ok := best[k]
		if !ok {
			best[k] = obs
			seen = append(seen, k)
			continue
		}
		if obs.Price > cur.Price {
			best[k] = obs
		}
	}

	out := make([]model.PriceObservation, 0, len(seen))
	for _, k := range seen {
		if k.day.After(today) {
			continue
		}
		out = append(out, best[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
