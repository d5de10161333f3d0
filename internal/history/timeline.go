package history

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"PriceScout/internal/model"
)

// Namespace for synthesized observation IDs. Name-based so that identical
// inputs always yield identical output, observation IDs included.
var fillNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("PriceScout/timeline"))

// FillTimeline expands normalized daily observations into a gap-free
// timeline: one entry per calendar day per retailer across the whole
// observed span. Days a retailer did not report are filled with its last
// known price, or 0 if it has never reported yet. A zero therefore means
// "no price known so far", not "missing" — the entry still plots.
// Empty input yields an empty timeline; nothing is synthesized without at
// least one real observation.
func FillTimeline(daily []model.PriceObservation) []model.PriceObservation {
	if len(daily) == 0 {
		return nil
	}

	byKey := make(map[dayKey]model.PriceObservation, len(daily))
	retailerSet := make(map[string]bool)
	minDay := daily[0].Day()
	maxDay := minDay
	for _, obs := range daily {
		d := obs.Day()
		byKey[dayKey{retailerID: obs.RetailerID, day: d}] = obs
		retailerSet[obs.RetailerID] = true
		if d.Before(minDay) {
			minDay = d
		}
		if d.After(maxDay) {
			maxDay = d
		}
	}

	retailers := make([]string, 0, len(retailerSet))
	for id := range retailerSet {
		retailers = append(retailers, id)
	}
	sort.Strings(retailers)

	lastKnown := make(map[string]float64, len(retailers))
	var out []model.PriceObservation
	for day := minDay; !day.After(maxDay); day = day.AddDate(0, 0, 1) {
		for _, id := range retailers {
			if obs, ok := byKey[dayKey{retailerID: id, day: day}]; ok {
				out = append(out, obs)
				lastKnown[id] = obs.Price
				continue
			}
			out = append(out, model.PriceObservation{
				RetailerID:    id,
				Price:         lastKnown[id],
				Timestamp:     day,
				ObservationID: synthesizedID(id, day),
			})
		}
	}
	return out
}

func synthesizedID(retailerID string, day time.Time) string {
	return uuid.NewSHA1(fillNamespace, []byte(retailerID+"|"+day.Format("2006-01-02"))).String()
}
