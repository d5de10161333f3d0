// Package history reconciles scattered multi-retailer price observations
// into a gap-free daily timeline, weekly averages, range statistics and a
// bounded chart series. Every call recomputes all derived data from the full
// input, so repeated invocations with the same input (including now) are
// idempotent. The only mutation is the explicit in-place offer update of
// MergeLatest; concurrent calls against the same offer list must be
// serialized by the caller.
package history

import (
	"time"

	"PriceScout/internal/model"
)

// Analysis is the full output of one engine run.
type Analysis struct {
	Daily         []model.PriceObservation
	Timeline      []model.PriceObservation
	WeeklyByDate  []model.WeeklyBucket
	WeeklyByValue []model.WeeklyBucket
	Range         *model.PriceRangeSummary
	Chart         []model.ChartPoint
}

// Analyze runs both branches of the engine: normalize → fill → aggregate →
// project, and independently normalize → merge latest prices into offers.
// The offers slice is mutated in place. Empty input degrades to an empty
// Analysis, never an error.
func Analyze(raw []model.RawObservation, offers []model.OfferEntry, now time.Time) *Analysis {
	daily := Normalize(raw, now)

	timeline := FillTimeline(daily)
	byDate, byValue := AggregateWeekly(timeline)

	// Merge before projecting so the summary's average/current reflect the
	// offer prices the caller is about to display.
	MergeLatest(daily, offers)

	return &Analysis{
		Daily:         daily,
		Timeline:      timeline,
		WeeklyByDate:  byDate,
		WeeklyByValue: byValue,
		Range:         BuildRangeSummary(timeline, byValue, offers),
		Chart:         BuildChart(byDate),
	}
}
