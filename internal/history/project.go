package history

import (
	"PriceScout/internal/model"
)

// Sample thresholds below which the range region and chart are hidden.
// Insufficient data is "no result", never an error.
const (
	minRangeSamples = 11
	chartWeeks      = 4
)

// BuildRangeSummary derives the min/max/average/current record for the range
// region. It requires more than 10 daily observations; otherwise it returns
// nil and the caller hides the region. Min and max come from the weekly
// history while average and current come from the live offer list — two
// different sources, kept that way for backward-compatible output.
func BuildRangeSummary(timeline []model.PriceObservation, byValue []model.WeeklyBucket, offers []model.OfferEntry) *model.PriceRangeSummary {
	if len(timeline) < minRangeSamples || len(byValue) == 0 {
		return nil
	}

	summary := &model.PriceRangeSummary{
		Min: byValue[0].AveragePrice,
		Max: byValue[len(byValue)-1].AveragePrice,
	}
	if len(offers) > 0 {
		sum := 0.0
		current := offers[0].Price
		for _, o := range offers {
			sum += o.Price
			if o.Price < current {
				current = o.Price
			}
		}
		summary.Average = sum / float64(len(offers))
		summary.Current = current
	}
	return summary
}

// BuildChart emits the bounded chart series: the last four chronological
// weekly buckets as (index, label, value) points. Fewer than four available
// weeks means no chart.
func BuildChart(byDate []model.WeeklyBucket) []model.ChartPoint {
	if len(byDate) < chartWeeks {
		return nil
	}

	tail := byDate[len(byDate)-chartWeeks:]
	points := make([]model.ChartPoint, len(tail))
	for i, b := range tail {
		points[i] = model.ChartPoint{
			Index: i,
			Label: b.WeekStart.Format("Jan 2"),
			Value: b.AveragePrice,
		}
	}
	return points
}
