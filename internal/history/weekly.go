package history

import (
	"sort"
	"time"

	"PriceScout/internal/model"
)

// AggregateWeekly groups a timeline into ISO calendar weeks and averages all
// prices (every retailer) within each week. It returns the same bucket set in
// two orders: byDate ascending by week start for charting, byValue ascending
// by average price for range statistics. Ties in byValue keep chronological
// order (stable sort).
func AggregateWeekly(timeline []model.PriceObservation) (byDate, byValue []model.WeeklyBucket) {
	if len(timeline) == 0 {
		return nil, nil
	}

	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	var order []time.Time
	for _, obs := range timeline {
		ws := weekStart(obs.Day())
		if counts[ws] == 0 {
			order = append(order, ws)
		}
		sums[ws] += obs.Price
		counts[ws]++
	}

	byDate = make([]model.WeeklyBucket, 0, len(order))
	for _, ws := range order {
		byDate = append(byDate, model.WeeklyBucket{
			WeekStart:    ws,
			AveragePrice: sums[ws] / float64(counts[ws]),
		})
	}
	sort.SliceStable(byDate, func(i, j int) bool {
		return byDate[i].WeekStart.Before(byDate[j].WeekStart)
	})

	byValue = make([]model.WeeklyBucket, len(byDate))
	copy(byValue, byDate)
	sort.SliceStable(byValue, func(i, j int) bool {
		return byValue[i].AveragePrice < byValue[j].AveragePrice
	})
	return byDate, byValue
}

// weekStart returns the Monday of day's ISO week, at midnight UTC.
func weekStart(day time.Time) time.Time {
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	return day.AddDate(0, 0, 1-wd)
}
