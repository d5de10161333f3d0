package model

import "time"

// WeeklyBucket is the mean of all daily prices (every retailer, real and
// carried-forward) falling into one ISO calendar week.
type WeeklyBucket struct {
	WeekStart    time.Time
	AveragePrice float64
}

// PriceRangeSummary feeds the range-slider region: min and max come from the
// weekly history, average and current from the live offer list.
type PriceRangeSummary struct {
	Min     float64
	Max     float64
	Average float64
	Current float64
}

// ChartPoint is one plotted point of the bounded chart series.
type ChartPoint struct {
	Index int
	Label string
	Value float64
}
