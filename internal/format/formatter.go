package format

import (
	"fmt"
	"strings"

	"PriceScout/internal/model"
)

// FormatRangeSpan renders the min/max span for the range-slider region.
// A nil summary yields an empty string and the caller hides the region.
func FormatRangeSpan(s *model.PriceRangeSummary) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("%.2f – %.2f", s.Min, s.Max)
}

// FormatRangeDetail renders the average/current line shown under the span.
func FormatRangeDetail(s *model.PriceRangeSummary) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("avg %.2f · now %.2f", s.Average, s.Current)
}

// FormatRefreshReport renders a one-run log summary.
func FormatRefreshReport(productID string, a RefreshView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("product %s: %d daily observations, %d timeline entries, %d weeks",
		productID, a.DailyCount, a.TimelineLen, a.WeekCount))
	if a.Range != nil {
		b.WriteString(fmt.Sprintf(" | range %s (%s)", FormatRangeSpan(a.Range), FormatRangeDetail(a.Range)))
	} else {
		b.WriteString(" | range hidden (insufficient samples)")
	}
	if len(a.Chart) > 0 {
		labels := make([]string, len(a.Chart))
		for i, p := range a.Chart {
			labels[i] = fmt.Sprintf("%s=%.2f", p.Label, p.Value)
		}
		b.WriteString(" | chart " + strings.Join(labels, ", "))
	} else {
		b.WriteString(" | chart hidden (fewer than 4 weeks)")
	}
	return b.String()
}

// RefreshView is the slice of an engine run the formatter needs.
type RefreshView struct {
	DailyCount  int
	TimelineLen int
	WeekCount   int
	Range       *model.PriceRangeSummary
	Chart       []model.ChartPoint
}
