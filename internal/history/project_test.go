package history

import (
	"testing"
	"time"

	"PriceScout/internal/model"
)

// constantTimeline builds n consecutive daily observations for one retailer.
func constantTimeline(n int, price float64) []model.PriceObservation {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var tl []model.PriceObservation
	for i := 0; i < n; i++ {
		tl = append(tl, obsOn("a", price, start.AddDate(0, 0, i)))
	}
	return tl
}

func TestBuildRangeSummary_ThresholdGating(t *testing.T) {
	offers := []model.OfferEntry{{RetailerID: "a", Price: 100}}

	ten := constantTimeline(10, 100)
	_, byValue := AggregateWeekly(ten)
	if s := BuildRangeSummary(ten, byValue, offers); s != nil {
		t.Error("10 daily observations must yield no summary")
	}

	eleven := constantTimeline(11, 100)
	_, byValue = AggregateWeekly(eleven)
	if s := BuildRangeSummary(eleven, byValue, offers); s == nil {
		t.Error("11 daily observations must yield a summary")
	}
}

func TestBuildRangeSummary_MinMaxFromWeeklyHistory(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var tl []model.PriceObservation
	weekPrices := []float64{50, 80, 20}
	for w, p := range weekPrices {
		for d := 0; d < 5; d++ {
			tl = append(tl, obsOn("a", p, start.AddDate(0, 0, 7*w+d)))
		}
	}
	_, byValue := AggregateWeekly(tl)
	offers := []model.OfferEntry{
		{RetailerID: "a", Price: 60},
		{RetailerID: "b", Price: 40},
	}
	s := BuildRangeSummary(tl, byValue, offers)
	if s == nil {
		t.Fatal("expected a summary")
	}
	if s.Min != 20 || s.Max != 80 {
		t.Errorf("expected min 20 max 80 from weekly history, got %.2f/%.2f", s.Min, s.Max)
	}
	if s.Average != 50 {
		t.Errorf("average must come from the offer list: expected 50, got %.2f", s.Average)
	}
	if s.Current != 40 {
		t.Errorf("current must be the cheapest offer: expected 40, got %.2f", s.Current)
	}
}

func TestBuildRangeSummary_ConstantSeries(t *testing.T) {
	tl := constantTimeline(15, 100)
	_, byValue := AggregateWeekly(tl)
	offers := []model.OfferEntry{{RetailerID: "a", Price: 100}}
	s := BuildRangeSummary(tl, byValue, offers)
	if s == nil {
		t.Fatal("expected a summary")
	}
	if s.Min != 100 || s.Max != 100 || s.Average != 100 {
		t.Errorf("expected min=max=average=100, got %+v", s)
	}
}

func TestBuildChart_RequiresFourWeeks(t *testing.T) {
	three := constantTimeline(21, 10)
	byDate, _ := AggregateWeekly(three)
	if len(byDate) != 3 {
		t.Fatalf("fixture expected 3 weeks, got %d", len(byDate))
	}
	if pts := BuildChart(byDate); pts != nil {
		t.Error("3 weekly buckets must yield no chart")
	}

	four := constantTimeline(28, 10)
	byDate, _ = AggregateWeekly(four)
	if pts := BuildChart(byDate); len(pts) != 4 {
		t.Errorf("4 weekly buckets must yield 4 points, got %d", len(pts))
	}
}

func TestBuildChart_LastFourWeeksInOrder(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var tl []model.PriceObservation
	weekPrices := []float64{1, 2, 3, 4, 5, 6}
	for w, p := range weekPrices {
		tl = append(tl, obsOn("a", p, start.AddDate(0, 0, 7*w)))
	}
	byDate, _ := AggregateWeekly(tl)
	pts := BuildChart(byDate)
	if len(pts) != 4 {
		t.Fatalf("expected 4 points, got %d", len(pts))
	}
	for i, want := range []float64{3, 4, 5, 6} {
		if pts[i].Index != i {
			t.Errorf("point %d: expected index %d, got %d", i, i, pts[i].Index)
		}
		if pts[i].Value != want {
			t.Errorf("point %d: expected value %.0f, got %.2f", i, want, pts[i].Value)
		}
		if pts[i].Label == "" {
			t.Errorf("point %d: expected a week-start label", i)
		}
	}
}
