package history

import (
	"testing"
	"time"

	"PriceScout/internal/model"
)

func obsOn(retailer string, price float64, day time.Time) model.PriceObservation {
	return model.PriceObservation{
		RetailerID:    retailer,
		Price:         price,
		Timestamp:     day.Add(10 * time.Hour),
		ObservationID: retailer + "@" + day.Format("2006-01-02"),
	}
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func timelineAt(tl []model.PriceObservation, retailer string, d time.Time) (model.PriceObservation, bool) {
	for _, obs := range tl {
		if obs.RetailerID == retailer && obs.Day() == d {
			return obs, true
		}
	}
	return model.PriceObservation{}, false
}

func TestFillTimeline_EmptyInput(t *testing.T) {
	if tl := FillTimeline(nil); len(tl) != 0 {
		t.Fatalf("expected no synthesis without real observations, got %d", len(tl))
	}
}

func TestFillTimeline_GapFree(t *testing.T) {
	daily := []model.PriceObservation{
		obsOn("a", 10, day(1)),
		obsOn("b", 20, day(2)),
		obsOn("a", 12, day(5)),
	}
	tl := FillTimeline(daily)

	// 5 days x 2 retailers
	if len(tl) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(tl))
	}
	for d := 1; d <= 5; d++ {
		for _, r := range []string{"a", "b"} {
			if _, ok := timelineAt(tl, r, day(d)); !ok {
				t.Errorf("missing entry for %s on day %d", r, d)
			}
		}
	}
}

func TestFillTimeline_CarryForwardScenario(t *testing.T) {
	// A reports 10 on day 1 and 12 on day 3; B reports 20 on day 2 only.
	daily := []model.PriceObservation{
		obsOn("a", 10, day(1)),
		obsOn("b", 20, day(2)),
		obsOn("a", 12, day(3)),
	}
	tl := FillTimeline(daily)

	expected := []struct {
		retailer string
		day      time.Time
		price    float64
	}{
		{"a", day(1), 10},
		{"b", day(1), 0},  // B has never reported yet
		{"a", day(2), 10}, // carried forward
		{"b", day(2), 20},
		{"a", day(3), 12},
		{"b", day(3), 20}, // carried forward
	}
	if len(tl) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(tl))
	}
	for _, e := range expected {
		obs, ok := timelineAt(tl, e.retailer, e.day)
		if !ok {
			t.Fatalf("missing entry for %s on %v", e.retailer, e.day)
		}
		if obs.Price != e.price {
			t.Errorf("%s on %v: expected %.0f, got %.2f", e.retailer, e.day, e.price, obs.Price)
		}
	}
}

func TestFillTimeline_SynthesizedEntryShape(t *testing.T) {
	daily := []model.PriceObservation{
		obsOn("a", 10, day(1)),
		obsOn("a", 12, day(3)),
	}
	tl := FillTimeline(daily)

	obs, ok := timelineAt(tl, "a", day(2))
	if !ok {
		t.Fatal("missing synthesized entry for day 2")
	}
	if !obs.Timestamp.Equal(day(2)) {
		t.Errorf("synthesized timestamp must be midnight UTC, got %v", obs.Timestamp)
	}
	if obs.LocationLabel != "" {
		t.Errorf("synthesized location must be empty, got %q", obs.LocationLabel)
	}
	if obs.ObservationID == "" {
		t.Error("synthesized entry must carry an observation ID")
	}
	if obs.ObservationID == tl[0].ObservationID {
		t.Error("synthesized ID must not collide with a real one")
	}
}

func TestFillTimeline_CarryForwardNotUpdatedBySynthesized(t *testing.T) {
	// Zero-fill before a retailer's first report must not overwrite the
	// carry-forward value once the first real price arrives.
	daily := []model.PriceObservation{
		obsOn("a", 10, day(1)),
		obsOn("b", 20, day(3)),
	}
	tl := FillTimeline(daily)

	for d := 1; d <= 2; d++ {
		obs, _ := timelineAt(tl, "b", day(d))
		if obs.Price != 0 {
			t.Errorf("b on day %d: expected 0 before first report, got %.2f", d, obs.Price)
		}
	}
	obs, _ := timelineAt(tl, "b", day(3))
	if obs.Price != 20 {
		t.Errorf("b on day 3: expected 20, got %.2f", obs.Price)
	}
}

func TestFillTimeline_Deterministic(t *testing.T) {
	daily := []model.PriceObservation{
		obsOn("b", 20, day(2)),
		obsOn("a", 10, day(1)),
		obsOn("c", 30, day(4)),
	}
	first := FillTimeline(daily)
	second := FillTimeline(daily)
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs between identical runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
