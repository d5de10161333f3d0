package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"PriceScout/internal/format"
	"PriceScout/internal/history"
	"PriceScout/internal/model"
	"PriceScout/internal/offers"
	"PriceScout/internal/provider"
	"PriceScout/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic price refreshes.
type Scheduler struct {
	Cron      *cron.Cron
	Provider  provider.Provider
	Store     *offers.Store
	Recorder  recorder.Recorder
	ProductID string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, p provider.Provider, store *offers.Store, rec recorder.Recorder, productID string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Provider:  p,
		Store:     store,
		Recorder:  rec,
		ProductID: productID,
		Ctx:       ctx,
	}
}

// Register registers the refresh task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	select {
	case <-s.Ctx.Done():
		return
	default:
	}
	log.Println("[INFO] running price refresh")

	raw, err := s.Provider.FetchUpdates(s.ProductID)
	if err != nil {
		log.Printf("[ERROR] fetch updates: %v", err)
		return
	}
	fetched, err := s.Provider.FetchOffers(s.ProductID)
	if err != nil {
		log.Printf("[ERROR] fetch offers: %v", err)
		return
	}
	s.Store.Replace(fetched)

	// Analyze mutates the offer list in place; the store lock serializes
	// that against any other consumer of the same list.
	var analysis *history.Analysis
	entries := s.Store.Update(func(entries []model.OfferEntry) {
		analysis = history.Analyze(raw, entries, time.Now().UTC())
	})

	log.Printf("[INFO] %s", format.FormatRefreshReport(s.ProductID, format.RefreshView{
		DailyCount:  len(analysis.Daily),
		TimelineLen: len(analysis.Timeline),
		WeekCount:   len(analysis.WeeklyByDate),
		Range:       analysis.Range,
		Chart:       analysis.Chart,
	}))

	if err := s.Recorder.RecordRefresh(&recorder.RefreshSnapshot{
		ProductID:     s.ProductID,
		RawCount:      len(raw),
		DailyCount:    len(analysis.Daily),
		TimelineLen:   len(analysis.Timeline),
		RetailerCount: retailerCount(analysis.Daily),
		WeekCount:     len(analysis.WeeklyByDate),
		Range:         analysis.Range,
		ChartPoints:   len(analysis.Chart),
	}); err != nil {
		log.Printf("[ERROR] record refresh: %v", err)
	}
	for _, e := range entries {
		if err := s.Recorder.RecordOfferUpdate(&recorder.OfferUpdate{
			ProductID: s.ProductID,
			Offer:     e,
		}); err != nil {
			log.Printf("[ERROR] record offer update: %v", err)
		}
	}
}

func retailerCount(daily []model.PriceObservation) int {
	seen := make(map[string]bool, len(daily))
	for _, obs := range daily {
		seen[obs.RetailerID] = true
	}
	return len(seen)
}
