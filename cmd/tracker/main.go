package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"PriceScout/internal/config"
	"PriceScout/internal/offers"
	"PriceScout/internal/provider"
	"PriceScout/internal/recorder"
	"PriceScout/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] PriceScout starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init provider
	var prov provider.Provider
	if cfg.DataSource.BaseURL != "" {
		prov = provider.NewRESTProvider(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		prov = provider.NewFileProvider(cfg.DataSource.PayloadFile)
	}
	log.Printf("[INFO] data source: %s", prov.Name())

	// Init offer store
	store, err := offers.NewStore(cfg.Offers.StateFile)
	if err != nil {
		log.Fatalf("[FATAL] init offer store: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, prov, store, rec, cfg.DataSource.ProductID)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing refresh now")
		go sched.RunNow()
	}

	log.Println("[INFO] PriceScout is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] PriceScout stopped")
}
