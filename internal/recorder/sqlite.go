package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists refresh history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the tracker writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS refresh_snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			product_id     TEXT,
			raw_count      INTEGER,
			daily_count    INTEGER,
			timeline_len   INTEGER,
			retailer_count INTEGER,
			week_count     INTEGER,
			range_min      REAL,
			range_max      REAL,
			range_avg      REAL,
			range_current  REAL,
			chart_points   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_refresh_ts ON refresh_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS offer_updates (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			product_id  TEXT,
			retailer_id TEXT,
			price       REAL,
			observed_at INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_offer_ts ON offer_updates(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_offer_retailer ON offer_updates(retailer_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRefresh(snap *RefreshSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Absent summary is recorded as NULLs so "no result" stays
	// distinguishable from a zero price.
	var min, max, avg, current any
	if snap.Range != nil {
		min, max = snap.Range.Min, snap.Range.Max
		avg, current = snap.Range.Average, snap.Range.Current
	}

	_, err := r.db.Exec(`INSERT INTO refresh_snapshots
		(timestamp, product_id, raw_count, daily_count, timeline_len,
		 retailer_count, week_count, range_min, range_max, range_avg,
		 range_current, chart_points)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.ProductID, snap.RawCount, snap.DailyCount,
		snap.TimelineLen, snap.RetailerCount, snap.WeekCount,
		min, max, avg, current, snap.ChartPoints,
	)
	return err
}

func (r *SQLiteRecorder) RecordOfferUpdate(evt *OfferUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO offer_updates
		(timestamp, product_id, retailer_id, price, observed_at)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.ProductID, evt.Offer.RetailerID,
		evt.Offer.Price, evt.Offer.LastUpdatedAt.Unix(),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
