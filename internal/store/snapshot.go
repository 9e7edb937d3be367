// Package store provides a SQLite-backed snapshot of the last record
// sets fetched from the backend, for offline reads and cache busting.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"ankadash/internal/model"
)

// Snapshot entity keys, used for per-entity invalidation.
const (
	EntityClients     = "clients"
	EntityAssets      = "assets"
	EntityAllocations = "allocations"
	EntityMovements   = "movements"
)

// Cache is the SQLite-backed snapshot store.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the snapshot database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// SaveSnapshot replaces the stored record sets with a fresh fetch.
func (c *Cache) SaveSnapshot(snap model.Snapshot) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"clients", "assets", "allocations", "movements", "snapshot_meta"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for _, cl := range snap.Clients {
		active := 0
		if cl.IsActive {
			active = 1
		}
		if _, err := tx.Exec(
			"INSERT INTO clients (id, name, email, is_active, created_at) VALUES (?, ?, ?, ?, ?)",
			cl.ID, cl.Name, cl.Email, active, cl.CreatedAt,
		); err != nil {
			return err
		}
	}
	for _, a := range snap.Assets {
		if _, err := tx.Exec(
			"INSERT INTO assets (id, ticker, name, exchange, currency) VALUES (?, ?, ?, ?, ?)",
			a.ID, a.Ticker, a.Name, a.Exchange, a.Currency,
		); err != nil {
			return err
		}
	}
	for _, a := range snap.Allocations {
		if _, err := tx.Exec(
			"INSERT INTO allocations (id, client_id, asset_id, quantity, buy_price, buy_date) VALUES (?, ?, ?, ?, ?, ?)",
			a.ID, a.ClientID, a.AssetID, a.Quantity, a.BuyPrice, a.BuyDate,
		); err != nil {
			return err
		}
	}
	for _, m := range snap.Movements {
		if _, err := tx.Exec(
			"INSERT INTO movements (id, client_id, type, amount, date, note) VALUES (?, ?, ?, ?, ?, ?)",
			m.ID, m.ClientID, string(m.Type), m.Amount, m.Date, m.Note,
		); err != nil {
			return err
		}
	}

	fetchedAt := snap.FetchedAt.UTC().Format(time.RFC3339)
	for _, entity := range []string{EntityClients, EntityAssets, EntityAllocations, EntityMovements} {
		if _, err := tx.Exec(
			"INSERT INTO snapshot_meta (entity, fetched_at) VALUES (?, ?)",
			entity, fetchedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadSnapshot reads the stored record sets. The returned snapshot is
// marked stale; FetchedAt is the oldest entity timestamp still present.
func (c *Cache) LoadSnapshot() (model.Snapshot, error) {
	snap := model.Snapshot{Stale: true}

	rows, err := c.db.Query("SELECT id, name, email, is_active, created_at FROM clients")
	if err != nil {
		return snap, err
	}
	for rows.Next() {
		var cl model.Client
		var active int
		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Email, &active, &cl.CreatedAt); err != nil {
			_ = rows.Close()
			return snap, err
		}
		cl.IsActive = active != 0
		snap.Clients = append(snap.Clients, cl)
	}
	if err := closeRows(rows); err != nil {
		return snap, err
	}

	rows, err = c.db.Query("SELECT id, ticker, name, exchange, currency FROM assets")
	if err != nil {
		return snap, err
	}
	for rows.Next() {
		var a model.Asset
		if err := rows.Scan(&a.ID, &a.Ticker, &a.Name, &a.Exchange, &a.Currency); err != nil {
			_ = rows.Close()
			return snap, err
		}
		snap.Assets = append(snap.Assets, a)
	}
	if err := closeRows(rows); err != nil {
		return snap, err
	}

	rows, err = c.db.Query("SELECT id, client_id, asset_id, quantity, buy_price, buy_date FROM allocations")
	if err != nil {
		return snap, err
	}
	for rows.Next() {
		var a model.Allocation
		if err := rows.Scan(&a.ID, &a.ClientID, &a.AssetID, &a.Quantity, &a.BuyPrice, &a.BuyDate); err != nil {
			_ = rows.Close()
			return snap, err
		}
		snap.Allocations = append(snap.Allocations, a)
	}
	if err := closeRows(rows); err != nil {
		return snap, err
	}

	rows, err = c.db.Query("SELECT id, client_id, type, amount, date, note FROM movements")
	if err != nil {
		return snap, err
	}
	for rows.Next() {
		var m model.Movement
		var typ string
		if err := rows.Scan(&m.ID, &m.ClientID, &typ, &m.Amount, &m.Date, &m.Note); err != nil {
			_ = rows.Close()
			return snap, err
		}
		m.Type = model.MovementType(typ)
		snap.Movements = append(snap.Movements, m)
	}
	if err := closeRows(rows); err != nil {
		return snap, err
	}

	var oldest sql.NullString
	if err := c.db.QueryRow("SELECT MIN(fetched_at) FROM snapshot_meta").Scan(&oldest); err != nil {
		return snap, err
	}
	if oldest.Valid {
		if t, err := time.Parse(time.RFC3339, oldest.String); err == nil {
			snap.FetchedAt = t
		}
	}

	return snap, nil
}

// Invalidate busts one entity's cached rows after a mutation succeeds.
// Key-based, not transactional with the mutation itself: the next
// dashboard load refetches the entity from the backend.
func (c *Cache) Invalidate(entity string) error {
	switch entity {
	case EntityClients, EntityAssets, EntityAllocations, EntityMovements:
	default:
		return fmt.Errorf("unknown snapshot entity %q", entity)
	}
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM " + entity); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM snapshot_meta WHERE entity = ?", entity); err != nil {
		return err
	}
	return tx.Commit()
}

// Complete reports whether every entity has a stored snapshot, i.e.
// offline reads can serve a consistent view.
func (c *Cache) Complete() (bool, error) {
	var count int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM snapshot_meta").Scan(&count); err != nil {
		return false, err
	}
	return count == 4, nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	return rows.Close()
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "ankadash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "ankadash")
}

// CachePath returns the full path to the snapshot database.
func CachePath() string {
	return filepath.Join(CacheDir(), "snapshot.db")
}
