// Package ledger persists an append-only journal of companion activity
// (crafts, moves, resets, syncs) and observed market prices in a local
// SQLite database. The journal is written by an event-bus subscriber,
// never directly by the services that perform the operations.
package ledger

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/logger"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Operation is one journal row describing a single companion action.
type Operation struct {
	ID           int64  `json:"id"`
	OccurredAt   int64  `json:"occurred_at"`
	Kind         string `json:"kind"`
	PlayerID     string `json:"player_id"`
	Material     string `json:"material,omitempty"`
	Quantity     int    `json:"quantity,omitempty"`
	FromLocation string `json:"from_location,omitempty"`
	ToLocation   string `json:"to_location,omitempty"`
	Detail       string `json:"detail,omitempty"`
}

// Store is a SQLite-backed activity ledger.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the ledger database at path and applies
// any pending embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(ErrMsgEmptyPath)
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtOpenFailed, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf(ErrFmtPingFailed, err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf(ErrFmtMigrateFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgOpened, "path", cleanPath)
	return &Store{db: db, path: cleanPath}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

// Close closes the underlying database handle. Safe to call on a nil store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	logger.Debug(LogMsgClosed, "path", s.path)
	return s.db.Close()
}

// Ping reports whether the ledger database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New(ErrMsgEmptyPath)
	}
	return s.db.PingContext(ctx)
}

// Path returns the filesystem location of the ledger database.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// RecordOperation appends one row to the operations journal. A zero
// OccurredAt is filled with the current time.
func (s *Store) RecordOperation(ctx context.Context, op Operation) error {
	if op.OccurredAt == 0 {
		op.OccurredAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO operations (occurred_at, kind, player_id, material, quantity, from_location, to_location, detail)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		op.OccurredAt, op.Kind, op.PlayerID, op.Material, op.Quantity, op.FromLocation, op.ToLocation, op.Detail)
	if err != nil {
		return fmt.Errorf(ErrFmtInsertFailed, "operations", err)
	}
	return nil
}

// RecordPricePoints appends one price_history row per material price,
// all stamped with the same observation time and source.
func (s *Store) RecordPricePoints(ctx context.Context, recordedAt time.Time, source string, prices []domain.MaterialPrice) error {
	if len(prices) == 0 {
		return nil
	}
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf(ErrFmtInsertFailed, "price_history", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO price_history (recorded_at, material, price, source) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf(ErrFmtInsertFailed, "price_history", err)
	}
	defer func() { _ = stmt.Close() }()

	ts := recordedAt.Unix()
	for _, p := range prices {
		if _, err := stmt.ExecContext(ctx, ts, p.Material, p.Price, source); err != nil {
			return fmt.Errorf(ErrFmtInsertFailed, "price_history", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf(ErrFmtInsertFailed, "price_history", err)
	}
	return nil
}

// RecentOperations returns journal rows newest-first, paged by limit and
// offset. Limit must be positive; offset values below zero read from the
// start.
func (s *Store) RecentOperations(ctx context.Context, limit, offset int) ([]Operation, error) {
	if limit <= 0 {
		return nil, fmt.Errorf(ErrFmtBadLimit, domain.ErrInvalidInput, limit)
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, occurred_at, kind, player_id, material, quantity, from_location, to_location, detail
		 FROM operations
		 ORDER BY occurred_at DESC, id DESC
		 LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtQueryFailed, "operations", err)
	}
	defer func() { _ = rows.Close() }()

	var ops []Operation
	for rows.Next() {
		var op Operation
		if err := rows.Scan(&op.ID, &op.OccurredAt, &op.Kind, &op.PlayerID,
			&op.Material, &op.Quantity, &op.FromLocation, &op.ToLocation, &op.Detail); err != nil {
			return nil, fmt.Errorf(ErrFmtScanFailed, "operations", err)
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrFmtQueryFailed, "operations", err)
	}
	return ops, nil
}

// CountsByKind returns the total number of journal rows per operation kind.
func (s *Store) CountsByKind(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, COUNT(*) FROM operations GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtQueryFailed, "operations", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf(ErrFmtScanFailed, "operations", err)
		}
		counts[kind] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrFmtQueryFailed, "operations", err)
	}
	return counts, nil
}

// PriceHistory returns recorded price points for a material at or after
// since, oldest-first. It satisfies market.HistoryReader.
func (s *Store) PriceHistory(ctx context.Context, material string, since time.Time) ([]domain.PricePoint, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT material, price, source, recorded_at
		 FROM price_history
		 WHERE material = ? AND recorded_at >= ?
		 ORDER BY recorded_at ASC, id ASC`, material, since.Unix())
	if err != nil {
		return nil, fmt.Errorf(ErrFmtQueryFailed, "price_history", err)
	}
	defer func() { _ = rows.Close() }()

	var points []domain.PricePoint
	for rows.Next() {
		var p domain.PricePoint
		if err := rows.Scan(&p.Material, &p.Price, &p.Source, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf(ErrFmtScanFailed, "price_history", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrFmtQueryFailed, "price_history", err)
	}
	return points, nil
}
