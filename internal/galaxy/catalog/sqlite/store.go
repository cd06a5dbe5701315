// Package sqlite persists admitted custom systems into a SQLite catalog so
// other tools can query sectors without re-running the loaders.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/louisbranch/stellarforge/internal/galaxy/catalog/sqlite/migrations"
	"github.com/louisbranch/stellarforge/internal/galaxy/jsondef"
	"github.com/louisbranch/stellarforge/internal/galaxy/sector"
	"github.com/louisbranch/stellarforge/internal/galaxy/system"
	"github.com/louisbranch/stellarforge/internal/platform/storage/sqlitemigrate"
)

// Store writes custom system records into a SQLite catalog.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the catalog at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSystem upserts one admitted system, serialized to its document shape.
func (s *Store) PutSystem(ctx context.Context, sys *system.System) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := jsondef.SaveToJSON(sys)
	if err != nil {
		return fmt.Errorf("serialize system %s: %w", sys.Name, err)
	}
	const insertSQL = `
INSERT INTO systems (sector_x, sector_y, sector_z, system_index, name, num_stars, doc, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (sector_x, sector_y, sector_z, system_index) DO UPDATE SET
	name = excluded.name,
	num_stars = excluded.num_stars,
	doc = excluded.doc`
	_, err = s.sqlDB.ExecContext(ctx, insertSQL,
		sys.SectorX, sys.SectorY, sys.SectorZ, sys.SystemIndex,
		sys.Name, sys.NumStars, string(doc), time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("insert system %s: %w", sys.Name, err)
	}
	return nil
}

// PutRegistry writes every admitted system across every sector.
func (s *Store) PutRegistry(ctx context.Context, registry *sector.Registry) error {
	for _, coord := range registry.Coords() {
		for _, sys := range registry.Systems(coord) {
			if err := s.PutSystem(ctx, sys); err != nil {
				return err
			}
		}
	}
	return nil
}

// SystemDocsForSector returns the stored documents for one sector in
// admission order.
func (s *Store) SystemDocsForSector(ctx context.Context, c sector.Coord) ([]json.RawMessage, error) {
	const querySQL = `
SELECT doc FROM systems
WHERE sector_x = ? AND sector_y = ? AND sector_z = ?
ORDER BY system_index`
	rows, err := s.sqlDB.QueryContext(ctx, querySQL, c.X, c.Y, c.Z)
	if err != nil {
		return nil, fmt.Errorf("query sector (%d,%d,%d): %w", c.X, c.Y, c.Z, err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan system doc: %w", err)
		}
		docs = append(docs, json.RawMessage(doc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sector (%d,%d,%d): %w", c.X, c.Y, c.Z, err)
	}
	return docs, nil
}
