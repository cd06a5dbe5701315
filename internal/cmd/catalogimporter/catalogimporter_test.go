package catalogimporter

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("catalog-importer", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.SystemsDir != "data/systems" {
		t.Fatalf("expected default systems dir, got %q", cfg.SystemsDir)
	}
	if cfg.CatalogPath != "systems.db" {
		t.Fatalf("expected default catalog path, got %q", cfg.CatalogPath)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("STELLARFORGE_CATALOG_PATH", "/var/lib/catalog.db")
	fs := flag.NewFlagSet("catalog-importer", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-systems-dir", "/opt/systems"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.SystemsDir != "/opt/systems" {
		t.Fatalf("expected flag override, got %q", cfg.SystemsDir)
	}
	if cfg.CatalogPath != "/var/lib/catalog.db" {
		t.Fatalf("expected env override, got %q", cfg.CatalogPath)
	}
}

func TestRunImportsIntoCatalog(t *testing.T) {
	dir := t.TempDir()
	doc := `{
		"name": "Waypoint", "stars": ["STAR_G"],
		"sectorX": 2, "sectorY": 0, "sectorZ": -1, "pos": [0.5, 0.5, 0.5],
		"bodies": [{"name": "Waypoint", "type": "STAR_G", "radius": 1, "mass": 1, "averageTemp": 5700}]
	}`
	if err := os.WriteFile(filepath.Join(dir, "waypoint.json"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write definition: %v", err)
	}

	catalogPath := filepath.Join(t.TempDir(), "catalog.db")
	cfg := Config{SystemsDir: dir, CatalogPath: catalogPath}
	if err := Run(context.Background(), cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	sqlDB, err := sql.Open("sqlite", catalogPath)
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer sqlDB.Close()

	var count int
	if err := sqlDB.QueryRow("SELECT COUNT(1) FROM systems").Scan(&count); err != nil {
		t.Fatalf("count systems: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 imported system, got %d", count)
	}
}
