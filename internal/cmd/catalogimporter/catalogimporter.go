// Package catalogimporter parses catalog-importer command flags and writes a
// full load pass into a SQLite catalog.
package catalogimporter

import (
	"context"
	"flag"
	"fmt"
	"log"

	catalogsqlite "github.com/louisbranch/stellarforge/internal/galaxy/catalog/sqlite"
	"github.com/louisbranch/stellarforge/internal/galaxy/faction"
	"github.com/louisbranch/stellarforge/internal/galaxy/jsondef"
	"github.com/louisbranch/stellarforge/internal/galaxy/luadef"
	"github.com/louisbranch/stellarforge/internal/galaxy/sector"
	entrypoint "github.com/louisbranch/stellarforge/internal/platform/cmd"
)

// Config holds catalog-importer command configuration.
type Config struct {
	SystemsDir  string `env:"SYSTEMS_DIR" envDefault:"data/systems"`
	CatalogPath string `env:"CATALOG_PATH" envDefault:"systems.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.SystemsDir, "systems-dir", cfg.SystemsDir, "The directory scanned for system definitions")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "The SQLite catalog path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads every system definition under the configured directory and
// upserts the admitted systems into the catalog.
func Run(ctx context.Context, cfg Config) error {
	registry := sector.New()
	factions := faction.NewRegistry()

	luadef.NewLoader(cfg.SystemsDir, registry, factions).Load()
	if err := jsondef.NewLoader(registry, factions).LoadDir(cfg.SystemsDir); err != nil {
		return fmt.Errorf("load JSON system definitions: %w", err)
	}

	store, err := catalogsqlite.Open(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()

	if err := store.PutRegistry(ctx, registry); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	log.Printf("imported %d custom system(s) into %s", registry.Count(), cfg.CatalogPath)
	return nil
}
