// Package systemsloader parses systems-loader command flags and runs a full
// load pass over the configured definition directory.
package systemsloader

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/stellarforge/internal/galaxy/faction"
	"github.com/louisbranch/stellarforge/internal/galaxy/jsondef"
	"github.com/louisbranch/stellarforge/internal/galaxy/luadef"
	"github.com/louisbranch/stellarforge/internal/galaxy/sector"
	entrypoint "github.com/louisbranch/stellarforge/internal/platform/cmd"
)

// Config holds systems-loader command configuration.
type Config struct {
	SystemsDir string `env:"SYSTEMS_DIR" envDefault:"data/systems"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.SystemsDir, "systems-dir", cfg.SystemsDir, "The directory scanned for system definitions")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads every script and document system definition under the
// configured directory and reports how many systems were admitted.
func Run(ctx context.Context, cfg Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	registry := sector.New()
	factions := faction.NewRegistry()

	luadef.NewLoader(cfg.SystemsDir, registry, factions).Load()
	if err := jsondef.NewLoader(registry, factions).LoadDir(cfg.SystemsDir); err != nil {
		return fmt.Errorf("load JSON system definitions: %w", err)
	}

	log.Printf("admitted %d custom system(s) across %d sector(s)", registry.Count(), len(registry.Coords()))
	return nil
}
