package main

import (
	"context"
	"flag"
	"os"

	catalogimporter "github.com/louisbranch/stellarforge/internal/cmd/catalogimporter"
	entrypoint "github.com/louisbranch/stellarforge/internal/platform/cmd"
)

func main() {
	cfg, err := catalogimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		entrypoint.Exitf("Error: %v", err)
	}

	if err := catalogimporter.Run(context.Background(), cfg); err != nil {
		entrypoint.Exitf("Error: %v", err)
	}
}
