package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	systemsloader "github.com/louisbranch/stellarforge/internal/cmd/systemsloader"
)

func main() {
	cfg, err := systemsloader.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SYSTEMS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := systemsloader.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to load systems: %v", err)
	}
}
