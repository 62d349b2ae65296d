package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/tailored-agentic-units/events/delegate"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to a JSON, YAML or TOML config file")
		verbose    = flag.Bool("verbose", false, "Log delegate events at debug level (overrides config)")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configFile != "" {
		loaded, err := LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	if *verbose {
		cfg.LogLevel = "debug"
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	counter := registerObservers(logger)

	if err := run(&cfg, os.Stdout); err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	logger.Info(
		"delegate activity",
		slog.Int("subscribes", counter.Count(delegate.EventSubscribe)),
		slog.Int("broadcasts", counter.Count(delegate.EventBroadcastStart)),
		slog.Int("cancellations", counter.Count(delegate.EventCancel)),
	)
}
