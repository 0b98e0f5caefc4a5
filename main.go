package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/soocke/chart-digitizer-go/app"
	"github.com/soocke/chart-digitizer-go/config"
	"github.com/soocke/chart-digitizer-go/debug"
)

func main() {
	cfgPath := flag.String("config", "chart-digitizer.json", "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)

	level := slog.LevelInfo
	if *debugFlag || cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	if *debugFlag || cfg.Debug {
		debug.StartGoroutineLogger(2*time.Second, logger)
		debug.StartMemLogger(2*time.Second, logger)
	}

	container := app.BuildContainer(cfg, logger)
	application := app.NewApp("Chart Digitizer", container)
	application.Start()
}
