// Package main runs inferno: the world, the console and the NPC engine behind
// a terminal frontend.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/inferno/internal/config"
	"github.com/cory-johannsen/inferno/internal/game/command"
	"github.com/cory-johannsen/inferno/internal/game/session"
	"github.com/cory-johannsen/inferno/internal/game/world"
	"github.com/cory-johannsen/inferno/internal/gameserver"
	"github.com/cory-johannsen/inferno/internal/lifecycle"
	"github.com/cory-johannsen/inferno/internal/observability"
	"github.com/cory-johannsen/inferno/internal/tui"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	worldFile := flag.String("world", "", "path to the world YAML file; overrides content.world_file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *worldFile != "" {
		cfg.Content.WorldFile = *worldFile
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	w, err := world.LoadFromFile(cfg.Content.WorldFile)
	if err != nil {
		logger.Fatal("loading world", zap.String("file", cfg.Content.WorldFile), zap.Error(err))
	}
	logger.Info("world loaded",
		zap.Int("width", w.Map.Width),
		zap.Int("height", w.Map.Height),
		zap.Int("npcs", len(w.Placements())),
	)

	dispatcher := command.NewDispatcher(command.DefaultRegistry(), logger)
	sess, err := session.New(cfg, w, dispatcher, logger)
	if err != nil {
		logger.Fatal("creating session", zap.Error(err))
	}

	driver := gameserver.NewDriver(sess, cfg.Session.TickInterval, cfg.Session.EventBuffer, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lc := lifecycle.New(logger)
	lc.Add("ticker", &lifecycle.FuncService{
		StartFn: func() error {
			driver.Start(ctx)
			<-ctx.Done()
			return nil
		},
		StopFn: cancel,
	})
	lc.Add("tui", &lifecycle.FuncService{
		StartFn: func() error { return tui.Run(driver, cfg.Frontend) },
		StopFn:  cancel,
	})

	logger.Info("inferno ready", zap.Duration("startup", time.Since(start)))
	if err := lc.Run(ctx); err != nil {
		logger.Error("inferno stopped with error", zap.Error(err))
	}
}
