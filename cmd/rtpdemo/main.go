// rtpdemo wires a stub random-teleport provider into a Registry and runs one
// requirements → locate → teleport → time round trip for a handful of demo
// players.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/continuum-dev/rtpapi"
	"github.com/continuum-dev/rtpapi/biome"
)

const ConfigPath = "config/rtpdemo.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	slog.Info("rtpdemo starting")

	// Load config
	cfgPath := ConfigPath
	if p := os.Getenv("RTPAPI_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.Info("config loaded", "world", cfg.WorldName, "players", cfg.Players, "workers", cfg.Workers)

	// Wire the provider the way a host would: explicit registry, explicit
	// scheduler, no globals.
	sched := newPooledScheduler(cfg.Workers)
	registry := rtpapi.NewRegistry(sched)
	meta := rtpapi.PluginMeta{Name: "rtpdemo", Version: "0.1.0"}
	if err := registry.Register(meta, uniformProvider{}); err != nil {
		return fmt.Errorf("registering provider: %w", err)
	}

	api, err := registry.APIOrErr()
	if err != nil {
		return fmt.Errorf("locating provider: %w", err)
	}
	slog.Info("provider registered", "plugin", meta.Name, "version", meta.Version)

	world := demoWorld{name: cfg.WorldName}
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < cfg.Players; i++ {
		player := demoPlayer{id: uuid.New(), name: fmt.Sprintf("Demo_%d", i+1)}

		g.Go(func() error {
			dest := api.LocateWith(world, func(r *rtpapi.Requirements) {
				r.RequireBiome(biome.Desert)
				r.RequireBounds(cfg.Bounds.MinX, cfg.Bounds.MaxX, cfg.Bounds.MinZ, cfg.Bounds.MaxZ)
			}, true)

			took, err := rtpapi.Time(gctx, api.TeleportTo(dest, player))
			if err != nil {
				return fmt.Errorf("teleporting %s: %w", player.Name(), err)
			}

			loc, _ := dest.Await(gctx)
			slog.Info("teleported",
				"player", player.Name(),
				"dest", [3]int32{loc.X, loc.Y, loc.Z},
				"took", took)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("rtpdemo done")
	return nil
}
