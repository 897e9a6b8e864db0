// cmd/brightness/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"golang.org/x/sync/errgroup"

	"github.com/watsona4/brightness/internal/config"
	"github.com/watsona4/brightness/internal/health"
	"github.com/watsona4/brightness/internal/heartbeat"
	"github.com/watsona4/brightness/internal/logger"
	"github.com/watsona4/brightness/internal/metrics"
	"github.com/watsona4/brightness/internal/publisher"
	"github.com/watsona4/brightness/internal/publisher/mqtt"
	"github.com/watsona4/brightness/internal/sampler"
	"github.com/watsona4/brightness/internal/server"
	"github.com/watsona4/brightness/internal/status"
)

func main() {
	os.Exit(run())
}

func run() int {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(config.Path(os.Args))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		return 1
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config validation failed: %v\n", err)
		return 1
	}
	config.Normalize(cfg)

	log := logger.New(cfg.Log, os.Stdout)
	logger.RouteMQTT(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Broker (fail fast)
	// --------------------

	mq, err := mqtt.Dial(mqtt.Config{
		Host:           cfg.MQTT.Host,
		Port:           cfg.MQTT.Port,
		Username:       cfg.MQTT.Username,
		Password:       cfg.MQTT.Password,
		ClientIDPrefix: cfg.MQTT.ClientIDPrefix,
		KeepAlive:      time.Duration(cfg.MQTT.KeepAliveSec) * time.Second,
		Timeout:        time.Duration(cfg.MQTT.TimeoutMs) * time.Millisecond,
	}, log.With().Str(logger.Component, "mqtt").Logger())
	if err != nil {
		log.Error().Err(err).Msg("mqtt connect failed")
		return 1
	}
	defer mq.Close()

	if err := publisher.Announce(ctx, mq, cfg.MQTT); err != nil {
		log.Error().Err(err).Msg("discovery announce failed")
		return 1
	}

	// --------------------
	// Build pipeline
	// --------------------

	built, err := publisher.Build(*cfg, mq, metrics.ObservePublish)
	if err != nil {
		log.Error().Err(err).Msg("publisher build failed")
		return 1
	}
	defer func() {
		if err := built.Close(); err != nil {
			log.Warn().Err(err).Msg("sink close failed")
		}
	}()

	smp, err := sampler.Build(*cfg)
	if err != nil {
		log.Error().Err(err).Msg("sampler build failed")
		return 1
	}

	rec, err := heartbeat.NewRecorder(cfg.Heartbeat.File)
	if err != nil {
		log.Error().Err(err).Msg("heartbeat setup failed")
		return 1
	}

	orch := &orchestrator{
		pub:          built.Publisher,
		heartbeat:    rec,
		tracker:      status.NewTracker(),
		statusWriter: built.Status,
		log:          log.With().Str(logger.Component, "orchestrator").Logger(),
		now:          time.Now,
		tick:         time.Second,
	}

	log.Info().
		Strs("sinks", built.Publisher.Sinks()).
		Str(logger.Topic, cfg.MQTT.Topic).
		Str("heartbeat", rec.Path()).
		Int("interval_ms", cfg.Sample.IntervalMs).
		Msg("worker started")

	// --------------------
	// Run
	// --------------------

	out := make(chan sampler.SampleResult)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		smp.Run(gctx, out)
		return nil
	})
	g.Go(func() error {
		return orch.run(gctx, out)
	})

	if cfg.Metrics.Listen != "" {
		registry := health.Build(*cfg, time.Now)
		engine := server.NewEngine(registry, time.Duration(cfg.Health.TimeoutMs)*time.Millisecond)
		g.Go(func() error {
			return server.Run(gctx, cfg.Metrics.Listen, engine, log.With().Str(logger.Component, "http").Logger())
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("worker failed")
		return 1
	}

	log.Info().Msg("worker stopped")
	return 0
}
