package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"

	"life-web/internal/config"
	"life-web/internal/logging"
	"life-web/internal/sim"
	"life-web/internal/web"
)

func main() {
	cfg, ignored, err := config.Load(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	closer, err := logging.Setup(logging.Options{Debug: cfg.Debug, Dir: cfg.LogDir})
	if err != nil {
		log.WithError(err).Fatal("set up logging")
	}
	for _, name := range ignored {
		log.WithField("env", name).Warn("could not parse environment variable, using default")
	}

	err = run(cfg)
	if err != nil {
		log.WithError(err).Error("server stopped")
	}
	closer.Close()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	state := sim.New(cfg.Sim())
	if err := state.Initialize(cfg.Width, cfg.Height, cfg.Velocity); err != nil {
		return err
	}

	srv, err := web.New(state)
	if err != nil {
		return err
	}
	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(log.Fields{"addr": httpSrv.Addr, "debug": cfg.Debug}).Info("listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
