package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/server"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	addr := flag.String("addr", "", "Listen address; overrides the config and "+config.AddrEnv+".")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger := log.Default()
	tetris.ConfigureDefault(cfg.SessionOptions(0, logger)...)
	registry := server.NewRegistry(cfg.Server.MaxSessions, func(id server.SessionId) *tetris.Session {
		return tetris.NewSession(cfg.SessionOptions(uint64(id), logger)...)
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.NewRouter(registry, cfg.TetrisGlyphs(), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown failed: %v", err)
	}
}
