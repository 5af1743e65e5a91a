package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/harrylevesque/userdeck/internal/api"
	"github.com/harrylevesque/userdeck/internal/config"
	"github.com/harrylevesque/userdeck/internal/files"
	"github.com/harrylevesque/userdeck/internal/utils"
)

func main() {
	cfg, err := loadConfig(utils.FindConfigDir(), os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logger, err := utils.NewLogger(cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Close()

	store, err := files.LoadUserStore(cfg.SeedFile)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewRouter(store, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Users service running on %s (%d users)", cfg.ListenAddr, len(store.List()))
	logger.Info("listening", zap.String("addr", cfg.ListenAddr), zap.String("seed", cfg.SeedFile))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// loadConfig layers command-line flags over the file and environment config.
func loadConfig(dir string, args []string) (*config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	fs := flag.NewFlagSet("userdeck-server", flag.ContinueOnError)
	fs.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "listen address")
	fs.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "JSON array of users to serve (default: demo set)")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
