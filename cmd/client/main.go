package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/harrylevesque/userdeck/internal/client"
	"github.com/harrylevesque/userdeck/internal/config"
	"github.com/harrylevesque/userdeck/internal/edit"
	"github.com/harrylevesque/userdeck/internal/mobile"
	"github.com/harrylevesque/userdeck/internal/roster"
	"github.com/harrylevesque/userdeck/internal/utils"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(utils.FindConfigDir())
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("userdeck", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "users service base URL")
	fs.DurationVar(&cfg.FetchDelay, "delay", cfg.FetchDelay, "deferred start before each fetch (0 disables)")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := utils.NewLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.Info("starting screen", zap.String("server", cfg.ServerURL), zap.Duration("fetch_delay", cfg.FetchDelay))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	api := client.New(cfg.ServerURL, client.WithLogger(logger.Named("client")))
	list := roster.New(api, roster.WithDelay(cfg.FetchDelay), roster.WithLogger(logger.Named("roster")))
	wf := edit.New(api, list, logger.Named("edit"))

	start := time.Now()
	_, err = tea.NewProgram(mobile.New(ctx, list, wf), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	logger.Info("screen closed", zap.Duration("uptime", time.Since(start)), zap.Error(err))
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
