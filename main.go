package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"watchface-monitor/cmd"
	"watchface-monitor/internal/config"
	"watchface-monitor/internal/logging"

	"go.uber.org/zap"
)

// main is the entry point of the application.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration: "+err.Error())
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig, ok := <-sigChan
		if !ok {
			return
		}
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	cmd.Execute(ctx, cfg, logger)
	signal.Stop(sigChan)
}
