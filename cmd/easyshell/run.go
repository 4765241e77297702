package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"easyshell/internal/lifecycle"
	"easyshell/internal/logging"
	"easyshell/internal/supervisor"
	"easyshell/internal/ui"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Launch the backend and serve its endpoint until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), ctx)
		},
	}
}

// runShell drives a full application run against the headless engine:
// start the backend, publish its endpoint, then hold until an interrupt
// arrives and turn it into the same close signal a window would send.
func runShell(cmdCtx context.Context, ctx *commandContext) error {
	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	engine := ui.NewHeadless(logger)
	orch, err := lifecycle.New(cfg, logger, supervisor.New(logger), engine, engine)
	if err != nil {
		return fmt.Errorf("create orchestrator: %w", err)
	}

	dispatcher := ui.NewDispatcher()
	if err := orch.BindSignals(dispatcher); err != nil {
		return fmt.Errorf("bind signals: %w", err)
	}

	// The engine would run startup on a background task while its event
	// loop spins; the headless equivalent is a goroutine feeding a channel.
	startupErr := make(chan error, 1)
	go func() {
		startupErr <- orch.Startup(signalCtx)
	}()

	if err := <-startupErr; err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("startup: %w", err)
	}

	// A real frontend fires this after its first paint.
	if err := dispatcher.Dispatch(ui.SignalFrontendReady); err != nil {
		logger.Warn("dispatch frontend ready", logging.Error(err))
	}
	if ep, ok := orch.Endpoint(); ok {
		logger.Info("backend serving", logging.String(logging.FieldEndpoint, ep.URL()))
	}

	<-signalCtx.Done()
	logger.Info("easyshell shutting down")
	return dispatcher.Dispatch(ui.SignalCloseRequested)
}
