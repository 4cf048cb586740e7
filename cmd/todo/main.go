// Package main is the entry point for the todo shell.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/backend/memory"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/output"
	"todo/internal/ui"
)

func main() {
	configDir := flag.String("config", "", "override config directory")
	debug := flag.Bool("debug", false, "print debug logs to stderr")
	quiet := flag.Bool("quiet", false, "suppress banners and success messages")
	noColor := flag.Bool("no-color", false, "disable styled output")
	startInViewer := flag.Bool("tui", false, "start in the full-screen viewer")
	flag.Parse()

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg, err := config.New(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitcode.UserError)
	}
	cfg.Debug = *debug
	cfg.Quiet = *quiet
	if *noColor {
		cfg.Color = false
	}

	logger := logging.New(os.Stderr, cfg.Debug)
	renderer := output.NewRenderer(output.Options{Color: cfg.Color, Icons: cfg.Icons})

	// The session store. Everything in it is gone when the process ends.
	store := memory.New()

	if *startInViewer {
		if err := ui.Run(ctx, store); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(exitcode.UserError)
		}
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, cfg, store, renderer)
	shell := cli.NewShell(dispatcher, cfg, renderer, logger, os.Stdin, os.Stdout, os.Stderr)
	os.Exit(shell.Run(ctx))
}
