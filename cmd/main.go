/*
Package main is the entry point for the HushChat terminal client.

It is responsible for loading configuration, initializing the global logging
system with a file sink (the terminal belongs to the UI), wiring the HTTP API
client and the realtime channel, and running the Bubble Tea program until the
user quits or the OS interrupts it.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hushchat/internal/app/api"
	"hushchat/internal/app/session"
	"hushchat/internal/app/socket"
	"hushchat/internal/configs"
	"hushchat/internal/pkg/logx"
	"hushchat/internal/ui"
)

// dialTimeout bounds the initial realtime connection attempt so a dead
// server never blocks the UI from starting.
const dialTimeout = 5 * time.Second

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger writing to the log file
	logFile, err := logx.OpenLogFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logx.InitGlobalLogger(cfg.Environment == "development", logFile)
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Str("api_url", cfg.APIBaseURL).
		Str("ws_url", cfg.WSURL).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := &ui.Deps{
		Config:  cfg,
		API:     api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout),
		Session: session.NewStore(),
		Tokens:  session.NewTokenKeeper(cfg.TokenFile),
	}

	// A failed dial is not fatal: the UI still works over HTTP, realtime
	// operations just report the channel as down.
	dialCtx, cancelDial := context.WithTimeout(ctx, dialTimeout)
	client, err := socket.Dial(dialCtx, cfg.WSURL)
	cancelDial()
	if err != nil {
		logx.Warn("realtime channel unavailable", "error", err.Error(), "ws_url", cfg.WSURL)
		client = socket.Disconnected()
	}
	defer client.Close()
	deps.Socket = client

	program := tea.NewProgram(ui.NewApp(deps), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		logx.Fatal(err, "UI terminated abnormally")
	}

	logx.Info("Client stopped.")
}
