package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

var Version string

func setupLogging() {
	// Stdout carries the workflow commands, so logs go to stderr.
	log.SetOutput(os.Stderr)

	log.SetLevel(log.InfoLevel)
	if runnerDebug() {
		log.SetLevel(log.DebugLevel)
	}

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

// runnerDebug reports whether the workflow run has step debug logging on.
func runnerDebug() bool {
	return os.Getenv("RUNNER_DEBUG") == "1"
}

func main() {
	setupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := &Cli{}
	if err := cli.Execute(ctx); err != nil {
		if !errors.Is(err, ErrFindings) {
			// Surface the failure on the workflow run, like core.setFailed.
			fmt.Fprintf(os.Stdout, "::error::%s\n", err)
		}
		log.Errorf("Error executing command: %v", err)
		stop()
		os.Exit(1)
	}
}
