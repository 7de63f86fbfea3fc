package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/osse101/Scavenger_Go/internal/config"
)

const (
	defaultCheckAttempts = 30
	checkRetryInterval   = 2 * time.Second
	checkPingTimeout     = 2 * time.Second
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Wait for the configured database to accept connections [attempts]"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking database...")

	attempts := defaultCheckAttempts
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("attempts must be a positive number, got %q", args[0])
		}
		attempts = n
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = ping(cfg)
		if lastErr == nil {
			PrintSuccess("Database is ready (%s)", cfg.StorageDriver)
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", attempt, attempts, lastErr)
		if attempt < attempts {
			time.Sleep(checkRetryInterval)
		}
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", attempts, lastErr)
}

func ping(cfg *config.Config) error {
	db, _, closeDB, err := openSQL(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(context.Background(), checkPingTimeout)
	defer cancel()
	return db.PingContext(ctx)
}
