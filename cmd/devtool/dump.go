package main

import (
	"context"
	"fmt"

	"github.com/osse101/Scavenger_Go/internal/bootstrap"
	"github.com/osse101/Scavenger_Go/internal/codec"
	"github.com/osse101/Scavenger_Go/internal/config"
	"github.com/osse101/Scavenger_Go/internal/encounter"
)

const dumpJournalLimit = 5

type DumpFleetCommand struct{}

func (c *DumpFleetCommand) Name() string {
	return "dump-fleet"
}

func (c *DumpFleetCommand) Description() string {
	return "Print every stored scavenger with its latest journal entries"
}

func (c *DumpFleetCommand) Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	scavengers, err := store.Fleet.ListScavengers(ctx)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Scavengers (%d)", len(scavengers)))
	for _, s := range scavengers {
		fmt.Printf("%s [%s] holds %s\n", s.Name, s.Policy, codec.Describe(s.Held))

		entries, err := store.Fleet.GetJournal(ctx, s.Name, dumpJournalLimit)
		if err != nil {
			PrintWarning("Failed to read journal for %s: %v", s.Name, err)
			continue
		}
		fmt.Print(encounter.FormatJournal(entries))
	}
	return nil
}
