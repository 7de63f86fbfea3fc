package main

import (
	"fmt"
	"strconv"

	"github.com/osse101/Scavenger_Go/internal/bounce"
)

const defaultBounceTicks = 100

type SimulateBounceCommand struct{}

func (c *SimulateBounceCommand) Name() string {
	return "simulate-bounce"
}

func (c *SimulateBounceCommand) Description() string {
	return "Run the marble world for a number of ticks and print ball positions [ticks]"
}

func (c *SimulateBounceCommand) Run(args []string) error {
	ticks := defaultBounceTicks
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("ticks must be a non-negative number, got %q", args[0])
		}
		ticks = n
	}

	w := bounce.NewWorld()
	for i := 0; i < ticks; i++ {
		w = w.Tick()
	}

	PrintHeader(fmt.Sprintf("After %d ticks", ticks))
	for i, b := range w.Balls {
		fmt.Printf("ball %d at (%d, %d) heading %s\n", i+1, b.X, b.Y, b.Dir)
	}
	if !w.InBounds() {
		return fmt.Errorf("a ball left the world")
	}
	return nil
}
