package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := NewRegistry(
		&MigrateCommand{},
		&CheckDBCommand{},
		&ValidateRosterCommand{},
		&DumpFleetCommand{},
		&SimulateBounceCommand{},
	)

	if err := registry.Dispatch(os.Args[1:]); err != nil {
		PrintError("%v", err)
		if errors.Is(err, errUnknownCommand) {
			registry.PrintHelp()
		}
		os.Exit(1)
	}
}
