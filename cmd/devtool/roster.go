package main

import (
	"github.com/osse101/Scavenger_Go/internal/config"
	"github.com/osse101/Scavenger_Go/internal/validation"
)

type ValidateRosterCommand struct{}

func (c *ValidateRosterCommand) Name() string {
	return "validate-roster"
}

func (c *ValidateRosterCommand) Description() string {
	return "Validate a roster file against the roster schema [path]"
}

func (c *ValidateRosterCommand) Run(args []string) error {
	path := config.ConfigPathRoster
	if len(args) > 0 {
		path = args[0]
	}

	PrintHeader("Validating " + path)
	if err := validation.NewSchemaValidator().ValidateFile(path, validation.SchemaRoster); err != nil {
		return err
	}

	PrintSuccess("Roster is valid")
	return nil
}
