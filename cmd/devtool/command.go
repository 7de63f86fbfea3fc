package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
)

const confirmYes = "yes"

var errUnknownCommand = errors.New("unknown command")

// Command interface that all devtool commands must implement
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a registry holding cmds
func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, cmd := range cmds {
		r.Register(cmd)
	}
	return r
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all registered commands sorted by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// Dispatch runs the command named by args[0] with the remaining arguments
func (r *Registry) Dispatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: none given", errUnknownCommand)
	}
	cmd, ok := r.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, args[0])
	}
	return cmd.Run(args[1:])
}

// PrintHelp prints the usage information to stdout
func (r *Registry) PrintHelp() {
	r.writeHelp(os.Stdout)
}

func (r *Registry) writeHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: devtool <command> [args...]")
	fmt.Fprintln(w, "\nAvailable Commands:")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cmd := range r.List() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name(), cmd.Description())
	}
	_ = tw.Flush()
}
