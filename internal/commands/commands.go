package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
)

const prefix = "cmd "

var (
	ErrMissing = errors.New("missing subcommand")
	ErrUnknown = errors.New("unknown command")
)

// Command is a subcommand. Build defines its flags on a fresh FlagSet and returns the
// function run after a successful Parse, so flag values never leak between calls.
type Command struct {
	Name  string
	Usage string
	Build func(fs *flag.FlagSet) func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
// Commands write their replies through Print.
type Registry struct {
	cmds  map[string]*Command
	Print func(line string)
}

// NewRegistry returns a registry that only knows "help". out receives command output;
// nil discards it.
func NewRegistry(out func(line string)) *Registry {
	if out == nil {
		out = func(string) {}
	}
	r := &Registry{cmds: make(map[string]*Command), Print: out}
	r.Register("help", "list commands", func(*flag.FlagSet) func() error {
		return func() error {
			for _, l := range r.Help() {
				r.Print(l)
			}
			return nil
		}
	})
	return r
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "grid").
func (r *Registry) Register(name, usage string, build func(fs *flag.FlagSet) func() error) {
	r.cmds[name] = &Command{Name: name, Usage: usage, Build: build}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Help returns one "name: usage" line per command.
func (r *Registry) Help() []string {
	var out []string
	for _, n := range r.Names() {
		out = append(out, n+": "+r.cmds[n].Usage)
	}
	return out
}

// Parse interprets line as a terminal line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from the command itself.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissing
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.Build(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return run()
}
