// Package command implements a small named-command registry with word
// arguments and suggestion lists.
package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrCommandNotFound is returned when executing an unregistered command.
	ErrCommandNotFound = errors.New("command not found")
	// ErrTooManyArgs is returned by ExecuteLine for surplus words.
	ErrTooManyArgs = errors.New("too many arguments")
)

// MissingArgError reports a required word argument that was not supplied.
type MissingArgError struct {
	Command string
	Arg     string
}

func (e *MissingArgError) Error() string {
	return fmt.Sprintf("command %s: missing argument %q", e.Command, e.Arg)
}

// Handler runs a command invocation.
type Handler func(ctx context.Context, inv Invocation) error

// Invocation carries the arguments of one command execution.
type Invocation struct {
	Name string
	args map[string]string
}

// Arg returns the value of a word argument.
func (i Invocation) Arg(name string) string {
	return i.args[name]
}

// Command is a registered command.
type Command struct {
	Name        string
	Args        []string
	Suggestions []string
	handler     Handler
}

// Registry maps command names to commands. The zero value is not usable; use NewRegistry.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register stores cmd, replacing any command with the same name.
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil || cmd.Name == "" {
		return errors.New("command: name is required")
	}
	if cmd.handler == nil {
		return fmt.Errorf("command %s: no handler", cmd.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[cmd.Name] = cmd
	return nil
}

// Unregister removes a command. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, name)
}

// Get returns a registered command.
func (r *Registry) Get(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the registered command names sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the named command with the given word arguments.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]string) error {
	cmd, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}
	for _, a := range cmd.Args {
		if strings.TrimSpace(args[a]) == "" {
			return &MissingArgError{Command: name, Arg: a}
		}
	}
	inv := Invocation{Name: name, args: make(map[string]string, len(args))}
	for k, v := range args {
		inv.args[k] = v
	}
	return cmd.handler(ctx, inv)
}

// ExecuteLine runs argv[0] mapping the following words positionally onto the
// command's word arguments.
func (r *Registry) ExecuteLine(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("%w: empty command line", ErrCommandNotFound)
	}
	cmd, ok := r.Get(argv[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, argv[0])
	}
	words := argv[1:]
	if len(words) > len(cmd.Args) {
		return fmt.Errorf("command %s: %w: expected %d, got %d", cmd.Name, ErrTooManyArgs, len(cmd.Args), len(words))
	}
	args := make(map[string]string, len(cmd.Args))
	for i, w := range words {
		args[cmd.Args[i]] = w
	}
	return r.Execute(ctx, cmd.Name, args)
}

// Suggest returns the suggestions of a command starting with prefix, ignoring case.
func (r *Registry) Suggest(name, prefix string) []string {
	cmd, ok := r.Get(name)
	if !ok {
		return nil
	}
	prefix = strings.ToLower(prefix)
	var out []string
	for _, s := range cmd.Suggestions {
		if strings.HasPrefix(strings.ToLower(s), prefix) {
			out = append(out, s)
		}
	}
	return out
}

// Usage renders a one-line usage string such as "checkProfLevels <player>".
func (c *Command) Usage() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for _, a := range c.Args {
		b.WriteString(" <")
		b.WriteString(a)
		b.WriteString(">")
	}
	return b.String()
}
