package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/fastygo/agrofocus/domain"
)

// CommandHandler runs one named client command with its arguments.
type CommandHandler func(ctx context.Context, args []string) error

// Command is a registered handler plus its help line.
type Command struct {
	Name    string
	Usage   string
	Handler CommandHandler
}

// ErrUnknownCommand is returned for names nobody registered.
var ErrUnknownCommand = domain.NewError(domain.ErrCodeNotFound, "unknown command")

type Dispatcher struct {
	commands map[string]Command
	aliases  map[string]string
	mu       sync.RWMutex
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		commands: make(map[string]Command),
		aliases:  make(map[string]string),
	}
}

func (d *Dispatcher) RegisterCommand(cmd Command, aliases ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.commands[cmd.Name] = cmd
	for _, a := range aliases {
		d.aliases[a] = cmd.Name
	}
}

func (d *Dispatcher) ExecuteCommand(ctx context.Context, name string, args []string) error {
	d.mu.RLock()
	if target, ok := d.aliases[name]; ok {
		name = target
	}
	cmd, ok := d.commands[name]
	d.mu.RUnlock()
	if !ok {
		return ErrUnknownCommand
	}
	return cmd.Handler(ctx, args)
}

// Commands returns the registered commands sorted by name.
func (d *Dispatcher) Commands() []Command {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Command, 0, len(d.commands))
	for _, c := range d.commands {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
