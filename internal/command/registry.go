// Package command implements the registry and dispatcher behind rpcctl's
// subcommands. Commands are registered once at startup and receive a
// validated sunrpc handle; nothing here re-resolves mounts or re-checks
// the control directory.
package command

import (
	"context"
	"fmt"
	"io"

	"github.com/linux-nfs/rpcctl/internal/sunrpc"
)

// Handler executes one command against the validated sunrpc directory.
// The returned error is mirrored to the process outcome unmodified; wrap
// it in an ExitError to control the exit code.
type Handler interface {
	Run(ctx context.Context, h sunrpc.Handle, args []string, out io.Writer) error
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(ctx context.Context, h sunrpc.Handle, args []string, out io.Writer) error

func (f HandlerFunc) Run(ctx context.Context, h sunrpc.Handle, args []string, out io.Writer) error {
	return f(ctx, h, args, out)
}

// Spec describes one registrable command
type Spec struct {
	// Name is the subcommand name; unique within a registry
	Name string
	// Usage is the one-line argument summary shown in the usage listing
	Usage string
	// Handler runs the command
	Handler Handler
}

// Registry maps command names to handlers. It is populated once at
// process startup and read-only afterwards.
type Registry struct {
	name  string
	order []string
	specs map[string]Spec
}

// NewRegistry creates an empty registry for the named program
func NewRegistry(name string) *Registry {
	return &Registry{
		name:  name,
		specs: make(map[string]Spec),
	}
}

// Register adds a command to the registry. Registering two commands under
// the same name is a defect in the registration code, not a runtime
// condition, so it panics instead of returning an error.
func (r *Registry) Register(s Spec) {
	if s.Name == "" {
		panic("command: Register with empty name")
	}
	if s.Handler == nil {
		panic(fmt.Sprintf("command: Register %q with nil handler", s.Name))
	}
	if _, exists := r.specs[s.Name]; exists {
		panic(fmt.Sprintf("command: Register called twice for %q", s.Name))
	}

	r.specs[s.Name] = s
	r.order = append(r.order, s.Name)
}

// Names returns the registered command names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Dispatch resolves args to exactly one handler and runs it. With no args
// it falls back to the built-in usage handler, which prints the command
// listing and the resolved sunrpc directory and succeeds.
func (r *Registry) Dispatch(ctx context.Context, h sunrpc.Handle, args []string, out io.Writer) error {
	if len(args) == 0 {
		r.printUsage(h, out)
		return nil
	}

	spec, ok := r.specs[args[0]]
	if !ok {
		return &UnknownCommandError{Name: args[0], Known: r.Names()}
	}

	return spec.Handler.Run(ctx, h, args[1:], out)
}

func (r *Registry) printUsage(h sunrpc.Handle, out io.Writer) {
	fmt.Fprintf(out, "usage: %s [flags] [command [args...]]\n\ncommands:\n", r.name)
	for _, name := range r.order {
		fmt.Fprintf(out, "  %s %s\n", name, r.specs[name].Usage)
	}
	fmt.Fprintf(out, "\nsunrpc dir: %s\n", h.Path())
}
