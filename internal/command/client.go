package command

import (
	"context"
	"fmt"
	"io"

	"github.com/linux-nfs/rpcctl/internal/log"
	"github.com/linux-nfs/rpcctl/internal/sunrpc"
)

// NewClientCommand inspects the live RPC clients and the transport
// switch each one runs on.
func NewClientCommand() Spec {
	return Spec{
		Name:    "client",
		Usage:   "show [name]",
		Handler: HandlerFunc(runClient),
	}
}

func runClient(_ context.Context, h sunrpc.Handle, args []string, out io.Writer) error {
	verb, rest := splitVerb(args)
	switch verb {
	case "", "show":
		return showClients(h, rest, out)
	default:
		return fmt.Errorf("client: unknown action %q (want show)", verb)
	}
}

func showClients(h sunrpc.Handle, args []string, out io.Writer) error {
	var clients []sunrpc.Client

	if len(args) > 0 {
		c, err := h.Client(args[0])
		if err != nil {
			return err
		}
		clients = append(clients, c)
	} else {
		var err error
		clients, err = h.Clients()
		if err != nil {
			return err
		}
	}

	for _, c := range clients {
		switchName, err := c.SwitchName()
		if err != nil {
			// The client can vanish between the listing and the readlink
			log.Warn("client disappeared while listing", "client", c.Name, "error", err)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", c.Name, switchName)
	}

	return nil
}
