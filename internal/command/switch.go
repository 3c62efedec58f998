package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/linux-nfs/rpcctl/internal/log"
	"github.com/linux-nfs/rpcctl/internal/sunrpc"
)

// NewSwitchCommand inspects transport switches and retargets every
// transport of a switch at once.
func NewSwitchCommand() Spec {
	return Spec{
		Name:    "switch",
		Usage:   "show [name] | set <name> dstaddr <addr>",
		Handler: HandlerFunc(runSwitch),
	}
}

func runSwitch(_ context.Context, h sunrpc.Handle, args []string, out io.Writer) error {
	verb, rest := splitVerb(args)
	switch verb {
	case "", "show":
		return showSwitches(h, rest, out)
	case "set":
		return setSwitch(h, rest, out)
	default:
		return fmt.Errorf("switch: unknown action %q (want show or set)", verb)
	}
}

func showSwitches(h sunrpc.Handle, args []string, out io.Writer) error {
	var switches []sunrpc.Switch

	if len(args) > 0 {
		s, err := h.Switch(args[0])
		if err != nil {
			return err
		}
		switches = append(switches, s)
	} else {
		var err error
		switches, err = h.Switches()
		if err != nil {
			return err
		}
	}

	for _, s := range switches {
		if err := printSwitch(s, out); err != nil {
			return err
		}
	}

	return nil
}

func printSwitch(s sunrpc.Switch, out io.Writer) error {
	info, err := s.Info()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: xprts %d, active %d, queue %d\n",
		s.Name, info.NumXprts, info.NumActive, info.QueueLen)

	xprts, err := s.Xprts()
	if err != nil {
		return err
	}
	for _, x := range xprts {
		fmt.Fprintf(out, "  %s\n", describeXprt(x))
	}
	return nil
}

// setSwitch handles "switch set <name> dstaddr <addr>": the new address
// goes to every transport of the switch.
func setSwitch(h sunrpc.Handle, args []string, out io.Writer) error {
	if len(args) != 3 || args[1] != "dstaddr" {
		return fmt.Errorf("switch set: usage: switch set <name> dstaddr <addr>")
	}
	name, addr := args[0], args[2]

	s, err := h.Switch(name)
	if err != nil {
		return err
	}

	xprts, err := s.Xprts()
	if err != nil {
		return err
	}
	if len(xprts) == 0 {
		return fmt.Errorf("switch %s has no xprts", name)
	}

	for _, x := range xprts {
		if err := x.SetDstAddr(addr); err != nil {
			return fmt.Errorf("set dstaddr of %s: %w", x.Name, err)
		}
		log.Debug("dstaddr updated", "xprt", x.Name, "dstaddr", addr)
	}

	fmt.Fprintf(out, "%s: dstaddr set to %s on %s\n",
		name, addr, strings.Join(xprtNames(xprts), ", "))
	return nil
}

func xprtNames(xprts []sunrpc.Xprt) []string {
	names := make([]string, len(xprts))
	for i, x := range xprts {
		names[i] = x.Name
	}
	return names
}
