package sunrpc

import (
	"fmt"
	"regexp"
	"strings"
)

// The kernel names transport directories "xprt-<id>-<type>", where type
// is the transport class (tcp, udp, rdma, local).
var xprtNamePattern = regexp.MustCompile(`^xprt-[0-9]+-([a-z0-9]+)$`)

// Xprt is one transport attached to a switch
type Xprt struct {
	// Name is the kernel's directory name, e.g. "xprt-0-tcp"
	Name string
	// Type is the transport class parsed from the name
	Type string
	// Switch is the name of the owning switch
	Switch string

	path string
}

// XprtInfo holds the fields of xprt_info this tool cares about
type XprtInfo struct {
	// Main reports whether this is the switch's main transport. The
	// kernel refuses to remove a main transport, and so does this tool.
	Main bool
	// SrcPort and DstPort are 0 when the transport is not connected
	SrcPort int
	DstPort int
}

// Xprt returns the named transport, searching every switch
func (h Handle) Xprt(name string) (Xprt, error) {
	if !xprtNamePattern.MatchString(name) {
		return Xprt{}, fmt.Errorf("%q is not an xprt name (expected xprt-<id>-<type>)", name)
	}

	switches, err := h.Switches()
	if err != nil {
		return Xprt{}, err
	}

	for _, s := range switches {
		xprts, err := s.Xprts()
		if err != nil {
			return Xprt{}, err
		}
		for _, x := range xprts {
			if x.Name == name {
				return x, nil
			}
		}
	}

	return Xprt{}, fmt.Errorf("no such xprt: %s", name)
}

// DstAddr reads the transport's destination address
func (x Xprt) DstAddr() (string, error) {
	return readAttr(x.path, "dstaddr")
}

// SetDstAddr points the transport at a new destination address. The
// kernel re-resolves and reconnects on its own schedule.
func (x Xprt) SetDstAddr(addr string) error {
	if addr == "" {
		return fmt.Errorf("dstaddr must not be empty")
	}
	return writeAttr(x.path, "dstaddr", addr)
}

// State reads the transport state flags from xprt_state
func (x Xprt) State() ([]string, error) {
	raw, err := readAttr(x.path, "xprt_state")
	if err != nil {
		return nil, err
	}
	raw = strings.TrimPrefix(raw, "state=")
	if raw == "" {
		return nil, nil
	}
	return strings.Split(raw, ","), nil
}

// Transport states accepted by the kernel's xprt_state attribute
const (
	StateOffline = "offline"
	StateOnline  = "online"
	StateRemove  = "remove"
)

// SetState writes a state change request into xprt_state
func (x Xprt) SetState(state string) error {
	switch state {
	case StateOffline, StateOnline, StateRemove:
	default:
		return fmt.Errorf("invalid xprt state %q (want offline, online or remove)", state)
	}
	return writeAttr(x.path, "xprt_state", state)
}

// Info reads the transport details from xprt_info
func (x Xprt) Info() (XprtInfo, error) {
	raw, err := readAttr(x.path, "xprt_info")
	if err != nil {
		return XprtInfo{}, err
	}

	kv := parseKeyValues(raw)
	return XprtInfo{
		Main:    kv["main_xprt"] == "1",
		SrcPort: intField(kv, "src_port"),
		DstPort: intField(kv, "dst_port"),
	}, nil
}
