package sunrpc

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// xprtSwitchesDir holds one subdirectory per transport switch
const xprtSwitchesDir = "xprt-switches"

// The kernel names switch directories "switch-<id>"
var switchNamePattern = regexp.MustCompile(`^switch-[0-9]+$`)

// Switch is one transport switch (a group of transports serving the same
// RPC clients) under xprt-switches.
type Switch struct {
	// Name is the kernel's directory name, e.g. "switch-0"
	Name string

	path string
}

// SwitchInfo holds the counters the kernel publishes in xprt_switch_info
type SwitchInfo struct {
	// NumXprts is the number of transports attached to the switch
	NumXprts int
	// NumActive is the number of transports currently usable
	NumActive int
	// QueueLen is the number of tasks queued on the switch
	QueueLen int
}

// Switches returns all transport switches, sorted by name
func (h Handle) Switches() ([]Switch, error) {
	dir := filepath.Join(h.path, xprtSwitchesDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			// Older kernels do not expose xprt-switches at all
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", xprtSwitchesDir, err)
	}

	var switches []Switch
	for _, entry := range entries {
		if !entry.IsDir() || !switchNamePattern.MatchString(entry.Name()) {
			continue
		}
		switches = append(switches, Switch{
			Name: entry.Name(),
			path: filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(switches, func(i, j int) bool { return switches[i].Name < switches[j].Name })
	return switches, nil
}

// Switch returns the named transport switch
func (h Handle) Switch(name string) (Switch, error) {
	if !switchNamePattern.MatchString(name) {
		return Switch{}, fmt.Errorf("%q is not a switch name (expected switch-<id>)", name)
	}

	path := filepath.Join(h.path, xprtSwitchesDir, name)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return Switch{}, fmt.Errorf("no such switch: %s", name)
	}

	return Switch{Name: name, path: path}, nil
}

// Info reads the switch counters from xprt_switch_info
func (s Switch) Info() (SwitchInfo, error) {
	raw, err := readAttr(s.path, "xprt_switch_info")
	if err != nil {
		return SwitchInfo{}, err
	}

	kv := parseKeyValues(raw)
	return SwitchInfo{
		NumXprts:  intField(kv, "num_xprts"),
		NumActive: intField(kv, "num_active"),
		QueueLen:  intField(kv, "queue_len"),
	}, nil
}

// Xprts returns the transports attached to the switch, sorted by name
func (s Switch) Xprts() ([]Xprt, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Name, err)
	}

	var xprts []Xprt
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := xprtNamePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		xprts = append(xprts, Xprt{
			Name:   entry.Name(),
			Type:   m[1],
			Switch: s.Name,
			path:   filepath.Join(s.path, entry.Name()),
		})
	}

	sort.Slice(xprts, func(i, j int) bool { return xprts[i].Name < xprts[j].Name })
	return xprts, nil
}
