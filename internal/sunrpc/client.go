package sunrpc

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// rpcClientsDir holds one subdirectory per live RPC client
const rpcClientsDir = "rpc-clients"

// The kernel names client directories "clnt-<id>"
var clientNamePattern = regexp.MustCompile(`^clnt-[0-9]+$`)

// Client is one live RPC client under rpc-clients
type Client struct {
	// Name is the kernel's directory name, e.g. "clnt-6"
	Name string

	path string
}

// Clients returns all live RPC clients, sorted by name
func (h Handle) Clients() ([]Client, error) {
	dir := filepath.Join(h.path, rpcClientsDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", rpcClientsDir, err)
	}

	var clients []Client
	for _, entry := range entries {
		if !clientNamePattern.MatchString(entry.Name()) {
			continue
		}
		clients = append(clients, Client{
			Name: entry.Name(),
			path: filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })
	return clients, nil
}

// Client returns the named RPC client
func (h Handle) Client(name string) (Client, error) {
	if !clientNamePattern.MatchString(name) {
		return Client{}, fmt.Errorf("%q is not a client name (expected clnt-<id>)", name)
	}

	path := filepath.Join(h.path, rpcClientsDir, name)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return Client{}, fmt.Errorf("no such client: %s", name)
	}

	return Client{Name: name, path: path}, nil
}

// SwitchName resolves the client's "switch" symlink to the name of the
// transport switch the client runs on.
func (c Client) SwitchName() (string, error) {
	target, err := os.Readlink(filepath.Join(c.path, "switch"))
	if err != nil {
		return "", fmt.Errorf("resolve switch link of %s: %w", c.Name, err)
	}
	return filepath.Base(target), nil
}
