package sunrpc

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// readAttr reads a single sysfs attribute file and trims the trailing
// newline the kernel appends.
func readAttr(dir, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// writeAttr writes a value into a sysfs attribute file. The kernel
// consumes the write immediately; there is nothing to sync or close
// beyond the file itself.
func writeAttr(dir, name, value string) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(value), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// parseKeyValues parses sysfs info files made of "key=value" tokens, one
// per line (xprt_info, xprt_switch_info).
func parseKeyValues(s string) map[string]string {
	kv := make(map[string]string)
	for _, line := range strings.Split(s, "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), "=")
		if !found || key == "" {
			continue
		}
		kv[key] = value
	}
	return kv
}

// intField returns a numeric field from a parsed info file, or 0 when the
// field is missing or malformed.
func intField(kv map[string]string, key string) int {
	n, err := strconv.Atoi(kv[key])
	if err != nil {
		return 0
	}
	return n
}
