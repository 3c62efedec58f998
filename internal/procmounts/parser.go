package procmounts

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultPath is where the kernel exposes the live mount table
const DefaultPath = "/proc/mounts"

// Parse reads the live mount table from /proc/mounts
func Parse() ([]Entry, error) {
	return ParseFile(DefaultPath)
}

// ParseFile reads a mount table in /proc/mounts format from the given
// path. The table is re-read on every call; mounts can change between
// invocations so nothing is cached.
func ParseFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	mounts, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return mounts, nil
}

// parse scans mount table lines of the form
// "<device> <mountPoint> <fsType> <options> ..." and keeps table order
func parse(r io.Reader) ([]Entry, error) {
	var mounts []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}

		mounts = append(mounts, Entry{
			Device:     unescapeField(fields[0]),
			MountPoint: unescapeField(fields[1]),
			FSType:     fields[2],
			Options:    fields[3],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return mounts, nil
}

// unescapeField unescapes special characters in mount fields
// /proc/mounts escapes spaces as \040, tabs as \011, etc.
func unescapeField(s string) string {
	s = strings.ReplaceAll(s, "\\040", " ")
	s = strings.ReplaceAll(s, "\\011", "\t")
	s = strings.ReplaceAll(s, "\\012", "\n")
	s = strings.ReplaceAll(s, "\\134", "\\")
	return s
}
