// Package sunrpc locates the kernel's SunRPC control directory beneath a
// sysfs mount and exposes typed accessors over the state the kernel
// publishes there. All state is owned and arbitrated by the kernel; this
// package only reads and writes the files it exposes.
package sunrpc

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemType is the mount-table type identifier of the virtual
// filesystem the subsystem lives under.
const FilesystemType = "sysfs"

// subsystemDir is where the subsystem sits beneath the sysfs mount point
const subsystemDir = "kernel/sunrpc"

// Handle is a validated reference to the sunrpc control directory. It is
// only ever constructed after confirming the path exists and is a
// directory, so command handlers can use it without re-checking.
type Handle struct {
	path string
}

// Path returns the absolute path of the sunrpc control directory
func (h Handle) Path() string {
	return h.path
}

func (h Handle) String() string {
	return h.path
}

// UnavailableError indicates the sunrpc control directory is absent or
// not a directory. This usually means the sunrpc kernel module is not
// loaded, which this tool does not attempt to fix.
type UnavailableError struct {
	Path string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("sunrpc control directory is absent (no directory at %s)", e.Path)
}

// Locate checks for the sunrpc control directory beneath the given sysfs
// mount point and returns a handle to it. The check is stat-only; no
// directory contents are read.
func Locate(mountPoint string) (Handle, error) {
	path := filepath.Join(mountPoint, subsystemDir)

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return Handle{}, &UnavailableError{Path: path}
	}

	return Handle{path: path}, nil
}
