//go:build integration

package log

import (
	"fmt"
	"os"
)

// Status prints what the suite found on the live system, since the
// interesting output of these tests is the kernel state itself.
func Status(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stdout, format+"\n", args...)
}
