//go:build pairdebug

// Package trace is a build-tag gated step tracer for Tail() and its
// responsibility-handover walk.
// It is compiled out entirely (Log becomes a no-op) unless built with
// "-tags pairdebug" -- the core package never logs in a normal build.
package trace

import (
	"fmt"
	"os"

	"github.com/timandy/routine"
)

// Enabled is true when the pairdebug build tag is set.
const Enabled = true

// Log writes a goroutine-tagged trace line to stderr.
func Log(format string, args ...any) {
	line := fmt.Sprintf("pair[g%04d]: ", routine.Goid()) + fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, line)
}
