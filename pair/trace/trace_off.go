//go:build !pairdebug

package trace

// Enabled is true when the pairdebug build tag is set.
const Enabled = false

// Log is a no-op outside of a pairdebug build.
func Log(format string, args ...any) {}
