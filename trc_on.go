//go:build derschema_debug

package schema

/*
trc_on.go is the debug build of the package's tracing hooks, active
only under the derschema_debug build tag. Grounded on the teacher
corpus's trc_on.go/trc_off.go pair, trimmed from its full event-level
bitmask tracer down to the three hooks this package's decode loop
actually needs: entering a node, leaving it, and a one-line note.
*/

import (
	"fmt"
	"os"
)

func debugEnter(name, specType string) func(err *error) {
	fmt.Fprintf(os.Stderr, "→ %s(%s)\n", name, specType)
	return func(err *error) {
		if err != nil && *err != nil {
			fmt.Fprintf(os.Stderr, "← %s(%s) failed: %v\n", name, specType, *err)
			return
		}
		fmt.Fprintf(os.Stderr, "← %s(%s)\n", name, specType)
	}
}

func debugInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "  • "+format+"\n", args...)
}
