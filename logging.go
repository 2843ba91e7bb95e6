package overlap

import (
	"fmt"
	"sync"
)

// Debug toggles low-level tracing in the hot paths of the classifier and
// wedge routines. It is a diagnostic-only switch: flipping it never changes
// a computed result, only whether DebugLog emits anything, mirroring the
// teacher's package-level Debug flag. This is the package's only
// process-wide mutable state; there is deliberately no injectable logger
// singleton behind it.
var Debug = false

// DebugLog prints a trace line when Debug is set. It has no effect on
// computed results; see the package doc for the concurrency contract.
func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}

	fmt.Printf("[overlap] "+format+"\n", args...)
}

var debugOnce sync.Once

// DebugLogOnce behaves like DebugLog but only ever prints its first call,
// useful for one-shot warnings inside loops.
func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}

	debugOnce.Do(func() {
		fmt.Printf("[overlap] "+format+"\n", args...)
	})
}
