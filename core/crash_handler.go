package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu       sync.Mutex
	crashFinalize func()
)

// SetCrashFinalizer registers the terminal restore hook run before a crash report
func SetCrashFinalizer(fn func()) {
	crashMu.Lock()
	crashFinalize = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fin := crashFinalize
	crashFinalize = nil
	crashMu.Unlock()
	if fin != nil {
		fin()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}
