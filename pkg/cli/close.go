package cli

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/slotify/cli/pkg/logging"
)

var (
	mu      sync.Mutex
	pending string
)

// RegisterCleanup records an in-progress temporary file to remove if
// the process is interrupted mid-write. Pass "" to clear it.
func RegisterCleanup(path string) {
	mu.Lock()
	pending = path
	mu.Unlock()
}

// CloseHandler removes the registered in-progress file and exits when
// the process receives SIGINT or SIGTERM.
func CloseHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		mu.Lock()
		path := pending
		mu.Unlock()
		if path != "" {
			_ = os.Remove(path)
		}
		logging.Log.Warn("interrupted")
		os.Exit(1)
	}()
}
