package logging

import (
	log "github.com/sirupsen/logrus"
	"os"
)

var (
	Log = log.New()
)

// Output goes to stderr: stdout is reserved for command output such as
// the archive table.
func init() {
	Log.SetOutput(os.Stderr)
	Log.SetLevel(log.DebugLevel)
	Log.SetFormatter(&log.TextFormatter{
		ForceColors:      true,
		DisableColors:    false,
		DisableTimestamp: true,
	})
}
