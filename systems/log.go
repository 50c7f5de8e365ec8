package systems

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "yourgame",
	ReportTimestamp: true,
})

// SetLogLevel changes the verbosity of system logs. Unknown levels are reported and ignored.
func SetLogLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("Unknown log level", "level", level, "err", err)
		return
	}
	logger.SetLevel(lvl)
}
