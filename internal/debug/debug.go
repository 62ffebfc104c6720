// Package debug implements WAYLAND_DEBUG style protocol tracing.
package debug

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

func init() {
	debugLevel, err := strconv.ParseInt(os.Getenv("WAYLAND_DEBUG"), 10, 0)
	if err != nil {
		return
	}
	if debugLevel > 0 {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Str("component", "wire").Logger()
	}
}

// Enabled reports whether tracing is turned on.
func Enabled() bool {
	return logger.GetLevel() != zerolog.Disabled
}

func Printf(str string, args ...any) {
	logger.Printf(str, args...)
}
