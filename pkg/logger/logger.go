// Package logx configures the process-wide zerolog logger. Every package logs
// through zerolog/log's global logger, so Init must run before the first log
// line; pkg/logger/autoload does that on import.
package logx

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Debug        bool `split_words:"true" default:"false"`
	PrettyFormat bool `split_words:"true" default:"false"`
}

// Init replaces the global logger. With no arguments it installs JSON output
// at info level, which is what production runs use.
func Init(opts ...Config) {
	var conf Config
	if len(opts) > 0 {
		conf = opts[0]
	}

	writer := zerolog.New(os.Stdout)
	if conf.PrettyFormat {
		writer = zerolog.New(zerolog.NewConsoleWriter())
	}

	level := zerolog.InfoLevel
	if conf.Debug {
		level = zerolog.DebugLevel
	}

	log.Logger = writer.Level(level).With().
		Timestamp().
		Caller().
		Stack().
		Logger()
}
