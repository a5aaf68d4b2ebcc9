// Package obslog provides the structured logger the CLI demo harness uses
// to record a few protocol progress events (DKG commitments, coin flip
// result, completion). The protocol packages do not log, and aborts are
// returned as errors rather than logged here. It is an ambient concern, not
// part of the protocol itself, so it lives outside protocols/twoparty.
package obslog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var (
	mu  sync.RWMutex
	log zerolog.Logger
)

func init() {
	Init(LevelInfo)
}

// Init (re)configures the global logger at the given level, writing
// human-readable console output to stderr.
func Init(level string) {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	logger := zerolog.New(out).With().Timestamp().Logger()

	switch level {
	case LevelDebug:
		logger = logger.Level(zerolog.DebugLevel)
	case LevelInfo:
		logger = logger.Level(zerolog.InfoLevel)
	case LevelWarn:
		logger = logger.Level(zerolog.WarnLevel)
	case LevelError:
		logger = logger.Level(zerolog.ErrorLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}

	mu.Lock()
	log = logger
	mu.Unlock()
}

func get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Logger returns the global logger for callers that want to build a
// structured event directly (e.g. attach extra fields).
func Logger() *zerolog.Logger {
	l := get()
	return &l
}

// Debugw logs a debug-level message with key-value fields, used for
// per-round protocol tracing (commitments sent, proofs verified).
func Debugw(msg string, keyvalues ...interface{}) {
	get().Debug().Fields(keyvalues).Msg(msg)
}

// Infow logs an info-level message with key-value fields, used for
// session lifecycle events (session started, signature produced).
func Infow(msg string, keyvalues ...interface{}) {
	get().Info().Fields(keyvalues).Msg(msg)
}

// Errorw logs an error-level message for a protocol abort, attaching the
// error that triggered it.
func Errorw(err error, msg string) {
	get().Error().Err(err).Msg(msg)
}
