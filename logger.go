package metawall

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// ZeroLogger adapts a zerolog.Logger to the package Logger interface.
type ZeroLogger struct {
	log zerolog.Logger
}

// NewLogger constructs a JSON logger writing to stdout, tagged with the given
// role label. Development mode lowers the level floor to Debug.
func NewLogger(role string, development bool) *ZeroLogger {
	level := zerolog.InfoLevel
	if development {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &ZeroLogger{log: logger}
}

// NopLogger returns a logger that discards everything. Intended for tests.
func NopLogger() *ZeroLogger {
	return &ZeroLogger{log: zerolog.Nop()}
}

func (l *ZeroLogger) Debug(msg string, args ...any) {
	l.log.Debug().Fields(logFields(args)).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, args ...any) {
	l.log.Info().Fields(logFields(args)).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, args ...any) {
	l.log.Warn().Fields(logFields(args)).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, args ...any) {
	l.log.Error().Fields(logFields(args)).Msg(msg)
}

// logFields folds alternating key/value arguments into a field map. A
// dangling value is kept under a catch-all key rather than dropped.
func logFields(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}

	fields := make(map[string]any, len(args)/2+1)
	for i := 0; i < len(args)-1; i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("arg%d", i)
		}
		fields[key] = args[i+1]
	}

	if len(args)%2 != 0 {
		fields["extra"] = args[len(args)-1]
	}

	return fields
}
