package telemetry

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	outMu sync.RWMutex
	out   io.Writer
)

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"
	zerolog.TimeFieldFormat = time.RFC3339
}

// SetOutput redirects log lines. A nil writer restores stdout.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	out = w
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write(zerolog.InfoLevel, msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	write(zerolog.WarnLevel, msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write(zerolog.ErrorLevel, msg, fields)
}

func write(level zerolog.Level, msg string, fields map[string]any) {
	logger := zerolog.New(writer()).With().Timestamp().Logger()
	event := logger.WithLevel(level)
	for k, v := range fields {
		if err, ok := v.(error); ok {
			event = event.Str(k, err.Error())
			continue
		}
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// stdout is resolved per call so tests can swap os.Stdout.
func writer() io.Writer {
	outMu.RLock()
	defer outMu.RUnlock()
	if out != nil {
		return out
	}
	return os.Stdout
}
