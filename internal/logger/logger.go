// Package logger wraps zerolog behind a small leveled interface shared by
// the client and the status service.
package logger

import (
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// LogFormat selects the output encoding.
type LogFormat string

const (
	// FormatJSON emits structured JSON lines.
	FormatJSON LogFormat = "json"
	// FormatConsole emits human-readable console output.
	FormatConsole LogFormat = "console"
)

// ParseLogFormat maps a config string onto a LogFormat, defaulting to JSON.
func ParseLogFormat(format string) LogFormat {
	if strings.EqualFold(format, string(FormatConsole)) {
		return FormatConsole
	}
	return FormatJSON
}

// Config holds logger settings.
type Config struct {
	// Level is the minimum level to emit (debug, info, warn, error).
	Level string
	// Format is the output encoding.
	Format LogFormat
	// Output defaults to os.Stdout.
	Output io.Writer
	// TimeFormat defaults to time.RFC3339.
	TimeFormat string
}

// Logger wraps zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Setup initializes the global logger. Only the first call takes effect.
func Setup(cfg Config) {
	once.Do(func() {
		globalLogger = newLogger(cfg)
	})
}

// Get returns the global logger, initializing it with defaults if Setup was
// never called.
func Get() *Logger {
	once.Do(func() {
		globalLogger = newLogger(Config{Level: "info", Format: FormatConsole})
	})
	return globalLogger
}

// ResetForTesting clears the global logger so tests can reconfigure it.
func ResetForTesting() {
	globalLogger = nil
	once = sync.Once{}
}

func newLogger(cfg Config) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = time.RFC3339
	}
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	var zl zerolog.Logger
	switch cfg.Format {
	case FormatConsole:
		zl = zerolog.New(zerolog.ConsoleWriter{Out: output, TimeFormat: cfg.TimeFormat})
	default:
		zl = zerolog.New(output)
	}
	zl = zl.Level(level).With().Timestamp().Logger()

	return &Logger{Logger: zl}
}

// WithFields returns a child logger carrying the given fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	if l == nil {
		return Get()
	}
	if len(fields) == 0 {
		return l
	}
	zl := l.Logger
	for k, v := range fields {
		zl = zl.With().Interface(k, v).Logger()
	}
	return &Logger{Logger: zl}
}

// Debug logs at debug level with optional fields.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	l.log(zerolog.DebugLevel, msg, fields)
}

// Info logs at info level with optional fields.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	l.log(zerolog.InfoLevel, msg, fields)
}

// Warn logs at warn level with optional fields.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	l.log(zerolog.WarnLevel, msg, fields)
}

// Error logs at error level with optional fields.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	l.log(zerolog.ErrorLevel, msg, fields)
}

func (l *Logger) log(level zerolog.Level, msg string, fields []map[string]interface{}) {
	if l == nil {
		return
	}
	target := l
	if len(fields) > 0 && len(fields[0]) > 0 {
		target = l.WithFields(fields[0])
	}
	target.Logger.WithLevel(level).Msg(msg)
}

// HTTPMiddleware logs one line per handled request.
func HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rww := &responseWriterWrapper{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rww, r)

		Get().Info("HTTP request", map[string]interface{}{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rww.status,
			"duration": time.Since(start).String(),
		})
	})
}

type responseWriterWrapper struct {
	http.ResponseWriter
	status int
}

func (r *responseWriterWrapper) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
