// internal/platform/logx/logx.go
package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// EnvLevel es la variable de entorno que fija el nivel por defecto.
const EnvLevel = "DOMAINSEARCH_LOG_LEVEL"

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
	SetLevel(lvl Level)
}

// sink es compartido entre un logger y todos sus derivados (With).
type sink struct {
	mu  sync.Mutex
	lvl Level
	lg  *log.Logger
}

type simpleLogger struct {
	out   *sink
	scope []string // pares key=value fijos
}

func New() Logger {
	return NewWithWriter(os.Stderr, ParseLevel(os.Getenv(EnvLevel)))
}

// NewWithLevel creates a logger with a specific log level
func NewWithLevel(lvl Level) Logger {
	return NewWithWriter(os.Stderr, lvl)
}

// NewWithWriter creates a logger that writes to w.
func NewWithWriter(w io.Writer, lvl Level) Logger {
	return &simpleLogger{
		out: &sink{lvl: lvl, lg: log.New(w, "", 0)},
	}
}

// NewSilent creates a logger that only outputs errors (silent mode for UI)
func NewSilent() Logger {
	return NewWithLevel(LevelError)
}

func (s *simpleLogger) With(kv ...any) Logger {
	return &simpleLogger{
		out:   s.out,
		scope: append(append([]string{}, s.scope...), kvPairs(kv...)...),
	}
}

func (s *simpleLogger) SetLevel(lvl Level) {
	s.out.mu.Lock()
	defer s.out.mu.Unlock()
	s.out.lvl = lvl
}

func (s *simpleLogger) Debug(msg string, kv ...any) { s.log(LevelDebug, "DBG", msg, kv...) }
func (s *simpleLogger) Info(msg string, kv ...any)  { s.log(LevelInfo, "INF", msg, kv...) }
func (s *simpleLogger) Warn(msg string, kv ...any)  { s.log(LevelWarn, "WRN", msg, kv...) }
func (s *simpleLogger) Err(err error, kv ...any) {
	if err == nil {
		return
	}
	kv = append([]any{"error", err.Error()}, kv...)
	s.log(LevelError, "ERR", "", kv...)
}

func (s *simpleLogger) log(l Level, tag, msg string, kv ...any) {
	s.out.mu.Lock()
	defer s.out.mu.Unlock()

	if l < s.out.lvl {
		return
	}

	fields := append([]string{}, s.scope...)
	fields = append(fields, kvPairs(kv...)...)

	parts := []string{time.Now().Format("15:04:05"), tag}
	if strings.TrimSpace(msg) != "" {
		parts = append(parts, msg)
	}
	parts = append(parts, fields...)

	s.out.lg.Println(strings.Join(parts, " "))
}

func kvPairs(kv ...any) []string {
	out := make([]string, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		var k, v any
		k = kv[i]
		if i+1 < len(kv) {
			v = kv[i+1]
		} else {
			v = "(missing)"
		}
		out = append(out, fmt.Sprintf("%v=%v", k, quote(v)))
	}
	return out
}

// quote entrecomilla valores string con espacios (logfmt).
func quote(v any) any {
	if s, ok := v.(string); ok && strings.ContainsAny(s, " \t") {
		return fmt.Sprintf("%q", s)
	}
	return v
}

// ParseLevel convierte un nombre de nivel; valores desconocidos -> info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug
	case "info", "inf", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "err", "error":
		return LevelError
	default:
		return LevelInfo
	}
}
