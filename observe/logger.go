package observe

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel orders log severities for threshold filtering.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// ParseLogLevel maps a level name to its LogLevel. Unknown names fall back
// to info rather than erroring; Config.Validate rejects them earlier when a
// logger is built through NewObserver.
func ParseLogLevel(s string) LogLevel {
	for level, name := range levelNames {
		if s == name {
			return LogLevel(level)
		}
	}
	return LevelInfo
}

func (l LogLevel) String() string {
	if l < LevelDebug || l > LevelError {
		return "info"
	}
	return levelNames[l]
}

// structuredLogger writes one JSON object per record. The writer is shared
// state guarded by mu; everything else is immutable after construction, so
// WithWork derivation never copies under the lock.
type structuredLogger struct {
	level     LogLevel
	writer    io.Writer
	mu        sync.Mutex
	workMeta  *WorkMeta
	baseAttrs map[string]any
	redact    map[string]bool
}

// NewLogger creates a structured logger writing to stderr.
func NewLogger(level string) Logger {
	return NewLoggerWithWriter(level, os.Stderr)
}

// NewLoggerWithWriter creates a structured logger with a custom writer.
func NewLoggerWithWriter(level string, w io.Writer) Logger {
	return NewLoggerWithRedaction(level, w, nil)
}

// NewLoggerWithRedaction creates a structured logger whose redaction set is
// extended with the given field keys on top of RedactedFields.
func NewLoggerWithRedaction(level string, w io.Writer, extra []string) Logger {
	redact := make(map[string]bool, len(RedactedFields)+len(extra))
	for _, key := range RedactedFields {
		redact[key] = true
	}
	for _, key := range extra {
		redact[key] = true
	}

	return &structuredLogger{
		level:     ParseLogLevel(level),
		writer:    w,
		baseAttrs: make(map[string]any),
		redact:    redact,
	}
}

// WithWork returns a derived logger whose every record carries the work's
// identifying fields. The parent logger is unchanged.
func (l *structuredLogger) WithWork(meta WorkMeta) Logger {
	attrs := make(map[string]any, len(l.baseAttrs)+4)
	for k, v := range l.baseAttrs {
		attrs[k] = v
	}
	attrs["work.id"] = meta.WorkID()
	attrs["work.name"] = meta.Name
	if meta.Namespace != "" {
		attrs["work.namespace"] = meta.Namespace
	}
	if meta.Version != "" {
		attrs["work.version"] = meta.Version
	}

	return &structuredLogger{
		level:     l.level,
		writer:    l.writer,
		workMeta:  &meta,
		baseAttrs: attrs,
		redact:    l.redact,
	}
}

func (l *structuredLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.emit(LevelInfo, msg, fields)
}

func (l *structuredLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.emit(LevelWarn, msg, fields)
}

func (l *structuredLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.emit(LevelError, msg, fields)
}

func (l *structuredLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.emit(LevelDebug, msg, fields)
}

// emit assembles and writes one record. Records below the threshold cost a
// comparison and nothing else. A record that fails to marshal is dropped;
// logging is best-effort and must not fail the caller.
func (l *structuredLogger) emit(level LogLevel, msg string, fields []Field) {
	if level < l.level {
		return
	}

	entry := make(map[string]any, len(l.baseAttrs)+len(fields)+3)
	entry["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)
	entry["level"] = level.String()
	entry["msg"] = msg

	for k, v := range l.baseAttrs {
		entry[k] = v
	}
	for _, f := range fields {
		if l.redact[f.Key] {
			entry[f.Key] = "[REDACTED]"
		} else {
			entry[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer.Write(data)
}

var _ Logger = (*structuredLogger)(nil)
