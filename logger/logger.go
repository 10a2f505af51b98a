package logger

import (
	"container/ring"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	logFile   io.WriteCloser
	formatter = &zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    false,
		TimeFormat: time.RFC3339,
	}
)

// LogBuffer collects writes if level passed
type LogBuffer struct {
	mu    sync.Mutex
	once  sync.Once
	ring  *ring.Ring
	Level zerolog.Level
	Size  int
}

// Records returns collected writes
func (lb *LogBuffer) Records() []LogRecord {
	lb.once.Do(func() {
		lb.ring = ring.New(lb.Size)
	})
	lb.mu.Lock()
	defer lb.mu.Unlock()
	rec := []LogRecord{}
	lb.ring.Do(func(p any) {
		if p != nil {
			rec = append(rec, p.(LogRecord))
		}
	})
	return rec
}

// Write implements io.Writer interface
func (lb *LogBuffer) Write(p []byte) (int, error) {
	return lb.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter interface
func (lb *LogBuffer) WriteLevel(lvl zerolog.Level, p []byte) (int, error) {
	lb.once.Do(func() {
		lb.ring = ring.New(lb.Size)
	})
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if lvl >= lb.Level {
		/* store the copy as source could be updated */
		cp := make([]byte, len(p))
		copy(cp, p)
		lb.ring.Value = LogRecord{cp, lvl}
		lb.ring = lb.ring.Next()
	}
	return len(p), nil
}

// LogRecord wraps JSON-like data from logger
type LogRecord struct {
	buf []byte
	lvl zerolog.Level
}

// MarshalJSON implements Marshaller interface
func (p LogRecord) MarshalJSON() ([]byte, error) { return p.buf, nil }

// Option defines logger option type
type Option func()

// SetLogger sets logger with options
func SetLogger(opts ...Option) {
	/* prevent writes */
	log.Logger = zerolog.Nop()
	/* reset to defaults */
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	formatter.Out = os.Stderr
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	/* apply options */
	for _, opt := range opts {
		opt()
	}
	if logFile != nil {
		formatter.Out = zerolog.MultiLevelWriter(os.Stderr, logFile)
	}
	/* set logger */
	log.Logger = zerolog.New(formatter).
		With().Timestamp().
		Logger()
}

// WithLevel sets level option
func WithLevel(lvl zerolog.Level) Option {
	return func() { zerolog.SetGlobalLevel(lvl) }
}

// WithLogFile sets filelog option
func WithLogFile(w io.WriteCloser) Option {
	return func() {
		if logFile != nil {
			logFile.Close()
		}
		logFile = w
	}
}

// WithNoColor sets formatter option
func WithNoColor(b bool) Option {
	return func() { formatter.NoColor = b }
}

// WithTimeFormat sets formatter option
func WithTimeFormat(s string) Option {
	return func() { formatter.TimeFormat = s }
}

// WriteLogBuffer writes buffered data to current logger
func WriteLogBuffer(lb *LogBuffer) {
	lvl := zerolog.GlobalLevel()
	for _, p := range lb.Records() {
		if p.lvl >= lvl {
			_, _ = formatter.Write(p.buf)
		}
	}
}
