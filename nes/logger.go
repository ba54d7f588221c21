package nes

import (
	"io"
	"log"
)

// Logger is the three-severity sink the core reports runtime anomalies to.
// Info is for tracing, Warnf for recovered conditions (bus misses, unsupported
// features), Errorf for conditions the host should know broke emulation
// fidelity (illegal-opcode halts).
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// stdLogger wraps three *log.Logger, one per severity, the same shape the
// teacher threads an io.Writer through for CPU tracing.
type stdLogger struct {
	info, warn, err *log.Logger
}

// NewLogger builds a Logger writing to out. Passing io.Discard for out
// silences everything; NewTestLogger silences only info, matching "info is
// silenced in test builds".
func NewLogger(out io.Writer) Logger {
	return &stdLogger{
		info: log.New(out, "INFO  ", log.LstdFlags),
		warn: log.New(out, "WARN  ", log.LstdFlags),
		err:  log.New(out, "ERROR ", log.LstdFlags),
	}
}

// NewTestLogger silences info but keeps warnings and errors visible, for use
// in _test.go files so a failing test's output isn't drowned in trace noise.
func NewTestLogger(out io.Writer) Logger {
	return &stdLogger{
		info: log.New(io.Discard, "", 0),
		warn: log.New(out, "WARN  ", log.LstdFlags),
		err:  log.New(out, "ERROR ", log.LstdFlags),
	}
}

func (l *stdLogger) Infof(format string, args ...any)  { l.info.Printf(format, args...) }
func (l *stdLogger) Warnf(format string, args ...any)  { l.warn.Printf(format, args...) }
func (l *stdLogger) Errorf(format string, args ...any) { l.err.Printf(format, args...) }
