// Package logging writes leveled, tagged lines: debug and info go to
// stdout, warnings and errors to stderr.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

type Logger interface {
	DebugEnabled() bool
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Tagged is the Logger used by both programs. It is only touched from the
// render thread.
type Tagged struct {
	tag string
	min Level
	out *log.Logger
	err *log.Logger
}

// New logs with tag in front of every line; debug lines are dropped
// unless debug is set.
func New(tag string, debug bool) *Tagged {
	return NewWithWriters(tag, debug, os.Stdout, os.Stderr)
}

func NewWithWriters(tag string, debug bool, stdout, stderr io.Writer) *Tagged {
	min := LevelInfo
	if debug {
		min = LevelDebug
	}
	flags := log.LstdFlags | log.Lmicroseconds
	return &Tagged{
		tag: tag,
		min: min,
		out: log.New(stdout, "", flags),
		err: log.New(stderr, "", flags),
	}
}

func (l *Tagged) DebugEnabled() bool { return l.min <= LevelDebug }

func (l *Tagged) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Tagged) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Tagged) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Tagged) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Tagged) logf(level Level, format string, args ...any) {
	if level < l.min {
		return
	}
	dst := l.out
	if level >= LevelWarn {
		dst = l.err
	}
	msg := fmt.Sprintf(format, args...)
	if l.tag == "" {
		dst.Printf("%s: %s", level, msg)
		return
	}
	dst.Printf("[%s] %s: %s", l.tag, level, msg)
}
