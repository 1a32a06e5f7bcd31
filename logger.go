package kindex

import "fmt"

const (
	DebugLevel = iota
	InfoLevel
	ErrorLevel
)

var (
	// LogLevel gates DefaultLogger; Logger itself can be swapped for
	// any Logger implementation.
	LogLevel = InfoLevel

	// Logger is the package-level sink used by Indexer's debug dumps.
	Logger IndexerLogger = &DefaultLogger{}
)

// IndexerLogger is the minimal logging surface kindex needs. The
// teacher never reaches for a third-party structured logger for this
// small a surface, so neither does this port — see DESIGN.md.
type IndexerLogger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// DefaultLogger writes to stdout via fmt, gated by LogLevel.
type DefaultLogger struct{}

func (l *DefaultLogger) Debugf(format string, v ...interface{}) {
	if LogLevel > DebugLevel {
		return
	}
	fmt.Printf(format+"\n", v...)
}

func (l *DefaultLogger) Infof(format string, v ...interface{}) {
	if LogLevel > InfoLevel {
		return
	}
	fmt.Printf(format+"\n", v...)
}

func (l *DefaultLogger) Errorf(format string, v ...interface{}) {
	if LogLevel > ErrorLevel {
		return
	}
	fmt.Printf(format+"\n", v...)
}
