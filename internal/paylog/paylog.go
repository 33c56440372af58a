// Package paylog is the payment trail: one timestamped human-readable line
// per payroll event, polymorphic over console, file and in-memory sinks.
package paylog

import (
	"fmt"
	"time"

	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"
)

const (
	SinkConsole = "console"
	SinkFile    = "file"
)

const timestampLayout = "2006-01-02 15:04:05"

type Logger interface {
	Log(message string) error
}

// NewLogger selects a sink by name; path is only used by the file sink.
func NewLogger(sink, path string) (Logger, error) {
	switch sink {
	case SinkConsole:
		return NewConsole(), nil
	case SinkFile:
		return NewFile(path), nil
	default:
		return nil, apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("unknown log sink %q", sink),
		)
	}
}

func stamp(message string) string {
	return time.Now().Format(timestampLayout) + "  " + message
}
