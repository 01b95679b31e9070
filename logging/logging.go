package logging

import (
	"io"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"
)

const DefaultLevel = "error"

// New returns a component logger writing JSON lines to w at level and above.
func New(component string, w io.Writer, level lager.LogLevel) lager.Logger {
	logger := lager.NewLogger(component)
	logger.RegisterSink(lager.NewWriterSink(w, level))
	return logger
}

func ParseLevel(s string) (lager.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return lager.ERROR, errors.Errorf("invalid log level (must be one of debug, info, error, fatal): %s", s)
	}
}
