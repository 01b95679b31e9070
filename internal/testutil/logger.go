// Package testutil holds fixtures shared by the package tests.
package testutil

import (
	"strings"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"
)

const LoggerComponent = "todoapp.network.unit-test"

// Logger is the logger handed to code under test. Records at info level
// and above are captured in the embedded sink.
type Logger struct {
	lager.Logger
	*lagertest.TestSink
}

func NewLogger() *Logger {
	return NewLoggerWithLevel(lager.INFO)
}

func NewLoggerWithLevel(level lager.LogLevel) *Logger {
	sink := lagertest.NewTestSink()
	logger := lager.NewLogger(LoggerComponent)
	logger.RegisterSink(lager.NewReconfigurableSink(sink, level))
	return &Logger{Logger: logger, TestSink: sink}
}

// Messages returns the action part of every captured record, with the
// component and session prefixes removed.
func (l *Logger) Messages() []string {
	var messages []string
	for _, log := range l.Logs() {
		message := log.Message
		if i := strings.LastIndex(message, "."); i >= 0 {
			message = message[i+1:]
		}
		messages = append(messages, message)
	}
	return messages
}
