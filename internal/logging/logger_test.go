// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{input: "debug", expected: zapcore.DebugLevel},
		{input: "INFO", expected: zapcore.InfoLevel},
		{input: "warning", expected: zapcore.WarnLevel},
		{input: "error", expected: zapcore.ErrorLevel},
		{input: "", expected: zapcore.ErrorLevel},
		{input: "verbose", expected: zapcore.ErrorLevel},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if level := parseLevel(test.input); level != test.expected {
				t.Errorf("expected level %v, got %v", test.expected, level)
			}
		})
	}
}

func TestNoopLoggerSecurity(t *testing.T) {
	logger := NewNoopLogger()

	logger.Security().SystemStartup()
	logger.Security().AuthzFailure("user-1", "full_access")
	logger.Security().SystemShutdown()
	logger.Infof("noop %s", "logger")
}
