// internal/common/logger/testing.go
package logger

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

// NewTestLogger creates a Logger suitable for testing that outputs to testing.T.
func NewTestLogger(t testing.TB) Logger {
	return &zapWrapper{l: zaptest.NewLogger(t)}
}
