package testutil

import (
	"io"

	"github.com/dtroode/chessacademy-server/internal/logger"
)

// MakeNoopLogger returns a Logger that discards everything.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithFormat(io.Discard, 0, "text")
}
