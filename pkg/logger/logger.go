package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. GIN_MODE=release switches to the
// production encoder.
func New(release bool) (*zap.Logger, error) {
	if release {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
