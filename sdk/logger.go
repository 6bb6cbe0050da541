package sdk

import (
	"context"

	"go.uber.org/zap"
)

type Logger interface {
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
}

type contextLoggerValueT string

const ContextLoggerValue = contextLoggerValueT("accessctl-logger")

// LoggerFrom returns the Logger carried by ctx, or a production zap sugar
// logger when none is set.
func LoggerFrom(ctx context.Context) Logger {
	value := ctx.Value(ContextLoggerValue)
	logger, ok := value.(Logger)
	if !ok {
		logger = zap.Must(zap.NewProduction()).Sugar()
	}

	return logger
}
