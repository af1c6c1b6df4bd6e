// Package zaphandler provides a zapcore.Core backed by a logger, so that
// dependencies which log through go.uber.org/zap end up in the same file
// and line format as the rest of the application:
//
//	z := zap.New(zaphandler.NewCore(logger.Shared()))
//	z.Warn("cache miss", zap.String("key", "user:42"))
package zaphandler
