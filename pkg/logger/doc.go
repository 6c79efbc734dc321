// Package logger builds configured log/slog loggers for the CLI and any
// embedding application.
//
// The SDK packages themselves accept a *slog.Logger via their functional
// options and default to slog.Default(); this package only concerns itself
// with constructing the root logger from configuration:
//
//	log := logger.New(
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithFormat(logger.Format(cfg.LogFormat)),
//	)
//	slog.SetDefault(log)
package logger
