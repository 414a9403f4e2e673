// Package logging provides structured logging configuration for mockapi.
//
// This package wraps log/slog so every component logs the same way.
//
// # Usage
//
//	logger, closer, err := logging.Open(logging.Config{
//	    Level:  logging.ParseLevel(settings.LogLevel),
//	    Format: logging.ParseFormat(settings.LogFormat),
//	    File:   settings.LogFile,
//	})
//	if err != nil {
//	    return err
//	}
//	defer closer.Close()
//
//	logger.Info("server started", "addr", settings.Addr())
//
// # Integration
//
// Components hold a *slog.Logger set through SetLogger. If no logger is
// provided they use logging.Nop().
package logging
