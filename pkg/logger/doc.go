// Package logger builds *slog.Logger values from functional options.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format, adds static attributes and, when ContextExtractor callbacks are
// registered, wraps the handler in LogHandlerDecorator so every record also
// carries attributes pulled from the call's context.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "regexm"),
//	    logger.WithLevel(slog.LevelWarn),
//	    logger.WithOutput(os.Stderr),
//	)
//
// The attribute helpers (Error, Field, Valid, Line, ...) keep key names
// consistent across the module. Error returns an empty Attr for a nil error,
// which slog drops.
package logger
