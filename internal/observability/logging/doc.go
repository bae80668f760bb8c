// Package logging builds the application's slog logger and carries
// request-scoped loggers through contexts.
//
//	logger := logging.NewFromEnv()
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.WithRequestID(ctx, slog.Default()).Info("serving page")
//	}
package logging
