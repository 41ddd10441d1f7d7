// Package logger builds *slog.Logger values through functional options and
// provides attribute helpers with consistent key names.
//
// New selects a text or JSON handler and applies static attributes.
// Context extractors (see WithContextValue and FromContext) add attributes
// taken from the context passed to each *Context logging call.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "custcheck"),
//	    logger.WithContextValue("check_id", checkIDKey{}),
//	)
//	log.InfoContext(ctx, "document checked",
//	    logger.Source(path),
//	    logger.Violations(res.Messages),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
