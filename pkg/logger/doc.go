// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers so every component logs with the same keys.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "relato"),
//	    logger.WithContextValue("submission_id", submissionKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "error display missing",
//	    logger.Component("form"),
//	    logger.Field("cpf"),
//	)
//
// New selects a text or JSON handler and, when context extractors are
// registered, wraps it so extracted attributes are appended on every call.
// Error returns an empty attribute for nil errors, so it can be passed
// unconditionally. Discard returns a logger that drops everything; library
// types use it as their default.
package logger
