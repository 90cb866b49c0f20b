// Package logger builds *slog.Logger instances for seedkit binaries and
// exposes attribute helpers with consistent keys.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "popdb"),
//	    logger.WithContextExtractors(logger.RunIDExtractor),
//	)
//	ctx := logger.WithRunID(context.Background(), runID)
//	log.InfoContext(ctx, "seeding started", logger.Component("seed"))
//
// Production and staging log JSON at info level; every other environment
// logs text at debug level. Both carry "service" and "env" attributes.
//
// Context extractors run on every record, so values stored in the context
// after the logger was created (such as a run ID) still show up.
package logger
