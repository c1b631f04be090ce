// Package logger builds *slog.Logger instances from functional options or
// from the environment, and provides attribute helpers that keep key names
// consistent across recordkit.
//
// # Usage
//
//	import "github.com/dmitrymomot/recordkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithJSONFormatter(),
//	    logger.WithAttr(logger.Component("record")),
//	)
//	logger.SetAsDefault(log)
//
// FromEnv reads RECORDKIT_LOG_LEVEL (debug, info, warn, error) and
// RECORDKIT_LOG_FORMAT (text, json) through pkg/config:
//
//	log, err := logger.FromEnv()
//	if err != nil {
//	    return err
//	}
//
// Record schemas log construction outcomes at debug level using Record,
// Fields and Error attributes.
package logger
