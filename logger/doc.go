// Package logger is the public API. Most users only need to import this
// package.
//
// A Logger is immutable after construction. The name, fields, level and
// handler are set once via the Builder and never modified, so a Logger is
// safe for concurrent use without locking on the read path.
//
// The package initializes a default Logger in init(): InfoLevel, forwarding
// through a platform handler to a console backend on stdout. The
// package-level functions Info, Error, Debugf, etc. delegate to it:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// Named loggers bound to a platform backend come from the factories, which
// also register them:
//
//	log, err := logger.PlatformMT("wifi", backend)
//	...
//	logger.Get("wifi").Warn("rssi low", logger.Int("rssi", -82))
//
// PlatformST builds the same thing without locking for loggers owned by a
// single goroutine.
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithName("api").
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    WithCaller(true).
//	    Build()
//
// Level checks happen before any allocation, so filtered-out messages cost
// only an integer comparison.
package logger
