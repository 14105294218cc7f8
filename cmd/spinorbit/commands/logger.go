// Package commands implements the spinorbit subcommands. The library
// core is silent; all operator-facing logging happens here, through a
// shared zap logger.
package commands

import "go.uber.org/zap"

// log is the shared command logger; Initialize must run before any RunE.
var log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize builds the command logger. Development config gives
// human-readable console output; verbose lowers the level to debug.
func Initialize(verbose bool) error {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	log = l.Sugar()

	return nil
}
