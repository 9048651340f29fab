package main

import "go.uber.org/zap"

// Root command stdout is reserved for export lines, so the debug logger
// writes to stderr only.
func initLogging() {
	enable, _ := rootCmd.PersistentFlags().GetBool("enable-log")
	if !enable {
		return
	}

	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	logConfig.OutputPaths = []string{"stderr"}
	logConfig.ErrorOutputPaths = []string{"stderr"}

	log, err := logConfig.Build()
	if err != nil {
		exit(err)
	}
	debugLog = log
}
