package logging

import (
	"sync"
)

var (
	mu        sync.Mutex
	instance  *Logger
	logConfig *Config
)

// Configure sets the logging configuration used by GetLogger.
// A logger built from an earlier configuration is closed and rebuilt on the
// next GetLogger call, so the CLI and tests can redirect output.
func Configure(config *Config) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		instance.Close()
		instance = nil
	}
	logConfig = config
}

// GetLogger returns the process logger, building it on first use.
// It panics if Configure was never called or the log file cannot be opened.
func GetLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}
	if logConfig == nil {
		panic("logger configuration not set - call logging.Configure() first")
	}

	logger, err := NewLogger(logConfig)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	instance = logger
	return instance
}
