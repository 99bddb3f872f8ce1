package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Init builds the singleton logger. Only the first call has effect; it
// should happen at the top of main.
func Init(env string) {
	once.Do(func() {
		var err error
		if env == "production" {
			instance, err = zap.NewProduction()
		} else {
			instance, err = zap.NewDevelopment()
		}
		if err != nil {
			instance = zap.NewNop()
		}
	})
}

// L returns the singleton logger, initializing a development logger if
// Init was never called.
func L() *zap.Logger {
	if instance == nil {
		Init("development")
	}
	return instance
}

// Sync flushes any buffered entries. Call it with defer in main.
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}
