package logger

import (
	"log"

	"go.uber.org/zap"
)

var appLogger *zap.Logger = zap.NewNop()

// Init builds the process-wide logger. Release builds use the production
// JSON encoder, everything else gets the console encoder.
func Init(release bool) {
	var (
		l   *zap.Logger
		err error
	)
	if release {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Cannot create logger: %v", err)
	}
	appLogger = l
}

func L() *zap.Logger {
	return appLogger
}

func Sync() {
	_ = appLogger.Sync()
}
