package util

import "go.uber.org/zap"

func NewLogger(production bool) *zap.SugaredLogger {
	var logger *zap.SugaredLogger

	if production {
		logger = zap.Must(zap.NewProduction()).Sugar()
	} else {
		logger = zap.Must(zap.NewDevelopment()).Sugar()
	}

	defer logger.Sync()

	return logger
}
