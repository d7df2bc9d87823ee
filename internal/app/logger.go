package app

import (
	"fmt"

	"go.uber.org/zap"
)

// initLogger создает и настраивает логгер.
// Уровень debug включает человекочитаемый development-вывод,
// остальные уровни используют production-конфигурацию zap.
func initLogger(logLevel string) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if logLevel == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		if level, parseErr := zap.ParseAtomicLevel(logLevel); parseErr == nil {
			cfg.Level = level
		}
		logger, err = cfg.Build()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
