package application

import (
	"fmt"

	"dyvideostats/internal/config"
	douyinprovider "dyvideostats/internal/infrastructure/douyin_provider"
	"dyvideostats/internal/service"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the production logger at the configured level. Output goes
// to stderr, which keeps stdout free for the plugin result.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	log, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}

// NewVideoService wires the Douyin client factory into the query service.
// repository and transactor may be nil.
func NewVideoService(cfg *config.Config, logger *zap.SugaredLogger, repository service.Repository, transactor service.Transactor) (*service.Service, error) {
	factory, err := douyinprovider.NewFactory(douyinprovider.FactoryConfig{
		Client: douyinprovider.Config{
			BaseURL:   cfg.Douyin.BaseURL,
			QueryPath: cfg.Douyin.QueryPath,
			Timeout:   cfg.Douyin.Timeout(),
		},
		ProxyURL:  cfg.Douyin.ProxyURL,
		TokenKind: cfg.Douyin.TokenKind,
		Token:     cfg.Douyin.Token,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("douyin factory: %w", err)
	}

	return service.NewService(factory, repository, transactor, logger), nil
}
