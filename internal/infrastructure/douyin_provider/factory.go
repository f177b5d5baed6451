package douyinprovider

import (
	"fmt"

	"dyvideostats/internal/models"
	"dyvideostats/internal/provider"
)

type FactoryConfig struct {
	Client    Config
	ProxyURL  string
	TokenKind string
	Token     string
}

// NewFactory returns a constructor that binds one Client to a set of credentials.
// All clients share one outbound http.Client.
func NewFactory(cfg FactoryConfig, logger Logger) (func(provider.Credentials) (provider.DouyinProvider, error), error) {
	httpClient, err := NewHTTPClient(cfg.Client.Timeout, cfg.ProxyURL)
	if err != nil {
		return nil, fmt.Errorf("douyin http client: %w", err)
	}

	return func(creds provider.Credentials) (provider.DouyinProvider, error) {
		tokens, err := TokenProviderFor(cfg.TokenKind, cfg.Token, creds)
		if err != nil {
			return nil, models.NewQueryError(models.ErrToken, models.LabelToken, err)
		}

		c, err := NewClient(httpClient, creds, cfg.Client, logger, WithTokenProvider(tokens))
		if err != nil {
			return nil, err
		}

		return c, nil
	}, nil
}
