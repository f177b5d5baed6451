package douyinprovider

import (
	"context"
	"errors"
	"fmt"

	"dyvideostats/internal/provider"

	"golang.org/x/oauth2"
)

const placeholderTokenPrefix = "bus_act."

const (
	TokenKindPlaceholder = "placeholder"
	TokenKindStatic      = "static"
)

var (
	ErrInvalidToken     = errors.New("empty or expired access token")
	ErrUnknownTokenKind = errors.New("unknown token kind")
)

// PlaceholderTokenProvider derives the token from the api key. It stands in
// for the open platform token exchange, which is not implemented here.
type PlaceholderTokenProvider struct {
	apiKey string
}

func NewPlaceholderTokenProvider(apiKey string) *PlaceholderTokenProvider {
	return &PlaceholderTokenProvider{apiKey: apiKey}
}

func (p *PlaceholderTokenProvider) AccessToken(_ context.Context, _ string) (string, error) {
	if p.apiKey == "" {
		return "", ErrInvalidToken
	}
	return placeholderTokenPrefix + p.apiKey, nil
}

// OAuth2TokenProvider serves tokens from a source owned by the host process.
type OAuth2TokenProvider struct {
	source oauth2.TokenSource
}

func NewOAuth2TokenProvider(src oauth2.TokenSource) *OAuth2TokenProvider {
	return &OAuth2TokenProvider{source: oauth2.ReuseTokenSource(nil, src)}
}

// NewStaticTokenProvider always returns token.
func NewStaticTokenProvider(token string) *OAuth2TokenProvider {
	return NewOAuth2TokenProvider(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

func (p *OAuth2TokenProvider) AccessToken(ctx context.Context, openID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tok, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("token source for open_id=%s: %w", openID, err)
	}
	if !tok.Valid() {
		return "", ErrInvalidToken
	}

	return tok.AccessToken, nil
}

// TokenProviderFor picks the provider configured by kind.
func TokenProviderFor(kind, token string, creds provider.Credentials) (provider.TokenProvider, error) {
	switch kind {
	case "", TokenKindPlaceholder:
		return NewPlaceholderTokenProvider(creds.APIKey), nil
	case TokenKindStatic:
		if token == "" {
			return nil, fmt.Errorf("static token kind: %w", ErrInvalidToken)
		}
		return NewStaticTokenProvider(token), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTokenKind, kind)
	}
}
