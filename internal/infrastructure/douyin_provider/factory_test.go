package douyinprovider

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dyvideostats/internal/models"
	"dyvideostats/internal/provider"

	"github.com/stretchr/testify/require"
)

func TestNewFactory_BindsCredentialsAndToken(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("access-token")
		_, _ = io.WriteString(w, `{"err_no":0,"log_id":"L"}`)
	}))
	defer srv.Close()

	newProvider, err := NewFactory(FactoryConfig{
		Client:    Config{BaseURL: srv.URL, Timeout: time.Second},
		TokenKind: TokenKindStatic,
		Token:     "act.static",
	}, dummyLogger{})
	require.NoError(t, err)

	p, err := newProvider(provider.Credentials{APIKey: "k", ClientSecret: "s"})
	require.NoError(t, err)

	stats, err := p.QueryVideos(context.Background(), "u", []string{"v1"})
	require.NoError(t, err)
	require.Equal(t, "L", stats.LogID)
	require.Equal(t, "act.static", gotToken)
}

func TestNewFactory_Errors(t *testing.T) {
	_, err := NewFactory(FactoryConfig{ProxyURL: "ftp://nope"}, dummyLogger{})
	require.Error(t, err)

	newProvider, err := NewFactory(FactoryConfig{TokenKind: "unknown"}, dummyLogger{})
	require.NoError(t, err)

	_, err = newProvider(provider.Credentials{APIKey: "k", ClientSecret: "s"})
	require.ErrorIs(t, err, models.ErrToken)

	newProvider, err = NewFactory(FactoryConfig{}, dummyLogger{})
	require.NoError(t, err)

	p, err := newProvider(provider.Credentials{APIKey: "k"})
	require.ErrorIs(t, err, models.ErrInput)
	require.Nil(t, p)
}
