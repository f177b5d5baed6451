package douyinprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"dyvideostats/internal/models"
	"dyvideostats/internal/provider"
)

const (
	DefaultBaseURL   = "https://open.douyin.com"
	DefaultQueryPath = "/api/apps/v1/video_bc/query/"
	DefaultTimeout   = 30 * time.Second
)

var (
	ErrBadStatus   = errors.New("bad status from douyin")
	ErrNoAPIKey    = errors.New("api_key is empty")
	ErrNoSecret    = errors.New("client_secret is empty")
	ErrInvalidBase = errors.New("invalid douyin base url")
)

type Logger interface {
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Info(args ...any)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries the video_bc statistics endpoint on behalf of one application.
// It holds no mutable state and may be shared between goroutines.
type Client struct {
	client   HTTPClient
	creds    provider.Credentials
	endpoint url.URL
	timeout  time.Duration
	tokens   provider.TokenProvider
	logger   Logger
}

type Config struct {
	BaseURL   string
	QueryPath string
	Timeout   time.Duration
}

type Option func(*Client)

// WithTokenProvider replaces the placeholder token derived from the api key.
func WithTokenProvider(tp provider.TokenProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tokens = tp
		}
	}
}

func NewClient(http HTTPClient, creds provider.Credentials, cfg Config, logger Logger, opts ...Option) (*Client, error) {
	if creds.APIKey == "" {
		return nil, models.NewQueryError(models.ErrInput, models.LabelMissing, ErrNoAPIKey)
	}
	if creds.ClientSecret == "" {
		return nil, models.NewQueryError(models.ErrInput, models.LabelMissing, ErrNoSecret)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.QueryPath == "" {
		cfg.QueryPath = DefaultQueryPath
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, models.NewQueryError(models.ErrInput, "", fmt.Errorf("%w: %q", ErrInvalidBase, cfg.BaseURL))
	}
	u.Path = joinPath(u.Path, cfg.QueryPath)

	c := &Client{
		client:   http,
		creds:    creds,
		endpoint: *u,
		timeout:  cfg.Timeout,
		tokens:   NewPlaceholderTokenProvider(creds.APIKey),
		logger:   logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// provider.DouyinProvider
func (c *Client) QueryVideos(ctx context.Context, openID string, videoIDs []string) (*provider.VideoStats, error) {
	if openID == "" {
		return nil, models.MissingParam("open_id")
	}
	if len(videoIDs) == 0 {
		return nil, models.MissingParam("video_ids")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	token, err := c.tokens.AccessToken(ctx, openID)
	if err != nil {
		c.logger.Errorf("douyin: access token for open_id=%s: %v", openID, err)
		return nil, models.NewQueryError(models.ErrToken, models.LabelToken, err)
	}

	fullURL := c.endpoint
	q := fullURL.Query()
	q.Set("open_id", openID)
	fullURL.RawQuery = q.Encode()

	payload, err := json.Marshal(queryRequest{ItemIDs: videoIDs})
	if err != nil {
		return nil, models.NewQueryError(models.ErrFormat, models.LabelProcessing, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, models.NewQueryError(models.ErrTransport, models.LabelNetwork, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("access-token", token)
	req.Header.Set("content-type", "application/json")

	c.logger.Infof("douyin: query open_id=%s items=%d url=%s", openID, len(videoIDs), fullURL.String())
	started := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Errorf("douyin: http request failed url=%s after %s: %v", fullURL.String(), time.Since(started), err)
		return nil, models.NewQueryError(models.ErrTransport, models.LabelNetwork, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Errorf("douyin: close response body: %v", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewQueryError(models.ErrTransport, models.LabelNetwork, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Errorf("douyin: bad status url=%s status=%d body=%s",
			fullURL.String(), resp.StatusCode, string(body))
		return nil, models.NewQueryError(models.ErrTransport, models.LabelNetwork,
			fmt.Errorf("%w: %d %s", ErrBadStatus, resp.StatusCode, http.StatusText(resp.StatusCode)))
	}

	var data queryResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Errorf("douyin: decode failed url=%s err=%v", fullURL.String(), err)
		return nil, models.NewQueryError(models.ErrFormat, models.LabelProcessing, fmt.Errorf("decode douyin response: %w", err))
	}

	if err := data.vendorError(); err != nil {
		c.logger.Warnf("douyin: vendor rejected query open_id=%s log_id=%s: %v", openID, data.GetLogID(), err)
		return nil, err
	}

	stats, err := data.ToProviderStats()
	if err != nil {
		c.logger.Errorf("douyin: format failed log_id=%s: %v", data.GetLogID(), err)
		return nil, err
	}

	c.logger.Infof("douyin: query done open_id=%s videos=%d log_id=%s in %s",
		openID, stats.Total, stats.LogID, time.Since(started))

	return stats, nil
}

func joinPath(base, p string) string {
	joined := path.Join("/", base, p)
	// keep the trailing slash the endpoint is registered with
	if len(p) > 0 && p[len(p)-1] == '/' && joined[len(joined)-1] != '/' {
		joined += "/"
	}

	return joined
}
