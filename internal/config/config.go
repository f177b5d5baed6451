package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultPath = "internal/config/config.yaml"

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Server    ServerOpts      `yaml:"server_opts"`
	DB        DBConfig        `yaml:"db"`
	Douyin    DouyinConfig    `yaml:"douyin"`
	Log       LogConfig       `yaml:"log"`
	Snapshots SnapshotsConfig `yaml:"snapshots"`
}
type HTTPConfig struct {
	ListenAddr string `yaml:"listen_addr" env:"HTTP_LISTEN_ADDR" env-default:":8080"`
}

type ServerOpts struct {
	ReadTimeoutSeconds  int `yaml:"read_timeout"  env:"HTTP_READ_TIMEOUT"  env-default:"10"`
	WriteTimeoutSeconds int `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"40"`
	IdleTimeoutSeconds  int `yaml:"idle_timeout"  env:"HTTP_IDLE_TIMEOUT"  env-default:"60"`
}

type DBConfig struct {
	Host               string `yaml:"host"      env:"DB_HOST"      env-default:"localhost"`
	Port               int    `yaml:"port"      env:"DB_PORT"      env-default:"5432"`
	Name               string `yaml:"name"      env:"DB_NAME"      env-default:"dyvideostats"`
	User               string `yaml:"user"      env:"DB_USER"      env-default:"postgres"`
	Password           string `yaml:"password"  env:"DB_PASSWORD"  env-default:"postgres"`
	MaxIdleConns       int32  `yaml:"max_idle_conns"  env:"DB_MAX_IDLE_CONNS"  env-default:"2"`
	MaxOpenConns       int32  `yaml:"max_open_conns"  env:"DB_MAX_OPEN_CONNS"  env-default:"10"`
	ConnMaxLifetimeMin int    `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5"` // minutes
	QueryTimeoutSec    int    `yaml:"query_timeout"    env:"DB_QUERY_TIMEOUT"     env-default:"2"`  // seconds
}

type DouyinConfig struct {
	BaseURL    string `yaml:"base_url"     env:"DOUYIN_BASE_URL"     env-default:"https://open.douyin.com"`
	QueryPath  string `yaml:"query_path"   env:"DOUYIN_QUERY_PATH"   env-default:"/api/apps/v1/video_bc/query/"`
	TimeoutSec int    `yaml:"timeout"      env:"DOUYIN_TIMEOUT"      env-default:"30"` // seconds
	ProxyURL   string `yaml:"proxy_url"    env:"DOUYIN_PROXY_URL"`                     // http | https | socks5
	TokenKind  string `yaml:"token_kind"   env:"DOUYIN_TOKEN_KIND"   env-default:"placeholder"`
	// Token is handed to the static provider when TokenKind is "static".
	Token string `yaml:"token" env:"DOUYIN_ACCESS_TOKEN"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type SnapshotsConfig struct {
	Enabled bool `yaml:"enabled" env:"SNAPSHOTS_ENABLED" env-default:"false"`
}

func (d DouyinConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSec) * time.Second
}

// ParseConfig reads path when it exists and falls back to environment variables only.
func ParseConfig(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = DefaultPath
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat config: %w", err)
	}

	if cfg.Douyin.TimeoutSec <= 0 {
		return nil, fmt.Errorf("douyin timeout must be positive, got %d", cfg.Douyin.TimeoutSec)
	}

	return &cfg, nil
}
