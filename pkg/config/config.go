package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

// App selects the defaults profile of a binary.
type App string

const (
	Explorer App = "explorer"
	Website  App = "website"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	RPC      RPCConfig      `mapstructure:"rpc"`
	Coin     CoinConfig     `mapstructure:"coin"`
	Explorer ExplorerConfig `mapstructure:"explorer"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Env         string `mapstructure:"env"`
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	DefaultLang string `mapstructure:"default_lang"`
	LogLevel    string `mapstructure:"log_level"`
}

// Addr is the listen address of the HTTP server.
func (c AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type RPCConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"` // 无默认值，只能通过 RPC_PASSWORD 或配置文件提供
}

// URL returns the node endpoint. Credentials are sent as basic auth and never
// appear here, so the URL is safe to log.
func (c RPCConfig) URL() string {
	return "http://" + net.JoinHostPort(c.Host, c.Port)
}

type CoinConfig struct {
	Name   string `mapstructure:"name"`
	Symbol string `mapstructure:"symbol"`
}

type ExplorerConfig struct {
	LatestBlocks    int      `mapstructure:"latest_blocks"`
	AddressPrefixes []string `mapstructure:"address_prefixes"`
	URL             string   `mapstructure:"url"` // public explorer URL linked from the website
}

// envKeys maps config keys to the environment variables operators already use.
var envKeys = map[string]string{
	"app.env":                   "APP_ENV",
	"app.host":                  "HOST",
	"app.port":                  "PORT",
	"app.default_lang":          "DEFAULT_LANG",
	"app.log_level":             "LOG_LEVEL",
	"rpc.host":                  "RPC_HOST",
	"rpc.port":                  "RPC_PORT",
	"rpc.user":                  "RPC_USER",
	"rpc.password":              "RPC_PASSWORD",
	"coin.name":                 "COIN_NAME",
	"coin.symbol":               "COIN_SYMBOL",
	"explorer.latest_blocks":    "EXPLORER_LATEST_BLOCKS",
	"explorer.address_prefixes": "EXPLORER_ADDRESS_PREFIXES",
	"explorer.url":              "EXPLORER_URL",
}

// Load reads config.yaml (optional, from . or ./config), the environment and
// the profile defaults of app. The returned Config is not modified afterwards.
func Load(v *viper.Viper, app App) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	setDefaults(v, app)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.App.Name = string(app)
	cfg.App.DefaultLang = strings.ToLower(strings.TrimSpace(cfg.App.DefaultLang))
	if cfg.Explorer.LatestBlocks <= 0 {
		cfg.Explorer.LatestBlocks = defaultLatestBlocks
	}

	return &cfg, nil
}

const defaultLatestBlocks = 10

func setDefaults(v *viper.Viper, app App) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.host", "0.0.0.0")

	switch app {
	case Website:
		v.SetDefault("app.port", "3001")
		v.SetDefault("app.default_lang", "en")
	default:
		v.SetDefault("app.port", "3000")
		v.SetDefault("app.default_lang", "ar")
	}

	v.SetDefault("rpc.host", "127.0.0.1")
	v.SetDefault("rpc.port", "9632")
	v.SetDefault("rpc.user", "opensy")

	v.SetDefault("coin.name", "OpenSY")
	v.SetDefault("coin.symbol", "SYL")

	v.SetDefault("explorer.latest_blocks", defaultLatestBlocks)
	v.SetDefault("explorer.address_prefixes", []string{"syl1", "F", "3"})
	v.SetDefault("explorer.url", "https://explorer.opensy.net")
}
