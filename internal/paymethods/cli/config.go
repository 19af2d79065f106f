package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI, e.g.
// PAYMETHODS_SERVER or PAYMETHODS_REDIS_ADDR.
const EnvPrefix = "PAYMETHODS"

type Config struct {
	Server   string        `mapstructure:"server"`
	User     string        `mapstructure:"user"`
	Parent   string        `mapstructure:"parent"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"log_level"`

	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig enables a shared list cache when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// flagKeys maps persistent flags to their config keys.
var flagKeys = map[string]string{
	"server":         "server",
	"user":           "user",
	"parent":         "parent",
	"timeout":        "timeout",
	"log-level":      "log_level",
	"redis-addr":     "redis.addr",
	"redis-password": "redis.password",
	"redis-db":       "redis.db",
	"redis-prefix":   "redis.prefix",
	"redis-ttl":      "redis.ttl",
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "path to a YAML config file")
	flags.String("server", "http://localhost:8080", "payment methods service base URL")
	flags.String("user", "", "acting user id (defaults to the parent id)")
	flags.String("parent", "", "parent account id")
	flags.Duration("timeout", 10*time.Second, "request timeout")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("redis-addr", "", "Redis address for the shared list cache")
	flags.String("redis-password", "", "Redis password")
	flags.Int("redis-db", 0, "Redis database number")
	flags.String("redis-prefix", "", "Redis key prefix for cached lists")
	flags.Duration("redis-ttl", 5*time.Minute, "lifetime of cached lists in Redis")
}

// newViper binds the flags to their keys and to PAYMETHODS_* variables.
// Precedence is flag, environment, config file, default.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return v, nil
}

// loadConfig reads the optional config file and decodes the merged settings.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Server = strings.TrimSpace(cfg.Server)
	cfg.Parent = strings.TrimSpace(cfg.Parent)
	cfg.User = strings.TrimSpace(cfg.User)
	if cfg.User == "" {
		cfg.User = cfg.Parent
	}
	return cfg, nil
}
