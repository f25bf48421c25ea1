package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"scoreboard/internal/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported store drivers and session backends.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	SessionMemory = "memory"
	SessionRedis  = "redis"
)

const envPrefix = "SCOREBOARD"

// DefaultQueryTimeout bounds a single repository call when db.query_timeout is unset.
const DefaultQueryTimeout = 5 * time.Second

// Config is the full runtime configuration of the API and the admin CLI.
type Config struct {
	Env       string          `mapstructure:"env"`
	Port      string          `mapstructure:"port"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Session   SessionConfig   `mapstructure:"session"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	TLS       TLSConfig       `mapstructure:"tls"`
	Feed      FeedConfig      `mapstructure:"feed"`
	Houses    []string        `mapstructure:"houses"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DBConfig describes the relational store and its connection pool.
type DBConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"` // sqlite only
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout"`
}

type AuthConfig struct {
	BcryptCost    int           `mapstructure:"bcrypt_cost"`
	SessionSecret string        `mapstructure:"session_secret"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	CookieName    string        `mapstructure:"cookie_name"`
	CookieSecure  bool          `mapstructure:"cookie_secure"`
}

type SessionConfig struct {
	Backend       string `mapstructure:"backend"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	KeyPrefix     string `mapstructure:"key_prefix"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	LoginPerSecond float64 `mapstructure:"login_per_second"`
	LoginBurst     int     `mapstructure:"login_burst"`
}

type TLSConfig struct {
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

// Enabled reports whether both halves of the key pair are configured.
func (t TLSConfig) Enabled() bool { return t.CertFile != "" && t.KeyFile != "" }

type FeedConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("port", "5000")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.path", "scoreboard.db")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "3306")
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "scoreboard")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("db.query_timeout", DefaultQueryTimeout)

	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.session_secret", "")
	v.SetDefault("auth.session_ttl", 24*time.Hour)
	v.SetDefault("auth.cookie_name", "scoreboard_session")
	v.SetDefault("auth.cookie_secure", false)

	v.SetDefault("session.backend", SessionMemory)
	v.SetDefault("session.redis_addr", "localhost:6379")
	v.SetDefault("session.redis_password", "")
	v.SetDefault("session.redis_db", 0)
	v.SetDefault("session.key_prefix", "scoreboard:session:")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})

	v.SetDefault("ratelimit.login_per_second", 1.0)
	v.SetDefault("ratelimit.login_burst", 5)

	v.SetDefault("tls.cert_file", "")
	v.SetDefault("tls.key_file", "")

	v.SetDefault("feed.interval", 2*time.Second)
	v.SetDefault("houses", models.DefaultHouses)
}

// legacyEnv binds the unprefixed DB_*/PORT variables older deployments set.
var legacyEnv = map[string]string{
	"db.host":     "DB_HOST",
	"db.user":     "DB_USER",
	"db.password": "DB_PASSWORD",
	"db.name":     "DB_NAME",
	"port":        "PORT",
}

// Load reads configs/config.yml (or the first config.yml found in paths),
// applies SCOREBOARD_* and legacy environment overrides and validates the result.
// A .env file in the working directory is loaded first when present.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(paths) == 0 {
		paths = []string{"configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		envKey := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envKey, legacy); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLite, DriverMySQL:
	default:
		return fmt.Errorf("unsupported db.driver %q (want %s or %s)", c.DB.Driver, DriverSQLite, DriverMySQL)
	}
	switch c.Session.Backend {
	case SessionMemory, SessionRedis:
	default:
		return fmt.Errorf("unsupported session.backend %q (want %s or %s)", c.Session.Backend, SessionMemory, SessionRedis)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be within 4..31, got %d", c.Auth.BcryptCost)
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("auth.session_ttl must be positive")
	}
	if c.DB.QueryTimeout <= 0 {
		return errors.New("db.query_timeout must be positive")
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		return errors.New("tls.cert_file and tls.key_file must be set together")
	}
	if len(c.Houses) == 0 {
		return errors.New("at least one house must be configured")
	}
	return nil
}
