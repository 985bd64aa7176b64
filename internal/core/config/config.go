package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}
type AdminHTTP struct {
	Host string
	Port int
}

type App struct {
	Name  string
	Env   string
	HTTP  HTTP
	Admin AdminHTTP
}

type LogFile struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
}

type Auth struct {
	// AllowAdminSignup lets /auth/register create admin accounts.
	AllowAdminSignup bool
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTLSec   int    `mapstructure:"ttlSec"`
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Limits struct {
	RPS          float64
	Burst        int
	PerIP        bool
	MaxInFlight  int64
	MaxBodyBytes int64
	TimeoutSec   int
}

type Config struct {
	App    App
	Log    Log
	JWT    JWT
	Auth   Auth
	DB     DB
	Redis  Redis `mapstructure:"redis"`
	Limits Limits
}

var defaults = map[string]any{
	"app.name":                 "restaurant-api",
	"app.env":                  "local",
	"app.http.host":            "0.0.0.0",
	"app.http.port":            3000,
	"app.http.readTimeoutSec":  5,
	"app.http.writeTimeoutSec": 10,
	"app.http.idleTimeoutSec":  60,
	"app.admin.host":           "127.0.0.1",
	"app.admin.port":           3001,
	"log.level":                "info",
	"log.json":                 false,
	"log.file.enable":          false,
	"log.file.filename":        "logs/app.log",
	"log.file.maxSizeMB":       100,
	"log.file.maxBackups":      7,
	"log.file.maxAgeDays":      30,
	"log.file.compress":        true,
	"jwt.secret":               "",
	"jwt.issuer":               "",
	"jwt.accessTokenTTLMin":    60,
	"auth.allowAdminSignup":    true,
	"db.driver":                "sqlite",
	"db.dsn":                   "restaurant.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
	"db.username":              "",
	"db.password":              "",
	"db.maxOpenConns":          25,
	"db.maxIdleConns":          25,
	"db.connMaxLifetimeMin":    5,
	"db.autoMigrate":           true,
	"db.logLevel":              "warn",
	"redis.addr":               "",
	"redis.password":           "",
	"redis.db":                 0,
	"redis.ttlSec":             60,
	"limits.rps":               200,
	"limits.burst":             400,
	"limits.perIP":             false,
	"limits.maxInFlight":       300,
	"limits.maxBodyBytes":      1 << 20,
	"limits.timeoutSec":        10,
}

// Load reads the YAML file at path (if it exists) and overlays APP_* env vars,
// e.g. APP_DB_DSN for db.dsn. PORT and JWT_SECRET are honoured as well.
func Load(path string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("app.http.port", "APP_APP_HTTP_PORT", "PORT")
	_ = v.BindEnv("jwt.secret", "APP_JWT_SECRET", "JWT_SECRET")

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("jwt.secret is required (set JWT_SECRET)")
	}
	if c.JWT.AccessTokenTTLMin <= 0 {
		return errors.New("jwt.accessTokenTTLMin must be positive")
	}
	if c.App.HTTP.Port <= 0 {
		return errors.New("app.http.port must be positive")
	}
	return nil
}
