package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	StatsSnapshot StatsSnapshot `mapstructure:",squash"`
	Client        Client        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	Password        string        `mapstructure:"database_password"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
	ConnectTimeout  time.Duration `mapstructure:"database_connect_timeout"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type StatsSnapshot struct {
	CronSchedule string `mapstructure:"stats_snapshot_cron"`
	Enabled      bool   `mapstructure:"stats_snapshot_enabled"`
}

// Client holds the defaults consumed by the pkg/client SDK (reference cache
// window, retry policy, per call timeout).
type Client struct {
	BaseURL      string        `mapstructure:"client_base_url"`
	CacheTTL     time.Duration `mapstructure:"client_cache_ttl"`
	FetchRetries int           `mapstructure:"client_fetch_retries"`
	RetryDelay   time.Duration `mapstructure:"client_retry_delay"`
	FetchTimeout time.Duration `mapstructure:"client_fetch_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3000)

	viper.SetDefault("REQUEST_TIMEOUT", "30s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/postgres")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "30s")
	viper.SetDefault("DATABASE_CONNECT_TIMEOUT", "2s")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:4200,http://127.0.0.1:4200")

	viper.SetDefault("STATS_SNAPSHOT_CRON", "0 7 * * *")
	viper.SetDefault("STATS_SNAPSHOT_ENABLED", false)

	viper.SetDefault("CLIENT_BASE_URL", "http://localhost:3000")
	viper.SetDefault("CLIENT_CACHE_TTL", "5m")
	viper.SetDefault("CLIENT_FETCH_RETRIES", 2)
	viper.SetDefault("CLIENT_RETRY_DELAY", "2s")
	viper.SetDefault("CLIENT_FETCH_TIMEOUT", "10s")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?connect_timeout=%d",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		int(config.Database.ConnectTimeout.Seconds()),
	)

	// AutomaticEnv hands comma separated lists over as a single string.
	if len(config.Cors.AllowedOrigins) == 1 && strings.Contains(config.Cors.AllowedOrigins[0], ",") {
		config.Cors.AllowedOrigins = strings.Split(config.Cors.AllowedOrigins[0], ",")
	}

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
