package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Reports      Reports      `mapstructure:",squash"`
	RateLimit    RateLimit    `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel      string `mapstructure:"log_level"`
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days"`
	Timezone      string `mapstructure:"timezone"`

	Location *time.Location `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Enabled       bool          `mapstructure:"auth_enabled"`
	Secret        string        `mapstructure:"auth_secret"`
	SellerID      string        `mapstructure:"auth_seller_id"`
	StoreName     string        `mapstructure:"auth_store_name"`
	APIKeyHash    string        `mapstructure:"auth_api_key_hash"`
	TokenDuration time.Duration `mapstructure:"auth_token_duration"`
}

type Reports struct {
	DefaultPreset string  `mapstructure:"reports_default_preset"`
	Variance      float64 `mapstructure:"reports_variance"`
}

type RateLimit struct {
	Enabled           bool     `mapstructure:"rate_limit_enabled"`
	RequestsPerSecond float64  `mapstructure:"rate_limit_rps"`
	Burst             int      `mapstructure:"rate_limit_burst"`
	TrustedProxies    []string `mapstructure:"rate_limit_trusted_proxies"`
}

type SnapshotSync struct {
	Enabled       bool     `mapstructure:"snapshot_sync_enabled"`
	CronSchedule  string   `mapstructure:"snapshot_sync_cron"`
	RetentionDays int      `mapstructure:"snapshot_sync_retention_days"`
	Presets       []string `mapstructure:"snapshot_sync_presets"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/seller_reports?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "change_me")
	viper.SetDefault("AUTH_SELLER_ID", "seller-1")
	viper.SetDefault("AUTH_STORE_NAME", "Grace de Dios Business")
	viper.SetDefault("AUTH_API_KEY_HASH", "")
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")

	viper.SetDefault("REPORTS_DEFAULT_PRESET", "today")
	viper.SetDefault("REPORTS_VARIANCE", 0.15)

	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_RPS", 5)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
	viper.SetDefault("RATE_LIMIT_TRUSTED_PROXIES", "")

	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 2 * * *") // every day at 2am
	viper.SetDefault("SNAPSHOT_SYNC_RETENTION_DAYS", 90)
	viper.SetDefault("SNAPSHOT_SYNC_PRESETS", "yesterday,last7days,last30days,mtd,ytd")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_MAX_SIZE_MB", 50)
	viper.SetDefault("LOG_MAX_BACKUPS", 5)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 28)
	viper.SetDefault("TIMEZONE", "Local")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("using environment variables only (viper could not read .env): ", err)
	}

	return Load(viper.GetViper())
}

// Load decodes and validates the configuration held by v. It is split from
// NewConfig so tests can feed their own viper instance.
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "config: unable to decode")
	}

	location, err := time.LoadLocation(config.App.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "config: invalid timezone %q", config.App.Timezone)
	}
	config.App.Location = location

	if config.Reports.Variance < 0 || config.Reports.Variance >= 1 {
		return nil, fmt.Errorf("config: reports variance must be in [0,1), got %v", config.Reports.Variance)
	}

	if config.SnapshotSync.Enabled && !config.Database.Enabled {
		return nil, errors.New("config: snapshot sync requires DATABASE_ENABLED")
	}

	if config.Auth.Enabled && config.Auth.APIKeyHash == "" {
		return nil, errors.New("config: AUTH_API_KEY_HASH is required when auth is enabled")
	}

	config.Server.AllowedOrigins = trimAll(config.Server.AllowedOrigins)
	config.SnapshotSync.Presets = trimAll(config.SnapshotSync.Presets)
	config.RateLimit.TrustedProxies = trimAll(config.RateLimit.TrustedProxies)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}

// loadEnvFile looks for a .env file in the working directory and its parents.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Debug("no .env file found, relying on environment variables")
}
