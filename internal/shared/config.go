package shared

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	CatalogPath string // empty: built-in catalog
	Seed        uint64 // 0: seed from the runtime
	MetricsFile string // empty: metrics are not written
}

// Config keys, shared by env bindings and cobra flags.
const (
	KeyAppEnv      = "app_env"
	KeyLogLevel    = "log_level"
	KeyCatalog     = "catalog"
	KeySeed        = "seed"
	KeyMetricsFile = "metrics_file"
)

// NewViper returns a viper instance with defaults and env bindings.
// Flags bound later with BindPFlag take precedence over env.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAppEnv, "prod")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyMetricsFile, "")

	bind := func(key, env string) {
		if err := v.BindEnv(key, env); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("bind env failed")
		}
	}
	bind(KeyAppEnv, "APP_ENV")
	bind(KeyLogLevel, "LOG_LEVEL")
	bind(KeyCatalog, "PLANNER_CATALOG")
	bind(KeySeed, "PLANNER_SEED")
	bind(KeyMetricsFile, "PLANNER_METRICS_FILE")
	return v
}

func Load(v *viper.Viper) Config {
	c := Config{
		AppEnv:      strings.ToLower(strings.TrimSpace(v.GetString(KeyAppEnv))),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		CatalogPath: strings.TrimSpace(v.GetString(KeyCatalog)),
		Seed:        v.GetUint64(KeySeed),
		MetricsFile: strings.TrimSpace(v.GetString(KeyMetricsFile)),
	}
	if c.AppEnv == "" {
		c.AppEnv = "prod"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	return c
}
