package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort      int           `mapstructure:"APP_PORT"`
	APIBaseURL   string        `mapstructure:"API_BASE_URL"`
	APITimeout   time.Duration `mapstructure:"API_TIMEOUT"`
	DatabasePath string        `mapstructure:"DATABASE_PATH"`
	LogLevel     string        `mapstructure:"LOG_LEVEL"`

	// RedisAddr enables the cache snapshot backend when set.
	RedisAddr   string        `mapstructure:"REDIS_ADDR"`
	SnapshotTTL time.Duration `mapstructure:"CACHE_SNAPSHOT_TTL"`

	CacheStaleTime  time.Duration `mapstructure:"CACHE_STALE_TIME"`
	CacheRetryCount int           `mapstructure:"CACHE_RETRY_COUNT"`

	PollMessagesInterval      time.Duration `mapstructure:"POLL_MESSAGES_INTERVAL"`
	PollConversationsInterval time.Duration `mapstructure:"POLL_CONVERSATIONS_INTERVAL"`
	PollAnalysisInterval      time.Duration `mapstructure:"POLL_ANALYSIS_INTERVAL"`
	PollValidationInterval    time.Duration `mapstructure:"POLL_VALIDATION_INTERVAL"`
	PollUnreadInterval        time.Duration `mapstructure:"POLL_UNREAD_INTERVAL"`
	// TrackMaxLifetime ends analysis and validation tracking that never
	// settles. Zero disables the limit.
	TrackMaxLifetime time.Duration `mapstructure:"TRACK_MAX_LIFETIME"`
}

// Intervals groups the polling cadence of each live feature.
type Intervals struct {
	Messages      time.Duration
	Conversations time.Duration
	Analysis      time.Duration
	Validation    time.Duration
	Unread        time.Duration
	// TrackLifetime bounds tracking of resources with a terminal state.
	TrackLifetime time.Duration
}

func (c *Config) Intervals() Intervals {
	return Intervals{
		Messages:      c.PollMessagesInterval,
		Conversations: c.PollConversationsInterval,
		Analysis:      c.PollAnalysisInterval,
		Validation:    c.PollValidationInterval,
		Unread:        c.PollUnreadInterval,
		TrackLifetime: c.TrackMaxLifetime,
	}
}

// DefaultIntervals is the polling cadence used when nothing is configured.
func DefaultIntervals() Intervals {
	return Intervals{
		Messages:      5 * time.Second,
		Conversations: 30 * time.Second,
		Analysis:      3 * time.Second,
		Validation:    10 * time.Second,
		Unread:        60 * time.Second,
		TrackLifetime: 15 * time.Minute,
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultIntervals()
	v.SetDefault("APP_PORT", 3000)
	v.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	v.SetDefault("API_TIMEOUT", 30*time.Second)
	v.SetDefault("DATABASE_PATH", "/data/threadline.db")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("CACHE_SNAPSHOT_TTL", 24*time.Hour)
	v.SetDefault("CACHE_STALE_TIME", 30*time.Second)
	v.SetDefault("CACHE_RETRY_COUNT", 3)
	v.SetDefault("POLL_MESSAGES_INTERVAL", d.Messages)
	v.SetDefault("POLL_CONVERSATIONS_INTERVAL", d.Conversations)
	v.SetDefault("POLL_ANALYSIS_INTERVAL", d.Analysis)
	v.SetDefault("POLL_VALIDATION_INTERVAL", d.Validation)
	v.SetDefault("POLL_UNREAD_INTERVAL", d.Unread)
	v.SetDefault("TRACK_MAX_LIFETIME", d.TrackLifetime)
}

func LoadConfig() (*Config, error) {
	return load(viper.GetViper(), ".", "./backend")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	setDefaults(v)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
