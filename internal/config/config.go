package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "AQUAVE"

type Config struct {
	Storefront StorefrontConfig `mapstructure:"storefront"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Events     EventsConfig     `mapstructure:"events"`
	Database   DatabaseConfig   `mapstructure:"database"`
	RabbitMQ   RabbitMQConfig   `mapstructure:"rabbitmq"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type StorefrontConfig struct {
	Port            int           `mapstructure:"port"`
	SessionIdleTTL  time.Duration `mapstructure:"session_idle_ttl"`
	ReapInterval    time.Duration `mapstructure:"reap_interval"`
	AutoClose       time.Duration `mapstructure:"checkout_auto_close"`
	PreparationTick time.Duration `mapstructure:"preparation_tick"`
	EventBuffer     int           `mapstructure:"event_buffer"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type CatalogConfig struct {
	// Source is builtin, file or postgres
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
}

type EventsConfig struct {
	// Driver is log, rabbitmq, kafka or none
	Driver string `mapstructure:"driver"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

type RabbitMQConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Exchange string `mapstructure:"exchange"`
	Prefetch int    `mapstructure:"prefetch"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func Default() *Config {
	return &Config{
		Storefront: StorefrontConfig{
			Port:            3000,
			SessionIdleTTL:  30 * time.Minute,
			ReapInterval:    time.Minute,
			AutoClose:       3 * time.Second,
			PreparationTick: 50 * time.Millisecond,
			EventBuffer:     256,
			AllowedOrigins:  []string{"*"},
		},
		Catalog: CatalogConfig{Source: "builtin"},
		Events:  EventsConfig{Driver: "log"},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "aquave",
			Password: "aquave",
			Database: "aquave",
		},
		RabbitMQ: RabbitMQConfig{
			Host:     "localhost",
			Port:     5672,
			User:     "guest",
			Password: "guest",
			Exchange: "storefront_events",
			Prefetch: 10,
		},
		Kafka: KafkaConfig{
			Brokers: []string{"localhost:9092"},
			Topic:   "storefront-events",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Option adjusts the viper instance before the config is decoded
type Option func(v *viper.Viper) error

// BindFlag lets a command-line flag override key when the flag was set
func BindFlag(key string, flag *pflag.Flag) Option {
	return func(v *viper.Viper) error {
		if flag == nil {
			return fmt.Errorf("no flag bound to %s", key)
		}
		return v.BindPFlag(key, flag)
	}
}

// Load reads an optional .env, then the YAML file at path (may be empty),
// then AQUAVE_* environment overrides, then opts, on top of Default.
func Load(path string, opts ...Option) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	var cfg Config
	decoderConfigOption := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&cfg, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys the file omits
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("storefront.port", d.Storefront.Port)
	v.SetDefault("storefront.session_idle_ttl", d.Storefront.SessionIdleTTL.String())
	v.SetDefault("storefront.reap_interval", d.Storefront.ReapInterval.String())
	v.SetDefault("storefront.checkout_auto_close", d.Storefront.AutoClose.String())
	v.SetDefault("storefront.preparation_tick", d.Storefront.PreparationTick.String())
	v.SetDefault("storefront.event_buffer", d.Storefront.EventBuffer)
	v.SetDefault("storefront.allowed_origins", strings.Join(d.Storefront.AllowedOrigins, ","))

	v.SetDefault("catalog.source", d.Catalog.Source)
	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("events.driver", d.Events.Driver)

	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.user", d.Database.User)
	v.SetDefault("database.password", d.Database.Password)
	v.SetDefault("database.database", d.Database.Database)

	v.SetDefault("rabbitmq.host", d.RabbitMQ.Host)
	v.SetDefault("rabbitmq.port", d.RabbitMQ.Port)
	v.SetDefault("rabbitmq.user", d.RabbitMQ.User)
	v.SetDefault("rabbitmq.password", d.RabbitMQ.Password)
	v.SetDefault("rabbitmq.exchange", d.RabbitMQ.Exchange)
	v.SetDefault("rabbitmq.prefetch", d.RabbitMQ.Prefetch)

	v.SetDefault("kafka.brokers", strings.Join(d.Kafka.Brokers, ","))
	v.SetDefault("kafka.topic", d.Kafka.Topic)

	v.SetDefault("logging.level", d.Logging.Level)
}

func (c *Config) Validate() error {
	var errs []error

	if c.Storefront.Port <= 0 || c.Storefront.Port > 65535 {
		errs = append(errs, fmt.Errorf("storefront.port %d out of range", c.Storefront.Port))
	}
	durations := map[string]time.Duration{
		"storefront.session_idle_ttl":    c.Storefront.SessionIdleTTL,
		"storefront.reap_interval":       c.Storefront.ReapInterval,
		"storefront.checkout_auto_close": c.Storefront.AutoClose,
		"storefront.preparation_tick":    c.Storefront.PreparationTick,
	}
	for key, d := range durations {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", key))
		}
	}

	switch c.Catalog.Source {
	case "builtin", "postgres":
	case "file":
		if c.Catalog.Path == "" {
			errs = append(errs, errors.New("catalog.path is required for the file source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown catalog.source %q", c.Catalog.Source))
	}

	switch c.Events.Driver {
	case "log", "rabbitmq", "none":
	case "kafka":
		if len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "" {
			errs = append(errs, errors.New("kafka.brokers and kafka.topic are required for the kafka driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown events.driver %q", c.Events.Driver))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
