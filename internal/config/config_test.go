package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
storefront:
  port: 8080
  checkout_auto_close: 5s
  allowed_origins:
    - https://aquave.example
catalog:
  source: file
  path: drinks.yaml
events:
  driver: kafka
kafka:
  brokers:
    - kafka-1:9092
    - kafka-2:9092
database:
  host: db
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Storefront.Port)
	assert.Equal(t, 5*time.Second, cfg.Storefront.AutoClose)
	assert.Equal(t, 50*time.Millisecond, cfg.Storefront.PreparationTick)
	assert.Equal(t, []string{"https://aquave.example"}, cfg.Storefront.AllowedOrigins)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "storefront-events", cfg.Kafka.Topic)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AQUAVE_DATABASE_HOST", "pg.internal")
	t.Setenv("AQUAVE_STOREFRONT_SESSION_IDLE_TTL", "10m")
	t.Setenv("AQUAVE_EVENTS_DRIVER", "rabbitmq")
	path := writeConfig(t, "database:\n  host: db\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, 10*time.Minute, cfg.Storefront.SessionIdleTTL)
	assert.Equal(t, "rabbitmq", cfg.Events.Driver)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AQUAVE_LOGGING_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("AQUAVE_LOGGING_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_FlagsOverrideFileAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AQUAVE_STOREFRONT_PORT", "7000")
	path := writeConfig(t, "logging:\n  level: warn\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("port", 3000, "")
	fs.String("log-level", "info", "")
	require.NoError(t, fs.Parse([]string{"--port", "9090"}))

	cfg, err := Load(path,
		BindFlag("storefront.port", fs.Lookup("port")),
		BindFlag("logging.level", fs.Lookup("log-level")),
	)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Storefront.Port)
	assert.Equal(t, "warn", cfg.Logging.Level, "unset flags do not shadow the file")

	_, err = Load("", BindFlag("events.driver", fs.Lookup("events")))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"port":           func(c *Config) { c.Storefront.Port = 0 },
		"duration":       func(c *Config) { c.Storefront.PreparationTick = 0 },
		"catalog source": func(c *Config) { c.Catalog.Source = "s3" },
		"file path":      func(c *Config) { c.Catalog.Source = "file" },
		"events driver":  func(c *Config) { c.Events.Driver = "carrier-pigeon" },
		"kafka topic": func(c *Config) {
			c.Events.Driver = "kafka"
			c.Kafka.Topic = ""
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
