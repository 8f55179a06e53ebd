package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "STORE_BACKEND", "COST_LEDGER_BACKEND", "DATABASE_URL", "KAFKA_BROKERS", "KAFKA_TOPIC",
		"SLACK_BOT_TOKEN", "SLACK_ALERT_CHANNEL", "AUTH_JWT_PUBLIC_KEY_FILE", "AUTH_DEV_ALLOW_LOCAL",
		"LLM_REQUEST_TIMEOUT", "MAX_CONCURRENT_GENERATIONS", "LLM_PROVIDER_PRIORITY",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("AUTH_JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, LedgerBackendDynamoDB, cfg.LedgerBackend)
	assert.Equal(t, StoreBackendDynamoDB, cfg.StoreBackend)
	assert.Equal(t, 60*time.Second, cfg.LLMRequestTimeout)
	assert.Equal(t, 4, cfg.MaxConcurrentGenerations)
	assert.Equal(t, "BizGenius", cfg.SiteName)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("COST_LEDGER_BACKEND", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/bizgenius")
	t.Setenv("LLM_REQUEST_TIMEOUT", "90")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("LLM_PROVIDER_PRIORITY", "groq,openai")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, LedgerBackendPostgres, cfg.LedgerBackend)
	assert.Equal(t, 90*time.Second, cfg.LLMRequestTimeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"groq", "openai"}, cfg.ProviderPriority)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:                     "8080",
		StoreBackend:             StoreBackendDynamoDB,
		LedgerBackend:            LedgerBackendDynamoDB,
		LLMRequestTimeout:        time.Minute,
		MaxConcurrentGenerations: 2,
		AuthJWTSecret:            "s",
	}
	require.NoError(t, valid.Validate())

	cases := map[string]func(c *Config){
		"bad port":         func(c *Config) { c.Port = "http" },
		"unknown ledger":   func(c *Config) { c.LedgerBackend = "mysql" },
		"postgres no url":  func(c *Config) { c.LedgerBackend = LedgerBackendPostgres },
		"unknown store":    func(c *Config) { c.StoreBackend = "redis" },
		"zero timeout":     func(c *Config) { c.LLMRequestTimeout = 0 },
		"zero concurrency": func(c *Config) { c.MaxConcurrentGenerations = 0 },
		"no auth":          func(c *Config) { c.AuthJWTSecret = "" },
		"slack no channel": func(c *Config) { c.SlackToken = "xoxb-1" },
		"kafka no topic":   func(c *Config) { c.KafkaBrokers = []string{"k:9092"} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}

	t.Run("dev bypass satisfies auth", func(t *testing.T) {
		c := valid
		c.AuthJWTSecret = ""
		c.AuthDevAllowLocal = true
		assert.NoError(t, c.Validate())
	})
}
