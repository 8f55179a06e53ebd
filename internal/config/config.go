package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	LedgerBackendDynamoDB = "dynamodb"
	LedgerBackendPostgres = "postgres"
	LedgerBackendMemory   = "memory"

	StoreBackendDynamoDB = "dynamodb"
	StoreBackendMemory   = "memory"
)

const (
	defaultPort                     = "8080"
	defaultAWSRegion                = "us-east-1"
	defaultLLMRequestTimeout        = 60 * time.Second
	defaultMaxConcurrentGenerations = 4
	defaultKafkaTopic               = "bizgenius.session-events"
	defaultS3Prefix                 = "reports/"
	defaultSiteName                 = "BizGenius"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Port string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	StoreBackend  string
	LedgerBackend string
	DatabaseURL   string

	KafkaBrokers []string
	KafkaTopic   string

	S3Bucket   string
	S3Prefix   string
	S3Endpoint string

	SlackToken   string
	SlackChannel string

	AuthJWTSecret        string
	AuthJWTPublicKeyFile string
	AuthDevAllowLocal    bool

	MercadoPagoAccessToken   string
	MercadoPagoWebhookSecret string

	LLMRequestTimeout        time.Duration
	MaxConcurrentGenerations int
	ProviderPriority         []string
	SiteURL                  string
	SiteName                 string
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv reads the environment without validating it.
func FromEnv() Config {
	return Config{
		Port: envStr("PORT", defaultPort),

		AWSRegion:          envStr("AWS_REGION", defaultAWSRegion),
		AWSAccessKeyID:     envStr("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: envStr("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		StoreBackend:  strings.ToLower(envStr("STORE_BACKEND", StoreBackendDynamoDB)),
		LedgerBackend: strings.ToLower(envStr("COST_LEDGER_BACKEND", LedgerBackendDynamoDB)),
		DatabaseURL:   os.Getenv("DATABASE_URL"),

		KafkaBrokers: envList("KAFKA_BROKERS"),
		KafkaTopic:   envStr("KAFKA_TOPIC", defaultKafkaTopic),

		S3Bucket:   os.Getenv("REPORTS_S3_BUCKET"),
		S3Prefix:   envStr("REPORTS_S3_PREFIX", defaultS3Prefix),
		S3Endpoint: os.Getenv("S3_ENDPOINT"),

		SlackToken:   os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannel: os.Getenv("SLACK_ALERT_CHANNEL"),

		AuthJWTSecret:        os.Getenv("AUTH_JWT_SECRET"),
		AuthJWTPublicKeyFile: os.Getenv("AUTH_JWT_PUBLIC_KEY_FILE"),
		AuthDevAllowLocal:    envBool("AUTH_DEV_ALLOW_LOCAL", false),

		MercadoPagoAccessToken:   os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoWebhookSecret: os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"),

		LLMRequestTimeout:        envDuration("LLM_REQUEST_TIMEOUT", defaultLLMRequestTimeout),
		MaxConcurrentGenerations: envInt("MAX_CONCURRENT_GENERATIONS", defaultMaxConcurrentGenerations),
		ProviderPriority:         envList("LLM_PROVIDER_PRIORITY"),
		SiteURL:                  os.Getenv("SITE_URL"),
		SiteName:                 envStr("SITE_NAME", defaultSiteName),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a valid port, got %q", c.Port))
	}
	switch c.StoreBackend {
	case StoreBackendDynamoDB, StoreBackendMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be dynamodb or memory, got %q", c.StoreBackend))
	}
	switch c.LedgerBackend {
	case LedgerBackendDynamoDB, LedgerBackendMemory:
	case LedgerBackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL required when COST_LEDGER_BACKEND=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("COST_LEDGER_BACKEND must be dynamodb, postgres or memory, got %q", c.LedgerBackend))
	}
	if c.LLMRequestTimeout <= 0 {
		errs = append(errs, errors.New("LLM_REQUEST_TIMEOUT must be positive"))
	}
	if c.MaxConcurrentGenerations <= 0 {
		errs = append(errs, errors.New("MAX_CONCURRENT_GENERATIONS must be positive"))
	}
	if c.AuthJWTSecret == "" && c.AuthJWTPublicKeyFile == "" && !c.AuthDevAllowLocal {
		errs = append(errs, errors.New("AUTH_JWT_SECRET or AUTH_JWT_PUBLIC_KEY_FILE required unless AUTH_DEV_ALLOW_LOCAL=true"))
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		errs = append(errs, errors.New("KAFKA_TOPIC required when KAFKA_BROKERS is set"))
	}
	if c.SlackToken != "" && c.SlackChannel == "" {
		errs = append(errs, errors.New("SLACK_ALERT_CHANNEL required when SLACK_BOT_TOKEN is set"))
	}
	return errors.Join(errs...)
}

func envStr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// envDuration accepts Go durations ("90s") or a bare number of seconds.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
