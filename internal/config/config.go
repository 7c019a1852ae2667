package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	SessionSecret       string
	DatabaseURL         string
	RedisURL            string
	AlphaVantageBaseURL string // quote/news provider endpoint, default https://www.alphavantage.co/query
	AlphaVantageAPIKey  string // server-wide fallback key; users may store their own
	QuoteTimeout        time.Duration
	FrontendURLEndsWith string
	DevPassword         string
	AllowCrossSiteDev   bool
	HealthAdminKey      string
	DemoEmail           string // seeded demo account (demo-only auth)
	DemoPassword        string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	dbURL := viper.GetString("DATABASE_URL_DEV")
	if env == "production" {
		dbURL = viper.GetString("DATABASE_URL_PROD")
	} else if env == "test" {
		dbURL = viper.GetString("DATABASE_URL_TEST")
	}
	if dbURL == "" {
		dbURL = viper.GetString("DATABASE_URL")
	}

	timeout := viper.GetDuration("QUOTE_TIMEOUT")
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Config{
		Env:                 env,
		Port:                port,
		SessionSecret:       viper.GetString("SESSION_SECRET"),
		DatabaseURL:         dbURL,
		RedisURL:            viper.GetString("REDIS_URL"),
		AlphaVantageBaseURL: providerBaseURL(viper.GetString("ALPHAVANTAGE_BASE_URL")),
		AlphaVantageAPIKey:  viper.GetString("ALPHAVANTAGE_API_KEY"),
		QuoteTimeout:        timeout,
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
		AllowCrossSiteDev:   strings.EqualFold(viper.GetString("ALLOW_CROSS_SITE_DEV"), "true"),
		HealthAdminKey:      viper.GetString("HEALTH_ADMIN_KEY"),
		DemoEmail:           demoEmail(viper.GetString("DEMO_EMAIL")),
		DemoPassword:        viper.GetString("DEMO_PASSWORD"),
	}, nil
}

func providerBaseURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "https://www.alphavantage.co/query"
	}
	return s
}

func demoEmail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "demo@stoxify.app"
	}
	return s
}
