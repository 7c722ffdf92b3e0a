package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// validConfig returns a Config that passes Validate.
func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Auth: AuthConfig{
			JWTSecret:        strings.Repeat("s", 32),
			JWTIssuer:        "quizdeck",
			PasswordHashCost: 10,
		},
		Quiz: QuizConfig{
			MaxCategoriesPerUser:    200,
			MaxQuestionsPerUser:     10000,
			MaxQualificationBatch:   100,
			DefaultPageSize:         50,
			MaxPageSize:             200,
			MaxMessageContentLength: 8000,
		},
		Log: LogConfig{Level: "info", Format: "json"},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 300,
			Burst:             50,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "short jwt secret",
			mutate: func(c *Config) { c.Auth.JWTSecret = "short" },
			want:   "jwt_secret",
		},
		{
			name:   "hash cost too low",
			mutate: func(c *Config) { c.Auth.PasswordHashCost = 2 },
			want:   "password_hash_cost",
		},
		{
			name:   "bad port",
			mutate: func(c *Config) { c.Server.Port = 0 },
			want:   "server.port",
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Log.Level = "verbose" },
			want:   "log.level",
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Log.Format = "xml" },
			want:   "log.format",
		},
		{
			name:   "zero batch cap",
			mutate: func(c *Config) { c.Quiz.MaxQualificationBatch = 0 },
			want:   "max_qualification_batch",
		},
		{
			name:   "max page below default",
			mutate: func(c *Config) { c.Quiz.MaxPageSize = 10 },
			want:   "max_page_size",
		},
		{
			name:   "rate limit enabled with zero rpm",
			mutate: func(c *Config) { c.RateLimit.RequestsPerMinute = 0 },
			want:   "requests_per_minute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_RateLimitDisabledSkipsLimits(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.RateLimit = RateLimitConfig{Enabled: false}
	require.NoError(t, cfg.Validate())
}
