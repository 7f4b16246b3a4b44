package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	DatabaseURL string

	JWTIssuer         string
	JWTSecret         string
	AccessTokenTTLMin int

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	RateLimitPerMin int
	RateLimitBurst  int
}

func Load() Config {
	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		HTTPAddr: get("HTTP_ADDR", ":8080"),

		DatabaseURL: get("DATABASE_URL", ""),

		JWTIssuer:         get("JWT_ISSUER", "eventmart"),
		JWTSecret:         get("JWT_SECRET", ""),
		AccessTokenTTLMin: getInt("ACCESS_TOKEN_TTL_MIN", 60),

		SMTPHost: get("SMTP_HOST", ""),
		SMTPPort: getInt("SMTP_PORT", 587),
		SMTPUser: get("SMTP_USER", ""),
		SMTPPass: get("SMTP_PASS", ""),
		SMTPFrom: get("SMTP_FROM", ""),

		RateLimitPerMin: getInt("RATE_LIMIT_PER_MIN", 120),
		RateLimitBurst:  getInt("RATE_LIMIT_BURST", 30),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
