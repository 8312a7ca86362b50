package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	// eBay search configuration
	EbayBaseURL string
	SearchTerms []string
	MaxPages    int

	// Deal evaluation configuration
	TopDeals      int
	RetentionDays int
	HistoryFile   string

	// Scheduling
	CheckInterval time.Duration

	// Memcache configuration (crawler rate-limit guard)
	MemcacheAddr   string
	RateLimitBlock time.Duration

	// Redis configuration (deal stream)
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamMaxLength int

	// Email configuration
	SMTPServer     string
	SMTPPort       int
	EmailAddress   string
	EmailPassword  string
	RecipientEmail string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	maxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	maxPages, _ := strconv.Atoi(getEnv("MAX_PAGES_PER_TERM", "2"))
	topDeals, _ := strconv.Atoi(getEnv("TOP_DEALS", "15"))
	retentionDays, _ := strconv.Atoi(getEnv("RETENTION_DAYS", "30"))
	checkHours, _ := strconv.Atoi(getEnv("CHECK_INTERVAL_HOURS", "24"))
	blockSeconds, _ := strconv.Atoi(getEnv("RATE_LIMIT_BLOCK_SECONDS", "500"))
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return Config{
		EbayBaseURL:          getEnv("EBAY_BASE_URL", "https://www.ebay.com/sch/i.html"),
		SearchTerms:          splitTerms(getEnv("SEARCH_TERMS", "refurbished macbook pro,refurbished macbook air,used macbook pro,used macbook air")),
		MaxPages:             maxPages,
		TopDeals:             topDeals,
		RetentionDays:        retentionDays,
		HistoryFile:          getEnv("HISTORY_FILE", "macbook_deals.json"),
		CheckInterval:        time.Duration(checkHours) * time.Hour,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", "localhost:11211"),
		RateLimitBlock:       time.Duration(blockSeconds) * time.Second,
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "macdeals"),
		RedisStreamMaxLength: maxLength,
		SMTPServer:           getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:             smtpPort,
		EmailAddress:         os.Getenv("EMAIL_ADDRESS"),
		EmailPassword:        os.Getenv("EMAIL_PASSWORD"),
		RecipientEmail:       os.Getenv("RECIPIENT_EMAIL"),
		Environment:          getEnv("TRACKER_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if len(c.SearchTerms) == 0 {
		return fmt.Errorf("at least one search term is required")
	}
	if c.MaxPages < 1 {
		return fmt.Errorf("MAX_PAGES_PER_TERM must be at least 1, got %d", c.MaxPages)
	}
	if c.TopDeals < 1 {
		return fmt.Errorf("TOP_DEALS must be at least 1, got %d", c.TopDeals)
	}
	if c.RetentionDays < 1 {
		return fmt.Errorf("RETENTION_DAYS must be at least 1, got %d", c.RetentionDays)
	}
	if c.HistoryFile == "" {
		return fmt.Errorf("HISTORY_FILE must not be empty")
	}
	return nil
}

// EmailConfigured reports whether the email settings are complete enough to send alerts
func (c *Config) EmailConfigured() bool {
	return c.EmailAddress != "" && c.RecipientEmail != ""
}

// splitTerms splits a comma-separated list, trimming whitespace and dropping empties
func splitTerms(raw string) []string {
	var terms []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
