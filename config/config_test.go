package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Test with default values
	config := LoadConfig()
	assert.Equal(t, "https://www.ebay.com/sch/i.html", config.EbayBaseURL)
	assert.Len(t, config.SearchTerms, 4)
	assert.Equal(t, 2, config.MaxPages)
	assert.Equal(t, 15, config.TopDeals)
	assert.Equal(t, 30, config.RetentionDays)
	assert.Equal(t, "macbook_deals.json", config.HistoryFile)
	assert.Equal(t, 24*time.Hour, config.CheckInterval)
	assert.Equal(t, "localhost:11211", config.MemcacheAddr)
	assert.Equal(t, "localhost:6379", config.RedisAddr)
	assert.Equal(t, "macdeals", config.RedisStream)

	// Test with environment variables
	os.Setenv("SEARCH_TERMS", "macbook m2, macbook m3 ")
	os.Setenv("MAX_PAGES_PER_TERM", "3")
	os.Setenv("TOP_DEALS", "5")
	os.Setenv("RETENTION_DAYS", "7")
	os.Setenv("CHECK_INTERVAL_HOURS", "12")
	os.Setenv("REDIS_ADDR", "redis.example.com:6379")

	config = LoadConfig()
	assert.Equal(t, []string{"macbook m2", "macbook m3"}, config.SearchTerms)
	assert.Equal(t, 3, config.MaxPages)
	assert.Equal(t, 5, config.TopDeals)
	assert.Equal(t, 7, config.RetentionDays)
	assert.Equal(t, 12*time.Hour, config.CheckInterval)
	assert.Equal(t, "redis.example.com:6379", config.RedisAddr)

	// Clean up
	os.Unsetenv("SEARCH_TERMS")
	os.Unsetenv("MAX_PAGES_PER_TERM")
	os.Unsetenv("TOP_DEALS")
	os.Unsetenv("RETENTION_DAYS")
	os.Unsetenv("CHECK_INTERVAL_HOURS")
	os.Unsetenv("REDIS_ADDR")
}

func TestValidate(t *testing.T) {
	config := LoadConfig()
	assert.NoError(t, config.Validate())

	invalid := config
	invalid.SearchTerms = nil
	assert.Error(t, invalid.Validate())

	invalid = config
	invalid.MaxPages = 0
	assert.Error(t, invalid.Validate())

	invalid = config
	invalid.TopDeals = 0
	assert.Error(t, invalid.Validate())

	invalid = config
	invalid.RetentionDays = -1
	assert.Error(t, invalid.Validate())

	invalid = config
	invalid.HistoryFile = ""
	assert.Error(t, invalid.Validate())
}

func TestEmailConfigured(t *testing.T) {
	config := LoadConfig()
	assert.False(t, config.EmailConfigured())

	config.EmailAddress = "sender@example.com"
	config.RecipientEmail = "alerts@example.com"
	assert.True(t, config.EmailConfigured())
}
