package crawler

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"macdealtracker/helpers"
	"macdealtracker/services/cache"
)

// BaseCrawler provides common functionality for all crawlers
type BaseCrawler struct {
	CacheKey  string
	CacheSvc  cache.CacheService
	BlockTime time.Duration
}

// fetchWithCache fetches a URL with rate limiting. When the remote side
// reports rate limiting, a cache key blocks further requests for BlockTime.
func (c *BaseCrawler) fetchWithCache(url string) (io.Reader, error) {
	// Check if the crawler is rate limited
	if c.CacheSvc != nil && c.CacheKey != "" {
		if _, err := c.CacheSvc.Get(c.CacheKey); err == nil {
			return nil, fmt.Errorf("%s: blocked for %d more seconds", c.CacheKey, int(c.BlockTime/time.Second))
		}
	}

	// Fetch the page
	utf8Body, err := helpers.FetchWithRandomHeaders(url)
	if err != nil {
		if c.CacheSvc != nil && c.CacheKey != "" && strings.HasPrefix(err.Error(), "rate limited") {
			// Set rate limiting cache
			c.CacheSvc.Set(c.CacheKey, []byte(fmt.Sprintf("%d", int(c.BlockTime/time.Second))), c.BlockTime)
		}
		return nil, err
	}

	return utf8Body, nil
}

// createDocument creates a goquery document from a reader
func (c *BaseCrawler) createDocument(reader io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("HTML parsing error: %v", err)
	}
	return doc, nil
}
