package crawler

import "macdealtracker/internal/deal"

// Crawler interface defines the contract for all listing crawlers
type Crawler interface {
	// FetchListings retrieves raw listings from a source
	FetchListings() ([]deal.Listing, error)

	// GetName returns the crawler's name for logging and identification
	GetName() string

	// GetSearchTerm returns the search term this crawler covers
	GetSearchTerm() string
}

// Selectors contains CSS selectors for the listing elements on a result page
type Selectors struct {
	Item      string
	Title     string
	Price     string
	Link      string
	Shipping  string
	Location  string
	Sponsored string
}

// CrawlerConfig contains configuration for an eBay search crawler
type CrawlerConfig struct {
	BaseURL    string
	SearchTerm string
	MaxPages   int
	CacheKey   string
	BlockTime  int
	Selectors  Selectors
}
