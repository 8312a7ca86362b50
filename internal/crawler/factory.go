package crawler

import (
	"macdealtracker/config"
	"macdealtracker/services/cache"
)

// CreateCrawlers creates one eBay crawler per configured search term
func CreateCrawlers(cfg *config.Config, cacheSvc cache.CacheService) []Crawler {
	crawlers := make([]Crawler, 0, len(cfg.SearchTerms))

	for _, term := range cfg.SearchTerms {
		crawlers = append(crawlers, NewEbayCrawler(CrawlerConfig{
			BaseURL:    cfg.EbayBaseURL,
			SearchTerm: term,
			MaxPages:   cfg.MaxPages,
			// One shared key: all crawlers hit the same host, so a rate
			// limit on one blocks them all
			CacheKey:  "ebay_rate_limited",
			BlockTime: int(cfg.RateLimitBlock.Seconds()),
			Selectors: DefaultSelectors(),
		}, cacheSvc))
	}

	return crawlers
}

// DefaultSelectors returns the selectors for eBay search result pages
func DefaultSelectors() Selectors {
	return Selectors{
		Item:      "div.s-item",
		Title:     "h3.s-item__title",
		Price:     "span.s-item__price",
		Link:      "a.s-item__link",
		Shipping:  "span.s-item__shipping",
		Location:  "span.s-item__location",
		Sponsored: "span.SPONSORED",
	}
}
