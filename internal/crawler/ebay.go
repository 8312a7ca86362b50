package crawler

import (
	"errors"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"macdealtracker/helpers"
	"macdealtracker/internal/deal"
	"macdealtracker/logger"
	"macdealtracker/services/cache"
)

// priceRegex extracts the numeric part from an eBay price text like "$1,299.99"
var priceRegex = regexp.MustCompile(`\$?(\d+(?:,\d+)?(?:\.\d{2})?)`)

// EbayCrawler crawls eBay search results for one search term
type EbayCrawler struct {
	BaseCrawler
	baseURL    string
	searchTerm string
	maxPages   int
	selectors  Selectors
	log        *logger.Logger
}

// NewEbayCrawler creates a new eBay search crawler
func NewEbayCrawler(config CrawlerConfig, cacheSvc cache.CacheService) *EbayCrawler {
	return &EbayCrawler{
		BaseCrawler: BaseCrawler{
			CacheKey:  config.CacheKey,
			CacheSvc:  cacheSvc,
			BlockTime: time.Duration(config.BlockTime) * time.Second,
		},
		baseURL:    config.BaseURL,
		searchTerm: config.SearchTerm,
		maxPages:   config.MaxPages,
		selectors:  config.Selectors,
		log:        logger.ForCrawler("ebay:" + config.SearchTerm),
	}
}

// GetName returns the crawler name
func (c *EbayCrawler) GetName() string {
	return "EbayCrawler[" + c.searchTerm + "]"
}

// GetSearchTerm returns the search term this crawler covers
func (c *EbayCrawler) GetSearchTerm() string {
	return c.searchTerm
}

// FetchListings fetches listings for the search term, walking result pages up
// to the configured maximum. A failed page after the first yields the partial
// result rather than an error.
func (c *EbayCrawler) FetchListings() ([]deal.Listing, error) {
	var all []deal.Listing

	for page := 1; page <= c.maxPages; page++ {
		body, err := c.fetchWithCache(c.pageURL(page))
		if err != nil {
			if page == 1 {
				return nil, err
			}
			c.log.Warn().Err(err).Int("page", page).Msg("Failed to fetch page, keeping partial results")
			break
		}

		doc, err := c.createDocument(body)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			c.log.Warn().Err(err).Int("page", page).Msg("Failed to parse page, keeping partial results")
			break
		}

		listings := c.parseListings(doc)
		c.log.Debug().Int("page", page).Int("listings", len(listings)).Msg("Parsed result page")
		all = append(all, listings...)
	}

	return all, nil
}

// pageURL builds the search URL for one result page
func (c *EbayCrawler) pageURL(page int) string {
	params := url.Values{}
	params.Set("_nkw", c.searchTerm)
	params.Set("_sacat", "0")
	params.Set("rt", "nc")
	params.Set("LH_ItemCondition", "2000") // used condition
	params.Set("LH_BIN", "1")              // buy it now only
	params.Set("_pgn", strconv.Itoa(page))
	params.Set("_skc", "50")
	return c.baseURL + "?" + params.Encode()
}

// parseListings extracts listings from a result page document
func (c *EbayCrawler) parseListings(doc *goquery.Document) []deal.Listing {
	var listings []deal.Listing

	doc.Find(c.selectors.Item).Each(func(i int, s *goquery.Selection) {
		listing, err := c.processListing(s)
		if err != nil {
			c.log.Debug().Err(err).Msg("Skipping listing")
			return
		}
		listings = append(listings, *listing)
	})

	return listings
}

// processListing extracts a single listing from a result item selection
func (c *EbayCrawler) processListing(s *goquery.Selection) (*deal.Listing, error) {
	// Skip ads and sponsored listings
	if s.Find(c.selectors.Sponsored).Length() > 0 {
		return nil, errors.New("sponsored listing")
	}

	title := strings.TrimSpace(s.Find(c.selectors.Title).Text())
	if title == "" {
		return nil, errors.New("title not found")
	}

	link, exists := s.Find(c.selectors.Link).Attr("href")
	if !exists || strings.TrimSpace(link) == "" {
		return nil, errors.New("link not found")
	}
	link = strings.TrimSpace(link)

	priceText := strings.TrimSpace(s.Find(c.selectors.Price).Text())
	price, err := parsePrice(priceText)
	if err != nil {
		return nil, err
	}

	shipping := strings.TrimSpace(s.Find(c.selectors.Shipping).Text())
	if shipping == "" {
		shipping = "N/A"
	}
	location := strings.TrimSpace(s.Find(c.selectors.Location).Text())
	if location == "" {
		location = "N/A"
	}

	// Item ID from the /itm/ URL; optional, listings keep working without it
	itemID, _ := helpers.GetSplitPart(strings.Split(link, "?")[0], "/", 4)

	return &deal.Listing{
		ItemID:    itemID,
		Title:     title,
		Price:     price,
		Link:      link,
		Shipping:  shipping,
		Location:  location,
		FoundDate: time.Now(),
	}, nil
}

// parsePrice extracts the numeric price from an eBay price text
func parsePrice(text string) (float64, error) {
	match := priceRegex.FindStringSubmatch(text)
	if match == nil {
		return 0, errors.New("price not found in " + strconv.Quote(text))
	}
	return strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
}
