package crawler

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultPage = `
<html><body>
<div class="s-item">
  <h3 class="s-item__title">MacBook Pro 2019 15" 16GB RAM 512GB SSD</h3>
  <span class="s-item__price">$1,299.99</span>
  <a class="s-item__link" href="https://www.ebay.com/itm/123456789012?hash=abc"></a>
  <span class="s-item__shipping">Free shipping</span>
  <span class="s-item__location">from Austin, TX</span>
</div>
<div class="s-item">
  <span class="SPONSORED">SPONSORED</span>
  <h3 class="s-item__title">MacBook Air promoted listing</h3>
  <span class="s-item__price">$500.00</span>
  <a class="s-item__link" href="https://www.ebay.com/itm/223456789012"></a>
</div>
<div class="s-item">
  <h3 class="s-item__title">MacBook Air 2020</h3>
  <span class="s-item__price">$650.00</span>
  <a class="s-item__link" href="https://www.ebay.com/itm/323456789012"></a>
</div>
<div class="s-item">
  <h3 class="s-item__title">Listing without a price</h3>
  <span class="s-item__price">Contact seller</span>
  <a class="s-item__link" href="https://www.ebay.com/itm/423456789012"></a>
</div>
</body></html>`

func newTestCrawler() *EbayCrawler {
	return NewEbayCrawler(CrawlerConfig{
		BaseURL:    "https://www.ebay.com/sch/i.html",
		SearchTerm: "used macbook pro",
		MaxPages:   2,
		Selectors:  DefaultSelectors(),
	}, nil)
}

func TestParseListings(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resultPage))
	require.NoError(t, err)

	c := newTestCrawler()
	listings := c.parseListings(doc)

	// Sponsored and priceless items are skipped
	require.Len(t, listings, 2)

	first := listings[0]
	assert.Equal(t, `MacBook Pro 2019 15" 16GB RAM 512GB SSD`, first.Title)
	assert.Equal(t, 1299.99, first.Price)
	assert.Equal(t, "https://www.ebay.com/itm/123456789012?hash=abc", first.Link)
	assert.Equal(t, "123456789012", first.ItemID)
	assert.Equal(t, "Free shipping", first.Shipping)
	assert.Equal(t, "from Austin, TX", first.Location)
	assert.WithinDuration(t, time.Now(), first.FoundDate, time.Minute)

	second := listings[1]
	assert.Equal(t, "MacBook Air 2020", second.Title)
	assert.Equal(t, 650.0, second.Price)
	assert.Equal(t, "N/A", second.Shipping)
	assert.Equal(t, "N/A", second.Location)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
		wantErr  bool
	}{
		{"$1,299.99", 1299.99, false},
		{"$650.00", 650, false},
		{"899.99", 899.99, false},
		{"$1,200", 1200, false},
		{"Contact seller", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		price, err := parsePrice(tt.text)
		if tt.wantErr {
			assert.Error(t, err, "text: %q", tt.text)
		} else {
			assert.NoError(t, err, "text: %q", tt.text)
			assert.Equal(t, tt.expected, price, "text: %q", tt.text)
		}
	}
}

func TestPageURL(t *testing.T) {
	c := newTestCrawler()
	url := c.pageURL(2)

	assert.Contains(t, url, "https://www.ebay.com/sch/i.html?")
	assert.Contains(t, url, "_nkw=used+macbook+pro")
	assert.Contains(t, url, "_pgn=2")
	assert.Contains(t, url, "LH_BIN=1")
	assert.Contains(t, url, "LH_ItemCondition=2000")
}

func TestGetName(t *testing.T) {
	c := newTestCrawler()
	assert.Equal(t, "EbayCrawler[used macbook pro]", c.GetName())
	assert.Equal(t, "used macbook pro", c.GetSearchTerm())
}
