package notifier

import (
	"strings"
	"testing"
	"time"

	"macdealtracker/internal/deal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBody(t *testing.T) {
	deals := []deal.Deal{
		{
			Listing: deal.Listing{
				Title:     `MacBook Pro 2019 15" 16GB RAM 512GB SSD`,
				Price:     899.99,
				Link:      "https://www.ebay.com/itm/123456789012",
				Shipping:  "Free shipping",
				Location:  "from Austin, TX",
				FoundDate: time.Now(),
			},
			SpecRecord: deal.SpecRecord{
				Model:      deal.ModelMacBookPro,
				Year:       2019,
				ScreenSize: 15,
				MemoryGB:   16,
				StorageGB:  512,
			},
			ValueScore: 20300.12,
		},
		{
			Listing: deal.Listing{
				Title: "MacBook Air 2020",
				Price: 650,
				Link:  "https://www.ebay.com/itm/223456789012",
			},
			SpecRecord: deal.SpecRecord{Model: deal.ModelMacBookAir, Year: 2020},
		},
	}

	body, err := renderBody(deals)
	require.NoError(t, err)

	assert.Contains(t, body, "#1.")
	assert.Contains(t, body, "#2.")
	assert.Contains(t, body, "$899.99")
	assert.Contains(t, body, "$650.00")
	assert.Contains(t, body, "MacBook Pro (2019)")
	assert.Contains(t, body, "16GB RAM")
	assert.Contains(t, body, "512GB Storage")
	assert.Contains(t, body, "https://www.ebay.com/itm/123456789012")
}

func TestRenderBodyTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("MacBook Pro ", 20)
	body, err := renderBody([]deal.Deal{
		{Listing: deal.Listing{Title: long, Price: 100}},
	})
	require.NoError(t, err)

	assert.Contains(t, body, long[:100]+"...")
	assert.NotContains(t, body, long)
}

func TestSendDealsSkipsWhenUnconfigured(t *testing.T) {
	n := NewEmailNotifier(EmailConfig{})

	// No sender or recipient configured: skip silently, no error
	err := n.SendDeals([]deal.Deal{
		{Listing: deal.Listing{Title: "MacBook Pro 2019", Price: 899}},
	})
	assert.NoError(t, err)
}

func TestSendDealsEmptyIsNoop(t *testing.T) {
	n := NewEmailNotifier(EmailConfig{
		SMTPServer: "smtp.example.com",
		SMTPPort:   587,
		Sender:     "sender@example.com",
		Recipient:  "alerts@example.com",
	})

	assert.NoError(t, n.SendDeals(nil))
}
