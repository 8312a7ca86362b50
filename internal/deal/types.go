package deal

import "time"

// Model identifies the MacBook family extracted from a listing title
type Model string

const (
	ModelMacBookPro Model = "MacBook Pro"
	ModelMacBookAir Model = "MacBook Air"
	ModelMacBook    Model = "MacBook"
	ModelUnknown    Model = "Unknown"
)

// Listing represents a raw eBay listing as delivered by a crawler
type Listing struct {
	ItemID    string    `json:"item_id,omitempty"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Link      string    `json:"link"`
	Shipping  string    `json:"shipping,omitempty"`
	Location  string    `json:"location,omitempty"`
	FoundDate time.Time `json:"found_date"`
}

// SpecRecord holds the structured attributes extracted from a listing title.
// Zero values mean the attribute was not found in the title.
type SpecRecord struct {
	Model      Model `json:"model"`
	Year       int   `json:"year"`
	ScreenSize int   `json:"screen_size"`
	MemoryGB   int   `json:"memory"`
	StorageGB  int   `json:"storage"`
}

// Deal is a listing enriched with its extracted specs and value score.
// This is the unit persisted in history and delivered to notification.
type Deal struct {
	Listing
	SpecRecord
	ValueScore float64 `json:"value_score"`
}

// NewDeal builds a Deal from a listing by extracting its specs
func NewDeal(listing Listing) Deal {
	return Deal{
		Listing:    listing,
		SpecRecord: ExtractSpec(listing.Title),
	}
}
