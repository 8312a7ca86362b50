package deal

// listingKey is the identity of a listing for intra-run deduplication
type listingKey struct {
	title string
	price float64
}

// Dedupe collapses listings that share an exact (title, price) pair, keeping
// the first occurrence in input order. Near-duplicates (whitespace or case
// variants of the same title) are treated as distinct.
func Dedupe(listings []Listing) []Listing {
	seen := make(map[listingKey]struct{}, len(listings))
	unique := make([]Listing, 0, len(listings))

	for _, l := range listings {
		key := listingKey{title: l.Title, price: l.Price}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, l)
	}

	return unique
}
