package deal

import "sort"

// Candidates at or below this year are too old to be worth ranking
const minYear = 2015

// modelBonus returns the score bonus for a MacBook family
func modelBonus(m Model) float64 {
	switch m {
	case ModelMacBookPro:
		return 50
	case ModelMacBookAir:
		return 30
	case ModelMacBook:
		return 20
	default:
		return 0
	}
}

// Score filters out candidates with no usable price or a year at or before
// 2015, then computes the value score for each survivor. The price component
// is batch-relative (cheaper than the batch maximum scores higher), so this
// is a two-pass computation over the whole batch rather than a per-item
// function. An empty batch, or one whose maximum price is zero, gets a
// neutral price component.
func Score(candidates []Deal) []Deal {
	scored := make([]Deal, 0, len(candidates))
	for _, d := range candidates {
		if d.Price <= 0 || d.Year <= minYear {
			continue
		}
		scored = append(scored, d)
	}

	var maxPrice float64
	for _, d := range scored {
		if d.Price > maxPrice {
			maxPrice = d.Price
		}
	}

	for i := range scored {
		d := &scored[i]
		score := float64(d.Year)*10 +
			float64(d.MemoryGB)*2 +
			float64(d.StorageGB)/100 +
			float64(d.ScreenSize)*5 +
			modelBonus(d.Model)
		if maxPrice > 0 {
			score += (maxPrice - d.Price) / maxPrice * 100
		}
		d.ValueScore = score
	}

	return scored
}

// Rank returns the topN deals by value score, descending. The sort is stable,
// so ties keep their input order. When fewer than topN deals exist, all of
// them are returned.
func Rank(scored []Deal, topN int) []Deal {
	ranked := make([]Deal, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ValueScore > ranked[j].ValueScore
	})

	if topN >= 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}
