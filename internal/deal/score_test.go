package deal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func candidate(title string, price float64) Deal {
	return NewDeal(Listing{Title: title, Price: price})
}

func TestScoreFormula(t *testing.T) {
	scored := Score([]Deal{
		candidate(`MacBook Pro 2019 15" 16GB RAM 512GB SSD`, 1000),
	})

	assert.Len(t, scored, 1)

	// year*10 + memory*2 + storage/100 + screen*5 + model bonus; a single
	// candidate is the batch maximum, so its price component is zero.
	expected := 2019*10.0 + 16*2.0 + 512/100.0 + 15*5.0 + 50.0
	assert.InDelta(t, expected, scored[0].ValueScore, 1e-9)
}

func TestScoreEqualPricesHaveZeroPriceComponent(t *testing.T) {
	batch := []Deal{
		candidate(`MacBook Pro 2019 15" 16GB RAM 512GB SSD`, 800),
		candidate(`MacBook Air 2020 13" 8GB RAM 256GB SSD`, 800),
	}
	scored := Score(batch)
	assert.Len(t, scored, 2)

	// All prices equal the batch maximum, so every score is spec-only
	assert.InDelta(t, 2019*10.0+16*2.0+512/100.0+15*5.0+50.0, scored[0].ValueScore, 1e-9)
	assert.InDelta(t, 2020*10.0+8*2.0+256/100.0+13*5.0+30.0, scored[1].ValueScore, 1e-9)
}

func TestScorePriceComponentIsRelative(t *testing.T) {
	batch := []Deal{
		candidate("MacBook Pro 2019", 1000),
		candidate("MacBook Pro 2019", 500),
	}
	scored := Score(batch)
	assert.Len(t, scored, 2)

	// Identical specs, so the cheaper one wins by exactly its price component
	assert.InDelta(t, 50.0, scored[1].ValueScore-scored[0].ValueScore, 1e-9)
}

func TestScoreFiltersOldAndUnpriced(t *testing.T) {
	batch := []Deal{
		candidate("MacBook Pro 2015", 500),  // year not strictly greater than 2015
		candidate("MacBook Pro 2019", 0),    // no price
		candidate("MacBook Pro 2019", -10),  // nonsense price
		candidate("MacBook Air", 400),       // no year at all
		candidate("MacBook Pro 2019", 1000), // the only survivor
	}
	scored := Score(batch)

	assert.Len(t, scored, 1)
	assert.Equal(t, 2019, scored[0].Year)
	assert.Equal(t, 1000.0, scored[0].Price)
}

func TestScoreEmptyBatch(t *testing.T) {
	assert.Empty(t, Score(nil))
	assert.Empty(t, Score([]Deal{}))
}

func TestRank(t *testing.T) {
	scored := Score([]Deal{
		candidate("MacBook 2016", 900),
		candidate(`MacBook Pro 2020 16" 32GB RAM 1TB SSD`, 1200),
		candidate("MacBook Air 2018", 600),
	})
	ranked := Rank(scored, 2)

	assert.Len(t, ranked, 2)
	assert.Equal(t, ModelMacBookPro, ranked[0].Model)
	assert.GreaterOrEqual(t, ranked[0].ValueScore, ranked[1].ValueScore)
}

func TestRankTopNLargerThanBatch(t *testing.T) {
	scored := Score([]Deal{
		candidate("MacBook 2016", 900),
		candidate("MacBook Air 2018", 600),
	})
	ranked := Rank(scored, 15)

	// Whole batch comes back, sorted descending
	assert.Len(t, ranked, 2)
	assert.GreaterOrEqual(t, ranked[0].ValueScore, ranked[1].ValueScore)
}

func TestRankStableOnTies(t *testing.T) {
	a := candidate("MacBook Pro 2019", 800)
	a.Link = "first"
	b := candidate("MacBook Pro 2019", 800)
	b.Link = "second"

	ranked := Rank(Score([]Deal{a, b}), 2)
	assert.Equal(t, "first", ranked[0].Link)
	assert.Equal(t, "second", ranked[1].Link)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	scored := Score([]Deal{
		candidate("MacBook 2016", 900),
		candidate(`MacBook Pro 2020 16" 32GB RAM 1TB SSD`, 1200),
	})
	first := scored[0].Title
	Rank(scored, 1)
	assert.Equal(t, first, scored[0].Title)
}
