package dataset

import (
	"unicode"

	xxhash "github.com/cespare/xxhash/v2"
)

type lengthFilter struct {
	min, max int
}

func (lengthFilter) Name() string { return "length" }

func (f lengthFilter) Keep(doc string) bool {
	n := len([]rune(doc))
	if f.min > 0 && n < f.min {
		return false
	}
	if f.max > 0 && n > f.max {
		return false
	}
	return true
}

type nonAlphaFilter struct {
	max float64
}

func (nonAlphaFilter) Name() string { return "nonalpha_ratio" }

func (f nonAlphaFilter) Keep(doc string) bool {
	if doc == "" {
		return false
	}
	total, other := 0, 0
	for _, r := range doc {
		total++
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsSpace(r) {
			other++
		}
	}
	return float64(other)/float64(total) <= f.max
}

// dedupFilter drops exact duplicates by content hash. State grows with the
// number of distinct documents seen.
type dedupFilter struct {
	seen map[uint64]bool
}

func newDedupFilter() *dedupFilter {
	return &dedupFilter{seen: map[uint64]bool{}}
}

func (*dedupFilter) Name() string { return "duplicate" }

func (f *dedupFilter) Keep(doc string) bool {
	h := xxhash.Sum64String(doc)
	if f.seen[h] {
		return false
	}
	f.seen[h] = true
	return true
}
