package analysis

import (
	"slices"
	"sort"

	"github.com/SeamusWaldron/cubeengine"
)

// maxOccurrences caps the sample positions kept per n-gram.
const maxOccurrences = 10

// NGram represents a repeated move sequence.
type NGram struct {
	N           int      `json:"n"`
	Sequence    []string `json:"sequence"`
	Count       int      `json:"count"`
	Occurrences []int    `json:"occurrences,omitempty"` // history start indexes
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint32
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   1_000_003,
		n:      n,
		window: make([]uint32, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a token, dropping the oldest one once the window is full.
func (rh *RollingHash) Roll(token uint32) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint32 {
	return slices.Clone(rh.window)
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// ngramEntry tracks n-gram occurrences during mining.
type ngramEntry struct {
	tokens      []uint32
	count       int
	occurrences []int
}

// MineNGrams finds the top-K most frequent repeated n-grams for each n in
// [minN, maxN]. Moves are compared by canonical notation.
func MineNGrams(moves []cubeengine.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	if minN < 1 || len(moves) < minN {
		return report
	}

	// Intern notations into tokens
	ids := make(map[string]uint32)
	var names []string
	tokens := make([]uint32, len(moves))
	for i, m := range moves {
		n := m.Notation()
		id, ok := ids[n]
		if !ok {
			id = uint32(len(names))
			ids[n] = id
			names = append(names, n)
		}
		tokens[i] = id
	}

	for n := minN; n <= maxN && n <= len(moves); n++ {
		if ngrams := mineNGramsForN(tokens, names, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

// mineNGramsForN mines n-grams of a specific length.
func mineNGramsForN(tokens []uint32, names []string, n, topK int) []NGram {
	buckets := make(map[uint64][]*ngramEntry)
	var order []*ngramEntry
	rh := NewRollingHash(n)

	for i, tok := range tokens {
		rh.Roll(tok)
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		window := rh.Window()
		var entry *ngramEntry
		for _, e := range buckets[rh.Hash()] {
			// Hash collisions are resolved by comparing tokens
			if slices.Equal(e.tokens, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{tokens: window}
			buckets[rh.Hash()] = append(buckets[rh.Hash()], entry)
			order = append(order, entry)
		}
		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, start)
		}
	}

	// Only sequences seen more than once, most frequent first, ties by first position
	var repeated []*ngramEntry
	for _, e := range order {
		if e.count >= 2 {
			repeated = append(repeated, e)
		}
	}
	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].count > repeated[j].count
	})
	if topK > 0 && len(repeated) > topK {
		repeated = repeated[:topK]
	}

	result := make([]NGram, len(repeated))
	for i, e := range repeated {
		sequence := make([]string, len(e.tokens))
		for j, tok := range e.tokens {
			sequence[j] = names[tok]
		}
		result[i] = NGram{
			N:           n,
			Sequence:    sequence,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}
	return result
}
