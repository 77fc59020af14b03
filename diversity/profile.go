package diversity

import "sort"

// SpectrumBin is one entry of a frequency spectrum: Types distinct tokens occur exactly
// Count times each.
type SpectrumBin struct {
	Count int
	Types int
}

// Profile is the read-only frequency view of a token sequence shared by every metric
// of one computation.
type Profile struct {
	// N is the token count.
	N int
	// V is the number of distinct tokens.
	V int
	// Hapaxes is the number of tokens occurring exactly once.
	Hapaxes int
	// Frequencies maps each distinct token to its occurrence count.
	Frequencies map[string]int
	// Spectrum is the count-of-counts table ordered by ascending Count.
	Spectrum []SpectrumBin
}

func NewProfile(tokens []string) *Profile {
	freqs := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		freqs[tok]++
	}

	byCount := map[int]int{}
	for _, c := range freqs {
		byCount[c]++
	}
	spectrum := make([]SpectrumBin, 0, len(byCount))
	for c, types := range byCount {
		spectrum = append(spectrum, SpectrumBin{Count: c, Types: types})
	}
	sort.Slice(spectrum, func(i, j int) bool { return spectrum[i].Count < spectrum[j].Count })

	return &Profile{
		N:           len(tokens),
		V:           len(freqs),
		Hapaxes:     byCount[1],
		Frequencies: freqs,
		Spectrum:    spectrum,
	}
}

// windowCounter tracks the distinct tokens of a window that moves forward over a
// sequence.
type windowCounter struct {
	tokens []string
	counts map[string]int
	start  int
	end    int
}

func newWindowCounter(tokens []string) *windowCounter {
	return &windowCounter{tokens: tokens, counts: map[string]int{}}
}

// moveTo repositions the window to [start, end). Both bounds must not move backwards.
func (w *windowCounter) moveTo(start, end int) {
	if start >= w.end {
		clear(w.counts)
		w.start, w.end = start, start
	}
	for ; w.end < end; w.end++ {
		w.counts[w.tokens[w.end]]++
	}
	for ; w.start < start; w.start++ {
		tok := w.tokens[w.start]
		if w.counts[tok] == 1 {
			delete(w.counts, tok)
		} else {
			w.counts[tok]--
		}
	}
}

func (w *windowCounter) ttr() float64 {
	if w.end == w.start {
		return 0
	}
	return float64(len(w.counts)) / float64(w.end-w.start)
}

func reversed(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[len(tokens)-1-i] = tok
	}
	return out
}
