package huffman

// FreqTable counts how many times each rune occurs in an input string.  It
// is built once with Init and is read-only afterward.
type FreqTable struct {
	counts map[rune]uint64
	total  uint64
}

// Init initializes this FreqTable by scanning text once and counting each
// distinct rune.  An empty input yields an empty table.
func (t *FreqTable) Init(text string) {
	counts := make(map[rune]uint64)
	var total uint64
	for _, ch := range text {
		counts[ch]++
		total++
	}
	*t = FreqTable{counts: counts, total: total}
}

// Len is the number of distinct runes in the table.
func (t FreqTable) Len() int {
	return len(t.counts)
}

// Weight is the occurrence count for the given rune, or 0 if the rune did
// not occur in the input.
func (t FreqTable) Weight(ch rune) uint64 {
	return t.counts[ch]
}

// Total is the sum of all counts, i.e. the length of the input in runes.
func (t FreqTable) Total() uint64 {
	return t.total
}

// Each calls fn once for each (rune, weight) pair in the table.  The
// iteration order is unspecified and varies between calls; callers must not
// depend on it.
func (t FreqTable) Each(fn func(ch rune, weight uint64)) {
	for ch, weight := range t.counts {
		fn(ch, weight)
	}
}
