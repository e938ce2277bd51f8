package analysis

// TermCount is one entry of a FrequencyTable.
type TermCount struct {
	Term  string
	Count int
}

// FrequencyTable counts terms and remembers the order in which each term
// was first added. That order breaks score ties downstream, so iteration
// must never go through the index map.
type FrequencyTable struct {
	entries []TermCount
	index   map[string]int
}

// NewFrequencyTable creates an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{index: make(map[string]int)}
}

// Add increments the count for term, appending it on first sight.
func (f *FrequencyTable) Add(term string) {
	if i, ok := f.index[term]; ok {
		f.entries[i].Count++
		return
	}
	f.index[term] = len(f.entries)
	f.entries = append(f.entries, TermCount{Term: term, Count: 1})
}

// Count returns the count for term, or 0 when absent.
func (f *FrequencyTable) Count(term string) int {
	if i, ok := f.index[term]; ok {
		return f.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct terms.
func (f *FrequencyTable) Len() int {
	return len(f.entries)
}

// Entries returns a copy of the entries in first-occurrence order.
func (f *FrequencyTable) Entries() []TermCount {
	out := make([]TermCount, len(f.entries))
	copy(out, f.entries)
	return out
}

// TermFrequencies counts tokens of text, skipping stop words when stop
// is non-nil.
func TermFrequencies(text string, minLength int, stop StopWords) *FrequencyTable {
	table := NewFrequencyTable()
	for _, tok := range Tokenize(text, minLength) {
		if stop.Contains(tok) {
			continue
		}
		table.Add(tok)
	}
	return table
}

// SentenceFrequencies counts, for each term, the number of sentences it
// appears in at least once.
func SentenceFrequencies(sentences []string, minLength int, stop StopWords) *FrequencyTable {
	table := NewFrequencyTable()
	for _, s := range sentences {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(s, minLength) {
			if stop.Contains(tok) {
				continue
			}
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			table.Add(tok)
		}
	}
	return table
}
