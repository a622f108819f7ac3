package hinglish

import (
	"fmt"
	"sort"

	"github.com/derekparker/trie"
	"github.com/npillmayer/hinglish/dat"
)

// chunk maps a grapheme sequence of one script to a grapheme sequence of the
// other script.
type chunk struct {
	from, to string
}

type chunkTableStats struct {
	Backend string
	Keys    int
	States  int
	MaxKey  int // longest key, in runes
}

// chunkTable is the internal backend abstraction for phonetic lookup tables.
//
// Match returns the mapped value of the longest key starting at text[pos:]
// and the key's length in runes. n == 0 means no key matches; a match may
// well map to the empty string.
type chunkTable interface {
	Match(text []rune, pos int) (to string, n int)
	Stats() chunkTableStats
}

// --- Probing backend -------------------------------------------------------

// probeTable probes candidate lengths in descending order at a position.
// It is used for the Roman side, where every table states which chunk
// lengths it knows about.
type probeTable struct {
	name    string
	keys    *trie.Trie
	lengths []int // descending
	count   int
}

// newProbeTable builds a probing table over chunks. Candidate lengths are
// derived from the keys, longest first.
func newProbeTable(name string, chunks []chunk) *probeTable {
	t := &probeTable{name: name, keys: trie.New()}
	seen := make(map[int]bool)
	for _, c := range chunks {
		l := len([]rune(c.from))
		assert(l > 0, fmt.Sprintf("empty key in phonetic table %s", name))
		if _, exists := t.keys.Find(c.from); !exists {
			t.count++
		}
		t.keys.Add(c.from, c.to)
		if !seen[l] {
			seen[l] = true
			t.lengths = append(t.lengths, l)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(t.lengths)))
	traceTableStats(name, t.Stats())
	return t
}

func (t *probeTable) Match(text []rune, pos int) (string, int) {
	if pos >= len(text) || !t.keys.HasKeysWithPrefix(string(text[pos])) {
		return "", 0
	}
	for _, l := range t.lengths {
		if pos+l > len(text) {
			continue
		}
		if node, ok := t.keys.Find(string(text[pos : pos+l])); ok {
			return node.Meta().(string), l
		}
	}
	return "", 0
}

func (t *probeTable) Stats() chunkTableStats {
	stats := chunkTableStats{Backend: "probe", Keys: t.count}
	if len(t.lengths) > 0 {
		stats.MaxKey = t.lengths[0]
	}
	return stats
}

// --- Double-array backend --------------------------------------------------

// datTable walks a frozen double-array trie rune by rune, which yields the
// longest key in a single pass. It is used for the Devanagari side, where
// keys are sequences of code points (base letter, virama, nukta, ...).
type datTable struct {
	name   string
	index  *dat.DAT
	maxKey int
}

func newDATTable(name string, chunks []chunk) *datTable {
	b := dat.NewBuilder()
	maxKey := 0
	for _, c := range chunks {
		key := []rune(c.from)
		err := b.Insert(key, c.to)
		assert(err == nil, fmt.Sprintf("phonetic table %s: %v", name, err))
		maxKey = max(maxKey, len(key))
	}
	t := &datTable{name: name, index: b.Freeze(), maxKey: maxKey}
	traceTableStats(name, t.Stats())
	return t
}

func (t *datTable) Match(text []rune, pos int) (string, int) {
	if pos >= len(text) {
		return "", 0
	}
	end := min(len(text), pos+t.maxKey)
	return t.index.LongestPrefix(text[pos:end])
}

func (t *datTable) Stats() chunkTableStats {
	return chunkTableStats{
		Backend: "dat",
		Keys:    t.index.NKeys(),
		States:  t.index.NStates(),
		MaxKey:  t.maxKey,
	}
}

// ---------------------------------------------------------------------------

func traceTableStats(name string, stats chunkTableStats) {
	tracer().Infof("phonetic table %s backend=%s keys=%d states=%d maxKey=%d",
		name, stats.Backend, stats.Keys, stats.States, stats.MaxKey)
}
