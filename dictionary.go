package hinglish

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// WordEntry is a pair of words in two scripts, Source first.
type WordEntry struct {
	Source string
	Target string
}

// WordReader yields word pairs one-by-one.
// It should return io.EOF when the stream is exhausted.
type WordReader interface {
	Next() (source, target string, err error)
}

// Dictionary is a read-only, bidirectional word dictionary.
//
// The Roman to Devanagari table is authoritative. The Devanagari to Roman
// table is derived from it in insertion order, keeping the first Roman
// spelling for every Devanagari word, and then patched with overrides which
// always win. Special words are consulted by the Roman side only.
//
// A Dictionary is never mutated after construction and may be shared freely
// between engines and goroutines.
type Dictionary struct {
	name     string
	forward  map[string]string // e.g., "namaste" => "नमस्ते"
	order    []string          // forward keys in insertion order
	reverse  map[string]string // e.g., "नमस्ते" => "namaste"
	specials map[string]string // e.g., "om" => "ॐ"
}

// romanKey case-folds and trims a Roman word.
func romanKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// devanagariKey trims a Devanagari word and brings it into NFC. NFC keeps
// nukta consonants decomposed (base letter + U+093C), which is also how the
// phonetic tables spell them.
func devanagariKey(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// BuildDictionary creates a dictionary from Roman to Devanagari word pairs.
//
// A Roman word occurring more than once keeps its first position and takes
// the last value. overrides are Roman/Devanagari pairs which take precedence
// in the reverse table. specials are Roman/Devanagari pairs consulted after
// the main table misses. Pairs with an empty side are skipped.
func BuildDictionary(name string, forward, overrides, specials []WordEntry) *Dictionary {
	dict := &Dictionary{
		name:     name,
		forward:  make(map[string]string, len(forward)),
		order:    make([]string, 0, len(forward)),
		reverse:  make(map[string]string, len(forward)+len(overrides)),
		specials: make(map[string]string, len(specials)),
	}
	for _, e := range forward {
		roman, dev := romanKey(e.Source), devanagariKey(e.Target)
		if roman == "" || dev == "" {
			continue
		}
		if _, exists := dict.forward[roman]; !exists {
			dict.order = append(dict.order, roman)
		}
		dict.forward[roman] = dev
	}
	for _, roman := range dict.order {
		dev := dict.forward[roman]
		if _, seen := dict.reverse[dev]; !seen {
			dict.reverse[dev] = roman
		}
	}
	for _, e := range overrides {
		roman, dev := romanKey(e.Source), devanagariKey(e.Target)
		if roman == "" || dev == "" {
			continue
		}
		dict.reverse[dev] = roman
	}
	for _, e := range specials {
		roman, dev := romanKey(e.Source), devanagariKey(e.Target)
		if roman == "" || dev == "" {
			continue
		}
		dict.specials[roman] = dev
	}
	tracer().Infof("dictionary %q: %d roman words, %d devanagari words, %d specials",
		name, len(dict.forward), len(dict.reverse), len(dict.specials))
	return dict
}

// LoadDictionary builds a dictionary from a stream of Roman/Devanagari pairs.
// The result has neither reverse overrides nor special words.
func LoadDictionary(name string, reader WordReader) (*Dictionary, error) {
	var entries []WordEntry
	for {
		roman, dev, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loading dictionary %q: %w", name, err)
		}
		entries = append(entries, WordEntry{Source: roman, Target: dev})
	}
	return BuildDictionary(name, entries, nil, nil), nil
}

var baseDictionary = sync.OnceValue(func() *Dictionary {
	return BuildDictionary("builtin", builtinWords, builtinOverrides, builtinSpecials)
})

// BaseDictionary returns the built-in dictionary of common Hindi words.
// It is constructed on first use and shared by all callers.
func BaseDictionary() *Dictionary {
	return baseDictionary()
}

// Name identifies the dictionary.
func (dict *Dictionary) Name() string {
	return dict.name
}

// Len returns the sizes of the Roman and the Devanagari side.
func (dict *Dictionary) Len() (roman, devanagari int) {
	return len(dict.forward), len(dict.reverse)
}

// Devanagari looks up a Roman word, ignoring case and surrounding space.
func (dict *Dictionary) Devanagari(roman string) (string, bool) {
	dev, ok := dict.forward[romanKey(roman)]
	return dev, ok
}

// Roman looks up a Devanagari word.
func (dict *Dictionary) Roman(devanagari string) (string, bool) {
	roman, ok := dict.reverse[devanagariKey(devanagari)]
	return roman, ok
}

// Special looks up a Roman word in the special words table.
func (dict *Dictionary) Special(roman string) (string, bool) {
	dev, ok := dict.specials[romanKey(roman)]
	return dev, ok
}

// Entries returns the Roman to Devanagari pairs in insertion order.
func (dict *Dictionary) Entries() []WordEntry {
	entries := make([]WordEntry, len(dict.order))
	for i, roman := range dict.order {
		entries[i] = WordEntry{Source: roman, Target: dict.forward[roman]}
	}
	return entries
}
