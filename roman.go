package hinglish

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
)

// RomanToDevanagari transliterates Roman Hindi (Hinglish) into Devanagari.
//
// Words are looked up in the engine's own custom words, then in the shared
// dictionary, then in the dictionary's special words. Unknown words are
// spelled out phonetically.
//
// All methods are safe for concurrent use.
type RomanToDevanagari struct {
	dict    *Dictionary
	tables  *romanTables
	mu      sync.RWMutex
	overlay map[string]string // custom words of this instance only
	cache   *lru.Cache[string, string]
}

// NewRomanToDevanagari creates an engine on top of dict. A nil dict selects
// the built-in base dictionary.
func NewRomanToDevanagari(dict *Dictionary, opts ...Option) *RomanToDevanagari {
	if dict == nil {
		dict = BaseDictionary()
	}
	o := collectOptions(opts)
	return &RomanToDevanagari{
		dict:    dict,
		tables:  loadRomanTables(),
		overlay: make(map[string]string),
		cache:   newFallbackCache(o.cacheSize),
	}
}

// AddWord registers a custom word for this engine. The Roman key is
// lower-cased and trimmed. Custom words take precedence over the dictionary.
func (e *RomanToDevanagari) AddWord(roman, devanagari string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.overlay[romanKey(roman)] = devanagari
}

// AddWords registers custom words in order; later entries win on equal keys.
// Source is the Roman word, Target the Devanagari word.
func (e *RomanToDevanagari) AddWords(entries ...WordEntry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, entry := range entries {
		e.overlay[romanKey(entry.Source)] = entry.Target
	}
}

// AddWordsFrom registers custom words from a stream of Roman/Devanagari pairs.
// Words read before an error remain registered.
func (e *RomanToDevanagari) AddWordsFrom(reader WordReader) error {
	for {
		roman, dev, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("adding custom words: %w", err)
		}
		e.AddWord(roman, dev)
	}
}

// Transliterate converts Roman text to Devanagari. Leading and trailing
// punctuation of every word is kept, with '.' and '|' turned into dandas.
func (e *RomanToDevanagari) Transliterate(text string) string {
	return transliterateWords(text, isRomanWordRune, e.tables.punctuation, e.convertWord)
}

// isRomanWordRune reports whether r is an ASCII letter or digit.
func isRomanWordRune(r rune) bool {
	return r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

func (e *RomanToDevanagari) lookup(key string) (string, bool) {
	e.mu.RLock()
	dev, ok := e.overlay[key]
	e.mu.RUnlock()
	if ok {
		return dev, true
	}
	if dev, ok = e.dict.Devanagari(key); ok {
		return dev, true
	}
	return e.dict.Special(key)
}

func (e *RomanToDevanagari) convertWord(word string) string {
	key := romanKey(word)
	if key == "" {
		return word
	}
	if dev, ok := e.lookup(key); ok {
		return dev
	}
	if e.cache != nil {
		if dev, ok := e.cache.Get(key); ok {
			return dev
		}
	}
	dev := e.spell(key)
	tracer().Debugf("spelled unknown word %q as %q", key, dev)
	if e.cache != nil {
		e.cache.Add(key, dev)
	}
	return dev
}

// spell is the phonetic fallback. It scans the lower-cased word left to
// right, tracking whether the last emitted glyph was a bare consonant. A
// consonant directly following a bare consonant is joined with a virama; a
// vowel following a consonant becomes a vowel sign.
func (e *RomanToDevanagari) spell(word string) string {
	text := []rune(word)
	var out strings.Builder
	lastWasConsonant := false
	for i := 0; i < len(text); {
		ch := text[i]
		if unicode.IsDigit(ch) {
			if glyph, ok := e.tables.digits[ch]; ok {
				out.WriteString(glyph)
			} else {
				out.WriteRune(ch)
			}
			lastWasConsonant = false
			i++
			continue
		}
		if !unicode.IsLetter(ch) {
			out.WriteRune(ch)
			lastWasConsonant = false
			i++
			continue
		}
		if ch == 'n' && i+1 < len(text) && nasalizes(text[i+1]) {
			out.WriteString(anusvara)
			lastWasConsonant = false
			i++
			continue
		}
		if glyph, n := e.tables.consonants.Match(text, i); n > 0 {
			if lastWasConsonant {
				out.WriteRune(virama)
			}
			out.WriteString(glyph)
			i += n
			if sign, m := e.tables.matras.Match(text, i); m > 0 {
				out.WriteString(sign)
				i += m
				lastWasConsonant = false
				continue
			}
			lastWasConsonant = true
			continue
		}
		if glyph, n := e.tables.vowels.Match(text, i); n > 0 {
			if lastWasConsonant {
				if sign, m := e.tables.matras.Match(text, i); m > 0 {
					out.WriteString(sign)
					i += m
					lastWasConsonant = false
					continue
				}
			}
			out.WriteString(glyph)
			i += n
			lastWasConsonant = false
			continue
		}
		out.WriteRune(ch)
		lastWasConsonant = false
		i++
	}
	return out.String()
}

// nasalizes reports whether an 'n' before next is written as an anusvara.
// Only 'n' triggers this, never 'm'.
func nasalizes(next rune) bool {
	if !unicode.IsLetter(next) || strings.ContainsRune("aeiou", next) {
		return false
	}
	return strings.ContainsRune("gkcdjtpb", next)
}
