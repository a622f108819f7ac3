package hinglish

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/unicode/norm"
)

// DevanagariToRoman transliterates Devanagari into Roman Hindi (Hinglish).
//
// Words are looked up in the engine's own custom words, then in the shared
// dictionary. Special words are not consulted in this direction. Unknown
// words are spelled out phonetically.
//
// All methods are safe for concurrent use.
type DevanagariToRoman struct {
	dict    *Dictionary
	tables  *devanagariTables
	mu      sync.RWMutex
	overlay map[string]string // custom words of this instance only
	cache   *lru.Cache[string, string]
}

// NewDevanagariToRoman creates an engine on top of dict. A nil dict selects
// the built-in base dictionary.
func NewDevanagariToRoman(dict *Dictionary, opts ...Option) *DevanagariToRoman {
	if dict == nil {
		dict = BaseDictionary()
	}
	o := collectOptions(opts)
	return &DevanagariToRoman{
		dict:    dict,
		tables:  loadDevanagariTables(),
		overlay: make(map[string]string),
		cache:   newFallbackCache(o.cacheSize),
	}
}

// AddWord registers a custom word for this engine. The Devanagari key is
// trimmed, the Roman value lower-cased and trimmed.
func (e *DevanagariToRoman) AddWord(devanagari, roman string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.overlay[devanagariKey(devanagari)] = romanKey(roman)
}

// AddWords registers custom words in order; later entries win on equal keys.
// Source is the Devanagari word, Target the Roman word.
func (e *DevanagariToRoman) AddWords(entries ...WordEntry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, entry := range entries {
		e.overlay[devanagariKey(entry.Source)] = romanKey(entry.Target)
	}
}

// AddWordsFrom registers custom words from a stream of Devanagari/Roman pairs.
// Words read before an error remain registered.
func (e *DevanagariToRoman) AddWordsFrom(reader WordReader) error {
	for {
		dev, roman, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("adding custom words: %w", err)
		}
		e.AddWord(dev, roman)
	}
}

// Transliterate converts Devanagari text to Roman. Dandas become '.' and
// double dandas become "||"; other punctuation is kept.
func (e *DevanagariToRoman) Transliterate(text string) string {
	return transliterateWords(text, isDevanagariWordRune, e.tables.punctuation, e.convertWord)
}

// isDevanagariWordRune reports whether r belongs to the Devanagari block or
// is a letter or number of any script.
func isDevanagariWordRune(r rune) bool {
	return isDevanagari(r) || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func (e *DevanagariToRoman) lookup(key string) (string, bool) {
	e.mu.RLock()
	roman, ok := e.overlay[key]
	e.mu.RUnlock()
	if ok {
		return roman, true
	}
	return e.dict.Roman(key)
}

func (e *DevanagariToRoman) convertWord(word string) string {
	key := norm.NFC.String(word)
	if roman, ok := e.lookup(key); ok {
		return roman
	}
	if e.cache != nil {
		if roman, ok := e.cache.Get(key); ok {
			return roman
		}
	}
	roman := e.spell(key)
	tracer().Debugf("spelled unknown word %q as %q", key, roman)
	if e.cache != nil {
		e.cache.Add(key, roman)
	}
	return roman
}

// spell is the phonetic fallback. Every consonant resolves its vowel from the
// rune that follows it: a virama suppresses the vowel, a vowel sign supplies
// it, and any other Devanagari rune implies the inherent "a". A consonant at
// the end of the word, or before a non-Devanagari rune, stays bare.
func (e *DevanagariToRoman) spell(word string) string {
	text := []rune(word)
	var out strings.Builder
	for i := 0; i < len(text); {
		ch := text[i]
		if digit, ok := e.tables.digits[ch]; ok {
			out.WriteString(digit)
			i++
			continue
		}
		if p, n := e.tables.punctuation.Match(text, i); n > 0 {
			out.WriteString(p)
			i += n
			continue
		}
		if mark, ok := e.tables.marks[ch]; ok {
			out.WriteString(mark)
			i++
			continue
		}
		if consonant, n := e.tables.consonants.Match(text, i); n > 0 {
			out.WriteString(consonant)
			i += n
			if i < len(text) {
				if text[i] == virama {
					i++
				} else if sign, ok := e.tables.matras[text[i]]; ok {
					out.WriteString(sign)
					i++
				} else if isDevanagari(text[i]) {
					out.WriteByte('a')
				}
			}
			continue
		}
		if vowel, ok := e.tables.vowels[ch]; ok {
			out.WriteString(vowel)
			i++
			continue
		}
		out.WriteRune(ch)
		i++
	}
	return out.String()
}
