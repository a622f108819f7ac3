package hinglish

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Transliterator bundles one engine per direction over a common dictionary.
// Custom words added through either engine stay private to this
// Transliterator.
type Transliterator struct {
	roman      *RomanToDevanagari
	devanagari *DevanagariToRoman
	workers    int
}

// New creates a Transliterator on top of dict. A nil dict selects the
// built-in base dictionary.
func New(dict *Dictionary, opts ...Option) *Transliterator {
	if dict == nil {
		dict = BaseDictionary()
	}
	o := collectOptions(opts)
	workers := o.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Transliterator{
		roman:      NewRomanToDevanagari(dict, opts...),
		devanagari: NewDevanagariToRoman(dict, opts...),
		workers:    workers,
	}
}

// RomanEngine returns the Roman to Devanagari engine.
func (t *Transliterator) RomanEngine() *RomanToDevanagari {
	return t.roman
}

// DevanagariEngine returns the Devanagari to Roman engine.
func (t *Transliterator) DevanagariEngine() *DevanagariToRoman {
	return t.devanagari
}

// ToDevanagari converts Roman text to Devanagari.
func (t *Transliterator) ToDevanagari(text string) string {
	return t.roman.Transliterate(text)
}

// ToRoman converts Devanagari text to Roman.
func (t *Transliterator) ToRoman(text string) string {
	return t.devanagari.Transliterate(text)
}

// Convert classifies text and converts it to the other script. Only
// predominantly Devanagari text goes to Roman; Roman, mixed and empty text
// go to Devanagari.
func (t *Transliterator) Convert(text string) string {
	if ClassifyScript(text) == ScriptDevanagari {
		return t.ToRoman(text)
	}
	return t.ToDevanagari(text)
}

// ToDevanagariBatch converts every text to Devanagari. Results are in input
// order.
func (t *Transliterator) ToDevanagariBatch(texts []string) []string {
	return t.batch(texts, t.ToDevanagari)
}

// ToRomanBatch converts every text to Roman. Results are in input order.
func (t *Transliterator) ToRomanBatch(texts []string) []string {
	return t.batch(texts, t.ToRoman)
}

// ConvertBatch classifies and converts every text separately. Results are in
// input order.
func (t *Transliterator) ConvertBatch(texts []string) []string {
	return t.batch(texts, t.Convert)
}

func (t *Transliterator) batch(texts []string, convert func(string) string) []string {
	results := make([]string, len(texts))
	if len(texts) == 0 {
		return results
	}
	var g errgroup.Group
	g.SetLimit(t.workers)
	for i, text := range texts {
		i, text := i, text // per-iteration copies (Go 1.22+ loop semantics)
		g.Go(func() error {
			results[i] = convert(text)
			return nil
		})
	}
	_ = g.Wait() // conversion never fails
	tracer().Debugf("converted batch of %d texts", len(texts))
	return results
}

// --- Package-level convenience -------------------------------------------

var defaultTransliterator = sync.OnceValue(func() *Transliterator {
	return New(nil)
})

// Default returns the process-wide Transliterator used by the package-level
// functions. Words added to its engines are visible to all of them.
func Default() *Transliterator {
	return defaultTransliterator()
}

// ToDevanagari converts Roman text to Devanagari with the default
// Transliterator.
func ToDevanagari(text string) string {
	return Default().ToDevanagari(text)
}

// ToRoman converts Devanagari text to Roman with the default Transliterator.
func ToRoman(text string) string {
	return Default().ToRoman(text)
}

// Convert auto-detects the script of text and converts it with the default
// Transliterator.
func Convert(text string) string {
	return Default().Convert(text)
}

// ToDevanagariBatch converts texts to Devanagari with the default
// Transliterator.
func ToDevanagariBatch(texts []string) []string {
	return Default().ToDevanagariBatch(texts)
}

// ToRomanBatch converts texts to Roman with the default Transliterator.
func ToRomanBatch(texts []string) []string {
	return Default().ToRomanBatch(texts)
}
