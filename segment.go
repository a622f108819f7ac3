package hinglish

import (
	"strings"
	"unicode/utf8"
)

// splitWord strips a maximal run of leading and trailing runes for which
// keep is false. The middle part starts and ends with a kept rune, or is
// empty if word has no kept rune at all.
func splitWord(word string, keep func(rune) bool) (prefix, core, suffix string) {
	start := strings.IndexFunc(word, keep)
	if start < 0 {
		return word, "", ""
	}
	end := strings.LastIndexFunc(word, keep)
	_, size := utf8.DecodeRuneInString(word[end:])
	end += size
	return word[:start], word[start:end], word[end:]
}

// transliterateWords splits text at whitespace runs, converts the core of
// every word and translates punctuation in the stripped prefix and suffix.
// Words are rejoined with single spaces; the original spacing is not kept.
func transliterateWords(text string, keep func(rune) bool, punct chunkTable,
	convert func(core string) string) string {
	//
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var out strings.Builder
	out.Grow(len(text) * 2)
	for i, word := range words {
		if i > 0 {
			out.WriteByte(' ')
		}
		prefix, core, suffix := splitWord(word, keep)
		out.WriteString(translatePunctuation(prefix, punct))
		if core != "" {
			out.WriteString(convert(core))
		}
		out.WriteString(translatePunctuation(suffix, punct))
	}
	return out.String()
}

// translatePunctuation maps a punctuation span by greedy longest match.
// Runes without a mapping pass through unchanged.
func translatePunctuation(span string, punct chunkTable) string {
	if span == "" {
		return span
	}
	runes := []rune(span)
	var out strings.Builder
	for i := 0; i < len(runes); {
		if glyph, n := punct.Match(runes, i); n > 0 {
			out.WriteString(glyph)
			i += n
			continue
		}
		out.WriteRune(runes[i])
		i++
	}
	return out.String()
}
