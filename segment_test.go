package hinglish

import "testing"

func TestSplitWord(t *testing.T) {
	tests := []struct {
		word                 string
		prefix, core, suffix string
	}{
		{"hai.", "", "hai", "."},
		{"(ghar)", "(", "ghar", ")"},
		{"a||b", "", "a||b", ""},
		{"...", "...", "", ""},
		{"«kya»", "«", "kya", "»"},
		{"नमस्ते", "नमस्ते", "", ""}, // no ASCII letters: everything is prefix
	}
	for _, tt := range tests {
		prefix, core, suffix := splitWord(tt.word, isRomanWordRune)
		if prefix != tt.prefix || core != tt.core || suffix != tt.suffix {
			t.Errorf("%q split into (%q,%q,%q)", tt.word, prefix, core, suffix)
		}
	}
	prefix, core, suffix := splitWord("\"है।\"", isDevanagariWordRune)
	if prefix != "\"" || core != "है।" || suffix != "\"" {
		t.Errorf("Devanagari word split into (%q,%q,%q)", prefix, core, suffix)
	}
}

func TestTranslatePunctuation(t *testing.T) {
	punct := loadRomanTables().punctuation
	tests := []struct {
		span, out string
	}{
		{"", ""},
		{".", "।"},
		{"|||", "॥।"},
		{"?!.", "?!।"},
	}
	for _, tt := range tests {
		if got := translatePunctuation(tt.span, punct); got != tt.out {
			t.Errorf("%q should be %q, is %q", tt.span, tt.out, got)
		}
	}
}
