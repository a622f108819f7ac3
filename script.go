package hinglish

import (
	"fmt"
	"strings"
	"unicode"
)

// Script is the dominant writing system of a text span.
type Script int

const (
	ScriptEmpty      Script = iota // no Roman or Devanagari letters at all
	ScriptRoman                    // at least 70% ASCII letters
	ScriptDevanagari               // at least 70% Devanagari letters
	ScriptMixed                    // neither script reaches the threshold
)

var scriptNames = [...]string{
	ScriptEmpty:      "empty",
	ScriptRoman:      "roman",
	ScriptDevanagari: "devanagari",
	ScriptMixed:      "mixed",
}

// dominanceThreshold is the share of letters a script needs to dominate.
const dominanceThreshold = 0.7

// String returns the lower-case name of the script, e.g. "devanagari".
func (s Script) String() string {
	if int(s) >= 0 && int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return fmt.Sprintf("Script(%d)", int(s))
}

// MarshalText encodes the script by name.
func (s Script) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a script name as produced by String.
func (s *Script) UnmarshalText(text []byte) error {
	for i, name := range scriptNames {
		if name == string(text) {
			*s = Script(i)
			return nil
		}
	}
	return fmt.Errorf("hinglish: unknown script: %q", string(text))
}

// isDevanagari reports whether r lies in the Devanagari block U+0900–U+097F.
func isDevanagari(r rune) bool {
	return r >= 0x0900 && r <= 0x097F
}

// ClassifyScript reports the dominant script of text.
//
// Only letters count: digits, punctuation and whitespace are skipped, and so
// are Devanagari vowel signs and marks, which are not letters. Letters of any
// other script count toward neither total.
func ClassifyScript(text string) Script {
	if strings.TrimSpace(text) == "" {
		return ScriptEmpty
	}
	var roman, devanagari int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		switch {
		case isDevanagari(r):
			devanagari++
		case r <= unicode.MaxASCII:
			roman++
		}
	}
	total := roman + devanagari
	if total == 0 {
		return ScriptEmpty
	}
	if float64(devanagari)/float64(total) >= dominanceThreshold {
		return ScriptDevanagari
	}
	if float64(roman)/float64(total) >= dominanceThreshold {
		return ScriptRoman
	}
	return ScriptMixed
}
