/*
Package hinglish converts text between Romanized Hindi ("Hinglish") and
Devanagari script, in both directions, word by word.

Each direction combines a curated word dictionary with a character-level
phonetic fallback for unknown words. The fallback is a greedy longest-match
scanner over a table of phonetic chunks (consonant clusters, vowel signs,
independent vowels, nasalization marks, digits and punctuation). The two
scanners are hand-tuned heuristics and are not exact inverses of each other:
round trips are reliable for dictionary words only.

	hinglish.ToDevanagari("Namaste Dosto")  // "नमस्ते दोस्तो"
	hinglish.ToRoman("क्या हाल है")          // "kya haal hai"
	hinglish.Convert("Kya haal hai")        // "क्या हाल है"

Conversion never fails: characters without a mapping are copied through.
Words are separated by runs of whitespace and rejoined with single spaces.

Custom words live in a per-engine overlay on top of a shared, read-only base
dictionary, so adding a word to one engine never changes the output of
another. Word lists may be streamed in through a WordReader; package wordlist
provides readers for TSV and YAML files.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package hinglish

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hinglish'
func tracer() tracing.Trace {
	return tracing.Select("hinglish")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
