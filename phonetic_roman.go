package hinglish

import "sync"

const (
	virama   = '\u094D'
	anusvara = "\u0902"
)

// romanTables are the phonetic tables of the Roman to Devanagari direction.
type romanTables struct {
	consonants  chunkTable
	matras      chunkTable
	vowels      chunkTable
	punctuation chunkTable
	digits      map[rune]string
}

// Consonant clusters up to five letters. Longer clusters win over shorter
// ones at the same position.
var romanConsonants = []chunk{
	{"shree", "श्री"},
	{"ksha", "क्ष"}, {"gnya", "ज्ञ"}, {"dnya", "ज्ञ"},
	{"shra", "श्र"}, {"thra", "थ्र"}, {"ttra", "त्र"},
	{"bha", "भ"}, {"cha", "च"}, {"chh", "छ"},
	{"dha", "ध"}, {"gha", "घ"}, {"jha", "झ"},
	{"kha", "ख"}, {"nka", "ंक"}, {"pha", "फ"},
	{"sha", "श"}, {"shh", "ष"}, {"tha", "थ"},
	{"tra", "त्र"}, {"nga", "ंग"},
	{"nha", "न्ह"}, {"lha", "ल्ह"},
	{"bh", "भ"}, {"ch", "च"}, {"dh", "ध"},
	{"gh", "घ"}, {"jh", "झ"}, {"kh", "ख"},
	{"ph", "फ"}, {"sh", "श"}, {"th", "थ"},
	{"tr", "त्र"}, {"ng", "ंग"}, {"nn", "ण"},
	{"ny", "ञ"}, {"rh", "ढ"},
	{"b", "ब"}, {"c", "क"}, {"d", "द"}, {"f", "फ"},
	{"g", "ग"}, {"h", "ह"}, {"j", "ज"}, {"k", "क"},
	{"l", "ल"}, {"m", "म"}, {"n", "न"}, {"p", "प"},
	{"q", "क़"}, {"r", "र"}, {"s", "स"}, {"t", "त"},
	{"v", "व"}, {"w", "व"}, {"x", "क्स"}, {"y", "य"},
	{"z", "ज़"},
}

// Vowel signs following a consonant. The inherent "a" is silent.
var romanMatras = []chunk{
	{"aa", "ा"}, {"ai", "ै"}, {"au", "ौ"},
	{"ee", "ी"}, {"oo", "ू"}, {"ou", "ौ"},
	{"a", ""}, {"e", "े"}, {"i", "ि"},
	{"o", "ो"}, {"u", "ु"},
}

// Independent vowel letters.
var romanVowels = []chunk{
	{"aa", "आ"}, {"ai", "ऐ"}, {"au", "औ"},
	{"ee", "ई"}, {"oo", "ऊ"}, {"ou", "औ"},
	{"a", "अ"}, {"e", "ए"}, {"i", "इ"},
	{"o", "ओ"}, {"u", "उ"},
}

var romanPunctuation = []chunk{
	{".", "।"}, {"|", "।"}, {"||", "॥"},
}

var romanDigits = map[rune]string{
	'0': "०", '1': "१", '2': "२", '3': "३", '4': "४",
	'5': "५", '6': "६", '7': "७", '8': "८", '9': "९",
}

var loadRomanTables = sync.OnceValue(func() *romanTables {
	return &romanTables{
		consonants:  newProbeTable("roman-consonants", romanConsonants),
		matras:      newProbeTable("roman-matras", romanMatras),
		vowels:      newProbeTable("roman-vowels", romanVowels),
		punctuation: newProbeTable("roman-punctuation", romanPunctuation),
		digits:      romanDigits,
	}
})
