package hinglish

import "sync"

// devanagariTables are the phonetic tables of the Devanagari to Roman direction.
type devanagariTables struct {
	consonants  chunkTable // plain, conjunct and nukta consonants
	punctuation chunkTable
	matras      map[rune]string
	vowels      map[rune]string
	marks       map[rune]string
	digits      map[rune]string
}

var devanagariPlainConsonants = []chunk{
	{"क", "k"}, {"ख", "kh"}, {"ग", "g"}, {"घ", "gh"}, {"ङ", "ng"},
	{"च", "ch"}, {"छ", "chh"}, {"ज", "j"}, {"झ", "jh"}, {"ञ", "ny"},
	{"ट", "t"}, {"ठ", "th"}, {"ड", "d"}, {"ढ", "dh"}, {"ण", "n"},
	{"त", "t"}, {"थ", "th"}, {"द", "d"}, {"ध", "dh"}, {"न", "n"},
	{"प", "p"}, {"फ", "ph"}, {"ब", "b"}, {"भ", "bh"}, {"म", "m"},
	{"य", "y"}, {"र", "r"}, {"ल", "l"}, {"व", "v"},
	{"श", "sh"}, {"ष", "sh"}, {"स", "s"}, {"ह", "h"},
}

// Conjuncts are two consonants joined by a virama and read as one unit.
var devanagariConjuncts = []chunk{
	{"क्ष", "ksh"}, {"त्र", "tr"}, {"ज्ञ", "gya"}, {"श्र", "shr"},
}

// Nukta consonants are spelled decomposed: base letter followed by U+093C.
var devanagariNuktaConsonants = []chunk{
	{"क़", "q"}, {"ख़", "kh"}, {"ग़", "gh"}, {"ज़", "z"},
	{"ड़", "d"}, {"ढ़", "dh"}, {"फ़", "f"}, {"य़", "y"},
}

var devanagariMatras = map[rune]string{
	'ा': "aa", 'ि': "i", 'ी': "ee", 'ु': "u",
	'ू': "oo", 'े': "e", 'ै': "ai", 'ो': "o",
	'ौ': "au", 'ृ': "ri", 'ॉ': "o",
}

var devanagariVowels = map[rune]string{
	'अ': "a", 'आ': "aa", 'इ': "i", 'ई': "ee",
	'उ': "u", 'ऊ': "oo", 'ए': "e", 'ऐ': "ai",
	'ओ': "o", 'औ': "au", 'ऋ': "ri", 'ॠ': "ri",
	'ऑ': "o",
}

// Anusvara, chandrabindu, visarga and om. The virama is deliberately absent:
// it is consumed after consonants and copied through anywhere else.
var devanagariMarks = map[rune]string{
	'ं': "n", 'ँ': "n", 'ः': "h", 'ॐ': "om",
}

var devanagariDigits = map[rune]string{
	'०': "0", '१': "1", '२': "2", '३': "3", '४': "4",
	'५': "5", '६': "6", '७': "7", '८': "8", '९': "9",
}

var devanagariPunctuation = []chunk{
	{"।", "."}, {"॥", "||"},
}

var loadDevanagariTables = sync.OnceValue(func() *devanagariTables {
	consonants := make([]chunk, 0, len(devanagariPlainConsonants)+
		len(devanagariConjuncts)+len(devanagariNuktaConsonants))
	consonants = append(consonants, devanagariPlainConsonants...)
	consonants = append(consonants, devanagariConjuncts...)
	consonants = append(consonants, devanagariNuktaConsonants...)
	return &devanagariTables{
		consonants:  newDATTable("devanagari-consonants", consonants),
		punctuation: newDATTable("devanagari-punctuation", devanagariPunctuation),
		matras:      devanagariMatras,
		vowels:      devanagariVowels,
		marks:       devanagariMarks,
		digits:      devanagariDigits,
	}
})
