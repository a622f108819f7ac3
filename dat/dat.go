package dat

// DAT is a frozen double-array trie over rune sequences, used to find the
// longest phonetic chunk starting at a position of a word.
//   - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Values:
//   - If Terminal[s] != 0, a key ends at state s and its value is
//     Values[Terminal[s]-1]. Values may be empty strings (e.g. a silent mark).
//
// Mapping:
//   - Alphabet maps BMP code points to dense alphabet IDs. Runes outside the
//     BMP are never part of a key.
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Terminal holds 1-based indices into Values for states where a key ends.
	Terminal []int32 // len == N

	// Values are the payloads of the stored keys, in insertion order.
	Values []string

	// Alphabet maps BMP code points to dense IDs [0..Sigma].
	Alphabet PagedMapBMP
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// NKeys returns the number of keys stored in the trie.
func (d *DAT) NKeys() int { return len(d.Values) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a rune to a dense alphabet ID.
// Returns 0 if the rune is not in the alphabet.
func (d *DAT) Dense(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	return d.Alphabet.Dense(uint16(r))
}

// LongestPrefix walks s from its start and returns the value of the longest
// key which is a prefix of s, together with the key length in runes.
// n == 0 means that no key is a prefix of s.
func (d *DAT) LongestPrefix(s []rune) (value string, n int) {
	state := d.Root
	for i, r := range s {
		c := d.Dense(r)
		if c == 0 {
			break
		}
		next, ok := d.Transition(state, c)
		if !ok {
			break
		}
		state = next
		if v := d.Terminal[state]; v != 0 {
			value, n = d.Values[v-1], i+1
		}
	}
	return
}

// Lookup returns the value stored for exactly key.
func (d *DAT) Lookup(key []rune) (string, bool) {
	if len(key) == 0 {
		return "", false
	}
	value, n := d.LongestPrefix(key)
	if n != len(key) {
		return "", false
	}
	return value, true
}
