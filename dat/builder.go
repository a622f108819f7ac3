package dat

import (
	"fmt"
	"sort"
)

type buildNode struct {
	state    uint32
	value    int32 // 1-based index into values, 0 if no key ends here
	children map[uint16]*buildNode
}

// Builder collects keys in a pointer trie and compiles them into a DAT.
// A Builder is single-use: after Freeze it rejects further inserts.
type Builder struct {
	frozen      bool
	root        *buildNode
	runeToDense map[rune]uint16
	nextDenseID uint16
	values      []string
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		root:        &buildNode{children: make(map[uint16]*buildNode)},
		runeToDense: make(map[rune]uint16),
	}
}

// Insert stores value under key. Inserting a key a second time replaces its
// value. Keys must be non-empty and consist of BMP runes only.
func (b *Builder) Insert(key []rune, value string) error {
	if b.frozen {
		return fmt.Errorf("cannot insert %q into frozen trie", string(key))
	}
	if len(key) == 0 {
		return fmt.Errorf("cannot insert empty key")
	}
	n := b.root
	for _, r := range key {
		dense, err := b.encode(r)
		if err != nil {
			return fmt.Errorf("key %q: %w", string(key), err)
		}
		child := n.children[dense]
		if child == nil {
			child = &buildNode{children: make(map[uint16]*buildNode)}
			n.children[dense] = child
		}
		n = child
	}
	if n.value != 0 {
		b.values[n.value-1] = value
		return nil
	}
	b.values = append(b.values, value)
	n.value = int32(len(b.values))
	return nil
}

func (b *Builder) encode(r rune) (uint16, error) {
	if r < 0 || r > 0xFFFF {
		return 0, fmt.Errorf("rune %U outside the basic multilingual plane", r)
	}
	if dense, ok := b.runeToDense[r]; ok {
		return dense, nil
	}
	if b.nextDenseID == ^uint16(0) {
		return 0, fmt.Errorf("alphabet exhausted at rune %U", r)
	}
	b.nextDenseID++
	b.runeToDense[r] = b.nextDenseID
	return b.nextDenseID, nil
}

// Freeze compiles the collected keys into a double-array trie.
func (b *Builder) Freeze() *DAT {
	d := &DAT{Root: 1}
	if b.frozen {
		return d
	}
	for r, dense := range b.runeToDense {
		d.Alphabet.Set(uint16(r), dense)
	}
	d.Sigma = b.nextDenseID
	d.Values = b.values
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	d.Terminal = make([]int32, int(d.Root)+1)
	b.root.state = d.Root
	queue := []*buildNode{b.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findBase(d.Check, d.Root, labels)
		ensureIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			d.Terminal[t] = child.value
			queue = append(queue, child)
		}
	}
	b.root = nil
	b.runeToDense = nil
	b.values = nil
	b.frozen = true
	return d
}

func sortedLabels(children map[uint16]*buildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findBase returns the smallest base for which every label lands on a free slot.
func findBase(check []int32, root uint32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t == int(root) || (t < len(check) && check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureIndex(d *DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
	d.Terminal = append(d.Terminal, make([]int32, grow)...)
}
