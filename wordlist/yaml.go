package wordlist

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLReader streams word pairs from a YAML mapping in document order.
//
// The document is decoded as a whole on the first call to Next; decoding into
// a node tree rather than a Go map keeps the order of the entries.
type YAMLReader struct {
	reader  io.Reader
	pairs   []*yaml.Node // alternating key and value nodes
	index   int
	decoded bool
}

func NewYAMLReader(reader io.Reader) *YAMLReader {
	return &YAMLReader{reader: reader}
}

// Next returns the next pair as (source, target).
// It returns io.EOF when exhausted.
func (r *YAMLReader) Next() (string, string, error) {
	if !r.decoded {
		r.decoded = true
		if err := r.decode(); err != nil {
			return "", "", err
		}
	}
	if r.index+1 >= len(r.pairs) {
		return "", "", io.EOF
	}
	key, value := r.pairs[r.index], r.pairs[r.index+1]
	r.index += 2
	if value.Kind != yaml.ScalarNode || value.Value == "" {
		return "", "", fmt.Errorf("line %d: word %q needs a plain string value", value.Line, key.Value)
	}
	return key.Value, value.Value, nil
}

func (r *YAMLReader) decode() error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r.reader).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) { // empty document
			return nil
		}
		return fmt.Errorf("decoding YAML word list: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: YAML word list must be a mapping", root.Line)
	}
	r.pairs = root.Content
	return nil
}
