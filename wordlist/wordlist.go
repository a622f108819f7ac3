/*
Package wordlist reads custom word lists for package hinglish.

Two formats are supported. TSV files hold one pair per line, source and target
separated by a tab:

	# roman<TAB>devanagari
	bruh	ब्रह
	yolo	योलो

YAML files hold a single mapping from source to target:

	bruh: ब्रह
	yolo: योलो

Which side is the source depends on the engine a list is fed to: lists for
hinglish.RomanToDevanagari map Roman words to Devanagari, lists for
hinglish.DevanagariToRoman map Devanagari words to Roman.

Readers implement hinglish.WordReader and stream pairs in file order.
*/
package wordlist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/hinglish"
)

// File is a word list opened from disk.
type File struct {
	hinglish.WordReader
	f *os.File
}

// Close closes the underlying file.
func (file *File) Close() error {
	return file.f.Close()
}

// Open opens a word list and selects a reader by file extension: ".yaml" and
// ".yml" are read as YAML, everything else as TSV.
//
// Example usage:
//
//	list, err := wordlist.Open("slang.tsv")
//	if err != nil { ... }
//	defer list.Close()
//	err = engine.AddWordsFrom(list)
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	var reader hinglish.WordReader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		reader = NewYAMLReader(f)
	default:
		reader = NewTSVReader(f)
	}
	return &File{WordReader: reader, f: f}, nil
}

// LoadDictionary reads a Roman to Devanagari word list from a file and
// builds a dictionary from it. The dictionary is named after the file.
func LoadDictionary(path string) (*hinglish.Dictionary, error) {
	list, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer list.Close()
	return hinglish.LoadDictionary(filepath.Base(path), list)
}

// ReadAll drains reader into a slice of entries.
func ReadAll(reader hinglish.WordReader) ([]hinglish.WordEntry, error) {
	var entries []hinglish.WordEntry
	for {
		source, target, err := reader.Next()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
		entries = append(entries, hinglish.WordEntry{Source: source, Target: target})
	}
}
