package wordlist

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/hinglish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTSVReader(t *testing.T) {
	r := NewTSVReader(strings.NewReader("# comment\n\nbruh\tब्रह\n  yolo \t योलो  \n"))
	source, target, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "bruh", source)
	assert.Equal(t, "ब्रह", target)

	source, target, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "yolo", source)
	assert.Equal(t, "योलो", target)

	_, _, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestTSVReaderMalformed(t *testing.T) {
	for _, input := range []string{
		"bruh\n",
		"bruh\t\n",
		"\tब्रह\n",
		"bruh\tब्रह\textra\n",
	} {
		r := NewTSVReader(strings.NewReader("ok\tठीक\n" + input))
		_, _, err := r.Next()
		require.NoError(t, err)
		_, _, err = r.Next()
		require.Error(t, err, "input %q", input)
		assert.Contains(t, err.Error(), "line 2")
	}
}

func TestYAMLReaderKeepsOrder(t *testing.T) {
	r := NewYAMLReader(strings.NewReader("zeta: ज़ेटा\nalpha: अल्फा\nmid: मिड\n"))
	entries, err := ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []hinglish.WordEntry{
		{Source: "zeta", Target: "ज़ेटा"},
		{Source: "alpha", Target: "अल्फा"},
		{Source: "mid", Target: "मिड"},
	}, entries)
}

func TestYAMLReaderErrors(t *testing.T) {
	_, err := ReadAll(NewYAMLReader(strings.NewReader("- bruh\n- yolo\n")))
	assert.ErrorContains(t, err, "must be a mapping")

	_, err = ReadAll(NewYAMLReader(strings.NewReader("bruh:\n  - ब्रह\n")))
	assert.ErrorContains(t, err, "bruh")

	_, err = ReadAll(NewYAMLReader(strings.NewReader("bruh: [unclosed\n")))
	assert.Error(t, err)

	entries, err := ReadAll(NewYAMLReader(strings.NewReader("")))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpenByExtension(t *testing.T) {
	tsv, err := Open(filepath.Join("testdata", "slang.tsv"))
	require.NoError(t, err)
	defer tsv.Close()
	assert.IsType(t, &TSVReader{}, tsv.WordReader)

	engine := hinglish.NewRomanToDevanagari(nil)
	require.NoError(t, engine.AddWordsFrom(tsv))
	assert.Equal(t, "ब्रह योलो क्रिंज", engine.Transliterate("bruh yolo cringe"))

	yml, err := Open(filepath.Join("testdata", "slang.yaml"))
	require.NoError(t, err)
	defer yml.Close()
	assert.IsType(t, &YAMLReader{}, yml.WordReader)

	reverse := hinglish.NewDevanagariToRoman(nil)
	require.NoError(t, reverse.AddWordsFrom(yml))
	assert.Equal(t, "bruh cringe sigma", reverse.Transliterate("ब्रह क्रिंज सिग्मा"))

	_, err = Open(filepath.Join("testdata", "missing.tsv"))
	assert.Error(t, err)
}

func TestLoadDictionary(t *testing.T) {
	dict, err := LoadDictionary(filepath.Join("testdata", "slang.tsv"))
	require.NoError(t, err)
	assert.Equal(t, "slang.tsv", dict.Name())
	roman, devanagari := dict.Len()
	assert.Equal(t, 3, roman)
	assert.Equal(t, 3, devanagari)

	tr := hinglish.New(dict)
	assert.Equal(t, "योलो", tr.ToDevanagari("yolo"))
	assert.Equal(t, "bruh", tr.ToRoman("ब्रह"))
}
