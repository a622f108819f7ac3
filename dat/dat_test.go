package dat

import "testing"

func mustBuild(t *testing.T, entries map[string]string) *DAT {
	t.Helper()
	b := NewBuilder()
	for k, v := range entries {
		if err := b.Insert([]rune(k), v); err != nil {
			t.Fatalf("Insert(%q) failed: %v", k, err)
		}
	}
	return b.Freeze()
}

func TestLongestPrefix(t *testing.T) {
	d := mustBuild(t, map[string]string{
		"क":   "k",
		"क्ष": "ksh",
		"क़":  "q",
		"ा":   "aa",
	})
	tests := []struct {
		input string
		value string
		n     int
	}{
		{input: "क", value: "k", n: 1},
		{input: "कल", value: "k", n: 1},
		{input: "क्षमा", value: "ksh", n: 3},
		{input: "क्", value: "k", n: 1}, // dangling virama is not a key
		{input: "क़लम", value: "q", n: 2},
		{input: "ाब", value: "aa", n: 1},
		{input: "ब", value: "", n: 0},
		{input: "", value: "", n: 0},
	}
	for _, tt := range tests {
		value, n := d.LongestPrefix([]rune(tt.input))
		if value != tt.value || n != tt.n {
			t.Fatalf("LongestPrefix(%q) = (%q, %d), want (%q, %d)", tt.input, value, n, tt.value, tt.n)
		}
	}
}

func TestLookupExact(t *testing.T) {
	d := mustBuild(t, map[string]string{"ab": "x", "abc": "y", "z": ""})
	if v, ok := d.Lookup([]rune("ab")); !ok || v != "x" {
		t.Fatalf("Lookup(ab) = (%q, %v)", v, ok)
	}
	if _, ok := d.Lookup([]rune("a")); ok {
		t.Fatalf("Lookup(a) should miss, a is only a prefix")
	}
	if v, ok := d.Lookup([]rune("z")); !ok || v != "" {
		t.Fatalf("empty values must be retrievable, got (%q, %v)", v, ok)
	}
	if d.NKeys() != 3 {
		t.Fatalf("expected 3 keys, got %d", d.NKeys())
	}
}

func TestInsertReplacesValue(t *testing.T) {
	b := NewBuilder()
	if err := b.Insert([]rune("ab"), "first"); err != nil {
		t.Fatal(err)
	}
	if err := b.Insert([]rune("ab"), "second"); err != nil {
		t.Fatal(err)
	}
	d := b.Freeze()
	if v, _ := d.Lookup([]rune("ab")); v != "second" {
		t.Fatalf("expected replaced value, got %q", v)
	}
	if d.NKeys() != 1 {
		t.Fatalf("expected 1 key, got %d", d.NKeys())
	}
}

func TestInsertRejects(t *testing.T) {
	b := NewBuilder()
	if err := b.Insert(nil, "x"); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if err := b.Insert([]rune("😀"), "x"); err == nil {
		t.Fatalf("expected error for non-BMP key")
	}
	b.Freeze()
	if err := b.Insert([]rune("a"), "x"); err == nil {
		t.Fatalf("expected error for insert after freeze")
	}
}

func TestPagedMapBMP(t *testing.T) {
	var m PagedMapBMP
	m.Set('a', 1)
	m.Set('क', 2)
	m.Set('€', 0) // clearing on an absent page allocates nothing
	if m.NumPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", m.NumPages())
	}
	if m.Dense('a') != 1 || m.Dense('क') != 2 || m.Dense('z') != 0 || m.Dense('€') != 0 {
		t.Fatalf("unexpected dense mapping")
	}
}
