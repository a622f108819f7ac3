package hinglish

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

var roundTripSentences = []string{
	"Hello Dosto",
	"Namaste Dosto",
	"Mera naam Ranjan hai",
	"Bahut accha kaam kiya",
	"Aap kaise ho",
	"Main theek hoon",
	"Kya haal hai",
	"Shukriya dost",
	"Mujhe paani chahiye",
	"Chalo ghar chalte hain",
	"Subah ho gayi",
	"Raat ko milte hain",
	"Dil se shukriya",
	"Aaj mausam accha hai",
	"Tumhara naam kya hai",
}

func TestRoundTripRoman(t *testing.T) {
	tr := New(nil)
	for _, sentence := range roundTripSentences {
		dev := tr.ToDevanagari(sentence)
		back := tr.ToRoman(dev)
		if back != strings.ToLower(sentence) {
			t.Errorf("round trip of %q failed: %q => %q", sentence, dev, back)
		}
	}
}

func TestRoundTripDevanagari(t *testing.T) {
	tr := New(nil)
	for _, sentence := range []string{
		"नमस्ते दोस्तो",
		"क्या हाल है",
		"मेरा नाम रंजन है",
		"बहुत अच्छा काम किया",
		"मुझे पानी चाहिए",
	} {
		roman := tr.ToRoman(sentence)
		back := tr.ToDevanagari(roman)
		if back != sentence {
			t.Errorf("round trip of %q failed: %q => %q", sentence, roman, back)
		}
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Namaste Dosto", "नमस्ते दोस्तो"},
		{"नमस्ते दोस्तो", "namaste dosto"},
		{"Kya haal hai", "क्या हाल है"},
		{"क्या हाल है", "kya haal hai"},
		{"Hello दोस्तो", "हेलो दोस्तो"}, // mixed goes to Devanagari
		{"", ""},
		{"123", "१२३"},
	}
	for _, tt := range tests {
		if got := Convert(tt.in); got != tt.out {
			t.Errorf("Convert(%q) should be %q, is %q", tt.in, tt.out, got)
		}
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	if got := ToDevanagari("Main theek hoon"); got != "मैं ठीक हूँ" {
		t.Fatalf("unexpected Devanagari %q", got)
	}
	if got := ToRoman("मैं ठीक हूँ"); got != "main theek hoon" {
		t.Fatalf("unexpected Roman %q", got)
	}
	if Default() != Default() {
		t.Fatalf("default transliterator should be created once")
	}
	got := ToDevanagariBatch([]string{"Namaste", "Kya haal hai"})
	if len(got) != 2 || got[0] != "नमस्ते" || got[1] != "क्या हाल है" {
		t.Fatalf("unexpected batch result %q", got)
	}
	got = ToRomanBatch([]string{"नमस्ते", "क्या हाल है"})
	if len(got) != 2 || got[0] != "namaste" || got[1] != "kya haal hai" {
		t.Fatalf("unexpected batch result %q", got)
	}
}

func TestBatchOrder(t *testing.T) {
	tr := New(nil, WithWorkers(3))
	var texts, want []string
	for i := 0; i < 50; i++ {
		texts = append(texts, fmt.Sprintf("kya haal hai %d", i))
		want = append(want, fmt.Sprintf("क्या हाल है %s", tr.ToDevanagari(fmt.Sprint(i))))
	}
	got := tr.ToDevanagariBatch(texts)
	if len(got) != len(want) {
		t.Fatalf("expected %d results, have %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("result %d should be %q, is %q", i, want[i], got[i])
		}
	}
	if got := tr.ToRomanBatch(nil); len(got) != 0 {
		t.Fatalf("empty batch should give empty result, have %q", got)
	}
	mixed := tr.ConvertBatch([]string{"Namaste", "नमस्ते", ""})
	if mixed[0] != "नमस्ते" || mixed[1] != "namaste" || mixed[2] != "" {
		t.Fatalf("unexpected convert batch %q", mixed)
	}
}

func TestTransliteratorCustomWords(t *testing.T) {
	t1 := New(nil)
	t2 := New(nil)
	t1.RomanEngine().AddWord("bruh", "ब्रह")
	t1.DevanagariEngine().AddWord("ब्रह", "bruh")
	if got := t1.Convert("bruh"); got != "ब्रह" {
		t.Fatalf("t1 should know bruh, got %q", got)
	}
	if got := t1.Convert("ब्रह"); got != "bruh" {
		t.Fatalf("t1 should know ब्रह, got %q", got)
	}
	if got := t2.Convert("ब्रह"); got != "brah" {
		t.Fatalf("t2 should spell ब्रह phonetically, got %q", got)
	}
}

func TestConcurrentUse(t *testing.T) {
	tr := New(nil, WithCacheSize(16))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i // per-iteration copy (Go 1.22+ loop semantics)
		wg.Add(1)
		go func() {
			defer wg.Done()
			word := fmt.Sprintf("word%d", i)
			tr.RomanEngine().AddWord(word, "शब्द")
			for _i := 0; _i < 100; _i++ {
				if got := tr.ToDevanagari(word + " ram"); got != "शब्द रम" {
					t.Errorf("unexpected conversion %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
