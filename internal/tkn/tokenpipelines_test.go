//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tkn

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
)

func TestUniversalTag(t *testing.T) {
	tests := []struct {
		penn string
		want string
	}{
		{"NN", "NOUN"},
		{"NNS", "NOUN"},
		{"NNP", "PROPN"},
		{"JJ", "ADJ"},
		{"VBZ", "VERB"},
		{"DT", "DET"},
		{",", "PUNCT"},
		{"``", "PUNCT"},
		{"WOMBAT", "X"},
	}

	for _, tc := range tests {
		if got := UniversalTag(tc.penn); got != tc.want {
			t.Errorf("UniversalTag(%q) = %q; want %q", tc.penn, got, tc.want)
		}
	}
}

func TestPlainPipelineParse(t *testing.T) {
	p := NewPlainPipeline()

	ww, err := p.Parse("The cat, allegedly, sat on 2 mats; voilà.")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}

	var texts []string
	for _, w := range ww {
		texts = append(texts, w.Text)
	}
	want := []string{"The", "cat", "allegedly", "sat", "on", "2", "mats", "voilà"}
	if strings.Join(texts, " ") != strings.Join(want, " ") {
		t.Errorf("Parse() tokens = %v; want %v", texts, want)
	}

	if ww[5].Pos != "NUM" {
		t.Errorf("token %q tagged %q; want NUM", ww[5].Text, ww[5].Pos)
	}
}

func TestPlainPipelineEmpty(t *testing.T) {
	p := NewPlainPipeline()
	for _, doc := range []string{"", "  ", "\n\t"} {
		ww, err := p.Parse(doc)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", doc, err)
		}
		if len(ww) != 0 {
			t.Errorf("Parse(%q) = %v; want no words", doc, ww)
		}
	}
}

func TestClampdoclen(t *testing.T) {
	long := strings.Repeat("é", (vv.MAXDOCLENGTH/2)+10)
	got := clampdoclen(long)
	if len(got) > vv.MAXDOCLENGTH {
		t.Errorf("clampdoclen() left %d bytes; cap is %d", len(got), vv.MAXDOCLENGTH)
	}
	if !utf8.ValidString(got) {
		t.Error("clampdoclen() split a rune")
	}

	short := "tiny"
	if clampdoclen(short) != short {
		t.Error("clampdoclen() touched a short document")
	}
}

func TestProsePipelineSmoke(t *testing.T) {
	p := NewProsePipeline()

	ww, err := p.Parse("The city grew very quickly.")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}

	found := false
	for _, w := range ww {
		if w.Lemma == "city" && w.Pos == "NOUN" {
			found = true
		}
	}
	if !found {
		t.Errorf("Parse() never tagged city as a NOUN: %+v", ww)
	}
}
