//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tkn

import (
	"errors"
	"testing"
)

// cannedpipe - a Pipeline whose output is scripted in advance
type cannedpipe struct {
	out map[string][]Word
	err error
}

func (c *cannedpipe) Parse(doc string) ([]Word, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.out[doc], nil
}

func defaultretain() map[string]struct{} {
	return map[string]struct{}{"NOUN": {}, "PROPN": {}, "ADJ": {}}
}

func TestLemmaPickerNounRetention(t *testing.T) {
	pipe := &cannedpipe{out: map[string][]Word{
		"the cat sat": {
			{Text: "the", Lemma: "the", Pos: "DET"},
			{Text: "cat", Lemma: "cat", Pos: "NOUN"},
			{Text: "sat", Lemma: "sit", Pos: "VERB"},
		},
		"the dog sat": {
			{Text: "the", Lemma: "the", Pos: "DET"},
			{Text: "dog", Lemma: "dog", Pos: "NOUN"},
			{Text: "sat", Lemma: "sit", Pos: "VERB"},
		},
	}}

	lp := &LemmaPicker{
		Pipe:      pipe,
		Retain:    defaultretain(),
		Stops:     map[string]struct{}{"the": {}},
		Lowercase: true,
	}

	for doc, want := range map[string]string{"the cat sat": "cat", "the dog sat": "dog"} {
		got := lp.Pick(doc)
		if len(got) != 1 {
			t.Fatalf("Pick(%q) yielded %d lemmata; want 1", doc, len(got))
		}
		if got[0].Lemma != want || got[0].Pos != "NOUN" {
			t.Errorf("Pick(%q) = %+v; want lemma %q tagged NOUN", doc, got[0], want)
		}
	}
}

func TestLemmaPickerEmptyInput(t *testing.T) {
	lp := &LemmaPicker{
		Pipe:      &cannedpipe{},
		Retain:    defaultretain(),
		Stops:     map[string]struct{}{},
		Lowercase: true,
	}

	for _, doc := range []string{"", "   ", "\t\n"} {
		if got := lp.Pick(doc); len(got) != 0 {
			t.Errorf("Pick(%q) = %v; want empty", doc, got)
		}
	}
}

func TestLemmaPickerParseFailure(t *testing.T) {
	lp := &LemmaPicker{
		Pipe:      &cannedpipe{err: errors.New("tagger went missing")},
		Retain:    defaultretain(),
		Stops:     map[string]struct{}{},
		Lowercase: true,
	}

	if got := lp.Pick("anything at all"); len(got) != 0 {
		t.Errorf("Pick() after a parse failure = %v; want empty", got)
	}
}

func TestLemmaPickerKeepAll(t *testing.T) {
	pipe := &cannedpipe{out: map[string][]Word{
		"it sat down.": {
			{Text: "it", Lemma: "it", Pos: "PRON"},
			{Text: "sat", Lemma: "sit", Pos: "VERB"},
			{Text: "down", Lemma: "down", Pos: "ADV"},
			{Text: ".", Lemma: ".", Pos: "PUNCT"},
		},
	}}

	lp := &LemmaPicker{
		Pipe:      pipe,
		Retain:    nil,
		Stops:     map[string]struct{}{},
		Lowercase: true,
	}

	got := lp.Pick("it sat down.")
	if len(got) != 3 {
		t.Fatalf("keep-all Pick() yielded %d lemmata; want 3 with punctuation gone", len(got))
	}
	if got[1].Lemma != "sit" {
		t.Errorf("keep-all Pick()[1] = %+v; want the verb lemma sit", got[1])
	}
}

func TestLemmaPickerCasePreserved(t *testing.T) {
	pipe := &cannedpipe{out: map[string][]Word{
		"Britain votes": {
			{Text: "Britain", Lemma: "Britain", Pos: "PROPN"},
			{Text: "votes", Lemma: "vote", Pos: "VERB"},
		},
	}}

	lp := &LemmaPicker{
		Pipe:      pipe,
		Retain:    defaultretain(),
		Stops:     map[string]struct{}{},
		Lowercase: false,
	}

	got := lp.Pick("Britain votes")
	if len(got) != 1 || got[0].Lemma != "Britain" {
		t.Errorf("Pick() = %v; want Britain with its case kept", got)
	}
}

func TestLemmaPickerStopsCatchLemmata(t *testing.T) {
	// "said" surfaces as the lemma "say"; stopping "say" has to catch every inflection of it
	pipe := &cannedpipe{out: map[string][]Word{
		"members said peace": {
			{Text: "members", Lemma: "member", Pos: "NOUN"},
			{Text: "said", Lemma: "say", Pos: "NOUN"},
			{Text: "peace", Lemma: "peace", Pos: "NOUN"},
		},
	}}

	lp := &LemmaPicker{
		Pipe:      pipe,
		Retain:    defaultretain(),
		Stops:     map[string]struct{}{"member": {}, "say": {}},
		Lowercase: true,
	}

	got := lp.Pick("members said peace")
	if len(got) != 1 || got[0].Lemma != "peace" {
		t.Errorf("Pick() = %v; want only peace to survive", got)
	}
}

func TestFoldAccents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"café", "cafe"},
		{"naïve", "naive"},
		{"plain", "plain"},
	}

	for _, tc := range tests {
		if got := foldaccents(tc.in); got != tc.want {
			t.Errorf("foldaccents(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
