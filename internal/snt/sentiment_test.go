//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package snt

import (
	"testing"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/str"
)

func newscorer(t *testing.T) *Scorer {
	t.Helper()
	s, err := NewScorer()
	if err != nil {
		t.Fatalf("NewScorer() failed to load the lexicons: %v", err)
	}
	return s
}

func TestScorePolarity(t *testing.T) {
	s := newscorer(t)

	pos := s.Score("The debate was excellent and the reforms are a great success.")
	if pos["compound"] <= 0 {
		t.Errorf("a plainly positive sentence scored %v", pos["compound"])
	}

	neg := s.Score("The harbour bill was a disaster and a terrible failure.")
	if neg["compound"] >= 0 {
		t.Errorf("a plainly negative sentence scored %v", neg["compound"])
	}

	for _, sc := range []map[string]float64{pos, neg} {
		if sc["compound"] < -1 || sc["compound"] > 1 {
			t.Errorf("compound %v fell outside [-1, 1]", sc["compound"])
		}
	}
}

func TestScoreEmptyText(t *testing.T) {
	s := newscorer(t)

	for _, text := range []string{"", "   "} {
		sc := s.Score(text)
		for _, k := range []string{"neg", "neu", "pos", "compound"} {
			if sc[k] != 0 {
				t.Errorf("Score(%q)[%s] = %v; want 0", text, k, sc[k])
			}
		}
	}
}

func TestGroupMeans(t *testing.T) {
	s := newscorer(t)

	docs := []str.GroupedDocument{
		{Index: 0, Text: "A wonderful and inspiring speech.", Group: "upbeat"},
		{Index: 1, Text: "Great progress and excellent news!", Group: "upbeat"},
		{Index: 2, Text: "An awful failure and a sad waste.", Group: "gloomy"},
		{Index: 3, Text: "A terrible and disastrous decision.", Group: "gloomy"},
	}

	means := s.GroupMeans(docs)

	if len(means) != 2 {
		t.Fatalf("GroupMeans() found %d groups; want 2", len(means))
	}
	if means[0].Group != "gloomy" || means[1].Group != "upbeat" {
		t.Fatalf("groups are not alphabetical: %s, %s", means[0].Group, means[1].Group)
	}
	if means[0].Docs != 2 || means[1].Docs != 2 {
		t.Errorf("document counts are off: %d and %d", means[0].Docs, means[1].Docs)
	}
	if means[1].Compound <= means[0].Compound {
		t.Errorf("the upbeat group (%v) should outscore the gloomy one (%v)",
			means[1].Compound, means[0].Compound)
	}
}

func TestGroupMeansEmpty(t *testing.T) {
	s := newscorer(t)

	if means := s.GroupMeans(nil); len(means) != 0 {
		t.Errorf("GroupMeans() on no documents = %v; want none", means)
	}
}
