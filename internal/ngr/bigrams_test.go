//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ngr

import (
	"encoding/json"
	"math"
	"slices"
	"testing"
)

func TestFitFindsNewYork(t *testing.T) {
	docs := [][]string{
		{"new", "york", "city"},
		{"new", "york", "times"},
	}

	m := NewModel()
	m.Min = 2
	m.Thresh = 0.0
	m.Fit(docs)

	if m.Len() != 1 {
		t.Fatalf("Fit() learned %d merges; want 1", m.Len())
	}

	e := m.Entries()[0]
	if e.Merged != "new_york" || e.Count != 2 {
		t.Errorf("Fit() learned %+v; want new_york with count 2", e)
	}

	got := m.Apply([]string{"new", "york", "city"})
	want := []string{"new_york", "city"}
	if !slices.Equal(got, want) {
		t.Errorf("Apply() = %v; want %v", got, want)
	}
}

func TestFitTinyCorpus(t *testing.T) {
	m := NewModel()
	m.Fit([][]string{{"one", "lonely", "document"}})

	if m.Len() != 0 {
		t.Errorf("Fit() on a tiny corpus learned %d merges; want 0", m.Len())
	}

	in := []string{"one", "lonely", "document"}
	if got := m.Apply(in); !slices.Equal(got, in) {
		t.Errorf("Apply() with no merges = %v; want input unchanged", got)
	}
}

func TestFitEmpty(t *testing.T) {
	m := NewModel()
	m.Fit(nil)
	if m.Len() != 0 {
		t.Errorf("Fit(nil) learned %d merges; want 0", m.Len())
	}
	if got := m.Apply(nil); got != nil {
		t.Errorf("Apply(nil) = %v; want nil", got)
	}
}

func TestApplyGreedyNoOverlap(t *testing.T) {
	docs := [][]string{
		{"a", "b", "c"},
		{"a", "b", "c"},
		{"a", "b", "c"},
	}

	m := NewModel()
	m.Min = 2
	m.Fit(docs)

	// both (a,b) and (b,c) are merges; the left one wins and b cannot be reused
	got := m.Apply([]string{"a", "b", "c"})
	want := []string{"a_b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("Apply() = %v; want %v", got, want)
	}
}

func TestMinCountFloor(t *testing.T) {
	docs := [][]string{
		{"new", "york", "city"},
		{"new", "york", "times"},
	}

	m := NewModel()
	m.Min = 3
	m.Fit(docs)

	if m.Len() != 0 {
		t.Errorf("Fit() with min 3 learned %d merges; want 0", m.Len())
	}
}

func TestThresholdGate(t *testing.T) {
	docs := [][]string{
		{"new", "york", "city"},
		{"new", "york", "times"},
	}

	m := NewModel()
	m.Min = 2
	m.Thresh = 100.0
	m.Fit(docs)

	if m.Len() != 0 {
		t.Errorf("Fit() with an absurd threshold learned %d merges; want 0", m.Len())
	}
}

func TestApplyIdempotent(t *testing.T) {
	docs := [][]string{
		{"new", "york", "city"},
		{"new", "york", "times"},
	}

	m := NewModel()
	m.Min = 2
	m.Fit(docs)

	want := [][]string{
		{"new_york", "city"},
		{"new_york", "times"},
	}
	for i, d := range docs {
		once := m.Apply(d)
		if !slices.Equal(once, want[i]) {
			t.Errorf("Apply() on document %d = %v; want %v", i, once, want[i])
		}
		// merged tokens carry the glue and are never pair keys again
		if twice := m.Apply(once); !slices.Equal(twice, once) {
			t.Errorf("second Apply() changed document %d: %v -> %v", i, once, twice)
		}
	}
}

func TestRefitOnMergedOutput(t *testing.T) {
	docs := [][]string{
		{"new", "york", "city"},
		{"new", "york", "times"},
	}

	m := NewModel()
	m.Min = 2
	m.Fit(docs)

	var merged [][]string
	for _, d := range docs {
		merged = append(merged, m.Apply(d))
	}

	// glue-bearing tokens never pair again, so a refit cannot stack merges
	m2 := NewModel()
	m2.Min = 1
	m2.Fit(merged)
	for _, e := range m2.Entries() {
		if e.A == "new_york" || e.B == "new_york" {
			t.Errorf("refit stacked a merge on %+v", e)
		}
	}
}

func TestFitDeterministic(t *testing.T) {
	docs := [][]string{
		{"crown", "court", "ruling"},
		{"crown", "court", "sitting"},
		{"high", "court", "ruling"},
	}

	m1 := NewModel()
	m1.Min = 2
	m1.Fit(docs)
	m2 := NewModel()
	m2.Min = 2
	m2.Fit(docs)

	e1 := m1.Entries()
	e2 := m2.Entries()
	if len(e1) != len(e2) {
		t.Fatalf("two fits disagree: %d vs %d merges", len(e1), len(e2))
	}
	for i := range e1 {
		if e1[i] != e2[i] {
			t.Errorf("entry %d differs between fits: %+v vs %+v", i, e1[i], e2[i])
		}
	}
}

func TestPMI(t *testing.T) {
	// ln((2+1)*6 / ((2+1)*(2+1))) = ln 2
	got := pmi(2, 2, 2, 6, 1.0)
	if math.Abs(got-math.Log(2)) > 1e-12 {
		t.Errorf("pmi() = %v; want ln 2", got)
	}

	if got := pmi(1, 1, 1, 0, 1.0); got != 0 {
		t.Errorf("pmi() with an empty corpus = %v; want 0", got)
	}
}

func TestModelJSONRoundTrip(t *testing.T) {
	docs := [][]string{
		{"new", "york", "city"},
		{"new", "york", "times"},
	}

	m := NewModel()
	m.Min = 2
	m.Fit(docs)

	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var back Model
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	in := []string{"new", "york", "minute"}
	if !slices.Equal(m.Apply(in), back.Apply(in)) {
		t.Errorf("round-tripped model applies differently: %v vs %v", m.Apply(in), back.Apply(in))
	}
	if back.Len() != m.Len() {
		t.Errorf("round-tripped model has %d merges; want %d", back.Len(), m.Len())
	}
}
