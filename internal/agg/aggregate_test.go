//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package agg

import (
	"testing"

	"github.com/e-gun/sparse"
)

// fourdocs - a matrix over [x y]: two "left" documents, one "right" document, one empty "mute" document
func fourdocs() (*sparse.CSR, []string, []string) {
	dok := sparse.NewDOK(4, 2)
	dok.Set(0, 0, 1)
	dok.Set(0, 1, 2)
	dok.Set(1, 0, 1)
	dok.Set(2, 1, 4)
	labels := []string{"left", "left", "right", "mute"}
	vocab := []string{"x", "y"}
	return dok.ToCSR(), labels, vocab
}

func TestAggregateGroupSums(t *testing.T) {
	csr, labels, vocab := fourdocs()

	gt, err := Aggregate(csr, labels, vocab)
	if err != nil {
		t.Fatal(err)
	}

	if len(gt.Rows) != 3 {
		t.Fatalf("Aggregate() yielded %d groups; want 3", len(gt.Rows))
	}

	checks := []struct {
		group string
		term  string
		want  float64
	}{
		{"left", "x", 2}, {"left", "y", 2},
		{"right", "x", 0}, {"right", "y", 4},
		{"mute", "x", 0}, {"mute", "y", 0},
	}
	for _, c := range checks {
		if got := gt.Count(c.group, c.term); got != c.want {
			t.Errorf("Count(%q, %q) = %v; want %v", c.group, c.term, got, c.want)
		}
	}
}

func TestAggregateOmitsUnlabeledGroups(t *testing.T) {
	csr, labels, vocab := fourdocs()

	gt, err := Aggregate(csr, labels, vocab)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := gt.Rows["center"]; ok {
		t.Errorf("a group with no documents acquired a row")
	}

	want := []string{"left", "mute", "right"}
	got := gt.Groups()
	if len(got) != len(want) {
		t.Fatalf("Groups() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Groups()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestAggregateMassConservation(t *testing.T) {
	dok := sparse.NewDOK(5, 3)
	var in float64
	for i := 0; i < 5; i++ {
		for j := 0; j < 3; j++ {
			v := float64((i*3+j)%7) + 1
			dok.Set(i, j, v)
			in += v
		}
	}
	labels := []string{"a", "b", "a", "c", "b"}
	vocab := []string{"t0", "t1", "t2"}

	gt, err := Aggregate(dok.ToCSR(), labels, vocab)
	if err != nil {
		t.Fatal(err)
	}

	if out := gt.TotalMass(); out != in {
		t.Errorf("TotalMass() = %v; matrix holds %v", out, in)
	}
}

func TestAggregateShapeMismatch(t *testing.T) {
	csr, labels, vocab := fourdocs()

	if _, err := Aggregate(csr, labels[:2], vocab); err == nil {
		t.Errorf("Aggregate() accepted too few labels")
	}
	if _, err := Aggregate(csr, labels, []string{"x"}); err == nil {
		t.Errorf("Aggregate() accepted a short vocabulary")
	}
}
