//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package agg

import (
	"math"
	"testing"
)

func twogrouptable() *GroupTable {
	return &GroupTable{
		Terms: []string{"x", "y"},
		Rows: map[string][]float64{
			"a": {2, 2},
			"b": {0, 4},
		},
	}
}

func TestNormalizeRowsSumToOne(t *testing.T) {
	p := twogrouptable().Normalize()

	if p.Count("a", "x") != 0.5 || p.Count("a", "y") != 0.5 {
		t.Errorf("group a normalized to [%v %v]; want [0.5 0.5]", p.Count("a", "x"), p.Count("a", "y"))
	}
	if p.Count("b", "x") != 0 || p.Count("b", "y") != 1 {
		t.Errorf("group b normalized to [%v %v]; want [0 1]", p.Count("b", "x"), p.Count("b", "y"))
	}

	for _, g := range p.Groups() {
		if s := p.GroupMass(g); math.Abs(s-1) > 1e-9 {
			t.Errorf("group %q sums to %v after Normalize()", g, s)
		}
	}
}

func TestNormalizeLeavesEmptyRowsAlone(t *testing.T) {
	gt := twogrouptable()
	gt.Rows["mute"] = []float64{0, 0}

	p := gt.Normalize()

	if s := p.GroupMass("mute"); s != 0 {
		t.Errorf("an empty group normalized to mass %v; want 0", s)
	}
}

func TestDifferenceRanking(t *testing.T) {
	p := twogrouptable().Normalize()

	dd := Difference(p, "a", "b")

	if len(dd) != 2 {
		t.Fatalf("Difference() yielded %d entries; want 2", len(dd))
	}
	if dd[0].Term != "x" || dd[0].Delta != 0.5 {
		t.Errorf("top entry = %+v; want x at 0.5", dd[0])
	}
	if dd[1].Term != "y" || dd[1].Delta != -0.5 {
		t.Errorf("bottom entry = %+v; want y at -0.5", dd[1])
	}
}

func TestDifferenceTiesAreLexical(t *testing.T) {
	p := &GroupTable{
		Terms: []string{"zeta", "beta", "alfa"},
		Rows: map[string][]float64{
			"a": {1, 1, 1},
			"b": {1, 1, 1},
		},
	}

	dd := Difference(p, "a", "b")

	want := []string{"alfa", "beta", "zeta"}
	for i, w := range want {
		if dd[i].Term != w || dd[i].Delta != 0 {
			t.Errorf("entry %d = %+v; want %s at 0", i, dd[i], w)
		}
	}
}

func TestDifferenceAntisymmetry(t *testing.T) {
	p := twogrouptable().Normalize()

	ab := Difference(p, "a", "b")
	ba := Difference(p, "b", "a")

	bydelta := make(map[string]float64, len(ba))
	for _, d := range ba {
		bydelta[d.Term] = d.Delta
	}

	for _, d := range ab {
		if d.Delta != -bydelta[d.Term] {
			t.Errorf("term %q scores %v one way and %v the other", d.Term, d.Delta, bydelta[d.Term])
		}
	}
}

func TestDifferenceUnknownGroup(t *testing.T) {
	p := twogrouptable().Normalize()

	dd := Difference(p, "nobody", "b")

	for _, d := range dd {
		if d.Delta != -p.Count("b", d.Term) {
			t.Errorf("term %q scored %v against an unknown group; want %v", d.Term, d.Delta, -p.Count("b", d.Term))
		}
	}
}

func TestHeadAndTail(t *testing.T) {
	dd := []TermDelta{
		{"hot", 0.4}, {"warm", 0.2}, {"mild", 0.0}, {"cool", -0.2}, {"cold", -0.4},
	}

	head, tail := HeadAndTail(dd, 2)
	if len(head) != 2 || head[0].Term != "hot" || head[1].Term != "warm" {
		t.Errorf("head = %v", head)
	}
	if len(tail) != 2 || tail[0].Term != "cool" || tail[1].Term != "cold" {
		t.Errorf("tail = %v", tail)
	}

	// n bigger than the ranking can bear must shrink rather than let the ends overlap
	head, tail = HeadAndTail(dd, 25)
	if len(head) != 2 || len(tail) != 2 {
		t.Errorf("oversized n yielded %d + %d entries; want 2 + 2", len(head), len(tail))
	}
}
