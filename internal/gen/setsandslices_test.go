//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"slices"
	"testing"
)

func TestUnique(t *testing.T) {
	in := []string{"a", "a", "b", "a", "c", "b"}
	out := Unique(in)
	slices.Sort(out)
	want := []string{"a", "b", "c"}
	if !slices.Equal(out, want) {
		t.Errorf("Unique(%v) = %v; want %v", in, out, want)
	}
}

func TestSetSubtraction(t *testing.T) {
	aa := []string{"a", "b", "c", "d", "g", "h"}
	bb := []string{"a", "b", "e", "f", "g"}
	dd := SetSubtraction(aa, bb)
	want := []string{"c", "d", "h"}
	if !slices.Equal(dd, want) {
		t.Errorf("SetSubtraction() = %v; want %v", dd, want)
	}
}

func TestContainsN(t *testing.T) {
	sl := []string{"x", "y", "x", "z", "x"}
	if n := ContainsN(sl, "x"); n != 3 {
		t.Errorf("ContainsN() = %d; want 3", n)
	}
	if n := ContainsN(sl, "q"); n != 0 {
		t.Errorf("ContainsN() = %d; want 0", n)
	}
}

func TestFlattenSlices(t *testing.T) {
	in := [][]int{{1, 2}, {3}, {}, {4, 5}}
	out := FlattenSlices(in)
	want := []int{1, 2, 3, 4, 5}
	if !slices.Equal(out, want) {
		t.Errorf("FlattenSlices() = %v; want %v", out, want)
	}
}

func TestChunkSlice(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	out := ChunkSlice(in, 2)
	if len(out) != 3 {
		t.Fatalf("ChunkSlice() produced %d chunks; want 3", len(out))
	}
	if !slices.Equal(out[2], []int{5}) {
		t.Errorf("final chunk = %v; want [5]", out[2])
	}
}

func TestStringMapKeysIntoSlice(t *testing.T) {
	mp := map[string]int{"alpha": 1, "beta": 2}
	ks := StringMapKeysIntoSlice(mp)
	slices.Sort(ks)
	want := []string{"alpha", "beta"}
	if !slices.Equal(ks, want) {
		t.Errorf("StringMapKeysIntoSlice() = %v; want %v", ks, want)
	}
}

func TestStringMapIntoSlice(t *testing.T) {
	mp := map[string]int{"alpha": 1, "beta": 2, "gamma": 3}
	vs := StringMapIntoSlice(mp)
	slices.Sort(vs)
	want := []int{1, 2, 3}
	if !slices.Equal(vs, want) {
		t.Errorf("StringMapIntoSlice() = %v; want %v", vs, want)
	}
}

func TestPurgechars(t *testing.T) {
	if s := Purgechars("aeiou", "the cat sat"); s != "th ct st" {
		t.Errorf("Purgechars() = %q; want %q", s, "th ct st")
	}
}
