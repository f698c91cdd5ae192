//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"reflect"
	"testing"
)

func totalmass(dt *DocTerm) float64 {
	nd, _ := dt.Dims()
	total := 0.0
	for i := 0; i < nd; i++ {
		dt.Mtx.DoRowNonZero(i, func(i int, j int, v float64) {
			total += v
		})
	}
	return total
}

func TestVectorizeCounts(t *testing.T) {
	corpus := []string{
		"budget deficit budget",
		"deficit hawk",
		"",
	}

	dt := Vectorize(corpus)

	wantvocab := []string{"budget", "deficit", "hawk"}
	if !reflect.DeepEqual(dt.Vocab, wantvocab) {
		t.Fatalf("Vectorize() vocabulary is %v, wanted %v", dt.Vocab, wantvocab)
	}

	nd, nt := dt.Dims()
	if nd != 3 || nt != 3 {
		t.Fatalf("Vectorize() dims are %dx%d, wanted 3x3", nd, nt)
	}

	want := [][]float64{
		{2, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	}
	for i := range want {
		for j := range want[i] {
			if got := dt.Mtx.At(i, j); got != want[i][j] {
				t.Errorf("cell (%d,%d) is %v, wanted %v", i, j, got, want[i][j])
			}
		}
	}
}

func TestVectorizeKeepsGluedTerms(t *testing.T) {
	corpus := []string{
		"prime_minister speaks",
		"prime_minister answers",
	}

	dt := Vectorize(corpus)

	want := []string{"answers", "prime_minister", "speaks"}
	if !reflect.DeepEqual(dt.Vocab, want) {
		t.Errorf("glued terms did not survive vectorization: %v, wanted %v", dt.Vocab, want)
	}
}

func TestVectorizeEmptyInput(t *testing.T) {
	for _, corpus := range [][]string{nil, {}, {"", "   "}} {
		dt := Vectorize(corpus)
		if nd, nt := dt.Dims(); nd != 0 || nt != 0 {
			t.Errorf("Vectorize(%q) dims are %dx%d, wanted 0x0", corpus, nd, nt)
		}
		if len(dt.Vocab) != 0 {
			t.Errorf("Vectorize(%q) produced a vocabulary: %v", corpus, dt.Vocab)
		}
	}
}

func TestVectorizeDeterministic(t *testing.T) {
	corpus := []string{
		"zebra apple mango apple",
		"mango zebra zebra",
		"apple",
	}

	a := Vectorize(corpus)
	b := Vectorize(corpus)

	if !reflect.DeepEqual(a.Vocab, b.Vocab) {
		t.Fatalf("two runs produced different vocabularies: %v vs %v", a.Vocab, b.Vocab)
	}

	nd, nt := a.Dims()
	for i := 0; i < nd; i++ {
		for j := 0; j < nt; j++ {
			if a.Mtx.At(i, j) != b.Mtx.At(i, j) {
				t.Fatalf("two runs disagree at cell (%d,%d)", i, j)
			}
		}
	}
}

func prunefixture() *DocTerm {
	// df: ubiquitous 6, common 5, steady 3, rare 1
	return Vectorize([]string{
		"ubiquitous steady common rare",
		"ubiquitous steady common",
		"ubiquitous steady common",
		"ubiquitous common",
		"ubiquitous common",
		"ubiquitous",
	})
}

func TestPruneWindow(t *testing.T) {
	dt := prunefixture()

	pruned := dt.Prune(2, 0.95)

	want := []string{"common", "steady"}
	if !reflect.DeepEqual(pruned.Vocab, want) {
		t.Fatalf("Prune(2, 0.95) kept %v, wanted %v", pruned.Vocab, want)
	}

	// surviving columns keep their counts untouched
	wantcells := [][]float64{
		{1, 1},
		{1, 1},
		{1, 1},
		{1, 0},
		{1, 0},
		{0, 0},
	}
	for i := range wantcells {
		for j := range wantcells[i] {
			if got := pruned.Mtx.At(i, j); got != wantcells[i][j] {
				t.Errorf("pruned cell (%d,%d) is %v, wanted %v", i, j, got, wantcells[i][j])
			}
		}
	}

	if pm, om := totalmass(pruned), totalmass(dt); pm > om {
		t.Errorf("pruning grew the matrix mass from %v to %v", om, pm)
	}
}

func TestPruneNeverWidens(t *testing.T) {
	dt := prunefixture()

	original := make(map[string]bool)
	for _, term := range dt.Vocab {
		original[term] = true
	}

	for _, win := range []struct {
		mindf int
		maxdf float64
	}{{1, 1.0}, {2, 0.95}, {3, 0.5}, {99, 0.95}} {
		pruned := dt.Prune(win.mindf, win.maxdf)
		if len(pruned.Vocab) > len(dt.Vocab) {
			t.Errorf("Prune(%d, %v) widened the vocabulary", win.mindf, win.maxdf)
		}
		for _, term := range pruned.Vocab {
			if !original[term] {
				t.Errorf("Prune(%d, %v) invented the term %q", win.mindf, win.maxdf, term)
			}
		}
	}
}

func TestPruneNoop(t *testing.T) {
	dt := prunefixture()

	pruned := dt.Prune(1, 1.0)
	if !reflect.DeepEqual(pruned.Vocab, dt.Vocab) {
		t.Errorf("a toothless window still pruned: %v vs %v", pruned.Vocab, dt.Vocab)
	}
}

func TestPruneEverything(t *testing.T) {
	dt := prunefixture()

	pruned := dt.Prune(99, 0.95)
	if nd, nt := pruned.Dims(); nd != 0 || nt != 0 {
		t.Errorf("pruning everything left a %dx%d matrix", nd, nt)
	}
	if len(pruned.Vocab) != 0 {
		t.Errorf("pruning everything left a vocabulary: %v", pruned.Vocab)
	}
}

func TestRestrict(t *testing.T) {
	dt := prunefixture()

	kept := dt.Restrict([]string{"steady", "never_seen"})

	want := []string{"steady"}
	if !reflect.DeepEqual(kept.Vocab, want) {
		t.Fatalf("Restrict() kept %v, wanted %v", kept.Vocab, want)
	}

	wantcol := []float64{1, 1, 1, 0, 0, 0}
	for i, v := range wantcol {
		if got := kept.Mtx.At(i, 0); got != v {
			t.Errorf("restricted cell (%d,0) is %v, wanted %v", i, got, v)
		}
	}

	// restricting to the full vocabulary changes nothing
	full := dt.Restrict(dt.Vocab)
	if !reflect.DeepEqual(full.Vocab, dt.Vocab) {
		t.Errorf("Restrict() to the full vocabulary reordered it: %v", full.Vocab)
	}
}
