//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package vec turns preprocessed documents into a sparse document-term
// matrix and fits models on top of it: LDA and LSA topic models via the
// nlp library and w2v/glove/lexvec semantic vectors via wego.
package vec

import (
	"sort"
	"strings"

	"github.com/e-gun/sparse"
)

// DocTerm - a document by term count matrix plus the terms that name its columns
//
// rows follow the order of the corpus slice handed to Vectorize; columns are
// Vocab in its slice order; an empty corpus yields a nil Mtx
type DocTerm struct {
	Mtx   *sparse.CSR
	Vocab []string
}

// Vectorize - count whitespace-separated tokens into a DocTerm
//
// the documents are expected to be preprocessed already, so splitting on
// spaces is exact: glued items like "prime_minister" ride through as single
// terms and never get re-split
func Vectorize(corpus []string) *DocTerm {
	seen := make(map[string]bool)
	counts := make([]map[string]float64, len(corpus))

	for i, doc := range corpus {
		cc := make(map[string]float64)
		for _, t := range strings.Fields(doc) {
			cc[t]++
			seen[t] = true
		}
		counts[i] = cc
	}

	if len(corpus) == 0 || len(seen) == 0 {
		return &DocTerm{Vocab: []string{}}
	}

	// alphabetical columns so repeated runs line up
	vocab := make([]string, 0, len(seen))
	for t := range seen {
		vocab = append(vocab, t)
	}
	sort.Strings(vocab)

	cols := make(map[string]int, len(vocab))
	for j, t := range vocab {
		cols[t] = j
	}

	dok := sparse.NewDOK(len(corpus), len(vocab))
	for i, cc := range counts {
		for t, v := range cc {
			dok.Set(i, cols[t], v)
		}
	}

	return &DocTerm{Mtx: dok.ToCSR(), Vocab: vocab}
}

// Dims - (documents, terms); (0, 0) when there is no matrix
func (dt *DocTerm) Dims() (int, int) {
	if dt.Mtx == nil {
		return 0, 0
	}
	return dt.Mtx.Dims()
}

// docfreqs - in how many documents does each term appear at least once
func (dt *DocTerm) docfreqs() []int {
	nd, nt := dt.Dims()
	df := make([]int, nt)
	for i := 0; i < nd; i++ {
		dt.Mtx.DoRowNonZero(i, func(i int, j int, v float64) {
			df[j]++
		})
	}
	return df
}

// Prune - drop terms outside the document-frequency window
//
// mindf is an absolute floor: a term has to show up in at least that many
// documents; maxdf is a relative ceiling: a term in more than that share of
// the documents is corpus wallpaper and goes; pruning can only narrow the
// vocabulary, never widen it
func (dt *DocTerm) Prune(mindf int, maxdf float64) *DocTerm {
	nd, nt := dt.Dims()
	if nd == 0 || nt == 0 {
		return dt
	}

	df := dt.docfreqs()

	remap := make([]int, nt)
	keep := make([]string, 0, nt)
	for j := 0; j < nt; j++ {
		remap[j] = -1
		if df[j] < mindf {
			continue
		}
		if maxdf > 0 && maxdf < 1 && float64(df[j])/float64(nd) > maxdf {
			continue
		}
		remap[j] = len(keep)
		keep = append(keep, dt.Vocab[j])
	}

	if len(keep) == len(dt.Vocab) {
		return dt
	}

	if len(keep) == 0 {
		return &DocTerm{Vocab: []string{}}
	}

	dok := sparse.NewDOK(nd, len(keep))
	for i := 0; i < nd; i++ {
		dt.Mtx.DoRowNonZero(i, func(i int, j int, v float64) {
			if remap[j] >= 0 {
				dok.Set(i, remap[j], v)
			}
		})
	}

	return &DocTerm{Mtx: dok.ToCSR(), Vocab: keep}
}

// Restrict - keep only the columns named in vocab, e.g. one saved by an earlier run
//
// terms the current corpus never produced cannot be conjured up, so the result
// is the intersection, ordered like the current columns
func (dt *DocTerm) Restrict(vocab []string) *DocTerm {
	nd, nt := dt.Dims()
	if nd == 0 || nt == 0 {
		return dt
	}

	wanted := make(map[string]bool, len(vocab))
	for _, t := range vocab {
		wanted[t] = true
	}

	remap := make([]int, nt)
	keep := make([]string, 0, nt)
	for j := 0; j < nt; j++ {
		remap[j] = -1
		if wanted[dt.Vocab[j]] {
			remap[j] = len(keep)
			keep = append(keep, dt.Vocab[j])
		}
	}

	if len(keep) == len(dt.Vocab) {
		return dt
	}

	if len(keep) == 0 {
		return &DocTerm{Vocab: []string{}}
	}

	dok := sparse.NewDOK(nd, len(keep))
	for i := 0; i < nd; i++ {
		dt.Mtx.DoRowNonZero(i, func(i int, j int, v float64) {
			if remap[j] >= 0 {
				dok.Set(i, remap[j], v)
			}
		})
	}

	return &DocTerm{Mtx: dok.ToCSR(), Vocab: keep}
}
