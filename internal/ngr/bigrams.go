//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package ngr learns which adjacent token pairs behave like single words and
// rewrites token streams accordingly: "new", "york" becomes "new_york".
//
// Fitting is corpus-global and exact, so fitting twice on the same corpus
// always yields the same merges, and Apply walks a document once from the
// left: a token consumed by a merge can never begin another one.
package ngr

import (
	"encoding/json"
	"math"
	"sort"
	"strings"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/lnch"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// MergeEntry - one learned pairing and the numbers behind it
type MergeEntry struct {
	A      string  `json:"A"`
	B      string  `json:"B"`
	Merged string  `json:"Merged"`
	Count  int64   `json:"Count"`
	Score  float64 `json:"Score"`
}

type pair struct {
	a string
	b string
}

// Model - fitted bigram merges; Apply is safe for concurrent use once Fit has returned
type Model struct {
	Glue    string
	Min     int64
	Thresh  float64
	Epsilon float64
	merges  map[pair]MergeEntry
}

// NewModel - a Model with the stock knobs and no merges yet
func NewModel() *Model {
	return &Model{
		Glue:    vv.BIGRAMGLUE,
		Min:     vv.BIGRAMMINCOUNT,
		Thresh:  vv.BIGRAMTHRESHOLD,
		Epsilon: vv.BIGRAMSMOOTHING,
		merges:  make(map[pair]MergeEntry),
	}
}

// Fit - count every adjacent pair in the corpus and keep the ones that pass the count floor and the score threshold
func (m *Model) Fit(docs [][]string) {
	unigrams := make(map[string]int64)
	pairs := make(map[pair]int64)
	var n int64

	for _, d := range docs {
		for i, tok := range d {
			unigrams[tok]++
			n++
			if i > 0 {
				pairs[pair{d[i-1], tok}]++
			}
		}
	}

	merges := make(map[pair]MergeEntry)
	for p, c := range pairs {
		if c < m.Min {
			continue
		}
		// a token that already carries the glue was merged on an earlier pass; never stack merges
		if strings.Contains(p.a, m.Glue) || strings.Contains(p.b, m.Glue) {
			continue
		}
		score := pmi(c, unigrams[p.a], unigrams[p.b], n, m.Epsilon)
		if score > m.Thresh {
			merges[p] = MergeEntry{A: p.a, B: p.b, Merged: p.a + m.Glue + p.b, Count: c, Score: score}
		}
	}

	m.merges = merges
}

// Apply - rewrite one document greedily from the left; the input slice is never modified
func (m *Model) Apply(doc []string) []string {
	if len(doc) == 0 {
		return nil
	}

	out := make([]string, 0, len(doc))
	i := 0
	for i < len(doc) {
		if i+1 < len(doc) {
			if e, ok := m.merges[pair{doc[i], doc[i+1]}]; ok {
				out = append(out, e.Merged)
				i += 2
				continue
			}
		}
		out = append(out, doc[i])
		i++
	}
	return out
}

// Len - how many merges the model knows
func (m *Model) Len() int {
	return len(m.merges)
}

// Entries - the merges ranked by score, ties broken by the merged form
func (m *Model) Entries() []MergeEntry {
	ee := make([]MergeEntry, 0, len(m.merges))
	for _, e := range m.merges {
		ee = append(ee, e)
	}
	sort.Slice(ee, func(i, j int) bool {
		if ee[i].Score != ee[j].Score {
			return ee[i].Score > ee[j].Score
		}
		return ee[i].Merged < ee[j].Merged
	})
	return ee
}

// pmi - smoothed pointwise mutual information over corpus token counts
func pmi(nAB, nA, nB, n int64, epsilon float64) float64 {
	if n == 0 {
		return 0
	}

	numerator := (float64(nAB) + epsilon) * float64(n)
	denominator := (float64(nA) + epsilon) * (float64(nB) + epsilon)

	if denominator == 0 {
		return 0
	}

	return math.Log(numerator / denominator)
}

type modeljson struct {
	Glue    string       `json:"Glue"`
	Min     int64        `json:"MinCount"`
	Thresh  float64      `json:"Threshold"`
	Epsilon float64      `json:"Epsilon"`
	Merges  []MergeEntry `json:"Merges"`
}

func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(modeljson{Glue: m.Glue, Min: m.Min, Thresh: m.Thresh, Epsilon: m.Epsilon, Merges: m.Entries()})
}

func (m *Model) UnmarshalJSON(b []byte) error {
	var mj modeljson
	if err := json.Unmarshal(b, &mj); err != nil {
		return err
	}
	m.Glue = mj.Glue
	m.Min = mj.Min
	m.Thresh = mj.Thresh
	m.Epsilon = mj.Epsilon
	m.merges = make(map[pair]MergeEntry, len(mj.Merges))
	for _, e := range mj.Merges {
		m.merges[pair{e.A, e.B}] = e
	}
	return nil
}
