//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package agg

import (
	"fmt"
	"sort"
)

// TermDelta - one term and how much more of group a's mass it holds than of group b's
type TermDelta struct {
	Term  string  `json:"Term"`
	Delta float64 `json:"Delta"`
}

// Normalize - rescale every row so it sums to 1; a row with no mass stays all-zero instead of
// turning into a division error
func (t *GroupTable) Normalize() *GroupTable {
	out := &GroupTable{Terms: t.Terms, Rows: make(map[string][]float64, len(t.Rows))}

	for g, row := range t.Rows {
		var sum float64
		for _, v := range row {
			sum += v
		}

		nr := make([]float64, len(row))
		if sum != 0 {
			for j, v := range row {
				nr[j] = v / sum
			}
		}
		out.Rows[g] = nr
	}

	return out
}

// Difference - every term scored by pA - pB and ranked from "most a-like" down to "most b-like";
// ties fall back to the lexical order of the terms so reruns always agree
func Difference(p *GroupTable, a string, b string) []TermDelta {
	const (
		WARN1 = `Difference() knows no group "%s"; treating its proportions as zero`
	)

	ra, oka := p.Rows[a]
	rb, okb := p.Rows[b]
	if !oka {
		Msg.WARN(fmt.Sprintf(WARN1, a))
	}
	if !okb {
		Msg.WARN(fmt.Sprintf(WARN1, b))
	}

	dd := make([]TermDelta, len(p.Terms))
	for j, tm := range p.Terms {
		var va, vb float64
		if oka {
			va = ra[j]
		}
		if okb {
			vb = rb[j]
		}
		dd[j] = TermDelta{Term: tm, Delta: va - vb}
	}

	sort.Slice(dd, func(i, j int) bool {
		if dd[i].Delta != dd[j].Delta {
			return dd[i].Delta > dd[j].Delta
		}
		return dd[i].Term < dd[j].Term
	})

	return dd
}

// HeadAndTail - the n most a-like and n most b-like entries of a ranked difference; the tail
// keeps rank order, so its last element is the most extreme on the b side; a short ranking
// shrinks n so the two ends never share an entry
func HeadAndTail(dd []TermDelta, n int) ([]TermDelta, []TermDelta) {
	if n < 0 {
		n = 0
	}
	if n > len(dd)/2 {
		n = len(dd) / 2
	}
	head := dd[:n]
	tail := dd[len(dd)-n:]
	return head, tail
}
