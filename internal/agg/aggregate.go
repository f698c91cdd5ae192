//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package agg folds a sparse document-term matrix into per-group term counts
// and turns those counts into ranked proportion differences between groups.
package agg

import (
	"fmt"
	"sort"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/lnch"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// RowDoer - the sparse matrix behavior aggregation needs; sparse.CSR satisfies it
type RowDoer interface {
	Dims() (r int, c int)
	DoRowNonZero(i int, fn func(i int, j int, v float64))
}

// GroupTable - a dense table of term tallies, one row per group; every row runs parallel to Terms
type GroupTable struct {
	Terms []string             `json:"Terms"`
	Rows  map[string][]float64 `json:"Rows"`
}

// Aggregate - sum the document rows of each group without ever densifying the matrix; a group
// with no documents never acquires a row
func Aggregate(dtm RowDoer, labels []string, vocab []string) (*GroupTable, error) {
	const (
		FAIL1 = `Aggregate() was handed %d labels for %d documents`
		FAIL2 = `Aggregate() was handed %d vocabulary terms for %d matrix columns`
	)

	dr, dc := dtm.Dims()

	if len(labels) != dr {
		return nil, fmt.Errorf(FAIL1, len(labels), dr)
	}
	if len(vocab) != dc {
		return nil, fmt.Errorf(FAIL2, len(vocab), dc)
	}

	gt := &GroupTable{Terms: vocab, Rows: make(map[string][]float64)}

	for i := 0; i < dr; i++ {
		g := labels[i]
		row, ok := gt.Rows[g]
		if !ok {
			row = make([]float64, dc)
			gt.Rows[g] = row
		}
		dtm.DoRowNonZero(i, func(_ int, j int, v float64) {
			row[j] += v
		})
	}

	return gt, nil
}

// Count - the tally for one (group, term) cell; an unknown group or term counts 0
func (t *GroupTable) Count(group string, term string) float64 {
	row, ok := t.Rows[group]
	if !ok {
		return 0
	}
	for j, tm := range t.Terms {
		if tm == term {
			return row[j]
		}
	}
	return 0
}

// GroupMass - the total tally of one group's row
func (t *GroupTable) GroupMass(group string) float64 {
	var m float64
	for _, v := range t.Rows[group] {
		m += v
	}
	return m
}

// TotalMass - the total tally of the whole table; must match the original matrix when fresh from Aggregate()
func (t *GroupTable) TotalMass() float64 {
	var m float64
	for g := range t.Rows {
		m += t.GroupMass(g)
	}
	return m
}

// Groups - the group names in sorted order; map iteration alone would scramble every report
func (t *GroupTable) Groups() []string {
	gg := make([]string, 0, len(t.Rows))
	for g := range t.Rows {
		gg = append(gg, g)
	}
	sort.Strings(gg)
	return gg
}
