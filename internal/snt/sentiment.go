//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package snt scores document sentiment with VADER and aggregates the scores
// by group. Scoring runs on the raw texts: lemmatizing and stopping strip out
// exactly the punctuation, capitalization and slang that VADER feeds on.
package snt

import (
	"sort"
	"strings"

	"github.com/drankou/go-vader/vader"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/lnch"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/str"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// Scorer - a ready SentimentIntensityAnalyzer
type Scorer struct {
	sia vader.SentimentIntensityAnalyzer
}

// NewScorer - load the lexicons and hand back a Scorer
func NewScorer() (*Scorer, error) {
	s := &Scorer{}
	if err := s.sia.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// Score - polarity of one text: "neg", "neu", "pos" and the normalized "compound"
func (s *Scorer) Score(text string) map[string]float64 {
	if strings.TrimSpace(text) == "" {
		return map[string]float64{"neg": 0, "neu": 0, "pos": 0, "compound": 0}
	}
	return s.sia.PolarityScores(text)
}

// GroupScore - mean polarity across every document of one group
type GroupScore struct {
	Group    string  `json:"Group"`
	Docs     int     `json:"Docs"`
	Negative float64 `json:"Negative"`
	Neutral  float64 `json:"Neutral"`
	Positive float64 `json:"Positive"`
	Compound float64 `json:"Compound"`
}

// GroupMeans - score every document and average per group, alphabetically by group
func (s *Scorer) GroupMeans(docs []str.GroupedDocument) []GroupScore {
	sums := make(map[string]*GroupScore)

	for _, d := range docs {
		gs, ok := sums[d.Group]
		if !ok {
			gs = &GroupScore{Group: d.Group}
			sums[d.Group] = gs
		}
		sc := s.Score(d.Text)
		gs.Docs++
		gs.Negative += sc["neg"]
		gs.Neutral += sc["neu"]
		gs.Positive += sc["pos"]
		gs.Compound += sc["compound"]
	}

	out := make([]GroupScore, 0, len(sums))
	for _, gs := range sums {
		n := float64(gs.Docs)
		gs.Negative /= n
		gs.Neutral /= n
		gs.Positive /= n
		gs.Compound /= n
		out = append(out, *gs)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Group < out[j].Group })
	return out
}
