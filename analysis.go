//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/agg"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/bag"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/db"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/gen"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/lnch"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/ngr"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/snt"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/str"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/tkn"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vec"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/viz"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vlt"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
	"github.com/e-gun/wego/pkg/embedding"
)

//
// FLOW:
//	RunAnalysis() drives one corpus through every stage:
//	[a] tokenize, lemmatize, and glue bigrams
//	[b] count into a sparse document-term matrix and prune the vocabulary
//	[c] aggregate by group and chart the distinguishing terms
//	[d] fit topics and chart the documents in topic space
//	[e] train embeddings and chart the nearest neighbors of the headline term
//	[f] score sentiment and chart the group means
//

// RunAnalysis - the whole pipeline; every stage degrades to an empty chart rather than a panic, so a
// garbage corpus costs you the reports but never the program
func RunAnalysis(docs []str.GroupedDocument, runid string) {
	const (
		MSGA    = "preprocessed %d documents"
		MSGB    = "document-term matrix is %d x %d"
		MSGC    = "aggregated %d groups over %d terms"
		MSGD    = "fit %d topics"
		MSGE    = "mapped the neighborhood of '%s'"
		MSGF    = "scored sentiment for %d groups"
		MSGDONE = "[%s] wrote the reports to '%s'"
		MSGTT   = "topic %d: %s"
		MSGCW   = "headline term is '%s'"
		NODOCS  = "the corpus is empty: nothing to analyze"
		NOTERMS = "preprocessing left nothing to count: check the corpus and the retained word classes"
		FAILAG  = "could not aggregate the groups"
		FAILTP  = "topic modelling failed: %v"
		FAILSN  = "sentiment scoring skipped: %v"
		SETTGS  = "%s model - %d neighbors per term - corpus %.8s"
		PHVEC   = "counting terms"
		PHAGG   = "aggregating groups"
		PHTOP   = "fitting topics"
		PHNBR   = "training embeddings"
		PHSNT   = "scoring sentiment"
	)

	cc := lnch.Config

	if len(docs) == 0 {
		Msg.MAND(NODOCS)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vlt.RIInsert(runid, cancel)
	defer vlt.RIDel(runid)

	start := time.Now()
	previous := time.Now()

	// [a] preprocess: parallel tokenization, then corpus-wide bigram gluing

	lp := tkn.NewLemmaPicker(tkn.NewProsePipeline())
	if cc.PosRetain != "" {
		lp.Retain = gen.ToSet(strings.Fields(cc.PosRetain))
	}
	lp.Lowercase = cc.Lowercase

	opt := bag.DefaultOptions()
	opt.RunID = runid

	fp := vec.CorpusFingerprint(docs, cc)
	stored := vec.StoredModel{}
	cached := db.ModelDBFetch(fp, &stored)

	raw := bag.RawTexts(docs)

	var bgm *ngr.Model
	var clean []string
	if cached && stored.Bigrams != nil {
		bgm = stored.Bigrams
		clean = bag.PreprocessWith(ctx, raw, lp, bgm, opt)
	} else {
		bgm, clean = bag.Preprocess(ctx, raw, lp, opt)
	}

	Msg.Timer("A", fmt.Sprintf(MSGA, len(clean)), start, previous)
	previous = time.Now()

	// [b] vectorize and prune; a cached vocabulary replays the pruning exactly

	vlt.RIUpdatePhase(runid, PHVEC, len(clean))

	dt := vec.Vectorize(clean)
	if cached && len(stored.Vocab) > 0 {
		dt = dt.Restrict(stored.Vocab)
	} else {
		dt = dt.Prune(cc.MinDocFreq, cc.MaxDocFreq)
		db.ModelDBAdd(fp, vec.StoredModel{Fingerprint: fp, Bigrams: bgm, Vocab: dt.Vocab})
	}

	nd, nt := dt.Dims()
	if nd == 0 || nt == 0 {
		Msg.MAND(NOTERMS)
		return
	}

	Msg.Timer("B", fmt.Sprintf(MSGB, nd, nt), start, previous)
	previous = time.Now()

	// [c] aggregate by group; chart what tells the two weightiest groups apart

	vlt.RIUpdatePhase(runid, PHAGG, nd)

	gt, err := agg.Aggregate(dt.Mtx, bag.GroupLabels(docs), dt.Vocab)
	Msg.EF(err, FAILAG)
	pt := gt.Normalize()

	coreword := mostmassiveterm(gt)
	if len(gt.Groups()) > 1 {
		a, b := headliner(gt)
		dd := agg.Difference(pt, a, b)
		head, tail := agg.HeadAndTail(dd, cc.MaxDiffTerms)
		viz.WriteReportPage("", vv.RPTDIFFERENCE, viz.DifferenceBars(a, b, head, tail))
		if len(head) != 0 {
			coreword = head[0].Term
		}
	}
	Msg.NOTE(fmt.Sprintf(MSGCW, coreword))

	Msg.Timer("C", fmt.Sprintf(MSGC, len(gt.Groups()), len(gt.Terms)), start, previous)
	previous = time.Now()

	// [d] topics

	vlt.RIUpdatePhase(runid, PHTOP, cc.LdaTopics)

	tm, err := vec.LDAModel(clean, cc.LdaTopics)
	if err != nil {
		Msg.CRIT(fmt.Sprintf(FAILTP, err))
	} else {
		viz.WriteReportPage("", vv.RPTTOPICS, viz.TopicScatter(tm))
		for i, tt := range tm.TopTerms {
			Msg.NOTE(fmt.Sprintf(MSGTT, i+1, strings.Join(tt, ", ")))
		}
		Msg.Timer("D", fmt.Sprintf(MSGD, tm.K), start, previous)
	}
	previous = time.Now()

	// [e] nearest neighbors of the headline term

	vlt.RIUpdatePhase(runid, PHNBR, len(clean))

	embs := fetchorbuildembeddings(fp, clean, runid)
	nn := vec.NeighborsData(coreword, embs, cc.VectorNeighb)
	settings := fmt.Sprintf(SETTGS, cc.VectorModel, cc.VectorNeighb, fp)
	viz.WriteReportPage("", vv.RPTNEIGHBORS, viz.NeighborsGraph(coreword, settings, nn, true))

	Msg.Timer("E", fmt.Sprintf(MSGE, coreword), start, previous)
	previous = time.Now()

	// [f] sentiment

	vlt.RIUpdatePhase(runid, PHSNT, len(docs))

	scorer, err := snt.NewScorer()
	if err != nil {
		Msg.CRIT(fmt.Sprintf(FAILSN, err))
	} else {
		ss := scorer.GroupMeans(docs)
		viz.WriteReportPage("", vv.RPTSENTIMENT, viz.SentimentBars(ss))
		Msg.Timer("F", fmt.Sprintf(MSGF, len(ss)), start, previous)
	}

	Msg.MAND(fmt.Sprintf(MSGDONE, runid, viz.ReportDir()))
}

// headliner - the two groups carrying the most term mass; ties fall to alphabetical order
func headliner(gt *agg.GroupTable) (string, string) {
	gg := gt.Groups()
	sort.SliceStable(gg, func(i, j int) bool {
		mi := gt.GroupMass(gg[i])
		mj := gt.GroupMass(gg[j])
		if mi != mj {
			return mi > mj
		}
		return gg[i] < gg[j]
	})
	return gg[0], gg[1]
}

// mostmassiveterm - the single weightiest term in the corpus; the fallback headline when no
// group contrast exists to pick one
func mostmassiveterm(gt *agg.GroupTable) string {
	best := ""
	bestmass := 0.0
	for i, t := range gt.Terms {
		m := 0.0
		for _, row := range gt.Rows {
			m += row[i]
		}
		if m > bestmass || (m == bestmass && (best == "" || t < best)) {
			best = t
			bestmass = m
		}
	}
	return best
}

// fetchorbuildembeddings - embeddings are expensive; store them under a key that changes whenever
// the corpus or the training configuration does
func fetchorbuildembeddings(fp string, clean []string, runid string) embedding.Embeddings {
	const (
		MSG1 = "fetched stored embeddings (%.8s)"
		MSG2 = "stored fresh embeddings (%.8s)"
	)

	cc := lnch.Config

	nfp := vec.NeighborsFingerprint(fp, cc.VectorModel)

	var embs embedding.Embeddings
	if db.ModelDBFetch(nfp, &embs) {
		Msg.NOTE(fmt.Sprintf(MSG1, nfp))
		return embs
	}

	embs = vec.Embeddings(cc.VectorModel, clean, runid)
	if len(embs) != 0 {
		db.ModelDBAdd(nfp, embs)
		Msg.NOTE(fmt.Sprintf(MSG2, nfp))
	}
	return embs
}
