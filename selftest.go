//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/bag"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/db"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/lnch"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/snt"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/tkn"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vec"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/viz"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
	"github.com/google/uuid"
)

// a small two-group corpus with enough repetition to exercise every stage: "roman senate" recurs
// often enough to glue into a bigram, "muse" and "love" often enough to earn embeddings, and the
// last row is an empty document that has to ride through the whole pipeline without wrecking it

const TESTCORPUS = `text,group
"The Roman senate approved a new taxation of the provinces, and the senate treasury swelled.",history
"Another season of war drained the treasury, so the Roman senate doubled the taxation of the grain ports.",history
"Consuls addressed the Roman senate about the taxation of the northern legions.",history
"The senate heard that the legions wanted pay, and fresh taxation was the answer of the Roman senate.",history
"A praetor read the accounts of the treasury before the Roman senate, and the senate voted more taxation.",history
"The provinces protested the taxation, but the Roman senate sent the legions anyway.",history
"Old senators recalled when the senate had lowered the taxation after the war.",history
"The muse sang of love under the pale moon, and love answered the muse.",poetry
"A shepherd carved a flute and played about love for the meadow muse.",poetry
"Every verse praised the muse, and quiet love filled the evening meadow.",poetry
"The muse taught the poet a tune of love and slow sorrow.",poetry
"Sorrow and love fill the song that the muse left by the river.",poetry
"The poet begged the muse for one more song about love.",poetry
"When the muse fell silent, the poet sang of love alone, and love echoed.",poetry
"No song came, and the poet blamed the muse; the muse, not love, had left him.",poetry
"",history
`

// selftest - run the built-in corpus through every stage and complain about anything that
// does not come out the way it must
func selftest() {
	const (
		ENTER  = "entering selftest mode (5 segments)"
		EXIT   = "exiting selftest mode"
		SEGI   = "[I] corpus loading"
		SEGII  = "[II] preprocessing invariants"
		SEGIII = "[III] full pipeline and reports"
		SEGIV  = "[IV] nearest neighbor vectorization tests"
		SEGV   = "[V] latent semantic analysis test"
		MSG1   = "loaded %d documents in %d groups"
		MSG2   = "preprocessed %d documents; empty in, empty out"
		MSG3   = "ran the pipeline and wrote %d reports"
		MSG4   = "semantic vector model test: %s"
		MSG5   = "lsa fit %d components over %d documents"
		MSGOK  = "selftest passed"
		MSGNO  = "selftest FAILED %d check(s)"
		FAILT  = "selftest could not write its corpus"
		CHK    = "selftest check failed: %s"
		HAPPY  = "The song was wonderful and the evening was a delight."
		PROBE  = "muse"
		LSAK   = 2
	)

	cc := lnch.Config
	ovm := cc.VectorModel

	failures := 0
	expect := func(ok bool, s string) {
		if !ok {
			failures += 1
			Msg.CRIT(fmt.Sprintf(CHK, s))
		}
	}

	Msg.MAND(ENTER)

	start := time.Now()
	previous := time.Now()

	// [I] a temp csv round-trips into a grouped corpus

	Msg.WARN(SEGI)

	f, err := os.CreateTemp("", "aga-selftest-*.csv")
	Msg.EF(err, FAILT)
	_, err = f.WriteString(TESTCORPUS)
	Msg.EF(err, FAILT)
	Msg.EC(f.Close())
	defer os.Remove(f.Name())

	docs, err := bag.LoadCorpusCSV(f.Name(), cc.TextColumn, cc.GroupColumn)
	expect(err == nil, "the corpus csv did not load")
	expect(len(docs) == 16, "wrong document count")

	groups := make(map[string]bool)
	for i := 0; i < len(docs); i++ {
		groups[docs[i].Group] = true
	}
	expect(len(groups) == 2, "wrong group count")
	expect(docs[len(docs)-1].Text == "", "the empty document got dropped")

	Msg.Timer("A1", fmt.Sprintf(MSG1, len(docs), len(groups)), start, previous)
	previous = time.Now()

	// [II] tokenizing, lemmatizing, and bigram gluing behave

	Msg.WARN(SEGII)

	lp := tkn.NewLemmaPicker(tkn.NewProsePipeline())
	expect(len(lp.Pick("")) == 0, "an empty document should yield no lemmata")
	expect(len(lp.Pick("   \t\n")) == 0, "a blank document should yield no lemmata")

	bgm, clean := bag.Preprocess(context.Background(), bag.RawTexts(docs), lp, bag.DefaultOptions())
	expect(bgm != nil, "no bigram model came back")
	expect(len(clean) == len(docs), "preprocessing changed the document count")
	expect(clean[len(clean)-1] == "", "the empty document should stay empty")
	expect(strings.Contains(strings.Join(clean, " "), "roman_senate"), "'roman senate' never glued into a bigram")

	scorer, err := snt.NewScorer()
	expect(err == nil, "the sentiment lexicon did not load")
	if err == nil {
		expect(scorer.Score(HAPPY)["compound"] > 0, "a happy sentence scored as unhappy")
	}

	Msg.Timer("B1", fmt.Sprintf(MSG2, len(clean)), start, previous)
	previous = time.Now()

	// [III] the full pipeline lands all four reports and stores its model

	Msg.WARN(SEGIII)

	runid := "selftest-" + strings.Split(uuid.New().String(), "-")[0]
	RunAnalysis(docs, runid)

	reports := []string{vv.RPTDIFFERENCE, vv.RPTTOPICS, vv.RPTNEIGHBORS, vv.RPTSENTIMENT}
	for _, r := range reports {
		_, e := os.Stat(filepath.Join(viz.ReportDir(), r))
		expect(e == nil, fmt.Sprintf("no '%s' report on disk", r))
	}

	fp := vec.CorpusFingerprint(docs, cc)
	expect(db.ModelDBCheck(fp), "the fitted model never reached the store")

	Msg.Timer("C1", fmt.Sprintf(MSG3, len(reports)), start, previous)
	previous = time.Now()

	// [IV] every embedding flavor trains and finds neighbors

	Msg.WARN(SEGIV)

	// the vector models want richer text than the bagger keeps: verbs and syntax words too
	kap := tkn.NewKeepAllPicker(tkn.NewPlainPipeline())
	_, full := bag.Preprocess(context.Background(), bag.RawTexts(docs), kap, bag.DefaultOptions())
	expect(len(full) == len(docs), "the keep-all rendering changed the document count")

	count := 1
	for _, m := range vv.KnownModels {
		cc.VectorModel = m
		embs := vec.Embeddings(m, full, "")
		expect(len(embs) != 0, fmt.Sprintf("the %s model produced no embeddings", m))
		nn := vec.NeighborsData(PROBE, embs, cc.VectorNeighb)
		expect(len(nn[PROBE]) != 0, fmt.Sprintf("the %s model found no neighbors of '%s'", m, PROBE))
		Msg.Timer(fmt.Sprintf("E%d", count), fmt.Sprintf(MSG4, m), start, previous)
		previous = time.Now()
		count += 1
	}
	cc.VectorModel = ovm

	// [V] lsa agrees with the corpus shape

	Msg.WARN(SEGV)

	lsa, err := vec.LSAModel(clean, LSAK)
	expect(err == nil, "lsa failed to fit")
	if err == nil {
		expect(lsa.K == LSAK, "lsa fit the wrong number of components")
		expect(len(lsa.DocTopics) == len(clean), "lsa lost documents")
		expect(len(lsa.Winners) == len(clean), "lsa failed to assign every document")
	}

	Msg.Timer("F", fmt.Sprintf(MSG5, LSAK, len(clean)), start, previous)

	if failures == 0 {
		Msg.MAND(MSGOK)
	} else {
		Msg.MAND(fmt.Sprintf(MSGNO, failures))
	}

	Msg.MAND(EXIT)
}
