//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package bag drives the preprocessing run: many documents in, one fitted
// bigram model and one rewritten text per document out. Tokenization fans
// out across workers; everything after it is corpus-global and sequential.
package bag

import (
	"context"
	"strings"
	"sync"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/lnch"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/ngr"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/tkn"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vlt"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// Options - the knobs a preprocessing run cares about
type Options struct {
	Workers      int
	BigramMin    int64
	BigramThresh float64
	RunID        string // when set, progress flows to the run info hub
}

// DefaultOptions - options per the loaded configuration
func DefaultOptions() Options {
	cc := lnch.Config
	if cc == nil {
		cc = lnch.BuildDefaultConfig()
	}
	return Options{
		Workers:      cc.WorkerCount,
		BigramMin:    int64(cc.BigramMin),
		BigramThresh: cc.BigramThresh,
	}
}

type taggeddoc struct {
	idx  int
	text string
}

type taggedbag struct {
	idx    int
	lemmas []string
}

// Preprocess - tokenize and lemmatize every document in parallel, fit the bigram merges corpus-wide, rewrite and
// rejoin every document; document N in always yields document N out, and a document that defeats the tokenizer
// yields an empty string in its slot
func Preprocess(ctx context.Context, docs []string, lp *tkn.LemmaPicker, opt Options) (*ngr.Model, []string) {
	bgm := ngr.NewModel()
	if opt.BigramMin > 0 {
		bgm.Min = opt.BigramMin
	}
	bgm.Thresh = opt.BigramThresh

	if len(docs) == 0 {
		bgm.Fit(nil)
		return bgm, []string{}
	}

	bags := tokenizeall(ctx, docs, lp, opt)

	// the corpus-global pass: fit the merges over every bag, then rewrite and rejoin
	if opt.RunID != "" {
		vlt.RIUpdatePhase(opt.RunID, "fitting bigrams", len(docs))
	}

	bgm.Fit(bags)

	out := make([]string, len(docs))
	for i, b := range bags {
		out[i] = strings.Join(bgm.Apply(b), vv.DETOKENIZERSEP)
	}

	return bgm, out
}

// PreprocessWith - like Preprocess, but apply merges learned on an earlier run instead of refitting
func PreprocessWith(ctx context.Context, docs []string, lp *tkn.LemmaPicker, bgm *ngr.Model, opt Options) []string {
	if len(docs) == 0 {
		return []string{}
	}

	bags := tokenizeall(ctx, docs, lp, opt)

	if opt.RunID != "" {
		vlt.RIUpdatePhase(opt.RunID, "applying stored bigrams", len(docs))
	}

	out := make([]string, len(docs))
	for i, b := range bags {
		out[i] = strings.Join(bgm.Apply(b), vv.DETOKENIZERSEP)
	}

	return out
}

// tokenizeall - fan the documents out over the workers and collect the bags back in input order
func tokenizeall(ctx context.Context, docs []string, lp *tkn.LemmaPicker, opt Options) [][]string {
	// see https://go.dev/blog/pipelines : see Parallel digestion & Fan-out, fan-in & Explicit cancellation

	workers := opt.Workers
	if workers < 1 {
		workers = 1
	}

	if opt.RunID != "" {
		vlt.RIUpdatePhase(opt.RunID, "tokenizing", len(docs))
	}

	// [a] load the documents into a channel
	docchannel := DocFeeder(ctx, docs)

	// [b] fan out to tokenize in parallel; workers fed by the document channel
	bagchannels := make([]<-chan taggedbag, workers)
	for i := 0; i < workers; i++ {
		bagchannels[i] = DocBagger(ctx, lp, docchannel)
	}

	// [c] fan in to gather the bags into a single channel
	bagchan := BagChannelAggregator(ctx, bagchannels...)

	// [d] pull the bags off of the channel and slot each into its tagged position
	bags := make([][]string, len(docs))
	done := 0
	for tb := range bagchan {
		bags[tb.idx] = tb.lemmas
		done++
		if opt.RunID != "" && done%vv.PROGRESSPOLLEVERY == 0 {
			vlt.RIUpdateDone(opt.RunID, done)
		}
	}

	return bags
}

// DocFeeder - emit indexed documents to a channel; they will be consumed by the DocBagger workers
func DocFeeder(ctx context.Context, docs []string) <-chan taggeddoc {
	emitdocs := make(chan taggeddoc, len(docs))

	feed := func() {
		defer close(emitdocs)
		for i := 0; i < len(docs); i++ {
			select {
			case <-ctx.Done():
				return
			default:
				emitdocs <- taggeddoc{idx: i, text: docs[i]}
			}
		}
	}

	go feed()

	return emitdocs
}

// DocBagger - grab an indexed document; pick its lemmata; emit the indexed bag to a channel
func DocBagger(ctx context.Context, lp *tkn.LemmaPicker, docchannel <-chan taggeddoc) <-chan taggedbag {
	bagchannel := make(chan taggedbag)

	consume := func() {
		defer close(bagchannel)
		for d := range docchannel {
			select {
			case <-ctx.Done():
				return
			default:
				ll := lp.Pick(d.text)
				lemmas := make([]string, len(ll))
				for i, l := range ll {
					lemmas[i] = l.Lemma
				}
				bagchannel <- taggedbag{idx: d.idx, lemmas: lemmas}
			}
		}
	}

	go consume()

	return bagchannel
}

// BagChannelAggregator - gather all bags from the bagchannels into one place
func BagChannelAggregator(ctx context.Context, bagchannels ...<-chan taggedbag) <-chan taggedbag {
	var wg sync.WaitGroup
	resultchann := make(chan taggedbag)

	broadcast := func(bb <-chan taggedbag) {
		defer wg.Done()
		for b := range bb {
			select {
			case resultchann <- b:
			case <-ctx.Done():
				return
			}
		}
	}

	wg.Add(len(bagchannels))
	for _, bc := range bagchannels {
		go broadcast(bc)
	}

	go func() {
		wg.Wait()
		close(resultchann)
	}()

	return resultchann
}
