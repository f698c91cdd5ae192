//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"sort"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
	"github.com/e-gun/nlp"
	"github.com/e-gun/tsnemp/pkg/tsnemp"
	"gonum.org/v1/gonum/mat"
)

// TopicModel - a fitted LDA or LSA decomposition of the corpus
//
// DocTopics is document-major: DocTopics[doc][topic]; Winners holds the
// dominant topic per document; TopTerms is empty for "lsa" because the
// reduced components do not come with a usable word list
type TopicModel struct {
	Kind      string
	K         int
	TopTerms  [][]string
	DocTopics [][]float64
	Winners   []int
}

type topicsorter struct {
	W string
	V float64
}

// LDAModel - fit a latent dirichlet allocation over the processed corpus
func LDAModel(corpus []string, topics int) (*TopicModel, error) {
	const (
		KIND = "lda"
		FAIL = "LDAModel() could not model topics: %v"
	)

	if topics < 2 {
		topics = vv.LDATOPICS
	}
	if topics > vv.LDAMAXTOPICS {
		topics = vv.LDAMAXTOPICS
	}

	if len(corpus) == 0 {
		return &TopicModel{Kind: KIND, K: topics}, nil
	}

	cfg := ldavecconfig()

	// the corpus arrives lemmatized and stopped, so the vectoriser gets no stopword list
	vectoriser := nlp.NewCountVectoriser()

	lda := nlp.NewLatentDirichletAllocation(topics)
	lda.Processes = cfg.Goroutines
	lda.Iterations = cfg.LDAIterations
	lda.TransformationPasses = cfg.LDAXformPasses
	lda.BurnInPasses = cfg.BurnInPasses
	lda.ChangeEvaluationFrequency = cfg.ChangeEvalFrq
	lda.PerplexityEvaluationFrequency = cfg.PerplexEvalFrq
	lda.PerplexityTolerance = cfg.PerplexTol

	pipeline := nlp.NewPipeline(vectoriser, lda)

	docsOverTopics, err := pipeline.FitTransform(corpus...)
	if err != nil {
		return nil, fmt.Errorf(FAIL, err)
	}

	topicsOverWords := lda.Components()

	tm := &TopicModel{Kind: KIND, K: topics}
	tm.TopTerms = sortedtopicterms(topicsOverWords, vectoriser, cfg.TopTerms)
	tm.DocTopics, tm.Winners = docweights(docsOverTopics, false)
	return tm, nil
}

// LSAModel - tf-idf weighting plus a truncated SVD over the processed corpus
func LSAModel(corpus []string, components int) (*TopicModel, error) {
	const (
		KIND = "lsa"
		FAIL = "LSAModel() could not reduce the corpus: %v"
	)

	if components < 2 {
		components = vv.LSACOMPONENTS
	}

	if len(corpus) == 0 {
		return &TopicModel{Kind: KIND, K: components}, nil
	}

	vectoriser := nlp.NewCountVectoriser()
	transformer := nlp.NewTfidfTransformer()
	reducer := nlp.NewTruncatedSVD(components)

	lsipipeline := nlp.NewPipeline(vectoriser, transformer, reducer)

	lsi, err := lsipipeline.FitTransform(corpus...)
	if err != nil {
		return nil, fmt.Errorf(FAIL, err)
	}

	tm := &TopicModel{Kind: KIND, K: components}
	// components can run negative; the dominant one is the largest in magnitude
	tm.DocTopics, tm.Winners = docweights(lsi, true)
	return tm, nil
}

// sortedtopicterms - the heaviest words per topic, via the inverted vectoriser vocabulary
func sortedtopicterms(topicsOverWords mat.Matrix, vectoriser *nlp.CountVectoriser, top int) [][]string {
	tr, tc := topicsOverWords.Dims()

	vocab := make([]string, len(vectoriser.Vocabulary))
	for k, v := range vectoriser.Vocabulary {
		vocab[v] = k
	}

	if top > tc {
		top = tc
	}

	out := make([][]string, tr)
	for topic := 0; topic < tr; topic++ {
		tss := make([]topicsorter, tc)
		for word := 0; word < tc; word++ {
			tss[word] = topicsorter{
				W: vocab[word],
				V: topicsOverWords.At(topic, word),
			}
		}
		sort.Slice(tss, func(i, j int) bool {
			if tss[i].V != tss[j].V {
				return tss[i].V > tss[j].V
			}
			return tss[i].W < tss[j].W
		})
		names := make([]string, top)
		for i := 0; i < top; i++ {
			names[i] = tss[i].W
		}
		out[topic] = names
	}
	return out
}

// docweights - flip the library's topic-major matrix into document-major weights
// and call the winner for each document while we are at it
func docweights(docsOverTopics mat.Matrix, byabs bool) ([][]float64, []int) {
	// rows are topics and columns are documents
	dr, dc := docsOverTopics.Dims()

	ww := make([][]float64, dc)
	winners := make([]int, dc)
	for doc := 0; doc < dc; doc++ {
		row := make([]float64, dr)
		max := 0.0
		winner := 0
		for topic := 0; topic < dr; topic++ {
			v := docsOverTopics.At(topic, doc)
			row[topic] = v
			s := v
			if byabs && s < 0 {
				s = -s
			}
			if s > max {
				winner = topic
				max = s
			}
		}
		ww[doc] = row
		winners[doc] = winner
	}
	return ww, winners
}

// Scatter - one 2d spot per document for plotting the model
//
// lda weights live on a simplex and need t-sne to spread out; lsa components
// are already spatial, so their first two axes plot directly
func (tm *TopicModel) Scatter() [][]float64 {
	const (
		PERPLEX = 150 // default 300
		LEARNRT = 100 // default 100
		MAXITER = 150 // default 300
		VERBOSE = false
		MINDOCS = 8
	)

	nd := len(tm.DocTopics)
	if nd == 0 {
		return nil
	}
	k := len(tm.DocTopics[0])

	rawxy := func() [][]float64 {
		out := make([][]float64, nd)
		for i := 0; i < nd; i++ {
			x := tm.DocTopics[i][0]
			y := 0.0
			if k > 1 {
				y = tm.DocTopics[i][1]
			}
			out[i] = []float64{x, y}
		}
		return out
	}

	if tm.Kind == "lsa" {
		return rawxy()
	}

	// the perplexity math wants a crowd; a handful of documents plots raw weights
	if nd < MINDOCS || k < 2 {
		return rawxy()
	}

	dd := make([]float64, 0, nd*k)
	for doc := 0; doc < nd; doc++ {
		dd = append(dd, tm.DocTopics[doc]...)
	}

	// documents are the rows: flop this and you will get a kx2 matrix below
	wv := mat.NewDense(nd, k, dd)

	t := tsnemp.NewTSNE(2, PERPLEX, LEARNRT, MAXITER, VERBOSE)
	t.EmbedData(wv, nil)

	out := make([][]float64, nd)
	for i := 0; i < nd; i++ {
		out[i] = []float64{t.Y.At(i, 0), t.Y.At(i, 1)}
	}
	return out
}
