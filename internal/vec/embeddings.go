//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/vlt"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/model"
	"github.com/e-gun/wego/pkg/model/glove"
	"github.com/e-gun/wego/pkg/model/lexvec"
	"github.com/e-gun/wego/pkg/model/modelutil/vector"
	"github.com/e-gun/wego/pkg/model/word2vec"
	"github.com/e-gun/wego/pkg/search"
)

//
// FLOW:
// 	NeighborsData() which needs...
//  	Embeddings() which trains on the already preprocessed corpus
//

// Embeddings - train semantic vectors over the corpus and hand back the fitted embeddings
func Embeddings(modeltype string, corpus []string, runid string) embedding.Embeddings {
	const (
		FAIL1 = "model initialization failed"
		FAIL2 = "Embeddings() failed to train vector embeddings"
		FAIL3 = "Embeddings() failed to save vector embeddings"
		FAIL4 = "Embeddings() failed to load vector embeddings"
		MSG2  = "Embeddings() successfully trained a %s model (%ss)"
		VMSG  = "training run #%d out of #%d total iterations"
		SVMSG = "storing the model"
	)

	start := time.Now()

	thetext := strings.Join(corpus, " ")

	// [a] pick and configure a wego model

	var vmodel model.Model
	var ti int

	switch modeltype {
	case "glove":
		cfg := glovevectorconfig()
		m, err := glove.NewForOptions(cfg)
		if err != nil {
			Msg.CRIT(FAIL1)
			return embedding.Embeddings{}
		}
		vmodel = m
		ti = cfg.Iter
	case "lexvec":
		cfg := lexvecvectorconfig()
		m, err := lexvec.NewForOptions(cfg)
		if err != nil {
			Msg.CRIT(FAIL1)
			return embedding.Embeddings{}
		}
		vmodel = m
		ti = cfg.Iter
	default:
		cfg := w2vvectorconfig()
		m, err := word2vec.NewForOptions(cfg)
		if err != nil {
			Msg.CRIT(FAIL1)
			return embedding.Embeddings{}
		}
		vmodel = m
		ti = cfg.Iter
	}

	// [b] train

	// input for Train() is 'io.ReadSeeker'
	b := bytes.NewReader([]byte(thetext))

	finished := make(chan bool)

	// .Train() but do not block; so we can also .Reporter()
	go func() {
		if err := vmodel.Train(b); err != nil {
			Msg.NOTE(FAIL2)
		} else {
			t := fmt.Sprintf("%.3f", time.Since(start).Seconds())
			Msg.TMI(fmt.Sprintf(MSG2, modeltype, t))
		}
		finished <- true
	}()

	ct := make(chan int)
	rep := make(chan string)
	go vmodel.Reporter(ct, rep)

	quit := make(chan struct{})

	getreport := func() {
		in := 0
		for {
			select {
			case m := <-ct:
				in = m
			case <-rep:
				// [AGA] trained 100062 words 529.0315ms
			case <-quit:
				return
			}
			if runid != "" {
				vlt.RIUpdateExtra(runid, fmt.Sprintf(VMSG, in, ti))
			}
			time.Sleep(vv.WSPOLLINGPAUSE)
		}
	}

	go getreport()

	_ = <-finished
	close(quit)

	if runid != "" {
		vlt.RIUpdateExtra(runid, SVMSG)
	}

	// [c] serialize in memory; the database is for keeping, not for handing models around

	var buf bytes.Buffer
	w := io.Writer(&buf)
	err := vmodel.Save(w, vector.Agg)
	if err != nil {
		Msg.NOTE(FAIL3)
	}

	r := io.Reader(&buf)
	embs, err := embedding.Load(r)
	if err != nil {
		Msg.NOTE(FAIL4)
		embs = embedding.Embeddings{}
	}

	return embs
}

// NeighborsData - map a term and each of its nearest neighbors to their own neighborhoods
func NeighborsData(word string, embs embedding.Embeddings, ncount int) map[string]search.Neighbors {
	const (
		FAIL1 = "NeighborsData() could not find neighbors of a neighbor: '%s' neighbors (via '%s')"
		FAIL2 = "NeighborsData() failed to produce a Searcher"
		FAIL3 = "NeighborsData() failed to yield Neighbors"
	)

	searcher, err := search.New(embs...)
	if err != nil {
		Msg.FYI(FAIL2)
		searcher = func() *search.Searcher { return &search.Searcher{} }()
	}

	if ncount < vv.VECTORNEIGHBORSMIN || ncount > vv.VECTORNEIGHBORSMAX {
		ncount = vv.VECTORNEIGHBORS
	}

	nn := make(map[string]search.Neighbors)
	neighbors, err := searcher.SearchInternal(word, ncount)
	if err != nil {
		Msg.FYI(FAIL3)
		neighbors = search.Neighbors{}
	}

	nn[word] = neighbors
	for _, n := range neighbors {
		meta, e := searcher.SearchInternal(n.Word, ncount)
		if e != nil {
			Msg.FYI(fmt.Sprintf(FAIL1, n.Word, word))
		} else {
			nn[n.Word] = meta
		}
	}

	return nn
}
