//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tkn

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/gen"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//
// LEMMA PICKING
//

// LemmaPos - the (lemma, part of speech) pair the downstream counters consume
type LemmaPos struct {
	Lemma string
	Pos   string
}

// LemmaPicker - wrap a Pipeline and filter its output down to the lemmata worth counting
type LemmaPicker struct {
	Pipe      Pipeline
	Retain    map[string]struct{} // empty or nil keeps every class except PUNCT
	Stops     map[string]struct{}
	Lowercase bool
}

// NewLemmaPicker - a picker with the stock retain classes and stoplist
func NewLemmaPicker(p Pipeline) *LemmaPicker {
	return &LemmaPicker{
		Pipe:      p,
		Retain:    gen.ToSet(strings.Fields(vv.DEFAULTPOSRETAIN)),
		Stops:     GetStopSet(),
		Lowercase: vv.DEFAULTLOWERCASE,
	}
}

// NewKeepAllPicker - retain every class; the embedding texts want the verbs and the syntax words too
func NewKeepAllPicker(p Pipeline) *LemmaPicker {
	return &LemmaPicker{
		Pipe:      p,
		Retain:    nil,
		Stops:     GetStopSet(),
		Lowercase: true,
	}
}

// Pick - parse a document and yield its ordered (lemma, pos) pairs; anomalous input yields empty output, never a panic
func (lp *LemmaPicker) Pick(doc string) []LemmaPos {
	const (
		FAIL1 = "LemmaPicker.Pick() could not parse a document: %v"
	)

	ww, err := lp.Pipe.Parse(doc)
	if err != nil {
		Msg.WARN(fmt.Sprintf(FAIL1, err))
		return nil
	}

	out := make([]LemmaPos, 0, len(ww))
	for _, w := range ww {
		if w.Pos == "PUNCT" {
			continue
		}
		if len(lp.Retain) != 0 {
			if _, ok := lp.Retain[w.Pos]; !ok {
				continue
			}
		}
		l := foldaccents(w.Lemma)
		if lp.Lowercase {
			l = strings.ToLower(l)
		}
		if vv.IsWhitespace.MatchString(l) {
			continue
		}
		if _, stop := lp.Stops[strings.ToLower(l)]; stop {
			continue
		}
		out = append(out, LemmaPos{Lemma: l, Pos: w.Pos})
	}
	return out
}

// foldaccents - strip combining marks: café becomes cafe
func foldaccents(s string) string {
	// a fresh Chain every call: Transformers carry state and the pickers run on many workers
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	f, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return f
}
