//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package tkn turns raw document strings into streams of tagged and lemmatized words.
//
// Known limitations:
//
//   - The suffix lemmatizer is approximate for e-final stems: unlisted forms
//     like "making" will come back as "mak". The exceptions tables cover the
//     frequent irregulars.
//   - PlainPipeline cannot tag. Its words come back as "X" or "NUM", so
//     part-of-speech filtering is only meaningful with ProsePipeline.
package tkn

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/lnch"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
	"github.com/jdkato/prose/v2"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// Word - one token of a document after tagging and lemmatization
type Word struct {
	Text  string
	Lemma string
	Pos   string
}

// Pipeline - anything that can turn a document into an ordered run of Words
type Pipeline interface {
	Parse(doc string) ([]Word, error)
}

//
// PROSE-BACKED PIPELINE
//

// ProsePipeline - tokenize and tag via the prose perceptron tagger; lemmata come from the suffix rules
type ProsePipeline struct{}

func NewProsePipeline() *ProsePipeline {
	// parse something trivial now: the tagger model loads lazily and the pickers will fan out across workers
	_, _ = prose.NewDocument("It is.", prose.WithSegmentation(false), prose.WithExtraction(false))
	return &ProsePipeline{}
}

func (p *ProsePipeline) Parse(doc string) ([]Word, error) {
	if strings.TrimSpace(doc) == "" {
		return nil, nil
	}

	doc = clampdoclen(doc)

	pd, err := prose.NewDocument(doc, prose.WithSegmentation(false), prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	tt := pd.Tokens()
	ww := make([]Word, 0, len(tt))
	for _, t := range tt {
		u := UniversalTag(t.Tag)
		ww = append(ww, Word{Text: t.Text, Lemma: Lemmatize(t.Text, u), Pos: u})
	}
	return ww, nil
}

// penntouniversal - the treebank tags prose yields mapped onto the universal tagset
var penntouniversal = map[string]string{
	"CC": "CCONJ", "CD": "NUM", "DT": "DET", "EX": "PRON", "FW": "X", "IN": "ADP",
	"JJ": "ADJ", "JJR": "ADJ", "JJS": "ADJ", "LS": "X", "MD": "VERB",
	"NN": "NOUN", "NNS": "NOUN", "NNP": "PROPN", "NNPS": "PROPN",
	"PDT": "DET", "POS": "PART", "PRP": "PRON", "PRP$": "PRON",
	"RB": "ADV", "RBR": "ADV", "RBS": "ADV", "RP": "PART", "SYM": "SYM",
	"TO": "PART", "UH": "INTJ",
	"VB": "VERB", "VBD": "VERB", "VBG": "VERB", "VBN": "VERB", "VBP": "VERB", "VBZ": "VERB",
	"WDT": "DET", "WP": "PRON", "WP$": "PRON", "WRB": "ADV",
	".": "PUNCT", ",": "PUNCT", ":": "PUNCT", "``": "PUNCT", "''": "PUNCT",
	"(": "PUNCT", ")": "PUNCT", "-LRB-": "PUNCT", "-RRB-": "PUNCT",
	"HYPH": "PUNCT", "NFP": "PUNCT", "$": "PUNCT", "#": "PUNCT",
}

// UniversalTag - turn a treebank tag into a universal one; unknown tags are "X"
func UniversalTag(penn string) string {
	if u, ok := penntouniversal[penn]; ok {
		return u
	}
	return "X"
}

//
// PLAIN PIPELINE
//

// PlainPipeline - a no-model splitter: letters and digits make words, everything else is a boundary
type PlainPipeline struct{}

func NewPlainPipeline() *PlainPipeline {
	return &PlainPipeline{}
}

func (p *PlainPipeline) Parse(doc string) ([]Word, error) {
	if strings.TrimSpace(doc) == "" {
		return nil, nil
	}

	doc = clampdoclen(doc)

	var ww []Word
	var sb strings.Builder

	flush := func() {
		if sb.Len() == 0 {
			return
		}
		t := sb.String()
		sb.Reset()
		u := "X"
		if vv.HasDigit.MatchString(t) {
			u = "NUM"
		}
		ww = append(ww, Word{Text: t, Lemma: t, Pos: u})
	}

	for _, r := range doc {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'' {
			sb.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return ww, nil
}

// clampdoclen - refuse to parse documents past MAXDOCLENGTH; cut on a rune boundary
func clampdoclen(doc string) string {
	if len(doc) <= vv.MAXDOCLENGTH {
		return doc
	}
	n := vv.MAXDOCLENGTH
	for n > 0 && !utf8.RuneStart(doc[n]) {
		n--
	}
	return doc[:n]
}
