//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"crypto/md5"
	"encoding/json"
	"fmt"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/ngr"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/str"
)

// StoredModel - what a later run needs in order to skip refitting: the learned
// pairings and the document-frequency pruned vocabulary
type StoredModel struct {
	Fingerprint string     `json:"Fingerprint"`
	Bigrams     *ngr.Model `json:"Bigrams"`
	Vocab       []string   `json:"Vocab"`
}

// CorpusFingerprint - derive a unique md5 for a corpus plus the knobs that shape its preprocessing
func CorpusFingerprint(docs []str.GroupedDocument, cfg *str.CurrentConfiguration) string {
	const (
		MSG1 = "CorpusFingerprint(): "
		FAIL = "CorpusFingerprint() failed to Marshal"
	)

	f1, e1 := json.Marshal(docs)
	if e1 != nil {
		Msg.MAND(FAIL)
		Msg.ExitOrHang(1)
	}

	// any knob that changes the tokens has to change the key
	knobs := fmt.Sprintf("%d|%.4f|%s|%v|%d|%.4f",
		cfg.BigramMin, cfg.BigramThresh, cfg.PosRetain, cfg.Lowercase, cfg.MinDocFreq, cfg.MaxDocFreq)
	f1 = append(f1, []byte(knobs)...)

	m := fmt.Sprintf("%x", md5.Sum(f1))
	Msg.TMI(MSG1 + m)

	return m
}

// NeighborsFingerprint - a distinct key for stored embeddings: the corpus key plus the
// model type plus the full training configuration
func NeighborsFingerprint(corpusfp string, modeltype string) string {
	const (
		MSG1 = "NeighborsFingerprint(): "
		FAIL = "NeighborsFingerprint() failed to Marshal"
	)

	var f4 []byte
	var e4 error
	switch modeltype {
	case "glove":
		f4, e4 = json.Marshal(glovevectorconfig())
	case "lexvec":
		f4, e4 = json.Marshal(lexvecvectorconfig())
	default: // w2v
		f4, e4 = json.Marshal(w2vvectorconfig())
	}

	if e4 != nil {
		Msg.MAND(FAIL)
		Msg.ExitOrHang(1)
	}

	f1 := []byte(corpusfp + "|" + modeltype + "|")
	f1 = append(f1, f4...)

	m := fmt.Sprintf("%x", md5.Sum(f1))
	Msg.TMI(MSG1 + m)

	return m
}
