//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import (
	"regexp"
	"time"
)

var (
	LaunchTime   = time.Now()
	KnownModels  = []string{"glove", "lexvec", "w2v"}
	PosClasses   = []string{"ADJ", "ADP", "ADV", "AUX", "CCONJ", "DET", "INTJ", "NOUN", "NUM", "PART", "PRON", "PROPN", "PUNCT", "SCONJ", "SYM", "VERB", "X"}
	HasDigit     = regexp.MustCompile(`\d`)
	IsWhitespace = regexp.MustCompile(`^\s*$`)
)
