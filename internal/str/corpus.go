//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// GroupedDocument - one raw document plus the label that assigns it to a sub-corpus
type GroupedDocument struct {
	Index int
	Text  string
	Group string
}
