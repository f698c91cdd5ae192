//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tkn

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/gen"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
)

//
// STOPWORDS
//

// readstopconfig - read the vv.CONFIGSTOPWORDS file and return []stopwords; if it does not exist, generate it
func readstopconfig() []string {
	const (
		ERR1 = "readstopconfig() cannot find UserHomeDir"
		ERR2 = "readstopconfig() failed to parse "
		MSG1 = "readstopconfig() wrote stopword configuration file: "
	)

	stops := gen.StringMapKeysIntoSlice(getenglishstops())
	vcfg := vv.CONFIGSTOPWORDS

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return stops
	}

	_, yes := os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vcfg)

	if yes != nil {
		sort.Strings(stops)
		content, err := json.MarshalIndent(stops, vv.JSONINDENT, vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fmt.Sprintf(vv.CONFIGALTAPTH, h)+vcfg, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + vcfg)
	} else {
		loadedcfg, _ := os.Open(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vcfg)
		decoderc := json.NewDecoder(loadedcfg)
		var stp []string
		errc := decoderc.Decode(&stp)
		_ = loadedcfg.Close()
		if errc != nil {
			Msg.CRIT(ERR2 + vcfg)
		} else {
			stops = stp
		}
	}
	return stops
}

var (
	// English150 - the most common english function words
	English150 = []string{"a", "an", "the", "and", "or", "but", "if", "then", "else", "when", "while", "of", "at",
		"by", "for", "with", "about", "between", "into", "through", "during", "before", "after", "above", "below",
		"to", "from", "up", "down", "in", "out", "on", "off", "over", "under", "again", "further", "once", "here",
		"there", "all", "any", "both", "each", "few", "more", "most", "other", "some", "such", "nor", "not", "only",
		"own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just", "should", "now", "i", "me",
		"my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours", "yourself", "yourselves", "he",
		"him", "his", "himself", "she", "her", "hers", "herself", "it", "its", "itself", "they", "them", "their",
		"theirs", "themselves", "what", "which", "who", "whom", "this", "that", "these", "those", "am", "is", "are",
		"was", "were", "be", "been", "being", "have", "has", "had", "having", "do", "does", "did", "doing", "would",
		"could", "ought", "may", "might", "must", "shall", "no", "never", "also", "because", "as", "until", "how",
		"why", "where", "whose", "one", "two", "us", "per", "via", "against", "without", "nothing"}
	// EnglishExtra - debate boilerplate and web noise that swamps the counts
	EnglishExtra = []string{"mr", "mrs", "ms", "dr", "hon", "sir", "madam", "gentleman", "gentlemen", "lady",
		"ladies", "friend", "member", "members", "house", "speaker", "rt", "amp", "quot", "http", "https", "www",
		"com", "org", "uk", "gov"}
	EnglishStop = append(English150, EnglishExtra...)
	// EnglishKeep - members of EnglishStop we will not toss
	EnglishKeep = []string{"against", "without", "nothing"}
)

func getenglishstops() map[string]struct{} {
	es := gen.SetSubtraction(EnglishStop, EnglishKeep)
	return gen.ToSet(es)
}

// GetStopSet - the working stoplist as a set
func GetStopSet() map[string]struct{} {
	ss := readstopconfig()
	return gen.ToSet(ss)
}
