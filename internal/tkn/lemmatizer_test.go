//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tkn

import (
	"testing"
)

func TestLemmatize(t *testing.T) {
	tests := []struct {
		form string
		pos  string
		want string
	}{
		{"cats", "NOUN", "cat"},
		{"cities", "NOUN", "city"},
		{"churches", "NOUN", "church"},
		{"speeches", "NOUN", "speech"},
		{"glasses", "NOUN", "glass"},
		{"women", "NOUN", "woman"},
		{"men", "NOUN", "man"},
		{"children", "NOUN", "child"},
		{"news", "NOUN", "news"},
		{"bus", "NOUN", "bus"},
		{"analysis", "NOUN", "analysis"},
		{"sat", "VERB", "sit"},
		{"said", "VERB", "say"},
		{"running", "VERB", "run"},
		{"falling", "VERB", "fall"},
		{"walking", "VERB", "walk"},
		{"loved", "VERB", "love"},
		{"danced", "VERB", "dance"},
		{"takes", "VERB", "take"},
		{"misses", "VERB", "miss"},
		{"making", "VERB", "make"},
		{"carried", "VERB", "carry"},
		{"agreed", "VERB", "agreed"},
		{"was", "VERB", "be"},
		{"n't", "ADV", "not"},
		{"bigger", "ADJ", "big"},
		{"larger", "ADJ", "large"},
		{"happier", "ADJ", "happy"},
		{"greatest", "ADJ", "great"},
		{"better", "ADJ", "good"},
		{"Cats", "NOUN", "cat"},
		{"London", "PROPN", "London"},
		{"quickly", "ADV", "quickly"},
	}

	for _, tc := range tests {
		if got := Lemmatize(tc.form, tc.pos); got != tc.want {
			t.Errorf("Lemmatize(%q, %q) = %q; want %q", tc.form, tc.pos, got, tc.want)
		}
	}
}

func TestFixstem(t *testing.T) {
	tests := []struct {
		stem    string
		surface string
		want    string
	}{
		{"runn", "running", "run"},
		{"fall", "falling", "fall"},
		{"lov", "loved", "love"},
		{"agre", "agreed", "agreed"},
		{"walk", "walking", "walk"},
	}

	for _, tc := range tests {
		if got := fixstem(tc.stem, tc.surface); got != tc.want {
			t.Errorf("fixstem(%q, %q) = %q; want %q", tc.stem, tc.surface, got, tc.want)
		}
	}
}
