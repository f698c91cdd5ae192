//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tkn

import (
	"strings"
)

//
// SUFFIX LEMMATIZER
//

// anyexceptions - contraction pieces and forms that resolve the same way whatever the tag says
var anyexceptions = map[string]string{
	"'d":   "would",
	"'ll":  "will",
	"'m":   "be",
	"'re":  "be",
	"'ve":  "have",
	"am":   "be",
	"are":  "be",
	"is":   "be",
	"n't":  "not",
	"was":  "be",
	"were": "be",
}

var nounexceptions = map[string]string{
	"children":  "child",
	"criteria":  "criterion",
	"feet":      "foot",
	"geese":     "goose",
	"halves":    "half",
	"knives":    "knife",
	"leaves":    "leaf",
	"lives":     "life",
	"loaves":    "loaf",
	"mice":      "mouse",
	"news":      "news",
	"oxen":      "ox",
	"pence":     "penny",
	"people":    "person",
	"phenomena": "phenomenon",
	"series":    "series",
	"shelves":   "shelf",
	"species":   "species",
	"teeth":     "tooth",
	"thieves":   "thief",
	"wives":     "wife",
	"wolves":    "wolf",
}

var verbexceptions = map[string]string{
	"ate":     "eat",
	"been":    "be",
	"began":   "begin",
	"begun":   "begin",
	"being":   "be",
	"bought":  "buy",
	"brought": "bring",
	"came":    "come",
	"coming":  "come",
	"did":     "do",
	"dies":    "die",
	"died":    "die",
	"does":    "do",
	"doing":   "do",
	"done":    "do",
	"felt":    "feel",
	"found":   "find",
	"gave":    "give",
	"giving":  "give",
	"goes":    "go",
	"going":   "go",
	"gone":    "go",
	"got":     "get",
	"had":     "have",
	"has":     "have",
	"having":  "have",
	"held":    "hold",
	"kept":    "keep",
	"knew":    "know",
	"known":   "know",
	"left":    "leave",
	"lost":    "lose",
	"made":    "make",
	"making":  "make",
	"meant":   "mean",
	"met":     "meet",
	"paid":    "pay",
	"put":     "put",
	"ran":     "run",
	"said":    "say",
	"sat":     "sit",
	"saw":     "see",
	"seen":    "see",
	"sent":    "send",
	"spent":   "spend",
	"spoke":   "speak",
	"spoken":  "speak",
	"stood":   "stand",
	"taken":   "take",
	"taking":  "take",
	"thought": "think",
	"told":    "tell",
	"took":    "take",
	"used":    "use",
	"using":   "use",
	"went":    "go",
	"won":     "win",
	"wrote":   "write",
	"written": "write",
}

var adjexceptions = map[string]string{
	"best":     "good",
	"better":   "good",
	"elder":    "old",
	"eldest":   "old",
	"farther":  "far",
	"farthest": "far",
	"further":  "far",
	"furthest": "far",
	"simpler":  "simple",
	"simplest": "simple",
	"worse":    "bad",
	"worst":    "bad",
}

// Lemmatize - map an inflected form onto its dictionary headword; unknown forms come back unchanged
func Lemmatize(form string, pos string) string {
	f := strings.ToLower(form)

	if l, ok := anyexceptions[f]; ok {
		return l
	}

	switch pos {
	case "NOUN":
		return lemmatizenoun(f)
	case "VERB":
		return lemmatizeverb(f)
	case "ADJ":
		return lemmatizeadj(f)
	case "PROPN":
		return form
	default:
		return form
	}
}

func lemmatizenoun(f string) string {
	if l, ok := nounexceptions[f]; ok {
		return l
	}
	switch {
	case strings.HasSuffix(f, "ies") && len(f) > 4:
		return strings.TrimSuffix(f, "ies") + "y"
	case strings.HasSuffix(f, "sses"), strings.HasSuffix(f, "ches"), strings.HasSuffix(f, "shes"), strings.HasSuffix(f, "xes"), strings.HasSuffix(f, "zes"):
		return strings.TrimSuffix(f, "es")
	case strings.HasSuffix(f, "men"):
		return strings.TrimSuffix(f, "men") + "man"
	case strings.HasSuffix(f, "s") && !strings.HasSuffix(f, "ss") && !strings.HasSuffix(f, "us") && !strings.HasSuffix(f, "is") && len(f) > 3:
		return strings.TrimSuffix(f, "s")
	}
	return f
}

func lemmatizeverb(f string) string {
	if l, ok := verbexceptions[f]; ok {
		return l
	}
	switch {
	case strings.HasSuffix(f, "ies") && len(f) > 4:
		return strings.TrimSuffix(f, "ies") + "y"
	case strings.HasSuffix(f, "ied") && len(f) > 4:
		return strings.TrimSuffix(f, "ied") + "y"
	case strings.HasSuffix(f, "ing") && len(f) > 5:
		return fixstem(strings.TrimSuffix(f, "ing"), f)
	case strings.HasSuffix(f, "ed") && len(f) > 4:
		return fixstem(strings.TrimSuffix(f, "ed"), f)
	case strings.HasSuffix(f, "sses"), strings.HasSuffix(f, "shes"), strings.HasSuffix(f, "ches"), strings.HasSuffix(f, "xes"), strings.HasSuffix(f, "zes"):
		return strings.TrimSuffix(f, "es")
	case strings.HasSuffix(f, "oes") && len(f) > 4:
		return strings.TrimSuffix(f, "es")
	case strings.HasSuffix(f, "s") && !strings.HasSuffix(f, "ss") && len(f) > 3:
		return strings.TrimSuffix(f, "s")
	}
	return f
}

func lemmatizeadj(f string) string {
	if l, ok := adjexceptions[f]; ok {
		return l
	}
	switch {
	case strings.HasSuffix(f, "iest") && len(f) > 5:
		return strings.TrimSuffix(f, "iest") + "y"
	case strings.HasSuffix(f, "ier") && len(f) > 4:
		return strings.TrimSuffix(f, "ier") + "y"
	case strings.HasSuffix(f, "est") && len(f) > 5:
		return fixstem(strings.TrimSuffix(f, "est"), f)
	case strings.HasSuffix(f, "er") && len(f) > 4:
		return fixstem(strings.TrimSuffix(f, "er"), f)
	}
	return f
}

// fixstem - undo consonant doubling and restore a final e where the stem betrays one; fall back to the surface form
func fixstem(stem string, surface string) string {
	if len(stem) < 2 {
		return surface
	}

	last := stem[len(stem)-1]
	prev := stem[len(stem)-2]

	if last == prev && !strings.ContainsRune("lsfz", rune(last)) {
		return stem[:len(stem)-1]
	}

	if last == 'e' {
		// "agreed" would shed down to "agre": the surface form is the lesser evil
		return surface
	}

	if strings.ContainsRune("cguv", rune(last)) {
		return stem + "e"
	}

	return stem
}
