//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package viz

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/agg"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/snt"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vec"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
	"github.com/e-gun/wego/pkg/search"
)

func fixtureneighbors() map[string]search.Neighbors {
	return map[string]search.Neighbors{
		"hawk": {
			{Word: "falcon", Similarity: 0.91},
			{Word: "eagle", Similarity: 0.77},
		},
		"falcon": {
			{Word: "hawk", Similarity: 0.91},
			{Word: "kestrel", Similarity: 0.64},
		},
		"eagle": {
			{Word: "hawk", Similarity: 0.77},
		},
	}
}

func readreport(t *testing.T, fp string) string {
	t.Helper()

	if fp == "" {
		t.Fatal("WriteReportPage() returned an empty path")
	}
	b, err := os.ReadFile(fp)
	if err != nil {
		t.Fatalf("could not read report page '%s': %v", fp, err)
	}
	return string(b)
}

func TestNeighborsGraphRender(t *testing.T) {
	nn := fixtureneighbors()

	fp := WriteReportPage(t.TempDir(), vv.RPTNEIGHBORS, NeighborsGraph("hawk", "w2v test run", nn, false))
	html := readreport(t, fp)

	for _, want := range []string{"echarts", "hawk", "falcon", "eagle"} {
		if !strings.Contains(html, want) {
			t.Errorf("simple graph page lacks '%s'", want)
		}
	}

	// kestrel is not a core term, so only the expanded web pulls it in
	if strings.Contains(html, "kestrel") {
		t.Errorf("simple graph page should not contain peripheral node 'kestrel'")
	}

	fp = WriteReportPage(t.TempDir(), vv.RPTNEIGHBORS, NeighborsGraph("hawk", "w2v test run", nn, true))
	html = readreport(t, fp)

	if !strings.Contains(html, "kestrel") {
		t.Errorf("expanded graph page lacks peripheral node 'kestrel'")
	}
}

func TestDifferenceBarsRender(t *testing.T) {
	head := []agg.TermDelta{
		{Term: "government", Delta: 0.021},
		{Term: "taxation", Delta: 0.013},
	}
	tail := []agg.TermDelta{
		{Term: "muse", Delta: -0.017},
		{Term: "poem", Delta: -0.024},
	}

	fp := WriteReportPage(t.TempDir(), vv.RPTDIFFERENCE, DifferenceBars("history", "poetry", head, tail))
	html := readreport(t, fp)

	for _, want := range []string{"government", "taxation", "muse", "poem", "history", "poetry"} {
		if !strings.Contains(html, want) {
			t.Errorf("difference page lacks '%s'", want)
		}
	}
}

func TestTopicScatterRender(t *testing.T) {
	tm := &vec.TopicModel{
		Kind: "lda",
		K:    2,
		DocTopics: [][]float64{
			{0.7, 0.3},
			{0.2, 0.8},
			{0.6, 0.4},
		},
		Winners: []int{0, 1, 0},
	}

	fp := WriteReportPage(t.TempDir(), vv.RPTTOPICS, TopicScatter(tm))
	html := readreport(t, fp)

	for _, want := range []string{"topic 1", "topic 2", "scatter"} {
		if !strings.Contains(html, want) {
			t.Errorf("topic page lacks '%s'", want)
		}
	}
}

func TestTopicScatterNilModel(t *testing.T) {
	fp := WriteReportPage(t.TempDir(), vv.RPTTOPICS, TopicScatter(nil))
	html := readreport(t, fp)

	if !strings.Contains(html, "Documents in topic space") {
		t.Errorf("nil-model topic page lacks its title")
	}
}

func TestSentimentBarsRender(t *testing.T) {
	ss := []snt.GroupScore{
		{Group: "gloomy", Docs: 2, Negative: 0.41, Neutral: 0.50, Positive: 0.09, Compound: -0.55},
		{Group: "upbeat", Docs: 2, Negative: 0.05, Neutral: 0.55, Positive: 0.40, Compound: 0.61},
	}

	fp := WriteReportPage(t.TempDir(), vv.RPTSENTIMENT, SentimentBars(ss))
	html := readreport(t, fp)

	for _, want := range []string{"gloomy (2)", "upbeat (2)", "negative", "compound"} {
		if !strings.Contains(html, want) {
			t.Errorf("sentiment page lacks '%s'", want)
		}
	}
}

func TestWriteReportPageBundlesCharts(t *testing.T) {
	ss := []snt.GroupScore{{Group: "solo", Docs: 1, Compound: 0.1}}
	head := []agg.TermDelta{{Term: "alpha", Delta: 0.1}}

	dir := filepath.Join(t.TempDir(), "nested", "reports")
	fp := WriteReportPage(dir, "combined.html", SentimentBars(ss), DifferenceBars("a", "b", head, nil))
	html := readreport(t, fp)

	if !strings.Contains(html, "Mean sentiment by group") {
		t.Errorf("combined page lacks the sentiment chart")
	}
	if !strings.Contains(html, "alpha") {
		t.Errorf("combined page lacks the difference chart")
	}
	if filepath.Dir(fp) != dir {
		t.Errorf("report landed in '%s', not '%s'", filepath.Dir(fp), dir)
	}
}

func TestRound(t *testing.T) {
	if got := round(0.123456); math.Abs(float64(got)-0.1235) > 1e-6 {
		t.Errorf("round(0.123456) = %v", got)
	}
	if got := round(-0.98765); math.Abs(float64(got)+0.9877) > 1e-6 {
		t.Errorf("round(-0.98765) = %v", got)
	}
}
