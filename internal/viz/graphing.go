//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package viz renders the analysis results as html reports: a force graph for nearest
// neighbors, bar charts for group differences and sentiment, a scatter plot for topics.
// Each report is a standalone file in the report directory; the web package serves them.
package viz

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/agg"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/gen"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/lnch"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/snt"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vec"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
	"github.com/e-gun/wego/pkg/search"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// GRAPHING
//

// see also: https://echarts.apache.org/en/option.html#series-graph

// NeighborsGraph - a force graph of the nearest neighbors of a word; expanded adds the
// neighbors of the neighbors as smaller peripheral nodes
func NeighborsGraph(coreword string, settings string, nn map[string]search.Neighbors, expanded bool) *charts.Graph {
	const (
		SYMSIZE       = 25
		PERIPHSYMSZ   = 15
		SIZEDISTORT   = 2.25
		REPULSION     = 6000
		GRAVITY       = .15
		EDGELEN       = 40
		EDGEFNTSZ     = 8
		SERIESNAME    = ""
		LAYOUTTYPE    = "force"
		LABELPOSITON  = "right"
		DOTHUE        = 236
		DOTSL         = ", 33%, 40%, 1)"
		LINECURVINESS = 0       // from 0 to 1, but non-zero will double-up the lines...
		LINETYPE      = "solid" // "solid", "dashed", "dotted"
		TITLESTR      = "Nearest neighbors of »%s«"
		SAVESTR       = "neighbors-of-%s"
	)

	graph := newsvgraph(fmt.Sprintf(TITLESTR, coreword), settings, fmt.Sprintf(SAVESTR, coreword))

	var gnn []opts.GraphNode
	var gll []opts.GraphLink
	valuelabel := opts.EdgeLabel{Show: true, FontSize: EDGEFNTSZ, Formatter: "{c}"}

	// find the top similarity: this will let you adjust bubble size so that most similar are biggest
	var maxsim float64
	for _, w := range nn[coreword] {
		if w.Similarity > maxsim {
			maxsim = w.Similarity
		}
	}

	// an unknown word yields no neighbors and nothing to scale against
	if maxsim == 0 {
		maxsim = 1
	}

	vardot := func() *opts.ItemStyle {
		vd := "hsla(" + fmt.Sprintf("%d", DOTHUE) + DOTSL
		return &opts.ItemStyle{Color: vd}
	}

	used := make(map[string]bool)

	// the center point
	gnn = append(gnn, opts.GraphNode{Name: coreword, Value: 0, SymbolSize: fmt.Sprintf("%.4f", SYMSIZE*SIZEDISTORT), ItemStyle: vardot()})
	used[coreword] = true

	// the words directly related to this word
	for _, w := range nn[coreword] {
		sizemod := fmt.Sprintf("%.4f", ((w.Similarity/maxsim)*SIZEDISTORT)*SYMSIZE)
		gnn = append(gnn, opts.GraphNode{Name: w.Word, Value: round(w.Similarity), SymbolSize: sizemod, ItemStyle: vardot()})
		gll = append(gll, opts.GraphLink{Source: coreword, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
		used[w.Word] = true
	}

	// the relationships between the other words
	coreterms := gen.ToSet(gen.StringMapKeysIntoSlice(nn))

	// populate the links with just the core collection of terms
	simpleweb := func() {
		for t := range coreterms {
			if t == coreword {
				continue
			}
			for _, w := range nn[t] {
				if _, ok := coreterms[w.Word]; ok {
					gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
				}
			}
		}
	}

	// populate the nodes with both the core terms and the neighbors of those terms as well
	expandedweb := func() {
		for t := range coreterms {
			if t == coreword {
				continue
			}
			for _, w := range nn[t] {
				if _, ok := coreterms[w.Word]; ok {
					gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
				}
				if _, ok := used[w.Word]; !ok {
					gnn = append(gnn, opts.GraphNode{Name: w.Word, Value: round(w.Similarity), SymbolSize: PERIPHSYMSZ, ItemStyle: vardot()})
					used[w.Word] = true
				}
				gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
			}
		}
	}

	if expanded {
		expandedweb()
	} else {
		simpleweb()
	}

	graph.AddSeries(SERIESNAME, gnn, gll,
		charts.WithLabelOpts(
			opts.Label{
				Show:     true,
				Position: LABELPOSITON,
			},
		),
		charts.WithLineStyleOpts(
			opts.LineStyle{
				Curveness: LINECURVINESS,
				Type:      LINETYPE,
			}),
		charts.WithGraphChartOpts(
			// cf. https://echarts.apache.org/en/option.html#series-graph
			opts.GraphChart{
				Layout: LAYOUTTYPE,
				Force: &opts.GraphForce{
					Repulsion:  REPULSION,
					Gravity:    GRAVITY,
					EdgeLength: EDGELEN,
				},
				Roam:               true,
				FocusNodeAdjacency: true,
			},
		),
	)
	return graph
}

// DifferenceBars - the terms that pull hardest towards group a and towards group b
func DifferenceBars(a string, b string, head []agg.TermDelta, tail []agg.TermDelta) *charts.Bar {
	const (
		TITLESTR  = "Terms that distinguish »%s« from »%s«"
		SUBSTR    = "%d terms at each end; positive bars lean towards »%s«, negative towards »%s«"
		SERIESTR  = "share in %s minus share in %s"
		ROTATELBL = 45
		SAVESTR   = "difference-%s-vs-%s"
	)

	bar := newsvbar(
		fmt.Sprintf(TITLESTR, a, b),
		fmt.Sprintf(SUBSTR, len(head), a, b),
		fmt.Sprintf(SAVESTR, a, b),
	)

	dd := make([]agg.TermDelta, 0, len(head)+len(tail))
	dd = append(dd, head...)
	dd = append(dd, tail...)

	xx := make([]string, len(dd))
	yy := make([]opts.BarData, len(dd))
	for i, d := range dd {
		xx[i] = d.Term
		yy[i] = opts.BarData{Value: round(d.Delta)}
	}

	bar.SetXAxis(xx)
	bar.AddSeries(fmt.Sprintf(SERIESTR, a, b), yy)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: true, Rotate: ROTATELBL, Interval: "0"}}),
	)
	return bar
}

// TopicScatter - every document as a point in two dimensions, colored by its strongest topic
func TopicScatter(tm *vec.TopicModel) *charts.Scatter {
	const (
		TITLESTR = "Documents in topic space"
		SUBSTR   = "%d documents across %d %s topics"
		SERIESTR = "topic %d"
		SYMSIZE  = 10
		SAVESTR  = "topics"
	)

	if tm == nil {
		tm = &vec.TopicModel{}
	}

	xy := tm.Scatter()

	sc := newsvscatter(TITLESTR, fmt.Sprintf(SUBSTR, len(xy), tm.K, tm.Kind), SAVESTR)

	// one series per winning topic so that each topic draws in its own color
	byt := make(map[int][]opts.ScatterData)
	for i, co := range xy {
		if len(co) < 2 || i >= len(tm.Winners) {
			continue
		}
		w := tm.Winners[i]
		byt[w] = append(byt[w], opts.ScatterData{
			Value:      []interface{}{round(co[0]), round(co[1])},
			Symbol:     "circle",
			SymbolSize: SYMSIZE,
		})
	}

	for t := 0; t < tm.K; t++ {
		if len(byt[t]) == 0 {
			continue
		}
		sc.AddSeries(fmt.Sprintf(SERIESTR, t+1), byt[t])
	}

	sc.SetGlobalOptions(
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "5"}),
		charts.WithXAxisOpts(opts.XAxis{Scale: true}),
		charts.WithYAxisOpts(opts.YAxis{Scale: true}),
	)
	return sc
}

// SentimentBars - mean polarity scores per group, one cluster of bars per group
func SentimentBars(ss []snt.GroupScore) *charts.Bar {
	const (
		TITLESTR = "Mean sentiment by group"
		SUBSTR   = "vader polarity scores; compound runs from -1 to +1"
		GRPSTR   = "%s (%d)"
		SAVESTR  = "sentiment"
	)

	bar := newsvbar(TITLESTR, SUBSTR, SAVESTR)

	xx := make([]string, len(ss))
	ng := make([]opts.BarData, len(ss))
	nu := make([]opts.BarData, len(ss))
	po := make([]opts.BarData, len(ss))
	cp := make([]opts.BarData, len(ss))
	for i, s := range ss {
		xx[i] = fmt.Sprintf(GRPSTR, s.Group, s.Docs)
		ng[i] = opts.BarData{Value: round(s.Negative)}
		nu[i] = opts.BarData{Value: round(s.Neutral)}
		po[i] = opts.BarData{Value: round(s.Positive)}
		cp[i] = opts.BarData{Value: round(s.Compound)}
	}

	bar.SetXAxis(xx)
	bar.AddSeries("negative", ng)
	bar.AddSeries("neutral", nu)
	bar.AddSeries("positive", po)
	bar.AddSeries("compound", cp)
	bar.SetGlobalOptions(
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "5"}),
	)
	return bar
}

//
// PRE-FORMATTED CHARTS
//

// newsvgraph - return a pre-formatted charts.Graph
func newsvgraph(title string, subtitle string, savename string) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(svinit()),
		charts.WithTitleOpts(svtitle(title, subtitle)),
		charts.WithToolboxOpts(svtoolbox(savename)),
	)
	return graph
}

// newsvbar - return a pre-formatted charts.Bar
func newsvbar(title string, subtitle string, savename string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(svinit()),
		charts.WithTitleOpts(svtitle(title, subtitle)),
		charts.WithToolboxOpts(svtoolbox(savename)),
	)
	return bar
}

// newsvscatter - return a pre-formatted charts.Scatter
func newsvscatter(title string, subtitle string, savename string) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(svinit()),
		charts.WithTitleOpts(svtitle(title, subtitle)),
		charts.WithToolboxOpts(svtoolbox(savename)),
	)
	return sc
}

func svinit() opts.Initialization {
	// the launcher owns Config; a bare library call can arrive before it is set
	ww := vv.DEFAULTCHRTWD
	hh := vv.DEFAULTCHRTHT
	if lnch.Config != nil {
		if lnch.Config.VectorChtWd != "" {
			ww = lnch.Config.VectorChtWd
		}
		if lnch.Config.VectorChtHt != "" {
			hh = lnch.Config.VectorChtHt
		}
	}
	return opts.Initialization{Width: ww, Height: hh}
}

func svtitle(title string, subtitle string) opts.Title {
	const (
		FONTSTYLE = "normal"
		LEFTALIGN = "20"
		BOTTALIGN = "3%"
		TEXTCOLOR = "" // "black"
	)

	tst := opts.TextStyle{
		Color:     TEXTCOLOR,
		FontStyle: FONTSTYLE,
		FontSize:  16,
		Padding:   "15",
	}

	sst := opts.TextStyle{
		Color:     TEXTCOLOR,
		FontStyle: FONTSTYLE,
		FontSize:  10,
	}

	return opts.Title{
		Title:         title,
		TitleStyle:    &tst,
		Subtitle:      subtitle, // can not see this if you put the title on the bottom of the image
		SubtitleStyle: &sst,
		Bottom:        BOTTALIGN,
		Left:          LEFTALIGN,
	}
}

func svtoolbox(savename string) opts.Toolbox {
	const (
		LEFTALIGN = "20"
		SAVETYPE  = "svg" // svg, jpeg, png; svg requires specific chart initialization
		SAVESTR   = "Save to file..."
	)

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE,
		Name:  savename,
		Title: SAVESTR, // get chinese if ""
	}

	tbf := opts.ToolBoxFeature{
		SaveAsImage: &tbs,
	}

	return opts.Toolbox{
		Show:    true,
		Orient:  "vertical",
		Left:    LEFTALIGN,
		Feature: &tbf,
	}
}

// round - chart values are noisy floats; clip them for display
func round(val float64) float32 {
	const PRECISON = 4
	ratio := math.Pow(10, float64(PRECISON))
	return float32(math.Round(val*ratio) / ratio)
}

//
// PAGES
//

// WriteReportPage - bundle one or more charts into a standalone html file; an empty dir
// falls back to the configured report directory; returns the path written or ""
func WriteReportPage(dir string, fname string, cc ...components.Charter) string {
	const (
		MSG1     = "wrote report page '%s'"
		FAIL1    = "WriteReportPage() could not write '%s': %s"
		DIRPERMS = 0755
	)

	if dir == "" {
		dir = ReportDir()
	}

	err := os.MkdirAll(dir, DIRPERMS)
	if err != nil {
		Msg.WARN(fmt.Sprintf(FAIL1, dir, err.Error()))
		return ""
	}

	p := components.NewPage()
	p.PageTitle = fmt.Sprintf("%s: %s", vv.SHORTNAME, fname)
	p.AddCharts(cc...)

	fp := filepath.Join(dir, fname)
	f, err := os.Create(fp)
	if err != nil {
		Msg.WARN(fmt.Sprintf(FAIL1, fp, err.Error()))
		return ""
	}

	Msg.EC(p.Render(f))
	Msg.EC(f.Close())

	Msg.PEEK(fmt.Sprintf(MSG1, fp))
	return fp
}

// ReportDir - where the report pages land; the web package serves this directory
func ReportDir() string {
	d := vv.DEFAULTREPORTS
	if lnch.Config != nil && lnch.Config.ReportDir != "" {
		d = lnch.Config.ReportDir
	}
	return d
}
