//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/gen"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/viz"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vlt"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
	"github.com/labstack/echo/v4"
)

// RtReportIndex - a list of the report pages currently on offer
func RtReportIndex(c echo.Context) error {
	const (
		PGTPL = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>%s</title>
</head>
<body>
	<h1>%s</h1>
	<ul>
%s	</ul>
</body>
</html>`
		ROW   = "\t\t<li><a href=\"/reports/%s\">%s</a> (%s)</li>\n"
		EMPTY = "\t\t<li>no reports have been generated yet</li>\n"
	)

	dd, err := os.ReadDir(viz.ReportDir())

	var rows strings.Builder
	if err == nil {
		for _, d := range dd {
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
				continue
			}
			when := ""
			if fi, e := d.Info(); e == nil {
				when = fi.ModTime().Format(time.Stamp)
			}
			rows.WriteString(fmt.Sprintf(ROW, d.Name(), d.Name(), when))
		}
	}

	if rows.Len() == 0 {
		rows.WriteString(EMPTY)
	}

	ti := fmt.Sprintf("%s: reports", vv.SHORTNAME)
	return c.HTML(http.StatusOK, fmt.Sprintf(PGTPL, ti, ti, rows.String()))
}

// RtProgress - the current state of an analysis run as json
func RtProgress(c echo.Context) error {
	id := c.Param("id")
	ri := vlt.RIFetchInfo(id)

	pd := vlt.PollData{
		TotalWrk: ri.Total,
		Done:     ri.Done,
		Phase:    ri.Phase,
		Extra:    ri.Extra,
		ID:       id,
	}

	if ri.Exists {
		pd.Elapsed = fmt.Sprintf("%.1fs", time.Since(ri.Launched).Seconds())
	}

	return gen.JSONresponse(c, pd)
}

// RtVersion - identify the program, its version, and how long it has been up
func RtVersion(c echo.Context) error {
	up := time.Since(vv.LaunchTime).Truncate(time.Second)
	return c.String(http.StatusOK, fmt.Sprintf("%s (v%s); uptime %v", vv.MYNAME, vv.VERSION, up))
}
