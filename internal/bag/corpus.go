//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bag

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/str"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
)

// LoadCorpus - read a corpus file, picking the reader by extension: csv gets columns, anything
// else is treated as one document per line
func LoadCorpus(path string, textcol string, groupcol string) ([]str.GroupedDocument, error) {
	p := strings.TrimSuffix(path, ".gz")
	if strings.HasSuffix(p, ".csv") {
		return LoadCorpusCSV(path, textcol, groupcol)
	}
	return LoadCorpusLines(path, vv.DEFAULTGROUPNAME)
}

// LoadCorpusCSV - read a grouped corpus from a csv (or csv.gz) file; one document per row
func LoadCorpusCSV(path string, textcol string, groupcol string) ([]str.GroupedDocument, error) {
	const (
		FAIL1 = `LoadCorpusCSV() could not open "%s": %s`
		FAIL2 = `[%s] gzip.NewReader failed`
		FAIL3 = `missing header row(?): %s`
		FAIL4 = `LoadCorpusCSV() could not find a "%s" column in "%s"; the headings are %v`
		WARN1 = `LoadCorpusCSV() could not find a "%s" column in "%s"; every document will belong to the group "%s"`
		WARN2 = `LoadCorpusCSV() skipped %d short or unparseable rows`
		MSG1  = `LoadCorpusCSV() read %d documents from "%s"`
	)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, path, err.Error())
	}
	defer f.Close()

	var rdr io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		decompressed, e1 := gzip.NewReader(f)
		if e1 != nil {
			return nil, fmt.Errorf(FAIL2, path)
		}
		defer decompressed.Close()
		rdr = decompressed
	}

	r := csv.NewReader(rdr)

	// tolerate ragged rows; short ones get dropped below
	r.FieldsPerRecord = -1

	head, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf(FAIL3, err.Error())
	}

	// column lookup is case-insensitive: sloppy spreadsheet exports capitalize headings unpredictably
	findcol := func(want string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), want) {
				return i
			}
		}
		return -1
	}

	tc := findcol(textcol)
	if tc == -1 {
		return nil, fmt.Errorf(FAIL4, textcol, path, head)
	}

	gc := findcol(groupcol)
	if gc == -1 {
		Msg.WARN(fmt.Sprintf(WARN1, groupcol, path, vv.DEFAULTGROUPNAME))
	}

	need := tc
	if gc > need {
		need = gc
	}

	var docs []str.GroupedDocument
	skipped := 0

	for {
		record, e3 := r.Read()
		if errors.Is(e3, io.EOF) {
			break
		}
		if e3 != nil || len(record) <= need {
			skipped += 1
			continue
		}

		g := vv.DEFAULTGROUPNAME
		if gc != -1 {
			g = strings.TrimSpace(record[gc])
			if g == "" {
				g = vv.DEFAULTGROUPNAME
			}
		}

		docs = append(docs, str.GroupedDocument{
			Index: len(docs),
			Text:  record[tc],
			Group: g,
		})
	}

	if skipped != 0 {
		Msg.WARN(fmt.Sprintf(WARN2, skipped))
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(docs), path))

	return docs, nil
}

// LoadCorpusLines - read a corpus from a plain text (or .gz) file; one document per line, every
// document in the same group
func LoadCorpusLines(path string, group string) ([]str.GroupedDocument, error) {
	const (
		FAIL1 = `LoadCorpusLines() could not open "%s": %s`
		FAIL2 = `[%s] gzip.NewReader failed`
		FAIL3 = `LoadCorpusLines() stopped mid-file: %s`
		WARN1 = `LoadCorpusLines() skipped %d blank lines`
		MSG1  = `LoadCorpusLines() read %d documents from "%s"`
	)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, path, err.Error())
	}
	defer f.Close()

	var rdr io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		decompressed, e1 := gzip.NewReader(f)
		if e1 != nil {
			return nil, fmt.Errorf(FAIL2, path)
		}
		defer decompressed.Close()
		rdr = decompressed
	}

	if group == "" {
		group = vv.DEFAULTGROUPNAME
	}

	sc := bufio.NewScanner(rdr)
	sc.Buffer(make([]byte, 0, 64*1024), vv.MAXDOCLENGTH*4)

	var docs []str.GroupedDocument
	skipped := 0

	for sc.Scan() {
		t := sc.Text()
		if strings.TrimSpace(t) == "" {
			skipped += 1
			continue
		}
		docs = append(docs, str.GroupedDocument{
			Index: len(docs),
			Text:  t,
			Group: group,
		})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf(FAIL3, err.Error())
	}

	if skipped != 0 {
		Msg.WARN(fmt.Sprintf(WARN1, skipped))
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(docs), path))

	return docs, nil
}

// GroupLabels - peel the group labels out of a corpus in document order
func GroupLabels(docs []str.GroupedDocument) []string {
	labels := make([]string, len(docs))
	for i := 0; i < len(docs); i++ {
		labels[i] = docs[i].Group
	}
	return labels
}

// RawTexts - peel the raw texts out of a corpus in document order
func RawTexts(docs []str.GroupedDocument) []string {
	texts := make([]string, len(docs))
	for i := 0; i < len(docs); i++ {
		texts[i] = docs[i].Text
	}
	return texts
}
