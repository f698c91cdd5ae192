//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bag

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func writetempcsv(t *testing.T, name string, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadCorpusCSV(t *testing.T) {
	body := "speaker,Text,Group\n" +
		"a,the cat sat,left\n" +
		"b,the dog sat,right\n" +
		"c,short\n" +
		"d,a third document,left\n"

	p := writetempcsv(t, "corpus.csv", body)

	docs, err := LoadCorpusCSV(p, "text", "group")
	if err != nil {
		t.Fatal(err)
	}

	// "c" has no group cell and gets dropped as a short row
	if len(docs) != 3 {
		t.Fatalf("LoadCorpusCSV() read %d documents; want 3", len(docs))
	}

	if docs[1].Text != "the dog sat" || docs[1].Group != "right" || docs[1].Index != 1 {
		t.Errorf("document 1 = %+v; want the dog sat / right / 1", docs[1])
	}
}

func TestLoadCorpusCSVMissingGroupColumn(t *testing.T) {
	body := "text\nthe cat sat\nthe dog sat\n"
	p := writetempcsv(t, "nogroup.csv", body)

	docs, err := LoadCorpusCSV(p, "text", "group")
	if err != nil {
		t.Fatal(err)
	}

	for _, d := range docs {
		if d.Group != "all" {
			t.Errorf("document %d landed in group %q; want %q", d.Index, d.Group, "all")
		}
	}
}

func TestLoadCorpusCSVMissingTextColumn(t *testing.T) {
	body := "speaker,words\na,the cat sat\n"
	p := writetempcsv(t, "notext.csv", body)

	if _, err := LoadCorpusCSV(p, "text", "group"); err == nil {
		t.Errorf("LoadCorpusCSV() accepted a file with no text column")
	}
}

func TestLoadCorpusCSVGzipped(t *testing.T) {
	p := filepath.Join(t.TempDir(), "corpus.csv.gz")

	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err = zw.Write([]byte("text,group\nthe cat sat,left\n")); err != nil {
		t.Fatal(err)
	}
	if err = zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}

	docs, err := LoadCorpusCSV(p, "text", "group")
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0].Text != "the cat sat" {
		t.Errorf("LoadCorpusCSV() = %+v; want one document reading %q", docs, "the cat sat")
	}
}

func TestLoadCorpusLines(t *testing.T) {
	body := "the cat sat\n\nthe dog sat\n   \nthe bird flew\n"
	p := writetempcsv(t, "corpus.txt", body)

	docs, err := LoadCorpusLines(p, "")
	if err != nil {
		t.Fatal(err)
	}

	if len(docs) != 3 {
		t.Fatalf("LoadCorpusLines() read %d documents; want 3", len(docs))
	}
	if docs[2].Text != "the bird flew" || docs[2].Index != 2 {
		t.Errorf("document 2 = %+v; want the bird flew / 2", docs[2])
	}
	for _, d := range docs {
		if d.Group != "all" {
			t.Errorf("document %d landed in group %q; want %q", d.Index, d.Group, "all")
		}
	}
}

func TestLoadCorpusDispatch(t *testing.T) {
	csvbody := "text,group\nthe cat sat,left\n"
	cp := writetempcsv(t, "corpus.csv", csvbody)
	lp := writetempcsv(t, "corpus.txt", "the dog sat\n")

	cdocs, err := LoadCorpus(cp, "text", "group")
	if err != nil {
		t.Fatal(err)
	}
	if len(cdocs) != 1 || cdocs[0].Group != "left" {
		t.Errorf("LoadCorpus() on csv = %+v; want one document in group left", cdocs)
	}

	ldocs, err := LoadCorpus(lp, "text", "group")
	if err != nil {
		t.Fatal(err)
	}
	if len(ldocs) != 1 || ldocs[0].Group != "all" {
		t.Errorf("LoadCorpus() on lines = %+v; want one document in group all", ldocs)
	}
}

func TestGroupLabelsAndRawTexts(t *testing.T) {
	body := "text,group\none,a\ntwo,b\nthree,a\n"
	p := writetempcsv(t, "labels.csv", body)

	docs, err := LoadCorpusCSV(p, "text", "group")
	if err != nil {
		t.Fatal(err)
	}

	gg := GroupLabels(docs)
	tt := RawTexts(docs)

	if len(gg) != 3 || gg[0] != "a" || gg[1] != "b" || gg[2] != "a" {
		t.Errorf("GroupLabels() = %v", gg)
	}
	if len(tt) != 3 || tt[2] != "three" {
		t.Errorf("RawTexts() = %v", tt)
	}
}
