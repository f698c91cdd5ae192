//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "Aristarchus Golang Analyzer"
	SHORTNAME = "AGA"
	VERSION   = "0.2.1"

	// config files: sought in CONFIGLOCATION, then CONFIGALTAPTH; written with defaults if absent

	CONFIGLOCATION     = "."
	CONFIGALTAPTH      = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC        = "aga-conf.json"
	CONFIGPROLIX       = "aga-prolix-conf.json"
	CONFIGVECTORLDA    = "aga-vector-conf-lda.json"
	CONFIGVECTORW2V    = "aga-vector-conf-w2v.json"
	CONFIGVECTORGLOVE  = "aga-vector-conf-glove.json"
	CONFIGVECTORLEXVEC = "aga-vector-conf-lexvec.json"
	CONFIGSTOPWORDS    = "aga-stops-english.json"

	// corpus ingestion

	DEFAULTTEXTCOLUMN  = "text"
	DEFAULTGROUPCOLUMN = "group"
	DEFAULTGROUPNAME   = "all"   // a row with no usable group label lands here
	MAXDOCLENGTH       = 1000000 // runes; a "document" longer than this is almost certainly a concatenation mistake

	// preprocessing

	DEFAULTPOSRETAIN   = "NOUN PROPN ADJ" // space-joined; see tkn.NewLemmaPicker
	DEFAULTLOWERCASE   = true
	DETOKENIZERSEP     = " "
	BIGRAMGLUE         = "_"
	BIGRAMMINCOUNT     = 5
	BIGRAMTHRESHOLD    = 0.0 // smoothed pmi > this --> merge; 0 means "associated at all"
	BIGRAMSMOOTHING    = 1.0
	TOKENIZERCHUNKSIZE = 50
	PROGRESSPOLLEVERY  = 50 // documents per work unit in the fan-out

	// vectorization and pruning

	DEFAULTMINDOCFREQ = 2    // absolute: term must appear in at least N documents
	DEFAULTMAXDOCFREQ = 0.95 // relative: term must appear in no more than N% of documents
	DIFFERENCETOPN    = 25   // terms per side on the difference chart

	// topic models: the nlp library's LDA knobs

	LDATOPICS       = 8
	LDAMAXTOPICS    = 30
	LDAITER         = 200
	LDAXFORMPASSES  = 100
	LDABURNINPASSES = 2
	LDACHGEVALFRQ   = 10
	LDAPERPEVALFRQ  = 10
	LDAPERPTOL      = 1e-2
	LDATOPTERMS     = 12
	LSACOMPONENTS   = 8

	// embeddings

	VECTORNEIGHBORS    = 16
	VECTORNEIGHBORSMAX = 40
	VECTORNEIGHBORSMIN = 4
	VECTORMODELDEFAULT = "w2v"
	VECTORTABLENAME    = "fitted_models"

	// model store

	DEFAULTSQLITEFILE = "aga-models.db"
	DEFAULTPSQLHOST   = "127.0.0.1"
	DEFAULTPSQLUSER   = "aga_wr"
	DEFAULTPSQLPORT   = 5432
	DEFAULTPSQLDB     = "aristarchusDB"

	// report server

	SERVEDFROMHOST = "127.0.0.1"
	SERVEDFROMPORT = 8000

	MAXECHOREQPERSECONDPERIP = 60 // a report page loads a couple of dozen assets on its first visit

	DEFAULTREPORTS = "aga-reports"
	DEFAULTCHRTWD  = "1500px"
	DEFAULTCHRTHT  = "1200px"
	RPTDIFFERENCE  = "difference.html"
	RPTTOPICS      = "topics.html"
	RPTNEIGHBORS   = "neighbors.html"
	RPTSENTIMENT   = "sentiment.html"
	TIMEOUTRD      = 15 * time.Second
	TIMEOUTWR      = 120 * time.Second
	WSPOLLINGPAUSE = 10000000 * 10 // every .1s

	// terminal

	DEFAULTGOLOGLEVEL   = 0
	DEFAULTECHOLOGLEVEL = 0
	TICKERISACTIVE      = false
	TICKERDELAY         = 30 * time.Second
	JSONINDENT          = "  "
	WRITEPERMS          = 0644
)
