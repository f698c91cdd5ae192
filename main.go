//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/agg"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/bag"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/db"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/lnch"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/mm"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/ngr"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/snt"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/tkn"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vec"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/viz"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vlt"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/web"
	"github.com/google/uuid"
	"github.com/pkg/profile"
)

var Msg = lnch.NewMessageMakerWithDefaults()

func main() {
	const (
		MSGST    = "Running self-test %d of %d"
		FAILCF   = "could not load the corpus file"
		NOCORPUS = "nothing to do: provide a corpus with '-cf <file.csv>' or run the self-test with '-st'"
	)

	lnch.LookForConfigFile()
	lnch.ConfigAtLaunch()

	if lnch.Config.ProfileCPU {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	} else if lnch.Config.ProfileMEM {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	if !lnch.Config.QuietStart {
		lnch.PrintVersion(*lnch.Config)
		lnch.PrintBuildInfo(*lnch.Config)
	}

	// the hubs everyone reports to
	go mm.PathInfoHub()
	go vlt.RunInfoHub()
	go vlt.WebsocketPool.WSPoolStartListening()

	updatemessengers()

	if lnch.Config.TickerActive {
		tick := lnch.NewMessageMakerConfigured()
		go tick.Ticker(vv.TICKERDELAY)
	}

	openmodelstore()

	if lnch.Config.ResetModels {
		db.ModelDBReset()
	}
	db.ModelDBInit()

	if lnch.Config.SelfTest > 0 {
		for i := 0; i < lnch.Config.SelfTest; i++ {
			Msg.MAND(fmt.Sprintf(MSGST, i+1, lnch.Config.SelfTest))
			selftest()
		}
	}

	if lnch.Config.CorpusFile != "" {
		docs, err := bag.LoadCorpus(lnch.Config.CorpusFile, lnch.Config.TextColumn, lnch.Config.GroupColumn)
		Msg.EF(err, FAILCF)
		RunAnalysis(docs, newrunid())
	} else if lnch.Config.SelfTest == 0 {
		Msg.MAND(NOCORPUS)
	}

	if lnch.Config.ServeReports {
		// blocks while the program remains alive
		web.StartEchoServer()
	}
}

// newrunid - a short id the progress hub and the websocket clients can pass around
func newrunid() string {
	return strings.Split(uuid.New().String(), "-")[0]
}

// updatemessengers - every package logger obeys the loaded configuration
func updatemessengers() {
	messengers := []*mm.MessageMaker{Msg, agg.Msg, bag.Msg, db.Msg, ngr.Msg, snt.Msg, tkn.Msg, vec.Msg, viz.Msg, vlt.Msg, web.Msg}
	for _, m := range messengers {
		lnch.UpdateMessageMakerWithConfig(m)
	}
}

// openmodelstore - postgres when configured, a sqlite file in the config directory otherwise
func openmodelstore() {
	if lnch.Config.UsePostgres {
		db.SQLPool = db.FillDBConnectionPool(*lnch.Config)
		return
	}

	sf := lnch.Config.SqliteFile
	if sf != ":memory:" && !strings.ContainsRune(sf, os.PathSeparator) {
		uh, _ := os.UserHomeDir()
		sf = filepath.Join(fmt.Sprintf(vv.CONFIGALTAPTH, uh), sf)
	}
	db.LiteDB = db.OpenSQLiteStore(sf)
}
