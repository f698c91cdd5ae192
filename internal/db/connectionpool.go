//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package db keeps fitted models in a store that outlives the run: SQLite by
// default, PostgreSQL when configured. Either way the artifacts are gzipped
// JSON blobs keyed by fingerprint.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/lnch"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/str"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3"
)

var Msg = lnch.NewMessageMakerWithDefaults()

var (
	// SQLPool - the postgres pool; nil unless the configuration asked for postgres
	SQLPool *pgxpool.Pool
	// LiteDB - the sqlite handle; the stock backend
	LiteDB *sql.DB
)

// pgbacked - postgres wins whenever a pool is open
func pgbacked() bool {
	return SQLPool != nil
}

// FillDBConnectionPool - build the pgxpool that model storage will Exec() against
func FillDBConnectionPool(cfg str.CurrentConfiguration) *pgxpool.Pool {
	// a model store sees a handful of queries per run; the pool exists because
	// the postgres driver wants one, not because of load

	const (
		UTPL    = "postgres://%s:%s@%s:%d/%s?pool_min_conns=%d&pool_max_conns=%d"
		PMX     = 4
		FAIL1   = "Configuration error. Could not execute ParseConfig(url) via '%s'"
		FAIL2   = "Could not connect to PostgreSQL"
		ERRRUN  = `dial error`
		FAILRUN = `'%s': the PostgreSQL server cannot be found; check that it is running and serving on port %d`
		ERRSRV  = `server error`
		FAILSRV = `'%s': there is configuration problem; see the following response from PostgreSQL:`
	)

	mn := cfg.WorkerCount
	mx := PMX * cfg.WorkerCount

	pl := cfg.PGLogin
	url := fmt.Sprintf(UTPL, pl.User, pl.Pass, pl.Host, pl.Port, pl.DBName, mn, mx)

	config, e := pgxpool.ParseConfig(url)
	if e != nil {
		Msg.MAND(fmt.Sprintf(FAIL1, url))
		os.Exit(0)
	}

	thepool, e := pgxpool.NewWithConfig(context.Background(), config)
	if e != nil {
		Msg.MAND(FAIL2)
		if strings.Contains(e.Error(), ERRRUN) {
			Msg.MAND(fmt.Sprintf(FAILRUN, ERRRUN, cfg.PGLogin.Port))
		}
		if strings.Contains(e.Error(), ERRSRV) {
			Msg.MAND(fmt.Sprintf(FAILSRV, ERRSRV))
			parts := strings.Split(e.Error(), ERRSRV)
			Msg.CRIT(parts[1])
		}
		Msg.ExitOrHang(0)
	}
	return thepool
}

// OpenSQLiteStore - open (or create) the sqlite file that holds fitted models
func OpenSQLiteStore(path string) *sql.DB {
	const (
		MEM = ":memory:"
		// "file::memory:?cache=shared" because a bare ":memory:" evaporates as soon as one connection closes
		MEMDSN = "file::memory:?cache=shared"
	)

	if path == MEM {
		path = MEMDSN
	}

	litedb, err := sql.Open("sqlite3", path)
	Msg.EC(err)

	return litedb
}
