//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"bytes"
	"compress/gzip"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/lnch"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
	"github.com/jackc/pgx/v5"
)

// ModelDBInit - create vv.VECTORTABLENAME in whichever store is open
func ModelDBInit() {
	const (
		CREATEPG = `
			CREATE TABLE %s
			(
			  fingerprint character(32),
			  modelsize   int,
			  modeldata   bytea
			)`
		CREATELT = `
			CREATE TABLE %s
			(
			  fingerprint TEXT,
			  modelsize   INTEGER,
			  modeldata   BLOB
			)`
		EXISTS = "already exists"
	)

	var err error
	if pgbacked() {
		ex := fmt.Sprintf(CREATEPG, vv.VECTORTABLENAME)
		_, err = SQLPool.Exec(context.Background(), ex)
	} else {
		if LiteDB == nil {
			return
		}
		ex := fmt.Sprintf(CREATELT, vv.VECTORTABLENAME)
		_, err = LiteDB.Exec(ex)
	}

	if err != nil {
		m := err.Error()
		if !strings.Contains(m, EXISTS) {
			Msg.EC(err)
		}
	} else {
		Msg.FYI("ModelDBInit(): success")
	}
}

// ModelDBCheck - has an artifact with this fingerprint already been stored?
func ModelDBCheck(fp string) bool {
	const (
		QPG = `SELECT fingerprint FROM %s WHERE fingerprint = '%s' LIMIT 1`
		QLT = `SELECT fingerprint FROM %s WHERE fingerprint = ? LIMIT 1`
		F   = `ModelDBCheck() found %s`
		DNE = "does not exist"
		NST = "no such table"
	)

	if pgbacked() {
		q := fmt.Sprintf(QPG, vv.VECTORTABLENAME, fp)
		foundrow, err := SQLPool.Query(context.Background(), q)
		if err != nil {
			m := err.Error()
			if strings.Contains(m, DNE) {
				ModelDBInit()
			}
			return false
		}

		type simplestring struct {
			S string
		}

		ss, err := pgx.CollectOneRow(foundrow, pgx.RowToStructByPos[simplestring])
		if err != nil {
			// err will be "no rows in result set" if you did not find the fingerprint
			return false
		}
		Msg.TMI(fmt.Sprintf(F, ss.S))
		return true
	}

	if LiteDB == nil {
		return false
	}

	q := fmt.Sprintf(QLT, vv.VECTORTABLENAME)
	var s string
	err := LiteDB.QueryRow(q, fp).Scan(&s)
	if err != nil {
		if strings.Contains(err.Error(), NST) {
			ModelDBInit()
		}
		return false
	}
	Msg.TMI(fmt.Sprintf(F, s))
	return true
}

// ModelDBAdd - gzip an artifact into the store under its fingerprint
func ModelDBAdd(fp string, item any) {
	const (
		MSG1  = "ModelDBAdd(): "
		MSG2  = "ModelDBAdd() has %d gzipped bytes for '%s'"
		MSG3  = "ModelDBAdd() was sent nothing to store"
		FAIL  = "ModelDBAdd() failed when calling json.Marshal(item): nothing stored"
		INSPG = `
			INSERT INTO %s
				(fingerprint, modelsize, modeldata)
			VALUES ('%s', $1, $2)`
		INSLT = `
			INSERT INTO %s
				(fingerprint, modelsize, modeldata)
			VALUES (?, ?, ?)`
		GZ = gzip.BestSpeed
	)

	if item == nil {
		Msg.PEEK(MSG3)
		return
	}

	eb, err := json.Marshal(item)
	if err != nil {
		Msg.NOTE(FAIL)
		return
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, GZ)
	Msg.EC(err)
	_, err = zw.Write(eb)
	Msg.EC(err)
	err = zw.Close()
	Msg.EC(err)

	b := buf.Bytes()
	l2 := len(b)

	if lnch.Config.DbDebug {
		Msg.NOTE(fmt.Sprintf(MSG2, l2, fp))
	}

	if pgbacked() {
		ex := fmt.Sprintf(INSPG, vv.VECTORTABLENAME, fp)
		_, err = SQLPool.Exec(context.Background(), ex, l2, b)
		Msg.EC(err)
	} else {
		if LiteDB == nil {
			return
		}
		ex := fmt.Sprintf(INSLT, vv.VECTORTABLENAME)
		_, err = LiteDB.Exec(ex, fp, l2, b)
		Msg.EC(err)
	}

	Msg.TMI(MSG1 + fp)
	buf.Reset()
}

// ModelDBFetch - unzip the stored artifact for this fingerprint into item; false when nothing is there
func ModelDBFetch(fp string, item any) bool {
	const (
		MSG2 = "ModelDBFetch() pulled nothing for %s"
		MSG3 = "ModelDBFetch() pulled %d gzipped bytes for '%s'"
		QPG  = `SELECT modeldata FROM %s WHERE fingerprint = '%s' LIMIT 1`
		QLT  = `SELECT modeldata FROM %s WHERE fingerprint = ? LIMIT 1`
	)

	var vect []byte

	if pgbacked() {
		q := fmt.Sprintf(QPG, vv.VECTORTABLENAME, fp)
		foundrow, err := SQLPool.Query(context.Background(), q)
		Msg.EC(err)

		defer foundrow.Close()
		for foundrow.Next() {
			err = foundrow.Scan(&vect)
			Msg.EC(err)
		}
	} else {
		if LiteDB == nil {
			return false
		}
		q := fmt.Sprintf(QLT, vv.VECTORTABLENAME)
		err := LiteDB.QueryRow(q, fp).Scan(&vect)
		if errors.Is(err, sql.ErrNoRows) {
			Msg.PEEK(fmt.Sprintf(MSG2, fp))
			return false
		}
		Msg.EC(err)
	}

	if len(vect) == 0 {
		Msg.PEEK(fmt.Sprintf(MSG2, fp))
		return false
	}

	if lnch.Config.DbDebug {
		Msg.NOTE(fmt.Sprintf(MSG3, len(vect), fp))
	}

	// the data in the table is zipped and needs unzipping
	var buf bytes.Buffer
	buf.Write(vect)

	zr, err := gzip.NewReader(&buf)
	Msg.EC(err)
	decompr, err := io.ReadAll(zr)
	Msg.EC(err)
	err = zr.Close()
	Msg.EC(err)

	err = json.Unmarshal(decompr, item)
	Msg.EC(err)
	buf.Reset()

	return true
}

// ModelDBReset - drop vv.VECTORTABLENAME
func ModelDBReset() {
	const (
		MSG1 = "ModelDBReset() dropped "
		MSG2 = "ModelDBReset(): 'DROP TABLE %s' returned an (ignored) error: \n\t%s"
		E    = `DROP TABLE %s`
	)

	ex := fmt.Sprintf(E, vv.VECTORTABLENAME)

	var err error
	if pgbacked() {
		_, err = SQLPool.Exec(context.Background(), ex)
	} else {
		if LiteDB == nil {
			return
		}
		_, err = LiteDB.Exec(ex)
	}

	if err != nil {
		ms := err.Error()
		Msg.TMI(fmt.Sprintf(MSG2, vv.VECTORTABLENAME, ms))
	} else {
		Msg.NOTE(MSG1 + vv.VECTORTABLENAME)
	}
}

// ModelDBSize - how much space are the stored models using?
func ModelDBSize(priority int) {
	const (
		SZQ  = "SELECT COALESCE(SUM(modelsize), 0) AS total FROM " + vv.VECTORTABLENAME
		MSG4 = "Disk space used by stored models is currently %dMB"
	)

	var size int64

	var err error
	if pgbacked() {
		err = SQLPool.QueryRow(context.Background(), SZQ).Scan(&size)
	} else {
		if LiteDB == nil {
			return
		}
		err = LiteDB.QueryRow(SZQ).Scan(&size)
	}
	if err != nil {
		size = 0
	}

	Msg.Emit(fmt.Sprintf(MSG4, size/1024/1024), priority)
}

// ModelDBCount - how many models has the store accumulated?
func ModelDBCount(priority int) {
	const (
		SZQ  = "SELECT COUNT(modelsize) AS total FROM " + vv.VECTORTABLENAME
		MSG4 = "Number of stored models: %d"
		DNE  = "does not exist"
		NST  = "no such table"
	)

	var size int64

	var err error
	if pgbacked() {
		err = SQLPool.QueryRow(context.Background(), SZQ).Scan(&size)
	} else {
		if LiteDB == nil {
			return
		}
		err = LiteDB.QueryRow(SZQ).Scan(&size)
	}

	if err != nil {
		m := err.Error()
		if strings.Contains(m, DNE) || strings.Contains(m, NST) {
			ModelDBInit()
		}
		size = 0
	}

	Msg.Emit(fmt.Sprintf(MSG4, size), priority)
}
