//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"context"
	"runtime"
	"time"
)

//
// CHANNEL-BASED RUNINFO REPORTING TO COMMUNICATE PROGRESS BETWEEN ROUTINES: analysis stages write; websocket reads
//

// RunInfo - struct used to deliver info about analysis runs in progress
type RunInfo struct {
	ID        string
	Exists    bool
	Phase     string
	Done      int
	Total     int
	Extra     string
	Launched  time.Time
	CancelFnc context.CancelFunc
}

// RIKVi - RunInfoHub helper struct for setting an int Val on the item at map[Key]
type RIKVi struct {
	Key string
	Val int
}

// RIKVs - RunInfoHub helper struct for setting a string Val on the item at map[Key]
type RIKVs struct {
	Key string
	Val string
}

// RIReply - RunInfoHub helper struct for returning the RunInfo stored at map[Key]
type RIReply struct {
	Key      string
	Response chan RunInfo
}

type RIHubInterface struct {
	UpdateDone  chan RIKVi
	UpdateTotal chan RIKVi
	UpdatePhase chan RIKVs
	UpdateExtra chan RIKVs
	RequestInfo chan RIReply
	InsertInfo  chan RunInfo
	Del         chan string
}

// BuildRIHubIf - build the RIHubInterface that will interact with RunInfoHub (one and only one built at app startup)
func BuildRIHubIf() *RIHubInterface {
	return &RIHubInterface{
		UpdateDone:  make(chan RIKVi, 2*runtime.NumCPU()),
		UpdateTotal: make(chan RIKVi, 2*runtime.NumCPU()),
		UpdatePhase: make(chan RIKVs, 2*runtime.NumCPU()),
		UpdateExtra: make(chan RIKVs, 2*runtime.NumCPU()),
		RequestInfo: make(chan RIReply),
		InsertInfo:  make(chan RunInfo),
		Del:         make(chan string),
	}
}

// RunInfoHub - the loop that lets you read/write from/to the various RunInfo channels via the WSInfo global
func RunInfoHub() {
	const (
		FINWAIT = 10
		FINCHK  = 60
	)

	var (
		Allinfo  = make(map[string]RunInfo)
		Finished = make(map[string]time.Time)
	)

	reporter := func(r RIReply) {
		if _, ok := Allinfo[r.Key]; ok {
			r.Response <- Allinfo[r.Key]
		} else {
			// "false" triggers a break in the websocket message loop
			r.Response <- RunInfo{Exists: false}
		}
	}

	fetchifexists := func(id string) RunInfo {
		if _, ok := Allinfo[id]; ok {
			return Allinfo[id]
		} else {
			return RunInfo{ID: id, Exists: true, Launched: time.Now()}
		}
	}

	// the self-test reruns stages under one id; a finished id must not respawn off a late update
	storeunlessfinished := func(ri RunInfo) {
		if _, ok := Finished[ri.ID]; !ok {
			Allinfo[ri.ID] = ri
		}
	}

	cleanfinished := func() {
		for {
			for f := range Finished {
				ft := Finished[f]
				later := ft.Add(time.Second * FINWAIT)
				if time.Now().After(later) {
					delete(Finished, f)
				}
			}
			time.Sleep(time.Second * FINCHK)
		}
	}

	go cleanfinished()

	// the main loop; it will never exit
	for {
		select {
		case rq := <-WSInfo.RequestInfo:
			reporter(rq)
		case wr := <-WSInfo.UpdateDone:
			x := fetchifexists(wr.Key)
			x.Done = wr.Val
			storeunlessfinished(x)
		case wr := <-WSInfo.UpdateTotal:
			x := fetchifexists(wr.Key)
			x.Total = wr.Val
			storeunlessfinished(x)
		case wr := <-WSInfo.UpdatePhase:
			x := fetchifexists(wr.Key)
			x.Phase = wr.Val
			storeunlessfinished(x)
		case wr := <-WSInfo.UpdateExtra:
			x := fetchifexists(wr.Key)
			x.Extra = wr.Val
			storeunlessfinished(x)
		case ri := <-WSInfo.InsertInfo:
			storeunlessfinished(ri)
		case del := <-WSInfo.Del:
			Finished[del] = time.Now()
			delete(Allinfo, del)
		}
	}
}

// RIFetchInfo - read the RunInfo stored for an id
func RIFetchInfo(id string) RunInfo {
	responder := RIReply{Key: id, Response: make(chan RunInfo)}
	WSInfo.RequestInfo <- responder
	return <-responder.Response
}

// RIInsert - register a run with the hub
func RIInsert(id string, cancel context.CancelFunc) {
	WSInfo.InsertInfo <- RunInfo{ID: id, Exists: true, Launched: time.Now(), CancelFnc: cancel}
}

// RIUpdatePhase - a run has entered a new phase with a new amount of pending work
func RIUpdatePhase(id string, phase string, total int) {
	WSInfo.UpdatePhase <- RIKVs{Key: id, Val: phase}
	WSInfo.UpdateTotal <- RIKVi{Key: id, Val: total}
	WSInfo.UpdateDone <- RIKVi{Key: id, Val: 0}
}

// RIUpdateDone - how much of the current phase is behind us
func RIUpdateDone(id string, done int) {
	WSInfo.UpdateDone <- RIKVi{Key: id, Val: done}
}

// RIUpdateExtra - a note to show beneath the progress line
func RIUpdateExtra(id string, s string) {
	WSInfo.UpdateExtra <- RIKVs{Key: id, Val: s}
}

// RIDel - a run is over; late updates must not resurrect it
func RIDel(id string) {
	WSInfo.Del <- id
}
