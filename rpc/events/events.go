// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitEvents = 200
	rateBurstEvents = 1000

	// limit for List count
	maximumEvents = 100
)

// Events - type for RPC calls
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	count   func() uint64
	fetch   func(uint64, int) ([]event.Record, error)
}

// New - create an event log RPC handler
func New(log *logger.L, count func() uint64, fetch func(uint64, int) ([]event.Record, error)) *Events {
	return &Events{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEvents, rateBurstEvents),
		count:   count,
		fetch:   fetch,
	}
}

// ListArguments - arguments for List
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - a page of events
//
// nextStart is zero when the page reached the end of the log
type ListReply struct {
	Events    []event.Record `json:"events"`
	NextStart uint64         `json:"nextStart,string"`
	Last      uint64         `json:"last,string"`
}

// List - committed events in sequence order starting at start
func (events *Events) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(events.Limiter, arguments.Count, maximumEvents); nil != err {
		return err
	}

	start := arguments.Start
	if 0 == start {
		start = 1
	}

	records, err := events.fetch(start, arguments.Count)
	if nil != err {
		return err
	}

	last := events.count()

	reply.Events = records
	reply.Last = last
	reply.NextStart = 0
	if n := len(records); n > 0 && records[n-1].Sequence < last {
		reply.NextStart = records[n-1].Sequence + 1
	}
	return nil
}
