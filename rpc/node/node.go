// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/captabled/counter"
	"github.com/bitmark-inc/captabled/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Status - values from the rest of the daemon shown by Info
type Status struct {
	Events   func() uint64
	Dropped  func() uint64
	ReadOnly func() bool
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	status  Status
	counter *counter.Counter
}

// New - create a node RPC handler
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, status Status) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		status:  status,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	ReadOnly bool   `json:"readOnly"`
	RPCs     uint64 `json:"rpcs"`
	Events   uint64 `json:"events,string"`
	Dropped  uint64 `json:"dropped,string"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.ReadOnly = node.status.ReadOnly()
	reply.RPCs = node.counter.Uint64()
	reply.Events = node.status.Events()
	reply.Dropped = node.status.Dropped()
	return nil
}
