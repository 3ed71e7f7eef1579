// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/captabled/captable"
	"github.com/bitmark-inc/captabled/counter"
	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/messagebus"
	"github.com/bitmark-inc/captabled/rpc/convertible"
	"github.com/bitmark-inc/captabled/rpc/equity"
	"github.com/bitmark-inc/captabled/rpc/events"
	"github.com/bitmark-inc/captabled/rpc/issuer"
	"github.com/bitmark-inc/captabled/rpc/node"
	"github.com/bitmark-inc/captabled/rpc/stakeholder"
	"github.com/bitmark-inc/captabled/rpc/stock"
	"github.com/bitmark-inc/captabled/rpc/stockclass"
	"github.com/bitmark-inc/captabled/rpc/stockplan"
	"github.com/bitmark-inc/captabled/rpc/warrant"
	"github.com/bitmark-inc/captabled/storage"
	"github.com/bitmark-inc/logger"
)

// Create - a JSON-RPC server with every handler registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, ct captable.CapTable) *rpc.Server {

	start := time.Now().UTC()
	readOnly := storage.IsReadOnly

	server := rpc.NewServer()

	_ = server.Register(issuer.New(log, ct, readOnly))
	_ = server.Register(stockclass.New(log, ct, readOnly))
	_ = server.Register(stakeholder.New(log, ct, readOnly))
	_ = server.Register(stockplan.New(log, ct, readOnly))
	_ = server.Register(stock.New(log, ct, readOnly))
	_ = server.Register(convertible.New(log, ct, readOnly))
	_ = server.Register(equity.New(log, ct, readOnly))
	_ = server.Register(warrant.New(log, ct, readOnly))
	_ = server.Register(events.New(log, event.Count, event.Fetch))
	_ = server.Register(node.New(log, start, version, rpcCount, node.Status{
		Events:   event.Count,
		Dropped:  messagebus.Bus.Events.Dropped,
		ReadOnly: readOnly,
	}))

	return server
}
