// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/captabled/rpc/events"
	"github.com/bitmark-inc/captabled/rpc/node"
)

// GetInfo - request status from captabled
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Info", "Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListEvents - read a page of the event log
func (client *Client) ListEvents(start uint64, count int) (*events.ListReply, error) {
	arguments := events.ListArguments{
		Start: start,
		Count: count,
	}
	var reply events.ListReply
	if err := client.call("Events List", "Events.List", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
