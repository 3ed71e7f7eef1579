// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/captabled/event"
	"github.com/bitmark-inc/captabled/zmqutil"
)

const pollTimeout = 500 * time.Millisecond

type broadcastEvent struct {
	Sequence uint64       `json:"sequence,string"`
	TxId     event.TxId   `json:"txId"`
	Event    *event.Event `json:"event"`
}

type broadcastHeartbeat struct {
	Time    time.Time `json:"time"`
	Version string    `json:"version"`
	Dropped uint64    `json:"dropped,string"`
}

// turn one multipart broadcast into a printable item
func decodeBroadcast(parts [][]byte) (interface{}, error) {
	if 0 == len(parts) {
		return nil, fmt.Errorf("empty message")
	}

	switch command := string(parts[0]); command {
	case "event":
		if 3 != len(parts) || 8 != len(parts[2]) {
			return nil, fmt.Errorf("malformed event: %d parts", len(parts))
		}
		packed := event.Packed(parts[1])
		e, _, err := packed.Unpack()
		if nil != err {
			return nil, err
		}
		return &broadcastEvent{
			Sequence: binary.BigEndian.Uint64(parts[2]),
			TxId:     packed.TxId(),
			Event:    e,
		}, nil

	case "heartbeat":
		if 4 != len(parts) || 8 != len(parts[1]) || 8 != len(parts[3]) {
			return nil, fmt.Errorf("malformed heartbeat: %d parts", len(parts))
		}
		return &broadcastHeartbeat{
			Time:    time.Unix(int64(binary.BigEndian.Uint64(parts[1])), 0).UTC(),
			Version: string(parts[2]),
			Dropped: binary.BigEndian.Uint64(parts[3]),
		}, nil

	default:
		return nil, fmt.Errorf("unknown command: %q", command)
	}
}

func runListen(c *cli.Context) error {
	m := getMetadata(c)

	keyFile := c.String("server-key")
	if "" == keyFile {
		return fmt.Errorf("server-key is required")
	}
	serverKey, err := zmqutil.ReadPublicKeyFile(keyFile)
	if nil != err {
		return fmt.Errorf("server-key: %q error: %s", keyFile, err)
	}

	socket, err := zmqutil.NewSubscriber(c.String("broadcast"), serverKey)
	if nil != err {
		return err
	}
	defer socket.Close()

	poller := zmq.NewPoller()
	poller.Add(socket, zmq.POLLIN)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	for {
		select {
		case <-ch:
			return nil
		default:
		}

		polled, err := poller.Poll(pollTimeout)
		if nil != err {
			return err
		}
		if 0 == len(polled) {
			continue
		}

		parts, err := socket.RecvMessageBytes(0)
		if nil != err {
			return err
		}
		item, err := decodeBroadcast(parts)
		if nil != err {
			fmt.Fprintf(m.e, "discarded: %s\n", err)
			continue
		}
		printJson(m.w, item)
	}
}
