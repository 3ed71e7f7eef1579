// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/binary"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/captabled/messagebus"
	"github.com/bitmark-inc/captabled/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	broadcasterZapDomain = "broadcaster"
	heartbeatInterval    = 60 * time.Second
	heartbeatCommand     = "heartbeat"
)

type sender interface {
	SendMessage(parts ...interface{}) (int, error)
}

type broadcaster struct {
	log     *logger.L
	version string
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string, version string) error {

	brdc.log = log
	brdc.version = version

	log.Info("initialising…")

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	brdc.socket4 = socket4
	brdc.socket6 = socket6

	return nil
}

// Run - forward queued messages until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	queue := args.(*messagebus.Queue)
	log := brdc.log

	log.Info("starting…")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue.Chan():
			brdc.send(item)
		case <-heartbeat.C:
			brdc.send(heartbeatMessage(time.Now(), brdc.version, queue.Dropped()))
		}
	}

	for _, socket := range brdc.sockets() {
		_ = socket.Close()
	}
	log.Info("stopped")
}

func (brdc *broadcaster) sockets() []*zmq.Socket {
	s := make([]*zmq.Socket, 0, 2)
	if nil != brdc.socket4 {
		s = append(s, brdc.socket4)
	}
	if nil != brdc.socket6 {
		s = append(s, brdc.socket6)
	}
	return s
}

func (brdc *broadcaster) send(item messagebus.Message) {
	sockets := brdc.sockets()
	if 0 == len(sockets) {
		brdc.log.Debugf("discard: %s", item.Command)
		return
	}
	parts := frames(item)
	for _, socket := range sockets {
		err := sendFrames(socket, parts)
		if nil != err {
			brdc.log.Errorf("send error: %s", err)
		}
	}
}

// the multipart form: command followed by each parameter
func frames(item messagebus.Message) []interface{} {
	parts := make([]interface{}, 0, 1+len(item.Parameters))
	parts = append(parts, item.Command)
	for _, p := range item.Parameters {
		parts = append(parts, p)
	}
	return parts
}

func sendFrames(s sender, parts []interface{}) error {
	_, err := s.SendMessage(parts...)
	return err
}

// heartbeat: timestamp, version and the count of dropped events
func heartbeatMessage(now time.Time, version string, dropped uint64) messagebus.Message {
	timestamp := make([]byte, 8)
	binary.BigEndian.PutUint64(timestamp, uint64(now.Unix()))
	count := make([]byte, 8)
	binary.BigEndian.PutUint64(count, dropped)
	return messagebus.Message{
		Command:    heartbeatCommand,
		Parameters: [][]byte{timestamp, []byte(version), count},
	}
}
