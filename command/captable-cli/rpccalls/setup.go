// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

const dialTimeout = 10 * time.Second

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a captabled
//
// the server certificate is self-signed so it is not verified
func NewClient(connect string, useTLS bool, verbose bool, handle io.Writer) (*Client, error) {

	dialer := &net.Dialer{Timeout: dialTimeout}

	var conn net.Conn
	var err error
	if useTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.DialWithDialer(dialer, "tcp", connect, tlsConfig)
	} else {
		conn, err = dialer.Dial("tcp", connect)
	}
	if err != nil {
		return nil, err
	}

	return newClient(conn, verbose, handle), nil
}

func newClient(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the captabled connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// send a request, echoing both sides when verbose
func (client *Client) call(title string, method string, arguments interface{}, reply interface{}) error {

	client.printJson(title+" Request", arguments)

	if err := client.client.Call(method, arguments, reply); nil != err {
		return err
	}

	client.printJson(title+" Reply", reply)
	return nil
}
