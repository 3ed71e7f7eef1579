// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"net"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/logger"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// CanonicalAddress - convert "host:port" into a zmq tcp endpoint
//
// "*:port" binds every interface; a bracketed host is IPv6
func CanonicalAddress(address string) (string, bool, error) {
	host, port, err := net.SplitHostPort(address)
	if nil != err {
		return "", false, err
	}
	if "*" == host {
		return "tcp://*:" + port, false, nil
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return "", false, fault.InvalidIpAddress
	}
	if nil == ip.To4() {
		return "tcp://[" + ip.String() + "]:" + port, true, nil
	}
	return "tcp://" + ip.String() + ":" + port, false, nil
}

// NewBind - bind a list of addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {

	socket4 := (*zmq.Socket)(nil)
	socket6 := (*zmq.Socket)(nil)

	fail := func(err error) (*zmq.Socket, *zmq.Socket, error) {
		if nil != socket4 {
			_ = socket4.Close()
		}
		if nil != socket6 {
			_ = socket6.Close()
		}
		return nil, nil, err
	}

	for i, address := range listen {
		bindTo, v6, err := CanonicalAddress(address)
		if nil != err {
			log.Errorf("invalid bind[%d]: %q  error: %s", i, address, err)
			return fail(err)
		}

		socket := socket4
		if v6 {
			socket = socket6
		}
		if nil == socket {
			socket, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				return fail(err)
			}
			if v6 {
				socket6 = socket
			} else {
				socket4 = socket
			}
		}

		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return fail(err)
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}
	return socket4, socket6, nil
}

// NewServerSocket - a CURVE server socket accepting any client key
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	settings := []func() error{
		func() error { return socket.SetCurveServer(1) },
		func() error { return socket.SetCurveSecretkey(string(privateKey)) },
		func() error { return socket.SetZapDomain(zapDomain) },
		func() error { return socket.SetIdentity(string(publicKey)) },
		func() error { return socket.SetIpv6(v6) },
		func() error { return socket.SetLinger(0) },
	}
	for _, set := range settings {
		if err := set(); nil != err {
			_ = socket.Close()
			return nil, err
		}
	}

	// heartbeats need zmq 4.2
	_ = socket.SetHeartbeatIvl(heartbeatInterval)
	_ = socket.SetHeartbeatTimeout(heartbeatTimeout)
	_ = socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil
}

// NewSubscriber - a CURVE SUB socket connected to one publisher
//
// the client keypair is generated for this connection only
func NewSubscriber(address string, serverPublicKey []byte) (*zmq.Socket, error) {

	if KeyLength != len(serverPublicKey) {
		return nil, fault.InvalidPublicKey
	}

	connectTo, v6, err := CanonicalAddress(address)
	if nil != err {
		return nil, err
	}

	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return nil, err
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	settings := []func() error{
		func() error { return socket.SetCurveServer(0) },
		func() error { return socket.SetCurvePublickey(publicKey) },
		func() error { return socket.SetCurveSecretkey(privateKey) },
		func() error { return socket.SetCurveServerkey(zmq.Z85encode(string(serverPublicKey))) },
		func() error { return socket.SetIpv6(v6) },
		func() error { return socket.SetLinger(0) },
		func() error { return socket.SetSubscribe("") },
		func() error { return socket.Connect(connectTo) },
	}
	for _, set := range settings {
		if err := set(); nil != err {
			_ = socket.Close()
			return nil, err
		}
	}
	return socket, nil
}
