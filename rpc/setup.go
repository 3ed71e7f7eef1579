// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"sync"

	"github.com/bitmark-inc/captabled/captable"
	"github.com/bitmark-inc/captabled/counter"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/rpc/certificate"
	"github.com/bitmark-inc/captabled/rpc/listeners"
	"github.com/bitmark-inc/captabled/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName = "client_rpc"
)

type rpcData struct {
	sync.RWMutex

	log *logger.L

	listener listeners.Listener
	reloader *certificate.Reloader

	// set once during initialise
	initialised bool
}

var globalData rpcData

var connectionCountRPC counter.Counter

// Initialise - start serving JSON-RPC
//
// TLS is used when both certificate and private key files are configured
func Initialise(configuration *listeners.RPCConfiguration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	var tlsConfig *tls.Config
	if "" != configuration.Certificate && "" != configuration.PrivateKey {
		reloader, err := certificate.NewReloader(log, tlsName, configuration.Certificate, configuration.PrivateKey)
		if nil != err {
			log.Errorf("%s: certificate: %q  error: %s", tlsName, configuration.Certificate, err)
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, reloader.Fingerprint())
		globalData.reloader = reloader
		tlsConfig = reloader.Config()
	} else {
		log.Warnf("%s: no certificate: serving without TLS", tlsName)
	}

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, captable.Get()),
		tlsConfig,
	)
	if nil != err {
		globalData.closeReloader()
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		rpcListener.Stop()
		globalData.closeReloader()
		return err
	}
	globalData.listener = rpcListener

	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()
	globalData.closeReloader()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

func (d *rpcData) closeReloader() {
	if nil != d.reloader {
		_ = d.reloader.Close()
		d.reloader = nil
	}
}
