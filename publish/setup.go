// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/captabled/background"
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/messagebus"
	"github.com/bitmark-inc/captabled/zmqutil"
	"github.com/bitmark-inc/logger"
)

// Configuration - the publishing section of the configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

type publishData struct {
	sync.RWMutex

	log *logger.L

	brdc broadcaster

	background *background.T

	// set once during initialise
	initialised bool
}

var globalData publishData

// Initialise - bind the broadcast sockets and start forwarding events
//
// with no broadcast addresses the events are read and discarded
func Initialise(configuration *Configuration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("publish")
	globalData.log = log
	log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		log.Warn("no broadcast addresses: events will not be published")
		globalData.brdc = broadcaster{log: log}
	} else {
		privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}

		err = zmqutil.StartAuthentication()
		if nil != err {
			log.Errorf("zmq authentication start error: %s", err)
			return err
		}

		err = globalData.brdc.initialise(log, privateKey, publicKey, configuration.Broadcast, version)
		if nil != err {
			return err
		}
	}

	globalData.initialised = true

	log.Info("start background…")
	globalData.background = background.Start(background.Processes{&globalData.brdc}, messagebus.Bus.Events)

	return nil
}

// Finalise - stop forwarding and close the sockets
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
