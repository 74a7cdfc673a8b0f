// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast pool events on zmq PUB sockets
//
// each event is a two part message: the kind followed by the json
// encoded event
package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/messagebus"
	"github.com/bitmark-inc/nftpoold/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	queueSize            = 1000
)

// Configuration - a block of configuration data
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// Broadcaster - background process copying events to the sockets
type Broadcaster struct {
	log     *logger.L
	events  *messagebus.BroadcastQueue
	queue   <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	sent    uint64
}

// New - read the keys and bind the broadcast addresses
//
// the subscription starts immediately so nothing emitted before Run
// is lost
func New(log *logger.L, configuration *Configuration, events *messagebus.BroadcastQueue) (*Broadcaster, error) {

	log.Info("initialising…")

	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return nil, err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return nil, err
	}
	log.Tracef("public key:  %x", publicKey)

	if err := zmqutil.StartAuthentication(); nil != err {
		log.Errorf("zmq authentication error: %s", err)
		return nil, err
	}

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, configuration.Broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return nil, err
	}

	return &Broadcaster{
		log:     log,
		events:  events,
		queue:   events.Chan(queueSize),
		socket4: socket4,
		socket6: socket6,
	}, nil
}
