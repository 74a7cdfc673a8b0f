// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/counter"
	"github.com/bitmark-inc/nftpoold/fault"
)

const logName = "client_rpc"

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// ServerArgument - the argument passed to the callback
type ServerArgument struct {
	Log    *logger.L
	Server *rpc.Server
	Count  *counter.Counter
}

type rpcListener struct {
	log      *logger.L
	multi    *listener.MultiListener
	argument *ServerArgument
}

// Callback - serve one client connection
func Callback(conn io.ReadWriteCloser, argument interface{}) {

	serverArgument := argument.(*ServerArgument)

	log := serverArgument.Log
	log.Debug("client connected")

	serverArgument.Count.Increment()
	defer serverArgument.Count.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	serverArgument.Server.ServeCodec(codec)

	log.Debug("client finished")
}

// NewRPC - TLS JSON-RPC listener on every configured address
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	addresses, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	limiter := listener.NewLimiter(configuration.MaximumConnections)
	ml, err := listener.NewMultiListener(logName, addresses, tlsConfig, limiter, Callback)
	if nil != err {
		log.Errorf("invalid %s listen addresses: %s", logName, err)
		return nil, err
	}

	return &rpcListener{
		log:   log,
		multi: ml,
		argument: &ServerArgument{
			Log:    log,
			Server: server,
			Count:  count,
		},
	}, nil
}

// Serve - start accepting connections
func (r *rpcListener) Serve() error {
	r.log.Infof("starting %s", logName)
	r.multi.Start(r.argument)
	return nil
}

// Stop - close all listening sockets
func (r *rpcListener) Stop() {
	r.log.Infof("stopping %s", logName)
	r.multi.Stop()
}
