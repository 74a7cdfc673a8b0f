// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/background"
	"github.com/bitmark-inc/nftpoold/blockcount"
	"github.com/bitmark-inc/nftpoold/counter"
	"github.com/bitmark-inc/nftpoold/credential"
	"github.com/bitmark-inc/nftpoold/custody"
	"github.com/bitmark-inc/nftpoold/custody/registry"
	"github.com/bitmark-inc/nftpoold/event"
	"github.com/bitmark-inc/nftpoold/httpapi"
	"github.com/bitmark-inc/nftpoold/messagebus"
	"github.com/bitmark-inc/nftpoold/payment"
	"github.com/bitmark-inc/nftpoold/pool"
	"github.com/bitmark-inc/nftpoold/publish"
	"github.com/bitmark-inc/nftpoold/rpc/certificate"
	"github.com/bitmark-inc/nftpoold/rpc/listeners"
	"github.com/bitmark-inc/nftpoold/rpc/server"
	"github.com/bitmark-inc/nftpoold/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "BlockSource", theConfiguration.BlockSource)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("open storage")
	db, err := storage.Open(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage open error: %s", err)
		exitwithstatus.Message("storage open error: %s", err)
	}
	defer db.Close()

	blocks, err := blockcount.New(logger.New("blockcount"), theConfiguration.BlockSource, db)
	if nil != err {
		log.Criticalf("block source error: %s", err)
		exitwithstatus.Message("block source error: %s", err)
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, db, blocks) {
		return
	}

	poolAccount, err := theConfiguration.poolAddress()
	if nil != err {
		log.Criticalf("pool account error: %s", err)
		exitwithstatus.Message("pool account error: %s", err)
	}
	log.Infof("pool account: %s", poolAccount.Hex())

	events := messagebus.NewBroadcastQueue()
	defer events.Close()
	emitter := event.NewBus(logger.New("event"), events)

	tokens := registry.New(logger.New("registry"), db, poolAccount)
	outbox := payment.NewOutbox(logger.New("payment"), db, blocks, emitter)
	rentals := pool.New(logger.New("pool"), db, tokens, blocks, outbox, emitter)

	if err := rentals.CheckInvariant(); nil != err {
		log.Criticalf("ledger check error: %s", err)
		exitwithstatus.Message("ledger check error: %s", err)
	}

	expiry, err := time.ParseDuration(theConfiguration.MetadataExpiry)
	if nil != err {
		exitwithstatus.Message("metadata_expiry: %q  error: %s", theConfiguration.MetadataExpiry, err)
	}
	metadata := custody.NewMetadata(tokens, expiry)

	processes := background.Processes{
		blocks,
	}

	// start up the publishing background process
	if 0 != len(theConfiguration.Publishing.Broadcast) {
		brdc, err := publish.New(logger.New("publish"), &theConfiguration.Publishing, events)
		if nil != err {
			log.Criticalf("publish initialise error: %s", err)
			exitwithstatus.Message("publish initialise error: %s", err)
		}
		processes = append(processes, brdc)
	}

	running := background.Start(processes, nil)
	defer running.Stop()

	// rpc services
	rpcLog := logger.New("rpc")
	var rpcCount counter.Counter
	credentials := credential.New(theConfiguration.JWTSecret)
	if "" == theConfiguration.JWTSecret {
		log.Warn("jwt_secret is not set: state changing calls will refuse every request")
	}
	rpcServer := server.Create(rpcLog, version, &rpcCount, server.Handles{
		Pool:        rentals,
		Metadata:    metadata,
		Registry:    tokens,
		Payouts:     outbox,
		Counter:     blocks,
		Credentials: credentials,
	})

	rpcTLS, fingerprint, err := certificate.Load(rpcLog, "client_rpc", theConfiguration.ClientRPC.Certificate, theConfiguration.ClientRPC.PrivateKey)
	if nil != err {
		log.Criticalf("client rpc certificate error: %s", err)
		exitwithstatus.Message("client rpc certificate error: %s", err)
	}

	rpcListener, err := listeners.NewRPC(&theConfiguration.ClientRPC, logger.New("client_rpc"), &rpcCount, rpcServer, rpcTLS, fingerprint)
	if nil != err {
		log.Criticalf("client rpc initialise error: %s", err)
		exitwithstatus.Message("client rpc initialise error: %s", err)
	}
	if err := rpcListener.Serve(); nil != err {
		exitwithstatus.Message("client rpc serve error: %s", err)
	}
	defer rpcListener.Stop()

	// https gateway
	if 0 != len(theConfiguration.HttpsRPC.Listen) {
		httpsLog := logger.New("https_rpc")

		allow, err := listeners.ParseAllow(theConfiguration.HttpsRPC.Allow)
		if nil != err {
			exitwithstatus.Message("https_rpc allow error: %s", err)
		}

		api := httpapi.New(logger.New("httpapi"), httpapi.Options{
			Pool:        rentals,
			Metadata:    metadata,
			Server:      rpcServer,
			Count:       &rpcCount,
			Events:      events,
			Credentials: credentials,
			Allow:       allow,
			Version:     version,
		})

		httpsTLS, _, err := certificate.Load(httpsLog, "https_rpc", theConfiguration.HttpsRPC.Certificate, theConfiguration.HttpsRPC.PrivateKey)
		if nil != err {
			log.Criticalf("https rpc certificate error: %s", err)
			exitwithstatus.Message("https rpc certificate error: %s", err)
		}

		httpsListener, err := listeners.NewHTTPS(&theConfiguration.HttpsRPC, httpsLog, httpsTLS, api.Handler())
		if nil != err {
			log.Criticalf("https rpc initialise error: %s", err)
			exitwithstatus.Message("https rpc initialise error: %s", err)
		}
		if err := httpsListener.Serve(); nil != err {
			exitwithstatus.Message("https rpc serve error: %s", err)
		}
		defer httpsListener.Stop()
	}

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
