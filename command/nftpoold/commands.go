// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/blockcount"
	"github.com/bitmark-inc/nftpoold/credential"
	"github.com/bitmark-inc/nftpoold/nft"
	"github.com/bitmark-inc/nftpoold/rpc/certificate"
	"github.com/bitmark-inc/nftpoold/storage"
	"github.com/bitmark-inc/nftpoold/zmqutil"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"

	defaultCredentialValidity = 24 * time.Hour
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.Generate("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publish-keys", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "start", "run":
		return false // continue processing

	case "dump-listings", "dump", "block-height", "height", "payouts", "settle-payout", "settle":
		return false // defer processing until database is loaded

	case "config-test", "cfg", "issue-token", "token":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)       - display this message\n\n")
		fmt.Printf("  version                    (v)       - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)     - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                         and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]          - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                         and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-keys [DIR]     (publish) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                         and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)     - just run the program, same as no arguments\n")
		fmt.Printf("                                         for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)     - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  issue-token ADDRESS [DURATION] (token) - sign a credential for ADDRESS with jwt_secret\n")
		fmt.Printf("                                         valid for DURATION, default: %s\n", defaultCredentialValidity)
		fmt.Printf("\n")

		fmt.Printf("  dump-listings [FILE]       (dump)    - write every listing as JSON to stdout/file\n")
		fmt.Printf("\n")

		fmt.Printf("  block-height               (height)  - display the height of the block source\n")
		fmt.Printf("\n")

		fmt.Printf("  payouts                              - display payout orders awaiting settlement\n")
		fmt.Printf("\n")

		fmt.Printf("  settle-payout ID           (settle)  - remove a payout order once the transfer is on chain\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "issue-token", "token":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing address argument")
		}
		caller, err := nft.ParseAddress(arguments[0])
		if nil != err {
			exitwithstatus.Message("address: %q  error: %s", arguments[0], err)
		}
		validity := defaultCredentialValidity
		if len(arguments) > 1 {
			validity, err = time.ParseDuration(arguments[1])
			if nil != err || validity <= 0 {
				exitwithstatus.Message("duration: %q  error: %v", arguments[1], err)
			}
		}
		token, err := credential.New(options.JWTSecret).Issue(caller, validity)
		if nil != err {
			exitwithstatus.Message("issue credential error: %s", err)
		}
		fmt.Println(token)

	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the database is open so these commands can access and/or change it
func processDataCommand(log *logger.L, arguments []string, db *storage.Store, blocks blockcount.Counter) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "dump-listings", "dump":
		output := "-"
		if len(arguments) > 0 {
			output = strings.TrimSpace(arguments[0])
		}
		fd := os.Stdout
		if output != "" && output != "-" {
			f, err := os.Create(output)
			if nil != err {
				exitwithstatus.Message("error: creating: %q error: %s", output, err)
			}
			fd = f
		}
		err := dumpListings(fd, db, blocks.Height())
		if fd != os.Stdout {
			fd.Close()
		}
		if nil != err {
			exitwithstatus.Message("dump listings error: %s", err)
		}

	case "block-height", "height":
		fmt.Printf("%d\n", blocks.Height())

	case "payouts":
		orders, err := pendingPayouts(log, db, blocks)
		if nil != err {
			exitwithstatus.Message("payouts error: %s", err)
		}
		s, err := json.MarshalIndent(orders, "", "  ")
		if nil != err {
			exitwithstatus.Message("payouts JSON error: %s", err)
		}
		fmt.Printf("%s\n", s)

	case "settle-payout", "settle":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing payout id argument")
		}
		id, err := uuid.Parse(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in payout id: %s", err)
		}
		if err := settlePayout(log, db, blocks, id); nil != err {
			exitwithstatus.Message("settle payout: %s  error: %s", id, err)
		}
		fmt.Printf("settled: %s\n", id)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
