// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/counter"
	"github.com/bitmark-inc/nftpoold/fault"
	"github.com/bitmark-inc/nftpoold/fixtures"
	"github.com/bitmark-inc/nftpoold/rpc/certificate"
	"github.com/bitmark-inc/nftpoold/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func testTLS(t *testing.T, log *logger.L) (*tls.Config, [32]byte) {
	dir := t.TempDir()
	cer := filepath.Join(dir, "test.crt")
	key := filepath.Join(dir, "test.key")
	if err := certificate.Generate("test", cer, key, []string{"127.0.0.1"}); nil != err {
		t.Fatalf("generate certificate error: %s", err)
	}
	tlsConfig, fin, err := certificate.Load(log, "test", cer, key)
	if nil != err {
		t.Fatalf("load certificate error: %s", err)
	}
	return tlsConfig, fin
}

func TestCallback(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := rpc.NewServer()
	err := s.Register(Add{})
	assert.Nil(t, err, "register")

	count := counter.Counter(0)
	argument := &listeners.ServerArgument{
		Log:    logger.New(fixtures.LogCategory),
		Server: s,
		Count:  &count,
	}

	serverConn, clientConn := net.Pipe()
	finished := make(chan struct{})
	go func() {
		listeners.Callback(serverConn, argument)
		close(finished)
	}()

	client := jsonrpc.NewClient(clientConn)

	var reply int
	err = client.Call("Add.Add", AddArg{A: 1, B: 2}, &reply)
	assert.Nil(t, err, "wrong call")
	assert.Equal(t, 3, reply, "wrong reply")
	assert.Equal(t, uint64(1), count.Uint64(), "connection not counted")

	client.Close()
	<-finished
	assert.Equal(t, uint64(0), count.Uint64(), "connection not released")
}

func TestNewRPCErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	count := counter.Counter(0)

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2130"},
	}, log, &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Equal(t, fault.MissingParameters, err, "zero connections")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 10,
	}, log, &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Equal(t, fault.MissingParameters, err, "no listen")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 10,
		Listen:             []string{"localhost:2130"},
	}, log, &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Equal(t, fault.InvalidIPAddress, err, "host name")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 10,
		Listen:             []string{"127.0.0.1"},
	}, log, &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Equal(t, fault.InvalidIPAddress, err, "missing port")
}

func TestParseAllow(t *testing.T) {
	allow, err := listeners.ParseAllow(map[string][]string{
		"details": {"127.0.0.1/32", " ::1/128 "},
	})
	assert.Nil(t, err, "wrong ParseAllow")
	assert.Equal(t, 2, len(allow["details"]), "wrong set size")
	assert.True(t, allow["details"][0].Contains(net.ParseIP("127.0.0.1")), "ipv4 loopback")
	assert.True(t, allow["details"][1].Contains(net.ParseIP("::1")), "ipv6 loopback")

	_, err = listeners.ParseAllow(map[string][]string{"details": {"not-an-ip"}})
	assert.NotNil(t, err, "bad cidr accepted")
}

func TestHTTPSDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, logger.New(fixtures.LogCategory), nil, nil)
	assert.Nil(t, err, "disabled listener error")
	assert.Nil(t, l, "disabled listener created")
}

func TestHTTPSServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	tlsConfig, _ := testTLS(t, log)

	port := rand.Intn(30000) + 30000
	listen := fmt.Sprintf("127.0.0.1:%d", port)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	l, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{
		MaximumConnections: 10,
		Listen:             []string{listen},
	}, log, tlsConfig, handler)
	assert.Nil(t, err, "wrong NewHTTPS")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Stop()

	client := &http.Client{
		Timeout: 5 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	resp, err := client.Get("https://" + listen + "/ping")
	if !assert.Nil(t, err, "wrong get") {
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(body), "wrong body")
}
