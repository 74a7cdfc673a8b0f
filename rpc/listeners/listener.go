// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/nftpoold/fault"
)

const minConnectionCount = 1

// Listener - a started server
type Listener interface {
	Serve() error
	Stop()
}

// change "*:PORT" to "[::]:PORT" on the assumption that this will
// listen on tcp4 and tcp6, all other forms must be IP:PORT
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			return nil, fault.InvalidIPAddress
		}
		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, fault.InvalidIPAddress
		}
		if "" == port {
			return nil, fault.InvalidPortNumber
		}
		if "*" == host {
			parsed[i] = "[::]:" + port
			continue
		}
		if ip := net.ParseIP(strings.Trim(host, "[]")); nil == ip {
			log.Errorf("listen: %q  error: %s", listen, fault.InvalidIPAddress)
			return nil, fault.InvalidIPAddress
		}
		parsed[i] = net.JoinHostPort(host, port)
	}

	return parsed, nil
}

// ParseAllow - access control lists keyed by path
func ParseAllow(allow map[string][]string) (map[string][]*net.IPNet, error) {
	local := make(map[string][]*net.IPNet)
	for path, addresses := range allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				return nil, err
			}
			set[i] = cidr
		}
	}
	return local, nil
}
