package model

import (
	"net"
	"strings"
)

const defaultPort = "28017"

// Addr is a network address. It can either be an IP address or a DNS name.
type Addr string

// Network is the network protocol for this address. In most cases this will be
// "tcp" or "unix".
func (a Addr) Network() string {
	if strings.HasSuffix(string(a), "sock") {
		return "unix"
	}
	return "tcp"
}

// String is the canonical version of this address, e.g. localhost:28017,
// 1.2.3.4:28017, example.com:28017.
func (a Addr) String() string {
	s := strings.ToLower(string(a))
	if len(s) == 0 {
		return ""
	}
	if a.Network() != "unix" {
		_, _, err := net.SplitHostPort(s)
		if err != nil && strings.Contains(err.Error(), "missing port in address") {
			s += ":" + defaultPort
		}
	}

	return s
}

// Canonicalize creates a canonicalized address.
func (a Addr) Canonicalize() Addr {
	return Addr(a.String())
}
