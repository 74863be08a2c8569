package model

import (
	"math"
	"math/rand"
	"time"

	"github.com/helmdb/go-driver/internal/randutil"
)

// Rand is a source of uniform randomness used to break ties between servers
// whose round trip times fall inside the acceptable latency window.
type Rand interface {
	// Intn returns a non-negative number in [0,n).
	Intn(n int) int
}

// defaultRand is the process-wide source used when a Cluster does not carry
// its own.
var defaultRand Rand = randutil.NewLockedRand(rand.NewSource(randutil.CryptoSeed()))

// Cluster is a description of a replica set at a single point in time. The
// monitor publishes a complete new description on every refresh cycle;
// consumers never observe a partially updated one.
//
// At most one reachable server has the RSPrimary kind. The client relies on
// the replica set to uphold this; it does not enforce it.
type Cluster struct {
	// Servers holds one description per known member, in discovery order.
	Servers []*Server

	// AcceptableLatency is how much slower than the fastest eligible server
	// a server may be while remaining eligible.
	AcceptableLatency time.Duration

	// Rand breaks ties between servers inside the latency window. When nil,
	// a process-wide source is used.
	Rand Rand
}

// Server returns the server description with the specified address.
func (c *Cluster) Server(addr Addr) (*Server, bool) {
	for _, s := range c.Servers {
		if s.Addr == addr {
			return s, true
		}
	}
	return nil, false
}

// Primary returns the reachable primary, or nil when the set has none. Should
// a description ever hold more than one primary, the first in discovery order
// wins; that is a data integrity problem for the monitor to report, not a
// reason to fail a read.
func (c *Cluster) Primary() *Server {
	for _, s := range c.Servers {
		if s.Reachable() && s.Kind == RSPrimary {
			return s
		}
	}
	return nil
}

// Secondaries returns all reachable secondaries in discovery order.
func (c *Cluster) Secondaries() []*Server {
	var result []*Server
	for _, s := range c.Servers {
		if s.Reachable() && s.Kind == RSSecondary {
			result = append(result, s)
		}
	}
	return result
}

// ReadableServers returns every reachable primary and secondary in discovery
// order.
func (c *Cluster) ReadableServers() []*Server {
	var result []*Server
	for _, s := range c.Servers {
		if !s.Reachable() {
			continue
		}
		switch s.Kind {
		case RSPrimary, RSSecondary:
			result = append(result, s)
		}
	}
	return result
}

// SelectByLatency returns one of the candidates whose round trip time is
// within AcceptableLatency of the fastest candidate, chosen uniformly at
// random. Candidates without a measured round trip time are only considered
// when no candidate has one. Returns nil when candidates is empty.
func (c *Cluster) SelectByLatency(candidates []*Server) *Server {
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}

	min := time.Duration(math.MaxInt64)
	for _, candidate := range candidates {
		if candidate.AverageRTTSet && candidate.AverageRTT < min {
			min = candidate.AverageRTT
		}
	}

	survivors := candidates
	if min != math.MaxInt64 {
		max := min + c.AcceptableLatency

		survivors = nil
		for _, candidate := range candidates {
			if candidate.AverageRTTSet && candidate.AverageRTT <= max {
				survivors = append(survivors, candidate)
			}
		}
	}

	return survivors[c.rand().Intn(len(survivors))]
}

// FilterByTagSet returns the candidates whose tags contain every tag in set.
// An empty set matches every candidate.
func FilterByTagSet(candidates []*Server, set TagSet) []*Server {
	var result []*Server
	for _, candidate := range candidates {
		if candidate.Tags.ContainsAll(set) {
			result = append(result, candidate)
		}
	}
	return result
}

func (c *Cluster) rand() Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return defaultRand
}
