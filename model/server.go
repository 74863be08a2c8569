package model

import (
	"time"
)

// UnsetRTT is the unset value for a round trip time.
const UnsetRTT = -1 * time.Millisecond

// Server is a description of a server produced from a single heartbeat. It is
// immutable once handed to a Cluster: the monitor builds a fresh Server for
// every heartbeat and supersedes the old one wholesale.
type Server struct {
	Addr Addr

	AverageRTT      time.Duration
	AverageRTTSet   bool
	Kind            ServerKind
	LastError       error
	LastUpdateTime  time.Time
	MaxDocumentSize uint32
	Tags            TagSet
}

// Reachable indicates whether the last heartbeat against the server
// succeeded.
func (s *Server) Reachable() bool {
	return s.LastError == nil
}

// SetAverageRTT sets the exponentially smoothed round trip time. It is part
// of building a description and must not be called after the description has
// been handed to a Cluster.
func (s *Server) SetAverageRTT(rtt time.Duration) {
	s.AverageRTT = rtt
	if rtt == UnsetRTT {
		s.AverageRTTSet = false
	} else {
		s.AverageRTTSet = true
	}
}
