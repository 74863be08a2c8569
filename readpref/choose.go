package readpref

import (
	"github.com/helmdb/go-driver/model"
)

// Choose returns the server that should service a read under this preference,
// or nil when the cluster currently has no eligible server. Absence is an
// expected, recoverable outcome: the caller may wait for the next topology
// refresh and try again, or fail the operation.
//
// Choose never blocks and performs no I/O. Its only side effect is a single
// draw from the cluster's random source when several servers tie within the
// acceptable latency window.
func (r *ReadPref) Choose(c *model.Cluster) *model.Server {
	switch r.mode {
	case PrimaryMode:
		return c.Primary()
	case PrimaryPreferredMode:
		if s := c.Primary(); s != nil {
			return s
		}
		return r.chooseMatching(c, c.Secondaries())
	case SecondaryMode:
		return r.chooseMatching(c, c.Secondaries())
	case SecondaryPreferredMode:
		if s := r.chooseMatching(c, c.Secondaries()); s != nil {
			return s
		}
		// The primary fallback ignores tag sets.
		return c.Primary()
	case NearestMode:
		// Nearest pools the primary with the secondaries, so it is the only
		// mode that can pick the primary through a tag filter.
		return r.chooseMatching(c, c.ReadableServers())
	}

	return nil
}

// chooseMatching walks the tag sets in priority order against candidates. The
// first set that matches at least one candidate wins; latency windowing is
// applied only to that matched subset.
func (r *ReadPref) chooseMatching(c *model.Cluster, candidates []*model.Server) *model.Server {
	if len(r.tagSets) == 0 {
		return c.SelectByLatency(candidates)
	}

	for _, ts := range r.tagSets {
		if matched := model.FilterByTagSet(candidates, ts); len(matched) > 0 {
			return c.SelectByLatency(matched)
		}
	}

	return nil
}
