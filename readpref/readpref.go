// Package readpref implements read preferences: client-side policies that
// decide which replica set member may serve a given read.
package readpref

import (
	"bytes"
	"fmt"

	"github.com/helmdb/go-driver/model"
)

// Primary constructs a read preference with a PrimaryMode. Primary reads are
// never restricted by tags.
func Primary() *ReadPref {
	return new(PrimaryMode)
}

// PrimaryPreferred constructs a read preference with a PrimaryPreferredMode.
func PrimaryPreferred(tagSets ...model.TagSet) *ReadPref {
	return new(PrimaryPreferredMode, tagSets...)
}

// SecondaryPreferred constructs a read preference with a SecondaryPreferredMode.
func SecondaryPreferred(tagSets ...model.TagSet) *ReadPref {
	return new(SecondaryPreferredMode, tagSets...)
}

// Secondary constructs a read preference with a SecondaryMode.
func Secondary(tagSets ...model.TagSet) *ReadPref {
	return new(SecondaryMode, tagSets...)
}

// Nearest constructs a read preference with a NearestMode.
func Nearest(tagSets ...model.TagSet) *ReadPref {
	return new(NearestMode, tagSets...)
}

// FromString constructs a read preference from the canonical name of a mode
// and zero or more tag sets. It fails on an unrecognized name.
func FromString(name string, tagSets ...model.TagSet) (*ReadPref, error) {
	mode, err := ModeFromString(name)
	if err != nil {
		return nil, err
	}

	return new(mode, tagSets...), nil
}

func new(mode Mode, tagSets ...model.TagSet) *ReadPref {
	return &ReadPref{
		mode:    mode,
		tagSets: tagSets,
	}
}

// ReadPref determines which servers are considered suitable for read
// operations. It is an immutable value and safe for concurrent use.
type ReadPref struct {
	mode    Mode
	tagSets []model.TagSet
}

// Mode indicates the mode of the read preference.
func (r *ReadPref) Mode() Mode {
	return r.mode
}

// Name returns the canonical name of the read preference's mode.
func (r *ReadPref) Name() string {
	return r.mode.String()
}

// TagSets are multiple tag sets indicating which servers should be
// considered. Earlier sets take priority: a later set is only consulted when
// no server matches the current one.
func (r *ReadPref) TagSets() []model.TagSet {
	return r.tagSets
}

// Equal indicates whether the read preferences have the same mode and the
// same tag sets in the same order. The document form is derived from the
// same fields, so two equal read preferences always serialize identically.
func (r *ReadPref) Equal(other *ReadPref) bool {
	if r.mode != other.mode || len(r.tagSets) != len(other.tagSets) {
		return false
	}

	for i := range r.tagSets {
		if !r.tagSets[i].Equal(other.tagSets[i]) {
			return false
		}
	}

	return true
}

// String returns a human-readable description of the read preference.
func (r *ReadPref) String() string {
	var b bytes.Buffer
	b.WriteString(r.mode.String())
	delim := "("
	for _, tagSet := range r.tagSets {
		fmt.Fprintf(&b, "%stagSet=%s", delim, tagSet.String())
		delim = " "
	}
	if delim != "(" {
		b.WriteString(")")
	}
	return b.String()
}
