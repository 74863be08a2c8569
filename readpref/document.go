package readpref

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/helmdb/go-driver/model"
)

// Document returns the document form of the read preference, suitable for
// attaching to an outgoing request or a log line. The document always starts
// with a "mode" key holding the canonical mode name; a "tags" key holding the
// tag sets in priority order is appended only when tag sets are present.
func (r *ReadPref) Document() bson.D {
	doc := bson.D{{Key: "mode", Value: r.mode.String()}}

	if len(r.tagSets) == 0 {
		return doc
	}

	sets := make(bson.A, 0, len(r.tagSets))
	for _, ts := range r.tagSets {
		sets = append(sets, tagSetDocument(ts))
	}

	return append(doc, bson.E{Key: "tags", Value: sets})
}

func tagSetDocument(ts model.TagSet) bson.D {
	doc := make(bson.D, 0, len(ts))
	for _, t := range ts {
		doc = append(doc, bson.E{Key: t.Name, Value: t.Value})
	}
	return doc
}
