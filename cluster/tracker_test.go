package cluster_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	. "github.com/helmdb/go-driver/cluster"
	"github.com/helmdb/go-driver/model"
	"github.com/helmdb/go-driver/readpref"
)

func replicaSet(servers ...*model.Server) *model.Cluster {
	return &model.Cluster{
		Servers:           servers,
		AcceptableLatency: 15 * time.Millisecond,
	}
}

var (
	trackerPrimary = &model.Server{
		Addr: model.Addr("localhost:28017"),
		Kind: model.RSPrimary,
	}
	trackerSecondary = &model.Server{
		Addr: model.Addr("localhost:28018"),
		Kind: model.RSSecondary,
	}
)

func TestTracker_Desc(t *testing.T) {
	t.Parallel()

	require := require.New(t)

	subject := New()
	require.Nil(subject.Desc())

	desc := replicaSet(trackerPrimary)
	subject.Apply(desc)

	require.Equal(desc, subject.Desc())
}

func TestTracker_SelectServer(t *testing.T) {
	t.Parallel()

	require := require.New(t)

	subject := New()
	subject.Apply(replicaSet(trackerPrimary, trackerSecondary))

	selected, err := subject.SelectServer(context.Background(), readpref.Primary())

	require.NoError(err)
	require.Equal(trackerPrimary, selected)
}

func TestTracker_SelectServer_waitsForUpdate(t *testing.T) {
	t.Parallel()

	require := require.New(t)

	subject := New()
	subject.Apply(replicaSet(trackerPrimary))

	type result struct {
		server *model.Server
		err    error
	}
	done := make(chan result, 1)
	go func() {
		s, err := subject.SelectServer(context.Background(), readpref.Secondary())
		done <- result{s, err}
	}()

	// No secondary yet; the call must block until the next snapshot.
	select {
	case r := <-done:
		t.Fatalf("selection completed before the topology changed: %v, %v", r.server, r.err)
	case <-time.After(50 * time.Millisecond):
	}

	subject.Apply(replicaSet(trackerPrimary, trackerSecondary))

	select {
	case r := <-done:
		require.NoError(r.err)
		require.Equal(trackerSecondary, r.server)
	case <-time.After(5 * time.Second):
		t.Fatal("selection did not observe the new topology")
	}
}

func TestTracker_SelectServer_contextCancelled(t *testing.T) {
	t.Parallel()

	require := require.New(t)

	subject := New()
	subject.Apply(replicaSet(trackerPrimary))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := subject.SelectServer(ctx, readpref.Secondary())

	require.Error(err)
	require.ErrorIs(err, context.Canceled)
}

func TestTracker_SelectServer_timesOut(t *testing.T) {
	t.Parallel()

	require := require.New(t)

	subject := New(WithServerSelectionTimeout(20 * time.Millisecond))
	subject.Apply(replicaSet(trackerPrimary))

	_, err := subject.SelectServer(context.Background(), readpref.Secondary())

	require.Error(err)
	require.Contains(err.Error(), "timed out")
}

func TestTracker_SelectServer_closed(t *testing.T) {
	t.Parallel()

	require := require.New(t)

	subject := New()
	subject.Apply(replicaSet(trackerPrimary))

	done := make(chan error, 1)
	go func() {
		_, err := subject.SelectServer(context.Background(), readpref.Secondary())
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	subject.Close()

	select {
	case err := <-done:
		require.ErrorIs(err, ErrClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("close did not release the pending selection")
	}

	_, err := subject.SelectServer(context.Background(), readpref.Secondary())
	require.ErrorIs(err, ErrClosed)
}

func TestTracker_logsTransitions(t *testing.T) {
	t.Parallel()

	require := require.New(t)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	subject := New(WithLogger(logger))
	subject.Apply(replicaSet(trackerPrimary))
	subject.Apply(replicaSet(trackerPrimary, trackerSecondary))

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	require.Contains(messages, "server added to topology")
}

func TestTracker_logsMultiplePrimaries(t *testing.T) {
	t.Parallel()

	require := require.New(t)

	logger, hook := test.NewNullLogger()

	otherPrimary := &model.Server{
		Addr: model.Addr("localhost:28019"),
		Kind: model.RSPrimary,
	}

	subject := New(WithLogger(logger))
	subject.Apply(replicaSet(trackerPrimary, otherPrimary))

	entry := hook.LastEntry()
	require.NotNil(entry)
	require.Equal(logrus.WarnLevel, entry.Level)
	require.Equal(2, entry.Data["primaries"])

	// A bad snapshot is reported, not rejected: the first primary in
	// discovery order still serves reads.
	selected, err := subject.SelectServer(context.Background(), readpref.Primary())
	require.NoError(err)
	require.Equal(trackerPrimary, selected)
}
