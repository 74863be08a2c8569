// Package cluster tracks the topology snapshots published by an external
// monitor and serves per-read server selection over the latest one. It never
// initiates network calls itself: the monitor performs the heartbeats and
// hands complete model.Cluster descriptions to Apply.
package cluster

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/helmdb/go-driver/model"
	"github.com/helmdb/go-driver/readpref"
)

// ErrClosed is returned by SelectServer after the tracker has been closed.
var ErrClosed = errors.New("cluster tracker closed")

// New creates a new tracker. It holds no description until the monitor calls
// Apply for the first time.
func New(opts ...Option) *Tracker {
	return &Tracker{
		cfg:     newConfig(opts...),
		waiters: make(map[int64]chan struct{}),
	}
}

// Tracker holds the latest description of the cluster and lets callers wait
// for one that can satisfy a read preference.
type Tracker struct {
	cfg          *config
	waiters      map[int64]chan struct{}
	lastWaiterID int64
	waiterLock   sync.Mutex
	closed       bool
	desc         *model.Cluster
	descLock     sync.Mutex
}

// Apply replaces the current description with desc. The monitor calls it once
// per refresh cycle with a complete snapshot; readers observe either the old
// description or the new one, never a mix.
func (t *Tracker) Apply(desc *model.Cluster) {
	t.descLock.Lock()
	old := t.desc
	t.desc = desc
	t.descLock.Unlock()

	t.logTransition(old, desc)

	t.waiterLock.Lock()
	for _, waiter := range t.waiters {
		select {
		case waiter <- struct{}{}:
		default:
		}
	}
	t.waiterLock.Unlock()
}

// Desc gets the current description of the cluster. It is nil until the
// first Apply.
func (t *Tracker) Desc() *model.Cluster {
	var desc *model.Cluster
	t.descLock.Lock()
	desc = t.desc
	t.descLock.Unlock()
	return desc
}

// SelectServer returns a server satisfying rp. When the current description
// has no eligible server, it waits for new descriptions until one does, the
// context is done, or the selection timeout elapses.
func (t *Tracker) SelectServer(ctx context.Context, rp *readpref.ReadPref) (*model.Server, error) {
	timer := time.NewTimer(t.cfg.serverSelectionTimeout)
	updated, id := t.awaitUpdates()
	for {
		if desc := t.Desc(); desc != nil {
			if selected := rp.Choose(desc); selected != nil {
				timer.Stop()
				t.removeWaiter(id)
				return selected, nil
			}
		}

		select {
		case <-ctx.Done():
			timer.Stop()
			t.removeWaiter(id)
			return nil, errors.Wrap(ctx.Err(), "server selection failed")
		case _, ok := <-updated:
			if !ok {
				timer.Stop()
				return nil, ErrClosed
			}
			// topology has changed
		case <-timer.C:
			t.removeWaiter(id)
			return nil, errors.New("server selection timed out")
		}
	}
}

// Close releases all waiters. Pending SelectServer calls and any subsequent
// call that would need to wait fail with ErrClosed.
func (t *Tracker) Close() {
	t.waiterLock.Lock()
	t.closed = true
	for id, ch := range t.waiters {
		close(ch)
		delete(t.waiters, id)
	}
	t.waiterLock.Unlock()
}

// awaitUpdates returns a channel which will be signaled when the cluster
// description is updated, and an id which can later be used to remove this
// channel from the waiters map.
func (t *Tracker) awaitUpdates() (<-chan struct{}, int64) {
	id := atomic.AddInt64(&t.lastWaiterID, 1)
	ch := make(chan struct{}, 1)
	t.waiterLock.Lock()
	if t.closed {
		close(ch)
	} else {
		t.waiters[id] = ch
	}
	t.waiterLock.Unlock()
	return ch, id
}

func (t *Tracker) removeWaiter(id int64) {
	t.waiterLock.Lock()
	delete(t.waiters, id)
	t.waiterLock.Unlock()
}

func (t *Tracker) logTransition(old, new *model.Cluster) {
	diff := Diff(old, new)
	for _, s := range diff.AddedServers {
		t.cfg.logger.WithField("address", s.Addr.String()).Debug("server added to topology")
	}
	for _, s := range diff.RemovedServers {
		t.cfg.logger.WithField("address", s.Addr.String()).Debug("server removed from topology")
	}

	if new == nil {
		return
	}

	primaries := 0
	for _, s := range new.Servers {
		if s.Reachable() && s.Kind == model.RSPrimary {
			primaries++
		}
	}
	if primaries > 1 {
		t.cfg.logger.WithField("primaries", primaries).
			Warn("topology reports more than one primary")
	}
}
