// Package broker fans event snapshots out to live subscribers.
//
// Every subscriber owns a one-slot channel. Publishing replaces whatever is
// still pending in that slot, so a slow consumer only ever sees the latest
// snapshot and the publisher never blocks.
package broker

import (
	"sync"

	"github.com/dmitrijs2005/timeline/internal/models"
)

// Recorder receives subscriber and publish notifications. *metrics.Metrics implements it.
type Recorder interface {
	SubscriberAdded()
	SubscriberRemoved()
	SnapshotPublished()
}

type nopRecorder struct{}

func (nopRecorder) SubscriberAdded()   {}
func (nopRecorder) SubscriberRemoved() {}
func (nopRecorder) SnapshotPublished() {}

type Broker struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]chan *models.Snapshot
	last   *models.Snapshot
	rec    Recorder
}

// New creates a broker. rec may be nil.
func New(rec Recorder) *Broker {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Broker{
		subs: make(map[uint64]chan *models.Snapshot),
		rec:  rec,
	}
}

// Last returns the most recently published snapshot, or nil.
func (b *Broker) Last() *models.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// Subscribe registers a subscriber. If a snapshot has already been published
// it is queued immediately. The returned cancel func closes the channel and is
// safe to call more than once.
func (b *Broker) Subscribe() (<-chan *models.Snapshot, func()) {
	ch := make(chan *models.Snapshot, 1)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	if b.last != nil {
		ch <- b.last
	}
	b.mu.Unlock()
	b.rec.SubscriberAdded()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			close(ch)
			b.mu.Unlock()
			b.rec.SubscriberRemoved()
		})
	}
	return ch, cancel
}

// Publish stores s as the latest snapshot and offers it to every subscriber.
// Snapshots with a sequence not newer than the last published one are ignored.
func (b *Broker) Publish(s *models.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.last != nil && s.Sequence <= b.last.Sequence {
		return
	}
	b.last = s

	for _, ch := range b.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
	b.rec.SnapshotPublished()
}

// Subscribers reports the number of active subscribers.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
