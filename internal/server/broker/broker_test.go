package broker

import (
	"sync"
	"testing"

	"github.com/dmitrijs2005/timeline/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct {
	mu                     sync.Mutex
	added, removed, issued int
}

func (r *countingRecorder) SubscriberAdded()   { r.mu.Lock(); r.added++; r.mu.Unlock() }
func (r *countingRecorder) SubscriberRemoved() { r.mu.Lock(); r.removed++; r.mu.Unlock() }
func (r *countingRecorder) SnapshotPublished() { r.mu.Lock(); r.issued++; r.mu.Unlock() }

func snap(seq uint64, names ...string) *models.Snapshot {
	var evs []*models.Event
	for i, n := range names {
		evs = append(evs, &models.Event{ID: n, Name: n, Start: int64(i)})
	}
	s := models.NewSnapshot(evs, seq)
	return &s
}

func TestSubscribe_ReceivesLastSnapshotImmediately(t *testing.T) {
	b := New(nil)
	b.Publish(snap(1, "a"))

	ch, cancel := b.Subscribe()
	defer cancel()

	got := <-ch
	assert.Equal(t, uint64(1), got.Sequence)
	assert.Equal(t, []string{"a"}, got.Names())
}

func TestSubscribe_NothingBeforeFirstPublish(t *testing.T) {
	b := New(nil)
	ch, cancel := b.Subscribe()
	defer cancel()

	select {
	case s := <-ch:
		t.Fatalf("unexpected snapshot %v", s)
	default:
	}
	assert.Nil(t, b.Last())
}

func TestPublish_SlowSubscriberSeesLatestOnly(t *testing.T) {
	b := New(nil)
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish(snap(1, "a"))
	b.Publish(snap(2, "a", "b"))
	b.Publish(snap(3, "a", "b", "c"))

	got := <-ch
	assert.Equal(t, uint64(3), got.Sequence)
	select {
	case s := <-ch:
		t.Fatalf("stale snapshot leaked: %v", s.Sequence)
	default:
	}
}

func TestPublish_IgnoresOutOfOrderSequence(t *testing.T) {
	b := New(nil)
	b.Publish(snap(5, "new"))
	b.Publish(snap(4, "old"))

	require.NotNil(t, b.Last())
	assert.Equal(t, uint64(5), b.Last().Sequence)
}

func TestPublish_FanOut(t *testing.T) {
	b := New(nil)
	ch1, c1 := b.Subscribe()
	ch2, c2 := b.Subscribe()
	defer c1()
	defer c2()

	b.Publish(snap(1, "x"))
	assert.Equal(t, uint64(1), (<-ch1).Sequence)
	assert.Equal(t, uint64(1), (<-ch2).Sequence)
}

func TestCancel_ClosesChannelAndIsIdempotent(t *testing.T) {
	rec := &countingRecorder{}
	b := New(rec)
	ch, cancel := b.Subscribe()
	assert.Equal(t, 1, b.Subscribers())

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, b.Subscribers())
	assert.Equal(t, 1, rec.added)
	assert.Equal(t, 1, rec.removed)

	// publishing after cancel must not panic on the closed channel
	b.Publish(snap(1, "a"))
	assert.Equal(t, 1, rec.issued)
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	b := New(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch, cancel := b.Subscribe()
			defer cancel()
			for j := 0; j < 10; j++ {
				select {
				case <-ch:
				default:
				}
			}
		}()
	}
	for i := uint64(1); i <= 50; i++ {
		b.Publish(snap(i, "e"))
	}
	wg.Wait()
	assert.Equal(t, 0, b.Subscribers())
	assert.Equal(t, uint64(50), b.Last().Sequence)
}
