package ingest

import (
	"sync"

	"github.com/crisanalex08/RasbperryCode/types"
	"github.com/crisanalex08/RasbperryCode/x/mathx"
)

// Feed fans parsed frames out to subscribers. Each subscriber gets a
// buffered channel; when a subscriber falls behind, the oldest queued frame
// is dropped in favour of the new one. The newest frame is retained and
// delivered immediately to late subscribers.
type Feed struct {
	mu       sync.Mutex
	qLen     int
	subs     []chan types.TelemetryFrame
	retained *types.TelemetryFrame
}

// NewFeed creates a feed with the given per-subscriber queue length.
func NewFeed(queueLen int) *Feed {
	return &Feed{qLen: mathx.Clamp(queueLen, 1, 1024)}
}

// Subscribe registers a consumer. If a frame was already published, it is
// delivered right away.
func (f *Feed) Subscribe() <-chan types.TelemetryFrame {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan types.TelemetryFrame, f.qLen)
	if f.retained != nil {
		ch <- *f.retained
	}
	f.subs = append(f.subs, ch)
	return ch
}

// Publish delivers a frame to every subscriber.
func (f *Feed) Publish(frame types.TelemetryFrame) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.retained = &frame
	for _, ch := range f.subs {
		select {
		case ch <- frame:
		default:
			// drop oldest if the queue is full
			<-ch
			ch <- frame
		}
	}
}

// Close closes all subscriber channels.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs {
		close(ch)
	}
	f.subs = nil
}
