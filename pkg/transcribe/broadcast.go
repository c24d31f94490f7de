package transcribe

import (
	"sync"

	"github.com/codeready-toolchain/warden/ent"
)

// broadcaster fans persisted segments out to live subscribers. Publish never
// blocks: each subscriber owns an unbounded buffer drained by its own pump
// goroutine, so a slow reader cannot stall the STT consumer.
type broadcaster struct {
	mu     sync.Mutex
	subs   []*subscriber
	closed bool
}

type subscriber struct {
	mu     sync.Mutex
	buf    []*ent.TranscriptionSegment
	wake   chan struct{}
	out    chan *ent.TranscriptionSegment
	closed bool
}

func newBroadcaster() *broadcaster {
	return &broadcaster{}
}

// Subscribe registers a reader. The returned channel closes when the stream
// ends. Subscribing to a closed broadcaster returns a closed channel.
func (b *broadcaster) Subscribe() <-chan *ent.TranscriptionSegment {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscriber{
		wake: make(chan struct{}, 1),
		out:  make(chan *ent.TranscriptionSegment),
	}
	if b.closed {
		close(sub.out)
		return sub.out
	}
	b.subs = append(b.subs, sub)
	go sub.pump()
	return sub.out
}

// Publish hands one segment to every subscriber, in order.
func (b *broadcaster) Publish(seg *ent.TranscriptionSegment) {
	b.mu.Lock()
	subs := b.subs
	b.mu.Unlock()

	for _, sub := range subs {
		sub.push(seg)
	}
}

// Close ends the stream: subscriber channels close after delivering their
// remaining buffer.
func (b *broadcaster) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	subs := b.subs
	b.subs = nil
	b.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

func (s *subscriber) push(seg *ent.TranscriptionSegment) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.buf = append(s.buf, seg)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// pump drains the buffer into the out channel, preserving order, and closes
// out once the subscriber is closed and the buffer empty.
func (s *subscriber) pump() {
	for {
		s.mu.Lock()
		if len(s.buf) == 0 {
			if s.closed {
				s.mu.Unlock()
				close(s.out)
				return
			}
			s.mu.Unlock()
			<-s.wake
			continue
		}
		seg := s.buf[0]
		s.buf = s.buf[1:]
		s.mu.Unlock()

		s.out <- seg
	}
}
