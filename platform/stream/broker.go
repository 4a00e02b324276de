// Package stream fans messages out to in-process subscribers grouped by key.
package stream

import "sync"

// Broker delivers each published message to every subscriber of its key
type Broker struct {
	mu     sync.Mutex
	subs   map[string]map[chan []byte]struct{}
	buffer int
	closed bool
}

// New returns a Broker whose subscriber channels hold up to buffer pending messages
func New(buffer int) *Broker {
	return &Broker{
		subs:   map[string]map[chan []byte]struct{}{},
		buffer: buffer,
	}
}

// Subscribe returns the channel receiving messages for key and the func that ends the subscription.
// The channel is closed when the subscription ends or the broker is closed.
func (b *Broker) Subscribe(key string) (<-chan []byte, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan []byte, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	if b.subs[key] == nil {
		b.subs[key] = map[chan []byte]struct{}{}
	}
	b.subs[key][ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[key][ch]; !ok {
				return
			}
			delete(b.subs[key], ch)
			if len(b.subs[key]) == 0 {
				delete(b.subs, key)
			}
			close(ch)
		})
	}
}

// Publish delivers msg to the subscribers of key, returning how many received it.
// A subscriber with a full buffer misses the message.
func (b *Broker) Publish(key string, msg []byte) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	delivered := 0
	for ch := range b.subs[key] {
		select {
		case ch <- msg:
			delivered++
		default:
		}
	}
	return delivered
}

// subscribers returns how many subscriptions key has
func (b *Broker) subscribers(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[key])
}

// Close ends every subscription
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for key, chans := range b.subs {
		for ch := range chans {
			close(ch)
		}
		delete(b.subs, key)
	}
}
