package session

import (
	"sync"

	"github.com/yeshu2004/real-time-pooling/logging"
)

// Broker is the in-process broadcast gateway: it fans coordinator events out
// to every connected subscriber. Delivery is best-effort; a subscriber that
// cannot keep up has events dropped rather than blocking the session.
// Publishing is serialized, so each subscriber channel observes events in
// publish order.
type Broker struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber and returns its event channel.
func (b *Broker) Subscribe() chan Event {
	ch := make(chan Event, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the channel from the subscriber set.
func (b *Broker) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// SubscriberCount reports how many subscribers are attached.
func (b *Broker) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Publish sends the event to all current subscribers.
func (b *Broker) Publish(event Event) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
			logging.Log.Warnf("BROKER: dropped %s event for slow subscriber", event.Type)
		}
	}
	b.mu.Unlock()
}
