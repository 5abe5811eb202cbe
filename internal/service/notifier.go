package service

import (
	"log"
	"sync"
	"time"

	"foodhub/internal/domain"
)

const (
	subscriptionBuffer = 16
	defaultSendTimeout = 100 * time.Millisecond
)

// Subscription is one connected client's view of the event stream.
// Events arrive on C until Unsubscribe signals Done. The event channel
// is never closed: Broadcast may still be mid-send when a subscriber
// departs, and sending on a closed channel would panic the caller.
type Subscription struct {
	ch   chan domain.OrderEvent
	done chan struct{}
	once sync.Once
}

func (s *Subscription) C() <-chan domain.OrderEvent {
	return s.ch
}

// Done is closed when the subscription has been torn down and no
// further events will arrive.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Notifier fans order events out to all current subscribers. Delivery
// is best-effort: a subscriber that cannot accept an event within the
// send timeout has that event dropped, and one dead subscriber never
// blocks the rest or the request that triggered the broadcast.
type Notifier struct {
	mu          sync.RWMutex
	subs        map[*Subscription]struct{}
	sendTimeout time.Duration
}

func NewNotifier() *Notifier {
	return &Notifier{
		subs:        make(map[*Subscription]struct{}),
		sendTimeout: defaultSendTimeout,
	}
}

func (n *Notifier) Subscribe() *Subscription {
	sub := &Subscription{
		ch:   make(chan domain.OrderEvent, subscriptionBuffer),
		done: make(chan struct{}),
	}
	n.mu.Lock()
	n.subs[sub] = struct{}{}
	n.mu.Unlock()
	return sub
}

func (n *Notifier) Unsubscribe(sub *Subscription) {
	n.mu.Lock()
	delete(n.subs, sub)
	n.mu.Unlock()
	sub.once.Do(func() { close(sub.done) })
}

func (n *Notifier) Broadcast(event domain.OrderEvent) {
	n.mu.RLock()
	subs := make([]*Subscription, 0, len(n.subs))
	for sub := range n.subs {
		subs = append(subs, sub)
	}
	n.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-sub.done:
		case sub.ch <- event:
		default:
			timer := time.NewTimer(n.sendTimeout)
			select {
			case <-sub.done:
				timer.Stop()
			case sub.ch <- event:
				timer.Stop()
			case <-timer.C:
				log.Printf("[notifier] dropped event for order %s: subscriber too slow", event.OrderID)
			}
		}
	}
}

func (n *Notifier) SubscriberCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}

var _ Broadcaster = (*Notifier)(nil)
