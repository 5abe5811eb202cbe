package tests

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"foodhub/internal/domain"
	"foodhub/internal/service"
)

func TestNotifier_BroadcastReachesAllSubscribers(t *testing.T) {
	notifier := service.NewNotifier()

	first := notifier.Subscribe()
	second := notifier.Subscribe()
	assert.Equal(t, 2, notifier.SubscriberCount())

	event := domain.OrderEvent{OrderID: "o1", Status: "received"}
	notifier.Broadcast(event)

	assert.Equal(t, event, <-first.C())
	assert.Equal(t, event, <-second.C())
}

func TestNotifier_UnsubscribeSignalsDone(t *testing.T) {
	notifier := service.NewNotifier()

	sub := notifier.Subscribe()
	notifier.Unsubscribe(sub)
	assert.Equal(t, 0, notifier.SubscriberCount())

	select {
	case <-sub.Done():
	default:
		t.Fatal("Done not signalled after unsubscribe")
	}

	// Repeated unsubscribe must be harmless.
	notifier.Unsubscribe(sub)

	// Broadcasting with no subscribers must not panic or block.
	notifier.Broadcast(domain.OrderEvent{OrderID: "o1", Status: "received"})
}

// A client can disconnect at any point during a broadcast. Churning
// subscriptions against concurrent broadcasts must never panic the
// broadcasting goroutine.
func TestNotifier_BroadcastDuringUnsubscribeChurn(t *testing.T) {
	notifier := service.NewNotifier()

	stop := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					notifier.Broadcast(domain.OrderEvent{OrderID: "o1", Status: "preparing"})
				}
			}
		}()
	}

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					sub := notifier.Subscribe()
					notifier.Unsubscribe(sub)
				}
			}
		}()
	}

	time.Sleep(200 * time.Millisecond)
	close(stop)
	wg.Wait()

	assert.Equal(t, 0, notifier.SubscriberCount())
}

// One subscriber that never drains its channel must not prevent the
// others from receiving events, and must not block Broadcast forever.
func TestNotifier_SlowSubscriberDoesNotBlockOthers(t *testing.T) {
	notifier := service.NewNotifier()

	stuck := notifier.Subscribe()
	_ = stuck // never read
	active := notifier.Subscribe()

	const events = 20

	done := make(chan struct{})
	go func() {
		for i := 0; i < events; i++ {
			notifier.Broadcast(domain.OrderEvent{OrderID: "o1", Status: "preparing"})
		}
		close(done)
	}()

	received := 0
	timeout := time.After(10 * time.Second)
	for received < events {
		select {
		case <-active.C():
			received++
		case <-timeout:
			t.Fatalf("active subscriber received only %d of %d events", received, events)
		}
	}

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("broadcast blocked on a stuck subscriber")
	}
}
