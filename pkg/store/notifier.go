package store

import (
	"log"
	"sync"
)

type observer struct {
	id int
	fn func()
}

// Notifier is the change-notification mechanism: a single list of
// observers invoked in registration order after every successful
// mutation. One observer's panic is isolated and logged so the rest
// still run and the triggering mutation is unaffected.
type Notifier struct {
	mu        sync.Mutex
	nextID    int
	observers []observer
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers an observer and returns its subscription ID.
func (n *Notifier) Subscribe(fn func()) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	n.observers = append(n.observers, observer{id: n.nextID, fn: fn})
	return n.nextID
}

// Unsubscribe removes the observer with the given subscription ID.
func (n *Notifier) Unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, ob := range n.observers {
		if ob.id == id {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}

// Notify invokes every observer once, in registration order. Observers
// registered or removed during a notification take effect on the next
// one.
func (n *Notifier) Notify() {
	n.mu.Lock()
	current := make([]observer, len(n.observers))
	copy(current, n.observers)
	n.mu.Unlock()

	for _, ob := range current {
		n.invoke(ob)
	}
}

func (n *Notifier) invoke(ob observer) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: change observer %d panicked: %v", ob.id, r)
		}
	}()
	ob.fn()
}
