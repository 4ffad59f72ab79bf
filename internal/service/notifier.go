package service

import "sync"

// notifier fans out state values to subscribers. Each subscriber channel
// holds at most one value: a slow reader only ever sees the latest state.
type notifier[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan T
}

func (n *notifier[T]) subscribe() (<-chan T, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]chan T)
	}
	id := n.nextID
	n.nextID++
	ch := make(chan T, 1)
	n.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (n *notifier[T]) publish(v T) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}
