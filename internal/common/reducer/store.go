// Package reducer provides the state container shared by the game and
// auth stores: a value of type S that only changes by folding actions of
// type A through a pure reduce function.
package reducer

import "sync"

// Func computes the next state from the current state and an action.
// It must not mutate its input.
type Func[S, A any] func(state S, action A) S

// Listener observes committed states. It is called once per dispatch,
// after the new state is visible through Store.State.
type Listener[S, A any] func(state S, action A)

type subscription[S, A any] struct {
	id int
	fn Listener[S, A]
}

// Store holds a state value and serializes every transition.
//
// Dispatch runs reduce, commit and listener notification to completion
// before the next Dispatch starts, so listeners observe actions in the
// order they were issued. Listeners may read State but must not call
// Dispatch synchronously; schedule the follow-up instead.
type Store[S, A any] struct {
	dispatchMu sync.Mutex

	mu     sync.RWMutex
	state  S
	reduce Func[S, A]
	subs   []subscription[S, A]
	nextID int
}

// New creates a store with an initial state.
func New[S, A any](initial S, reduce Func[S, A]) *Store[S, A] {
	return &Store[S, A]{
		state:  initial,
		reduce: reduce,
	}
}

// State returns the current committed state.
func (s *Store[S, A]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies action and notifies listeners. It returns the state
// produced by this action.
func (s *Store[S, A]) Dispatch(action A) S {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	next := s.reduce(s.state, action)
	s.state = next
	subs := make([]subscription[S, A], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next, action)
	}
	return next
}

// Subscribe registers fn and returns a function that removes it.
// Listeners are called in subscription order.
func (s *Store[S, A]) Subscribe(fn Listener[S, A]) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription[S, A]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Store[S, A]) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}
