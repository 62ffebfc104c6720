// Package notify implements observer lists in the style of
// wl_signal. A Signal holds a list of callbacks that are all invoked,
// in the order in which they were added, whenever the signal is
// emitted. Each callback is represented by a Listener which can be
// used to remove it again.
//
// Signals are not safe for concurrent use.
package notify

import "golang.org/x/exp/slices"

// Listener is a handle to a callback registered with a Signal.
type Listener struct {
	removed bool
	unlink  func()
}

// Remove removes the listener from the signal that it was added to.
// It is safe to call Remove on a nil Listener, more than once, and from
// inside of a callback while the signal is being emitted. A removed
// listener will not be called, even if the signal is already in the
// middle of being emitted.
func (l *Listener) Remove() {
	if (l == nil) || l.removed {
		return
	}
	l.removed = true
	if l.unlink != nil {
		l.unlink()
		l.unlink = nil
	}
}

// Removed reports whether the listener has been removed.
func (l *Listener) Removed() bool {
	return (l == nil) || l.removed
}

type slot[T any] struct {
	l *Listener
	f func(T)
}

// Signal is a list of callbacks. The zero value is an empty Signal
// ready to use.
type Signal[T any] struct {
	slots []slot[T]
}

// Add registers f to be called when the signal is emitted.
func (s *Signal[T]) Add(f func(T)) *Listener {
	l := &Listener{}
	l.unlink = func() {
		s.slots = slices.DeleteFunc(s.slots, func(sl slot[T]) bool { return sl.l == l })
	}
	s.slots = append(s.slots, slot[T]{l: l, f: f})
	return l
}

// Emit calls every registered callback with v. Callbacks added during
// emission are not called until the next emission.
func (s *Signal[T]) Emit(v T) {
	for _, sl := range slices.Clone(s.slots) {
		if sl.l.removed {
			continue
		}
		sl.f(v)
	}
}

// Clear removes all listeners.
func (s *Signal[T]) Clear() {
	slots := s.slots
	s.slots = nil
	for _, sl := range slots {
		sl.l.removed = true
		sl.l.unlink = nil
	}
}

// Len returns the number of listeners currently registered.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}

// Destroy is a signal that fires exactly once, when an object is
// destroyed. Every listener is removed after it fires.
type Destroy struct {
	sig   Signal[struct{}]
	fired bool
}

// Add registers f to be called when the object is destroyed. If the
// object has already been destroyed, f is not registered and nil is
// returned.
func (d *Destroy) Add(f func()) *Listener {
	if d.fired {
		return nil
	}
	return d.sig.Add(func(struct{}) { f() })
}

// Emit fires the signal. Calls after the first do nothing.
func (d *Destroy) Emit() {
	if d.fired {
		return
	}
	d.fired = true
	d.sig.Emit(struct{}{})
	d.sig.Clear()
}

// Fired reports whether Emit has been called.
func (d *Destroy) Fired() bool {
	return d.fired
}
