// Package state holds the per-screen data-dependency machinery: a
// tagged loading/loaded/errored union with wholesale replacement on
// success, and a generation counter so a slow response issued for a
// stale screen can never overwrite a newer one.
package state

type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Errored
)

// Resource is one data dependency of a screen. All work runs on the
// UI goroutine (responses are applied via dispatch), so there is no
// locking; the generation check is the only discipline needed.
type Resource[T any] struct {
	status Status
	data   T
	err    string
	gen    uint64
}

// Begin marks the resource loading and returns the generation the
// caller must present when the fetch settles. Data from a prior load
// is retained until the fetch resolves.
func (r *Resource[T]) Begin() uint64 {
	r.gen++
	r.status = Loading
	r.err = ""
	return r.gen
}

// Complete applies a successful result, replacing data wholesale.
// It reports whether the result was applied; a stale generation is
// discarded without touching state.
func (r *Resource[T]) Complete(gen uint64, data T) bool {
	if gen != r.gen {
		return false
	}
	r.status = Loaded
	r.data = data
	r.err = ""
	return true
}

// Fail applies a failure. clear selects the screen's policy for items
// from a prior successful load: dropped, or retained under the error.
func (r *Resource[T]) Fail(gen uint64, msg string, clear bool) bool {
	if gen != r.gen {
		return false
	}
	r.status = Errored
	r.err = msg
	if clear {
		var zero T
		r.data = zero
	}
	return true
}

// Reset returns the resource to Idle and invalidates any in-flight
// generation, so a response issued before the reset is discarded.
func (r *Resource[T]) Reset() {
	gen := r.gen + 1
	*r = Resource[T]{gen: gen}
}

func (r *Resource[T]) Status() Status { return r.status }
func (r *Resource[T]) Data() T        { return r.data }
func (r *Resource[T]) Err() string    { return r.err }

func (r *Resource[T]) Loading() bool { return r.status == Loading }
func (r *Resource[T]) Loaded() bool  { return r.status == Loaded }
func (r *Resource[T]) Errored() bool { return r.status == Errored }

// Join composes the statuses of several dependencies all-or-nothing:
// any failure makes the whole screen errored, and loading clears only
// once every dependency has settled.
func Join(statuses ...Status) Status {
	joined := Loaded
	for _, s := range statuses {
		switch s {
		case Errored:
			return Errored
		case Idle, Loading:
			joined = Loading
		}
	}
	if len(statuses) == 0 {
		return Idle
	}
	return joined
}
