package randomizer

// Observer receives notifications about the Randomizer's work.
// Calls are made while the Randomizer's lock is held, so they must be fast.
type Observer interface {
	// TotalComputed is called every time the total weight is recomputed.
	TotalComputed(total float64)
	// Selected is called for every drawn item with its index in the current sequence.
	Selected(index int)
	// Failed is called when Next returns an error.
	Failed(err error)
}

type nopObserver struct{}

func (nopObserver) TotalComputed(float64) {}
func (nopObserver) Selected(int)          {}
func (nopObserver) Failed(error)          {}

// Option configures a Randomizer.
type Option func(*options)

type options struct {
	source   Source
	observer Observer
}

// WithSource sets the random source. By default a time-seeded source is used.
func WithSource(src Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithObserver sets the observer notified about recomputations and draws.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}
