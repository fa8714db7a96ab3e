// Package randomizer picks items at random in proportion to their weights.
package randomizer

import (
	"fmt"
	"math"
	"sync"
)

// Randomizer draws items from a weighted population. The total weight is
// cached and only recomputed after the population is replaced with SetItems.
//
// Mutating the weights of items that are already in the Randomizer is not
// tracked. Call SetItems again to make such changes visible.
type Randomizer[T any] struct {
	mu       sync.Mutex
	items    []Randomized[T]
	total    float64
	dirty    bool
	source   Source
	observer Observer
}

// New creates a Randomizer over items. It fails if any item has a negative or non-finite weight.
func New[T any](items []Randomized[T], opts ...Option) (*Randomizer[T], error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = NewSource(0)
	}
	if o.observer == nil {
		o.observer = nopObserver{}
	}

	r := &Randomizer[T]{
		source:   o.source,
		observer: o.observer,
	}
	if err := r.SetItems(items); err != nil {
		return nil, err
	}
	return r, nil
}

// SetItems replaces the population and marks the cached total as stale.
// On a validation error the previous population is kept.
func (r *Randomizer[T]) SetItems(items []Randomized[T]) error {
	if err := validate(items); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = items
	r.dirty = true
	return nil
}

// Items returns the current population.
func (r *Randomizer[T]) Items() []Randomized[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items
}

// TotalWeight returns the sum of all weights, recomputing it if the population changed.
func (r *Randomizer[T]) TotalWeight() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calcTotal()
}

// Next draws count items with replacement. The returned items are the same
// values that were passed to SetItems. A zero count always succeeds with an
// empty result. A failed call returns no items.
func (r *Randomizer[T]) Next(count int) ([]Randomized[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if count < 0 {
		return nil, r.fail(fmt.Errorf("%w: %d", ErrInvalidCount, count))
	}

	res := make([]Randomized[T], 0, count)
	if count == 0 {
		return res, nil
	}

	total := r.calcTotal()
	if !(total > 0) || math.IsInf(total, 1) {
		return nil, r.fail(fmt.Errorf("%w: total weight %v of %d items", ErrEmptyPopulation, total, len(r.items)))
	}

	for i := 0; i < count; i++ {
		idx := r.pick(r.source.Float64() * total)
		r.observer.Selected(idx)
		res = append(res, r.items[idx])
	}
	return res, nil
}

// NextOne draws a single item.
func (r *Randomizer[T]) NextOne() (Randomized[T], error) {
	res, err := r.Next(1)
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

func (r *Randomizer[T]) fail(err error) error {
	r.observer.Failed(err)
	return err
}

// calcTotal must be called with mu held.
func (r *Randomizer[T]) calcTotal() float64 {
	if !r.dirty {
		return r.total
	}

	var total float64
	for _, it := range r.items {
		total += it.Record().Weight
	}
	r.total = total
	r.dirty = false
	r.observer.TotalComputed(total)
	return total
}

// pick returns the index of the first item whose cumulative weight is >= x.
// Zero weight items are skipped, so they can't be picked even when x is 0.
func (r *Randomizer[T]) pick(x float64) int {
	var sum float64
	last := 0
	for i, it := range r.items {
		w := it.Record().Weight
		if w == 0 {
			continue
		}
		sum += w
		last = i
		if sum >= x {
			return i
		}
	}
	// rounding can leave x a hair above the final sum
	return last
}

func validate[T any](items []Randomized[T]) error {
	for i, it := range items {
		if it == nil || it.Record() == nil {
			return fmt.Errorf("item %d: %w", i, ErrNilItem)
		}
		w := it.Record().Weight
		switch {
		case math.IsNaN(w) || math.IsInf(w, 0):
			return fmt.Errorf("item %d: %w: %v", i, ErrInvalidWeight, w)
		case w < 0:
			return fmt.Errorf("item %d: %w: %v", i, ErrNegativeWeight, w)
		}
	}
	return nil
}
