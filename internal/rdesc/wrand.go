// Package rdesc describes randomizer populations in a serializable form.
package rdesc

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/petuhovskiy/wrand/internal/randomizer"
)

// Wrand is a weighted population that can be deserialized from JSON, e.g.
//
//	[{"Item": "Cat"}, {"Item": "Zebra", "Weight": 4.3, "Props": {"stripes": 5}}]
type Wrand[T any] []WrandItem[T]

type WrandItem[T any] struct {
	// Weight of the item. Defaults to randomizer.DefaultWeight if not set.
	Weight *float64
	Item   T
	// Optional properties. If set, the item becomes a randomizer.ItemWithProps.
	Props map[string]any
}

// UnmarshalText decodes a JSON array, so Wrand can be used as an env variable.
func (w *Wrand[T]) UnmarshalText(text []byte) error {
	var items []WrandItem[T]
	if err := json.Unmarshal(text, &items); err != nil {
		return fmt.Errorf("failed to unmarshal wrand: %w", err)
	}
	*w = items
	return nil
}

// Items converts the description into randomizer items.
func (w Wrand[T]) Items() []randomizer.Randomized[T] {
	res := make([]randomizer.Randomized[T], 0, len(w))
	for _, it := range w {
		weight := randomizer.DefaultWeight
		if it.Weight != nil {
			weight = *it.Weight
		}

		if len(it.Props) == 0 {
			res = append(res, randomizer.NewWeightedItem(it.Item, weight))
			continue
		}
		res = append(res, randomizer.NewItemWithProps(it.Item, weight, maps.Clone(it.Props)))
	}
	return res
}

// Randomizer creates a randomizer over the described items.
func (w Wrand[T]) Randomizer(opts ...randomizer.Option) (*randomizer.Randomizer[T], error) {
	return randomizer.New(w.Items(), opts...)
}
