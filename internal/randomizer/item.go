package randomizer

// DefaultWeight is the weight of an item created without an explicit weight.
const DefaultWeight = 1.0

// Randomized is anything the Randomizer can pick from. Implementations expose
// the underlying record, so selected values are shared with the caller and never copied.
type Randomized[T any] interface {
	Record() *Item[T]
}

// Propertied is implemented by items that carry extra caller-side metadata.
type Propertied[K comparable, V any] interface {
	Properties() map[K]V
}

// Item pairs a value with its weight. The weight is relative to the other
// items: a bigger weight means the item is picked more often, 0 means never.
type Item[T any] struct {
	Value  T
	Weight float64
}

// NewItem creates an item with DefaultWeight.
func NewItem[T any](value T) *Item[T] {
	return &Item[T]{Value: value, Weight: DefaultWeight}
}

// NewWeightedItem creates an item with the given weight.
func NewWeightedItem[T any](value T, weight float64) *Item[T] {
	return &Item[T]{Value: value, Weight: weight}
}

func (i *Item[T]) Record() *Item[T] {
	return i
}

// ItemWithProps is an Item with a map of additional properties.
// The Randomizer never reads Props.
type ItemWithProps[T any, K comparable, V any] struct {
	Item[T]
	Props map[K]V
}

// NewItemWithProps creates an item with properties. A nil map is replaced with an empty one.
func NewItemWithProps[T any, K comparable, V any](value T, weight float64, props map[K]V) *ItemWithProps[T, K, V] {
	if props == nil {
		props = make(map[K]V)
	}
	return &ItemWithProps[T, K, V]{
		Item:  Item[T]{Value: value, Weight: weight},
		Props: props,
	}
}

// NewPropsItem creates an item with properties and DefaultWeight.
func NewPropsItem[T any, K comparable, V any](value T, props map[K]V) *ItemWithProps[T, K, V] {
	return NewItemWithProps(value, DefaultWeight, props)
}

func (i *ItemWithProps[T, K, V]) Properties() map[K]V {
	return i.Props
}
