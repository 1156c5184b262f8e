package types

// Inferred is an identity-keyed cache: keys are node pointers (or interfaces
// wrapping them), so two occurrences of the same name never collide and a
// lookup is valid exactly as long as the tree it came from.
type Inferred[K comparable, V any] struct {
	m map[K]V
}

func newInferred[K comparable, V any]() *Inferred[K, V] {
	return &Inferred[K, V]{m: map[K]V{}}
}

// Get returns the inferred value for key, if any.
func (i *Inferred[K, V]) Get(key K) (V, bool) {
	v, ok := i.m[key]
	return v, ok
}

// Len returns the number of inferred entries.
func (i *Inferred[K, V]) Len() int {
	return len(i.m)
}

func (i *Inferred[K, V]) set(key K, value V) {
	i.m[key] = value
}

// InferredMany is an identity-keyed multi-value cache preserving insertion
// order per key.
type InferredMany[K comparable, V any] struct {
	m map[K][]V
}

func newInferredMany[K comparable, V any]() *InferredMany[K, V] {
	return &InferredMany[K, V]{m: map[K][]V{}}
}

// Get returns the inferred values for key in insertion order.
func (i *InferredMany[K, V]) Get(key K) []V {
	return i.m[key]
}

func (i *InferredMany[K, V]) add(key K, value V) {
	i.m[key] = append(i.m[key], value)
}
