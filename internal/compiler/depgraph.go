package compiler

// DepGraph tracks which node produces which values and which nodes consume
// them. K is the node key (definitions, by pointer identity), V the value
// (dependencies). Empty sets are pruned on removal so the graph never leaks
// entries for values nobody touches anymore.
type DepGraph[K comparable, V comparable] struct {
	products  map[K]map[V]struct{}
	consumed  map[K]map[V]struct{}
	producers map[V]map[K]struct{}
	consumers map[V]map[K]struct{}
}

func NewDepGraph[K comparable, V comparable]() *DepGraph[K, V] {
	return &DepGraph[K, V]{
		products:  map[K]map[V]struct{}{},
		consumed:  map[K]map[V]struct{}{},
		producers: map[V]map[K]struct{}{},
		consumers: map[V]map[K]struct{}{},
	}
}

// Produce records that node produces value.
func (g *DepGraph[K, V]) Produce(node K, value V) {
	insert(g.products, node, value)
	insert(g.producers, value, node)
}

// Consume records that node consumes value.
func (g *DepGraph[K, V]) Consume(node K, value V) {
	insert(g.consumed, node, value)
	insert(g.consumers, value, node)
}

// Invalidate returns the transitive closure of nodes affected by a change
// to node: node itself, every consumer of its products, and so on through
// their products. The visited set makes cycles terminate.
func (g *DepGraph[K, V]) Invalidate(node K) map[K]struct{} {
	visited := map[K]struct{}{}
	g.invalidate(node, visited)
	return visited
}

func (g *DepGraph[K, V]) invalidate(node K, visited map[K]struct{}) {
	if _, ok := visited[node]; ok {
		return
	}
	visited[node] = struct{}{}
	for value := range g.products[node] {
		for consumer := range g.consumers[value] {
			g.invalidate(consumer, visited)
		}
	}
}

// Remove unregisters node entirely.
func (g *DepGraph[K, V]) Remove(node K) {
	for value := range g.products[node] {
		remove(g.producers, value, node)
	}
	for value := range g.consumed[node] {
		remove(g.consumers, value, node)
	}
	delete(g.products, node)
	delete(g.consumed, node)
}

// Producers returns the nodes currently producing value.
func (g *DepGraph[K, V]) Producers(value V) map[K]struct{} {
	return g.producers[value]
}

// Consumers returns the nodes currently consuming value.
func (g *DepGraph[K, V]) Consumers(value V) map[K]struct{} {
	return g.consumers[value]
}

func insert[A comparable, B comparable](m map[A]map[B]struct{}, a A, b B) {
	if m[a] == nil {
		m[a] = map[B]struct{}{}
	}
	m[a][b] = struct{}{}
}

func remove[A comparable, B comparable](m map[A]map[B]struct{}, a A, b B) {
	set := m[a]
	delete(set, b)
	if len(set) == 0 {
		delete(m, a)
	}
}
