package dsf

import "fmt"

// Keyed is an element with a canonical key.
type Keyed[K comparable] interface {
	Key() K
}

// Forest is a disjoint-set forest over elements of type T identified by K.
type Forest[K comparable, T Keyed[K]] struct {
	elems  map[K]T   // key -> registered element
	parent map[K]K   // key -> parent key; roots point to themselves
	rank   map[K]int // upper bound on subtree height, meaningful for roots
	sets   int       // number of disjoint sets
}

// New returns an empty Forest.
func New[K comparable, T Keyed[K]]() *Forest[K, T] {
	return NewWithCapacity[K, T](0)
}

// NewWithCapacity returns an empty Forest presized for n elements.
func NewWithCapacity[K comparable, T Keyed[K]](n int) *Forest[K, T] {
	return &Forest[K, T]{
		elems:  make(map[K]T, n),
		parent: make(map[K]K, n),
		rank:   make(map[K]int, n),
	}
}

// MakeSet registers e as a new singleton set.
func (f *Forest[K, T]) MakeSet(e T) error {
	k := e.Key()
	if _, ok := f.parent[k]; ok {
		return fmt.Errorf("MakeSet(%v): %w", k, ErrDuplicateEntity)
	}
	f.elems[k] = e
	f.parent[k] = k
	f.rank[k] = 0
	f.sets++
	return nil
}

// Find returns the representative of the set containing e.
func (f *Forest[K, T]) Find(e T) (T, error) {
	k := e.Key()
	if _, ok := f.parent[k]; !ok {
		var zero T
		return zero, fmt.Errorf("Find(%v): %w", k, ErrUnknownEntity)
	}
	return f.elems[f.root(k)], nil
}

// root follows parent links to the root, splitting the path on the way.
// k must be registered.
func (f *Forest[K, T]) root(k K) K {
	for {
		p := f.parent[k]
		if p == k {
			return k
		}
		f.parent[k] = f.parent[p]
		k = p
	}
}

// Union merges the sets containing a and b. It reports whether a merge took
// place; joining two members of the same set is a no-op.
func (f *Forest[K, T]) Union(a, b T) (bool, error) {
	ka, kb := a.Key(), b.Key()
	if _, ok := f.parent[ka]; !ok {
		return false, fmt.Errorf("Union(%v, %v): %v: %w", ka, kb, ka, ErrUnknownEntity)
	}
	if _, ok := f.parent[kb]; !ok {
		return false, fmt.Errorf("Union(%v, %v): %v: %w", ka, kb, kb, ErrUnknownEntity)
	}

	ra, rb := f.root(ka), f.root(kb)
	if ra == rb {
		return false, nil
	}
	// Keep ra as the higher-rank root; ties favor the first argument.
	if f.rank[ra] < f.rank[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	if f.rank[ra] == f.rank[rb] {
		f.rank[ra]++
	}
	f.sets--
	return true, nil
}

// Connected reports whether a and b belong to the same set.
func (f *Forest[K, T]) Connected(a, b T) (bool, error) {
	ra, err := f.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := f.Find(b)
	if err != nil {
		return false, err
	}
	return ra.Key() == rb.Key(), nil
}

// Depth returns the number of parent links between e and its root without
// compressing the path.
func (f *Forest[K, T]) Depth(e T) (int, error) {
	k := e.Key()
	if _, ok := f.parent[k]; !ok {
		return 0, fmt.Errorf("Depth(%v): %w", k, ErrUnknownEntity)
	}
	d := 0
	for p := f.parent[k]; p != k; p = f.parent[k] {
		k = p
		d++
	}
	return d, nil
}

// Rank returns the rank recorded for e.
func (f *Forest[K, T]) Rank(e T) (int, error) {
	k := e.Key()
	r, ok := f.rank[k]
	if !ok {
		return 0, fmt.Errorf("Rank(%v): %w", k, ErrUnknownEntity)
	}
	return r, nil
}

// Len returns the number of registered elements.
func (f *Forest[K, T]) Len() int { return len(f.parent) }

// Sets returns the number of disjoint sets.
func (f *Forest[K, T]) Sets() int { return f.sets }
