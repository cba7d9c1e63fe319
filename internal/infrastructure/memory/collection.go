package memory

// collection é uma lista de registros em ordem de inserção, com busca linear
type collection[T any] struct {
	items []T
	key   func(T) int
	owner func(T) int
}

func newCollection[T any](items []T, key, owner func(T) int) collection[T] {
	return collection[T]{items: append([]T(nil), items...), key: key, owner: owner}
}

func (c *collection[T]) all() []T {
	return append([]T{}, c.items...)
}

func (c *collection[T]) byOwner(ownerID int) []T {
	out := []T{}
	for _, item := range c.items {
		if c.owner(item) == ownerID {
			out = append(out, item)
		}
	}
	return out
}

func (c *collection[T]) find(id int) (T, bool) {
	for _, item := range c.items {
		if c.key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// nextID é sempre maior que qualquer chave presente, mesmo após remoções
func (c *collection[T]) nextID() int {
	maxID := 0
	for _, item := range c.items {
		if k := c.key(item); k > maxID {
			maxID = k
		}
	}
	return maxID + 1
}

func (c *collection[T]) add(item T) {
	c.items = append(c.items, item)
}

func (c *collection[T]) remove(id int) bool {
	for i, item := range c.items {
		if c.key(item) == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
