package cookie

import "github.com/corvid-labs/httpcore/status"

// Collection is a name-unique, latchable set of cookies. Adding a cookie
// with an existing name replaces the prior entry, preserving its position.
type Collection struct {
	order   []string
	byName  map[string]*Cookie
	latched bool
}

// NewCollection returns an empty, mutable Collection.
func NewCollection() *Collection {
	return &Collection{byName: map[string]*Cookie{}}
}

func (c *Collection) checkMutable() error {
	if c.latched {
		return status.ErrReadOnly
	}
	return nil
}

// Add inserts or replaces (by name) a cookie.
func (c *Collection) Add(ck *Cookie) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	if _, exists := c.byName[ck.Name]; !exists {
		c.order = append(c.order, ck.Name)
	}
	c.byName[ck.Name] = ck
	return nil
}

// Get returns the cookie with the given name, if any.
func (c *Collection) Get(name string) (*Cookie, bool) {
	ck, ok := c.byName[name]
	return ck, ok
}

// Remove deletes the cookie with the given name.
func (c *Collection) Remove(name string) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	if _, exists := c.byName[name]; !exists {
		return nil
	}
	delete(c.byName, name)
	out := c.order[:0]
	for _, n := range c.order {
		if n != name {
			out = append(out, n)
		}
	}
	c.order = out
	return nil
}

// Each calls fn for every cookie in insertion order.
func (c *Collection) Each(fn func(*Cookie)) {
	for _, name := range c.order {
		fn(c.byName[name])
	}
}

// Len returns the number of distinct cookies.
func (c *Collection) Len() int {
	return len(c.order)
}

// Latch flips the collection to read-only. Idempotent.
func (c *Collection) Latch() {
	c.latched = true
}

// Latched reports whether the collection has been latched.
func (c *Collection) Latched() bool {
	return c.latched
}
