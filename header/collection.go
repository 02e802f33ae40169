package header

import (
	"fmt"
	"strings"

	"github.com/corvid-labs/httpcore/status"
)

// entry is one stored header; Collection keeps these in insertion order so
// that iteration and serialisation reproduce the order headers were
// added, while Get/Contains use a case-insensitive name lookup.
type entry struct {
	name  string // as originally supplied, for faithful serialisation
	value string
}

// Collection is an insertion-ordered, case-insensitive-keyed, multi-valued
// header set. It supports a one-way "latch" to read-only, flipped by the
// response serialiser immediately before emission.
type Collection struct {
	entries []entry
	latched bool
}

// NewCollection returns an empty, mutable Collection.
func NewCollection() *Collection {
	return &Collection{}
}

func (c *Collection) checkMutable() error {
	if c.latched {
		return status.ErrReadOnly
	}
	return nil
}

// Add appends a (name, value) pair. If overwrite is true, every existing
// entry sharing the field name (case-insensitively) is removed first.
func (c *Collection) Add(name, value string, overwrite bool) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	h, err := New(name, value)
	if err != nil {
		return err
	}
	if overwrite {
		c.removeLocked(h.Name)
	}
	c.entries = append(c.entries, entry{name: h.Name, value: h.Value})
	return nil
}

// AddHeader appends an already-constructed Header (non-overwrite).
func (c *Collection) AddHeader(h Header) error {
	return c.Add(h.Name, h.Value, false)
}

// Remove deletes every entry with the given field name.
func (c *Collection) Remove(name string) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	c.removeLocked(name)
	return nil
}

func (c *Collection) removeLocked(name string) {
	out := c.entries[:0]
	for _, e := range c.entries {
		if !EqualFold(e.name, name) {
			out = append(out, e)
		}
	}
	c.entries = out
}

// Contains reports whether any entry has the given field name.
func (c *Collection) Contains(name string) bool {
	for _, e := range c.entries {
		if EqualFold(e.name, name) {
			return true
		}
	}
	return false
}

// ContainsHeader reports whether the exact (name, value) pair is present.
func (c *Collection) ContainsHeader(h Header) bool {
	for _, e := range c.entries {
		if EqualFold(e.name, h.Name) && e.value == h.Value {
			return true
		}
	}
	return false
}

// Values returns the ordered sequence of values for name (case
// insensitive). Empty slice if absent.
func (c *Collection) Values(name string) []string {
	var out []string
	for _, e := range c.entries {
		if EqualFold(e.name, name) {
			out = append(out, e.value)
		}
	}
	return out
}

// Get returns the first value for name and whether it was present.
func (c *Collection) Get(name string) (string, bool) {
	for _, e := range c.entries {
		if EqualFold(e.name, name) {
			return e.value, true
		}
	}
	return "", false
}

// Last returns the last value for name and whether it was present. This
// "last occurrence wins" lookup is what the body decoder consults for
// Content-Type.
func (c *Collection) Last(name string) (string, bool) {
	found := false
	var v string
	for _, e := range c.entries {
		if EqualFold(e.name, name) {
			v = e.value
			found = true
		}
	}
	return v, found
}

// Clear removes every entry.
func (c *Collection) Clear() error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	c.entries = nil
	return nil
}

// Each calls fn for every entry in insertion order.
func (c *Collection) Each(fn func(name, value string)) {
	for _, e := range c.entries {
		fn(e.name, e.value)
	}
}

// Latch flips the collection to read-only. Idempotent.
func (c *Collection) Latch() {
	c.latched = true
}

// Latched reports whether the collection has been latched.
func (c *Collection) Latched() bool {
	return c.latched
}

// String renders every entry as "Field: Value\r\n", in insertion order.
func (c *Collection) String() string {
	var b strings.Builder
	for _, e := range c.entries {
		fmt.Fprintf(&b, "%s: %s\r\n", e.name, e.value)
	}
	return b.String()
}

// Len returns the number of stored entries (including duplicates).
func (c *Collection) Len() int {
	return len(c.entries)
}
