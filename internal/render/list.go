// Package render paints sequences of items into named containers.
package render

// DefaultEmptyMessage is shown when a list has nothing to paint.
const DefaultEmptyMessage = "No results."

// Container is an addressable slot holding either rendered nodes or an
// empty-state message. The zero value is an empty container.
type Container[N any] struct {
	nodes []*N
	empty string
	blank bool
}

// Clear removes all content.
func (c *Container[N]) Clear() {
	if c == nil {
		return
	}
	c.nodes = nil
	c.empty = ""
	c.blank = false
}

// Nodes returns the painted nodes in order.
func (c *Container[N]) Nodes() []*N {
	if c == nil {
		return nil
	}
	return c.nodes
}

// Len is the number of painted nodes.
func (c *Container[N]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.nodes)
}

// At returns the i-th node, or nil when out of range.
func (c *Container[N]) At(i int) *N {
	if c == nil || i < 0 || i >= len(c.nodes) {
		return nil
	}
	return c.nodes[i]
}

// EmptyMessage returns the empty-state message and whether one is shown.
func (c *Container[N]) EmptyMessage() (string, bool) {
	if c == nil {
		return "", false
	}
	return c.empty, c.blank
}

// HasContent reports whether anything is painted, the empty-state message included.
func (c *Container[N]) HasContent() bool {
	return c.Len() > 0 || c != nil && c.blank
}

type options struct {
	empty string
}

// Option tunes a List call.
type Option func(*options)

// WithEmptyMessage overrides DefaultEmptyMessage.
func WithEmptyMessage(msg string) Option {
	return func(o *options) { o.empty = msg }
}

// List replaces the content of c with one node per item. Items whose builder
// returns nil are skipped. An empty items slice paints the empty-state
// message instead. A nil container is ignored.
func List[T, N any](c *Container[N], items []T, build func(T) *N, opts ...Option) {
	if c == nil {
		return
	}
	o := options{empty: DefaultEmptyMessage}
	for _, opt := range opts {
		opt(&o)
	}

	c.Clear()
	if len(items) == 0 {
		c.empty = o.empty
		c.blank = true
		return
	}

	frag := make([]*N, 0, len(items))
	for _, item := range items {
		if node := build(item); node != nil {
			frag = append(frag, node)
		}
	}
	c.nodes = frag
}
