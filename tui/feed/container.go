package feed

// Container is the feed list elements are rendered into. Shared by copies
// of the Model, like the rest of its reference state.
type Container struct {
	elements []*Element
	index    map[string]int
	gen      int // bumped on every structural change
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{index: make(map[string]int)}
}

// Clear removes every element.
func (c *Container) Clear() {
	c.elements = nil
	c.index = make(map[string]int)
	c.gen++
}

// Add appends el at the end.
func (c *Container) Add(el *Element) {
	c.index[el.ID] = len(c.elements)
	c.elements = append(c.elements, el)
	c.gen++
}

// Len is the number of elements.
func (c *Container) Len() int {
	return len(c.elements)
}

// At returns the element at position i, or nil.
func (c *Container) At(i int) *Element {
	if i < 0 || i >= len(c.elements) {
		return nil
	}
	return c.elements[i]
}

// ByID finds an element and its position.
func (c *Container) ByID(id string) (*Element, int) {
	i, ok := c.index[id]
	if !ok {
		return nil, -1
	}
	return c.elements[i], i
}

// Elements returns the elements in document order. The slice is shared.
func (c *Container) Elements() []*Element {
	return c.elements
}
