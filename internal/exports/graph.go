package exports

import (
	"fmt"

	"fortio.org/safecast"
)

// Graph is the public export surface of a compiled module: an arena of
// elements addressed by stable IDs plus the ordered root export list. It is
// built once by the upstream compiler stage and stays immutable for the
// duration of a render.
type Graph struct {
	elems   []Element
	Exports []Member

	// Memory64 selects the 64-bit representation for pointer-sized
	// primitive kinds.
	Memory64 bool
}

// NewGraph creates an empty graph for the given addressing width.
func NewGraph(memory64 bool) *Graph {
	g := &Graph{Memory64: memory64}
	g.elems = append(g.elems, Element{}) // reserve 0 as invalid sentinel
	return g
}

// Add appends an element to the arena and returns its stable ID.
func (g *Graph) Add(e Element) ElemID {
	id, err := safecast.Conv[uint32](len(g.elems))
	if err != nil {
		panic(fmt.Errorf("element arena overflow: %w", err))
	}
	g.elems = append(g.elems, e)
	return ElemID(id)
}

// Get returns the element for the given ID, or nil when the ID is invalid.
func (g *Graph) Get(id ElemID) *Element {
	if id == NoElemID || int(id) >= len(g.elems) {
		return nil
	}
	return &g.elems[id]
}

// Export registers a root export under the given name, preserving
// declaration order.
func (g *Graph) Export(name string, id ElemID) {
	g.Exports = append(g.Exports, Member{Name: name, Elem: id})
}

// Len returns the number of elements in the arena, excluding the sentinel.
func (g *Graph) Len() int {
	return len(g.elems) - 1
}
