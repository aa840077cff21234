// Package tree holds the layout tree as a flat arena of nodes addressed by
// index, never by pointer: a node never holds a reference to another node
// directly, only an index into the same Store's Nodes slice. This keeps the
// whole tree a single contiguous value the solver can walk and mutate
// in place without aliasing concerns.
package tree

import "github.com/halfpixel/layex/element"

// Node is one arena slot: its element content by value, its parent's index
// (meaningless when HasParent is false, i.e. the root) and its children's
// indices in insertion order.
type Node struct {
	ParentIdx int
	HasParent bool
	Element   element.Element
	Children  []int
}

// Store is an open-ended arena plus the stack of currently-open container
// indices, mirroring begin/open/close/end of an immediate-mode layout pass.
type Store struct {
	Nodes     []Node
	openStack []int
}

// NewStore creates a store with a single root node built from root, and
// opens it as the current container.
func NewStore(root *element.Element) *Store {
	s := &Store{}
	s.Nodes = append(s.Nodes, Node{HasParent: false, Element: *root})
	s.openStack = append(s.openStack, 0)
	return s
}

// Open appends e as a new child of the currently open container, pushes it
// onto the open stack as the new current container, and returns its index.
// Close never pops the root, so a Store made by NewStore always has a
// container open; Open panics only on a Store whose open stack is empty
// (one not built by NewStore).
func (s *Store) Open(e *element.Element) int {
	if len(s.openStack) == 0 {
		panic("tree: Open called with no open container")
	}
	parent := s.openStack[len(s.openStack)-1]
	idx := len(s.Nodes)
	s.Nodes = append(s.Nodes, Node{ParentIdx: parent, HasParent: true, Element: *e})
	s.Nodes[parent].Children = append(s.Nodes[parent].Children, idx)
	s.openStack = append(s.openStack, idx)
	return idx
}

// Close ends the current container, popping it off the open stack. Closing
// past the root is absorbed silently rather than erroring, matching
// open_element/close_element's tolerance for an unbalanced trailing close.
func (s *Store) Close() {
	if len(s.openStack) <= 1 {
		return
	}
	s.openStack = s.openStack[:len(s.openStack)-1]
}

// Len returns the number of nodes in the arena, including the root.
func (s *Store) Len() int { return len(s.Nodes) }

// Root returns the root node's index, always 0.
func (s *Store) Root() int { return 0 }

// At returns a pointer into the arena for index i, addressable for in-place
// mutation during the solve phases.
func (s *Store) At(i int) *Node { return &s.Nodes[i] }
