package layout

import (
	"github.com/halfpixel/layex/element"
	"github.com/halfpixel/layex/tree"
)

// Context drives one immediate-mode layout pass: Begin opens the root,
// Open/Close nest children exactly like tree.Store's stack, and End runs
// the six-phase solve and returns the flat render command list.
type Context struct {
	store *tree.Store
}

// Begin starts a new pass rooted at root, sized by width x height. Per the
// public API surface, begin_layout takes only a window size (and root's own
// direction, already configured on root) — text measurement atlases live on
// each text element's own builder call, not here.
func Begin(root *element.Element, width, height float64) *Context {
	root.Sizing(element.FixedSizing(width), element.FixedSizing(height))
	store := tree.NewStore(root)
	return &Context{store: store}
}

// Open opens e as a new child of the current container and returns its
// arena index, should a caller need to refer back to it.
func (c *Context) Open(e *element.Element) int { return c.store.Open(e) }

// Close ends the current container.
func (c *Context) Close() { c.store.Close() }

// End runs the solve over everything opened since Begin and returns the
// resulting render commands.
func (c *Context) End() []RenderCommand {
	return Solve(c.store)
}

// Solve runs the six phases over store's arena in place and returns the
// emitted command list: width fit/distribute, text wrap, height
// fit/distribute, then X and Y positioning.
func Solve(store *tree.Store) []RenderCommand {
	nodes := store.Nodes
	root := store.Root()

	sizeAxis(nodes, root, element.AxisX)
	distributeAxis(nodes, root, element.AxisX)
	wrapPhase(nodes)
	sizeAxis(nodes, root, element.AxisY)
	distributeAxis(nodes, root, element.AxisY)
	positionAxis(nodes, root, element.AxisX)
	positionAxis(nodes, root, element.AxisY)

	elems := make([]element.Element, len(nodes))
	for i := range nodes {
		elems[i] = nodes[i].Element
	}
	return Emit(elems)
}
