package layout

import (
	"github.com/halfpixel/layex/element"
	"github.com/halfpixel/layex/tree"
)

// sizeAxis resolves idx's size on axis bottom-up: children are sized before
// their parent so a Fit container can sum or max over already-known child
// sizes. Grow children receive their content-driven basis size here; the
// later distribute pass raises them to fill available space.
func sizeAxis(nodes []tree.Node, idx int, axis element.Axis) {
	node := &nodes[idx]
	for _, c := range node.Children {
		sizeAxis(nodes, c, axis)
	}

	sizing := node.Element.SizingOf(axis)
	var size float64
	if sizing.Kind == element.Fixed {
		size = sizing.Value
	} else { // Fit and Grow both start from the content/children basis
		content := contentSize(&node.Element, axis)
		childrenAlong := childrenContribution(nodes, node, axis)
		size = content + childrenAlong + node.Element.PaddingSum(axis)
	}
	size = node.Element.LimitOf(axis).Clamp(size)
	node.Element.SetFinalSize(axis, size)
}

// contentSize returns the intrinsic size a leaf element's own content
// demands on axis, ignoring children (containers have none). It is only
// reached for non-Fixed sizing: a Text element's width and an Image's both
// axes are already resolved to Fixed at construction time (builder.Text,
// builder.Image), so in practice this only computes a Text element's Fit
// height, using the line count the wrap phase has produced by now, measured
// against the atlas that element was itself built with.
func contentSize(e *element.Element, axis element.Axis) float64 {
	if e.Kind != element.TextKind || e.Text == nil || axis != element.AxisY {
		return 0
	}
	lh := element.LineHeight(e.Text.Atlas, e.Text.FontSize)
	e.Text.LineHeightPx = lh
	return lh * float64(len(e.Text.SplitIndices)+1)
}

// childrenContribution folds children's already-resolved sizes on axis:
// summed plus gaps along the primary axis, maxed along the cross axis.
func childrenContribution(nodes []tree.Node, node *tree.Node, axis element.Axis) float64 {
	if len(node.Children) == 0 {
		return 0
	}
	if node.Element.IsPrimaryAxis(axis) {
		total := node.Element.Layout.ChildGap * float64(len(node.Children)-1)
		for _, c := range node.Children {
			total += nodes[c].Element.FinalSize(axis)
		}
		return total
	}
	max := 0.0
	for _, c := range node.Children {
		if v := nodes[c].Element.FinalSize(axis); v > max {
			max = v
		}
	}
	return max
}
