package layout

import (
	"github.com/halfpixel/layex/element"
	"github.com/halfpixel/layex/tree"
)

// alignFraction maps this container's configured alignment on axis to a
// 0 (near), 0.5 (center) or 1 (far) fraction of leftover space.
func alignFraction(lc element.LayoutConfig, axis element.Axis) float64 {
	if axis == element.AxisX {
		switch lc.Alignment.X {
		case element.AlignXCenter:
			return 0.5
		case element.AlignXRight:
			return 1
		default:
			return 0
		}
	}
	switch lc.Alignment.Y {
	case element.AlignYCenter:
		return 0.5
	case element.AlignYBottom:
		return 1
	default:
		return 0
	}
}

// positionAxis assigns absolute positions to idx's children on axis, then
// recurses. idx itself is assumed already positioned by its own parent (the
// root keeps its zero-value origin, (0, 0)).
func positionAxis(nodes []tree.Node, idx int, axis element.Axis) {
	node := &nodes[idx]
	if len(node.Children) == 0 {
		return
	}
	origin := node.Element.FinalPos(axis) + node.Element.PaddingNear(axis)
	interior := node.Element.FinalSize(axis) - node.Element.PaddingSum(axis)

	if node.Element.IsPrimaryAxis(axis) {
		gap := node.Element.Layout.ChildGap
		total := gap * float64(len(node.Children)-1)
		for _, c := range node.Children {
			total += nodes[c].Element.FinalSize(axis)
		}
		leftover := interior - total
		if leftover < 0 {
			leftover = 0
		}
		cursor := origin + leftover*alignFraction(node.Element.Layout, axis)
		for _, c := range node.Children {
			nodes[c].Element.SetFinalPos(axis, cursor)
			cursor += nodes[c].Element.FinalSize(axis) + gap
		}
	} else {
		for _, c := range node.Children {
			size := nodes[c].Element.FinalSize(axis)
			leftover := interior - size
			if leftover < 0 {
				leftover = 0
			}
			nodes[c].Element.SetFinalPos(axis, origin+leftover*alignFraction(node.Element.Layout, axis))
		}
	}

	for _, c := range node.Children {
		positionAxis(nodes, c, axis)
	}
}
