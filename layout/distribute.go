package layout

import (
	"math"

	"github.com/halfpixel/layex/element"
	"github.com/halfpixel/layex/tree"
)

// epsilon is the stopping slack below which growth rounds no longer run.
const epsilon = 0.01

// distributeAxis walks the tree top-down: by the time it visits idx, idx's
// own size on axis is final, so it can hand out exactly that much space to
// its children, either growing primary-axis Grow children evenly up to
// fill the remaining slack, or stretching cross-axis Grow children flush
// to the interior.
func distributeAxis(nodes []tree.Node, idx int, axis element.Axis) {
	node := &nodes[idx]
	if len(node.Children) > 0 {
		if node.Element.IsPrimaryAxis(axis) {
			distributePrimary(nodes, node, axis)
		} else {
			distributeCross(nodes, node, axis)
		}
	}
	for _, c := range node.Children {
		distributeAxis(nodes, c, axis)
	}
}

// distributePrimary grows this container's Grow children along its primary
// axis until the slack between the container's interior and its children's
// current sizes is exhausted or every Grow child has hit its max.
func distributePrimary(nodes []tree.Node, node *tree.Node, axis element.Axis) {
	children := node.Children
	interior := node.Element.FinalSize(axis) - node.Element.PaddingSum(axis)
	interior -= node.Element.Layout.ChildGap * float64(len(children)-1)

	used := 0.0
	var growIdx []int
	for _, c := range children {
		used += nodes[c].Element.FinalSize(axis)
		if nodes[c].Element.SizingOf(axis).Kind == element.Grow {
			growIdx = append(growIdx, c)
		}
	}
	slack := interior - used
	if slack <= epsilon || len(growIdx) == 0 {
		return
	}

	sizes := make([]float64, len(growIdx))
	maxes := make([]float64, len(growIdx))
	for i, c := range growIdx {
		sizes[i] = nodes[c].Element.FinalSize(axis)
		maxes[i] = nodes[c].Element.LimitOf(axis).Max
	}
	uneven := node.Element.Layout.GrowElementsUnevenly
	grown := growEvenUp(sizes, maxes, slack, uneven)
	for i, c := range growIdx {
		nodes[c].Element.SetFinalSize(axis, grown[i])
	}
}

// distributeCross stretches every cross-axis Grow child flush to this
// container's interior size on axis; non-Grow children are untouched.
func distributeCross(nodes []tree.Node, node *tree.Node, axis element.Axis) {
	interior := node.Element.FinalSize(axis) - node.Element.PaddingSum(axis)
	for _, c := range node.Children {
		child := &nodes[c].Element
		if child.SizingOf(axis).Kind != element.Grow {
			continue
		}
		child.SetFinalSize(axis, child.LimitOf(axis).Clamp(interior))
	}
}

// growEvenUp distributes slack across sizes, always raising whichever
// entries are currently smallest up toward the next-smallest tier before
// any entry pulls ahead, so a round of growth never overshoots a sibling
// still waiting its turn. Entries already at their max are left alone and
// excluded from future rounds. When uneven is true, slack is instead
// divided equally across every entry still below its max, independent of
// current tiers.
func growEvenUp(sizes, maxes []float64, slack float64, uneven bool) []float64 {
	n := len(sizes)
	result := append([]float64(nil), sizes...)
	if n == 0 || slack <= 0 {
		return result
	}
	remaining := slack

	if uneven {
		for remaining > epsilon {
			var eligible []int
			for i := range result {
				if result[i] < maxes[i] {
					eligible = append(eligible, i)
				}
			}
			if len(eligible) == 0 {
				break
			}
			share := remaining / float64(len(eligible))
			progressed := false
			for _, i := range eligible {
				grow := share
				if result[i]+grow > maxes[i] {
					grow = maxes[i] - result[i]
				}
				if grow > 0 {
					result[i] += grow
					remaining -= grow
					progressed = true
				}
			}
			if !progressed {
				break
			}
		}
		return result
	}

	for remaining > epsilon {
		smallest := math.Inf(1)
		secondSmallest := math.Inf(1)
		numAtSmallest := 0
		for i, s := range result {
			if s >= maxes[i] {
				continue
			}
			switch {
			case s < smallest:
				secondSmallest = smallest
				smallest = s
				numAtSmallest = 1
			case s == smallest:
				numAtSmallest++
			case s < secondSmallest:
				secondSmallest = s
			}
		}
		if numAtSmallest == 0 {
			break
		}
		step := secondSmallest - smallest
		if math.IsInf(step, 1) || step*float64(numAtSmallest) > remaining {
			step = remaining / float64(numAtSmallest)
		}
		if step <= 0 {
			break
		}
		for i, s := range result {
			if s != smallest {
				continue
			}
			grow := step
			if s+grow > maxes[i] {
				grow = maxes[i] - s
			}
			result[i] += grow
			remaining -= grow
		}
	}
	return result
}
