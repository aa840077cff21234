package layout

import (
	"sort"

	"github.com/halfpixel/layex/element"
	"github.com/halfpixel/layex/tree"
)

// wrapPhase fills in every text node's SplitIndices, now that phase 2 has
// given every node its final width. Space-wrapping always runs to fit the
// available width; BreakOnOverflow governs only the fallback hard break
// used when a wrap window contains no space to break on at all. Each node
// wraps against its own TextPayload.Atlas, since different text elements in
// the same tree may be built against different atlases.
func wrapPhase(nodes []tree.Node) {
	for i := range nodes {
		e := &nodes[i].Element
		if e.Kind != element.TextKind || e.Text == nil {
			continue
		}
		available := availableTextWidth(nodes, i)
		atlas := e.Text.Atlas
		cellW := atlas.CellSize.X * element.GlyphScale(atlas, e.Text.FontSize)
		e.Text.SplitIndices = computeSplitIndices(element.Graphemes(e.Text.Content), available, cellW, e.Text.BreakOnOverflow)
	}
}

// availableTextWidth computes how much horizontal room node idx's text has
// to wrap into: its parent's padded interior, minus the parent's child gap
// and every sibling's width when the parent lays children out in a row
// (siblings compete for the same horizontal space). In a column parent,
// siblings stack vertically and don't consume node's width, so only
// padding is subtracted. A text node has no width of its own to subtract
// here — phase 1 already sized it to its own unwrapped natural width,
// which is exactly the quantity wrapping exists to reconsider.
func availableTextWidth(nodes []tree.Node, idx int) float64 {
	node := &nodes[idx]
	if !node.HasParent {
		return node.Element.FinalSize(element.AxisX) - node.Element.PaddingSum(element.AxisX)
	}
	parent := &nodes[node.ParentIdx]
	available := parent.Element.FinalSize(element.AxisX) - parent.Element.PaddingSum(element.AxisX)
	if !parent.Element.IsPrimaryAxis(element.AxisX) {
		return available
	}
	available -= parent.Element.Layout.ChildGap * float64(len(parent.Children)-1)
	for _, c := range parent.Children {
		if c == idx {
			continue
		}
		available -= nodes[c].Element.FinalSize(element.AxisX)
	}
	return available
}

// computeSplitIndices returns the ascending, deduplicated grapheme indices
// at which a new line starts: one for every literal "\n" (a hard break
// the caller wrote directly into the text) plus one for every soft wrap
// the solver inserts within each hard-broken segment.
func computeSplitIndices(graphemes []string, available, cellW float64, breakOnOverflow bool) []int {
	var indices []int
	segStart := 0
	for i, g := range graphemes {
		if g != "\n" {
			continue
		}
		for _, rel := range wrapStarts(graphemes[segStart:i], available, cellW, breakOnOverflow) {
			indices = append(indices, segStart+rel)
		}
		indices = append(indices, i+1)
		segStart = i + 1
	}
	for _, rel := range wrapStarts(graphemes[segStart:], available, cellW, breakOnOverflow) {
		indices = append(indices, segStart+rel)
	}
	sort.Ints(indices)
	return indices
}

// wrapStarts returns, relative to seg's own start, the index of the first
// grapheme of every line after seg's first one. Each line holds as many
// graphemes as fit in available/cellW; a window that crosses a space
// breaks there. A window with no space at all is only hard-broken mid-word
// when breakOnOverflow is set — otherwise the search for a break point
// continues forward past the window to the next space, letting that one
// line overflow its container, and if no space remains anywhere in seg the
// rest of seg stays one overflowing line.
func wrapStarts(seg []string, available, cellW float64, breakOnOverflow bool) []int {
	if len(seg) == 0 || available <= 0 || cellW <= 0 {
		return nil
	}
	maxPerLine := int(available / cellW)
	if maxPerLine <= 0 {
		return nil
	}

	var starts []int
	start := 0
	for start < len(seg) {
		end := start + maxPerLine
		if end >= len(seg) {
			break
		}

		breakAt := -1
		for i := end; i > start; i-- {
			if seg[i-1] == " " {
				breakAt = i - 1
				break
			}
		}
		if breakAt != -1 {
			starts = append(starts, breakAt+1)
			start = breakAt + 1
			continue
		}

		if breakOnOverflow {
			starts = append(starts, end)
			start = end
			continue
		}

		next := -1
		for i := end; i < len(seg); i++ {
			if seg[i] == " " {
				next = i
				break
			}
		}
		if next == -1 {
			break
		}
		starts = append(starts, next+1)
		start = next + 1
	}
	return starts
}
