// Package term renders a solved layout.RenderCommand list as a single ANSI
// terminal frame using lipgloss styles: one cell per pixel unit, so callers
// should solve the layout at terminal-cell-sized dimensions.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/halfpixel/layex/colors"
	"github.com/halfpixel/layex/element"
	"github.com/halfpixel/layex/layout"
)

// Renderer paints commands onto a Width x Height character grid.
type Renderer struct {
	Width, Height int
}

// Render composites cmds in order into a single multi-line string, later
// commands painting over earlier ones at overlapping cells.
func (r Renderer) Render(cmds []layout.RenderCommand) string {
	grid := make([][]rune, r.Height)
	for i := range grid {
		grid[i] = make([]rune, r.Width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	styled := make(map[[2]int]lipgloss.Style)

	for _, cmd := range cmds {
		switch cmd.Kind {
		case layout.RectangleCmd:
			r.paintRectangle(grid, styled, cmd)
		case layout.TextCmd:
			r.paintText(grid, styled, cmd)
		case layout.ImageCmd:
			r.paintImagePlaceholder(grid, styled, cmd)
		}
	}

	var b strings.Builder
	for y, row := range grid {
		for x, ch := range row {
			style, ok := styled[[2]int{x, y}]
			if !ok {
				style = lipgloss.NewStyle()
			}
			b.WriteString(style.Render(string(ch)))
		}
		if y < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (r Renderer) paintRectangle(grid [][]rune, styled map[[2]int]lipgloss.Style, cmd layout.RenderCommand) {
	rp := cmd.Rectangle
	if rp == nil {
		return
	}
	style := lipgloss.NewStyle().Background(toTermColor(rp.Fill)).Foreground(toTermColor(rp.Stroke))
	x0, y0 := int(cmd.BBox.X), int(cmd.BBox.Y)
	x1, y1 := x0+int(cmd.BBox.Width), y0+int(cmd.BBox.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !r.inBounds(x, y) {
				continue
			}
			ch := ' '
			if maxBorder(rp.Border) > 0 && (x == x0 || x == x1-1 || y == y0 || y == y1-1) {
				ch = borderGlyph(x, y, x0, y0, x1-1, y1-1)
			}
			grid[y][x] = ch
			styled[[2]int{x, y}] = style
		}
	}
}

func maxBorder(b colors.BorderWidth) int {
	m := b.Top
	for _, v := range []int{b.Right, b.Bottom, b.Left} {
		if v > m {
			m = v
		}
	}
	return m
}

func borderGlyph(x, y, x0, y0, x1, y1 int) rune {
	switch {
	case x == x0 && y == y0:
		return '┌'
	case x == x1 && y == y0:
		return '┐'
	case x == x0 && y == y1:
		return '└'
	case x == x1 && y == y1:
		return '┘'
	case y == y0 || y == y1:
		return '─'
	default:
		return '│'
	}
}

func (r Renderer) paintText(grid [][]rune, styled map[[2]int]lipgloss.Style, cmd layout.RenderCommand) {
	tp := cmd.Text
	if tp == nil {
		return
	}
	style := lipgloss.NewStyle().Foreground(toTermColor(tp.Color))
	x0, y0 := int(cmd.BBox.X), int(cmd.BBox.Y)
	for lineIdx, line := range element.SplitLines(tp.Text, tp.SplitIndices) {
		y := y0 + lineIdx
		if !r.inBounds(x0, y) {
			continue
		}
		for i, g := range line {
			x := x0 + i
			if !r.inBounds(x, y) {
				break
			}
			for _, ch := range g {
				grid[y][x] = ch
				break
			}
			styled[[2]int{x, y}] = style
		}
	}
}

func (r Renderer) paintImagePlaceholder(grid [][]rune, styled map[[2]int]lipgloss.Style, cmd layout.RenderCommand) {
	style := lipgloss.NewStyle().Faint(true)
	x0, y0 := int(cmd.BBox.X), int(cmd.BBox.Y)
	x1, y1 := x0+int(cmd.BBox.Width), y0+int(cmd.BBox.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !r.inBounds(x, y) {
				continue
			}
			grid[y][x] = '▒'
			styled[[2]int{x, y}] = style
		}
	}
}

func (r Renderer) inBounds(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

func toTermColor(c colors.ObjectColor) lipgloss.Color {
	if c.A == 0 {
		return lipgloss.Color("")
	}
	return lipgloss.Color(c.ToHex()[:7])
}
