package layout

import (
	"github.com/halfpixel/layex/element"
)

// Emit walks the solved arena in insertion order, skipping the root, and
// projects every node into one RenderCommand. Order is purely the order
// nodes were opened; there is no z-index concept to sort by.
func Emit(nodes []element.Element) []RenderCommand {
	cmds := make([]RenderCommand, 0, len(nodes))
	for i := 1; i < len(nodes); i++ {
		cmds = append(cmds, emitOne(&nodes[i]))
	}
	return cmds
}

func emitOne(e *element.Element) RenderCommand {
	bbox := BBox{
		X:      e.FinalPos(element.AxisX),
		Y:      e.FinalPos(element.AxisY),
		Width:  e.FinalSize(element.AxisX),
		Height: e.FinalSize(element.AxisY),
	}

	switch e.Kind {
	case element.RectangleKind:
		return RenderCommand{
			ID:   e.ID,
			Kind: RectangleCmd,
			BBox: bbox,
			Rectangle: &RectanglePayload{
				Fill:   e.Fill,
				Stroke: e.Stroke,
				Radii:  e.Radii,
				Border: e.Border,
			},
		}
	case element.TextKind:
		if e.Text == nil {
			return RenderCommand{ID: e.ID, Kind: NoOpCmd, BBox: bbox}
		}
		return RenderCommand{
			ID:   e.ID,
			Kind: TextCmd,
			BBox: bbox,
			Text: &TextCommandPayload{
				Atlas:        e.Text.Atlas,
				Text:         e.Text.Content,
				FontSizePx:   e.Text.FontSize,
				SplitIndices: e.Text.SplitIndices,
				Color:        e.Text.Color,
			},
		}
	case element.ImageKind:
		var tex uint32
		if e.Image != nil {
			tex = e.Image.TextureID
		}
		return RenderCommand{ID: e.ID, Kind: ImageCmd, BBox: bbox, Image: &ImageCommandPayload{TextureID: tex}}
	default:
		return RenderCommand{ID: e.ID, Kind: NoOpCmd, BBox: bbox}
	}
}
