// Command demo builds one small layout tree and renders it through both
// bundled adapters, to a PNG file and to the terminal.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	layex "github.com/halfpixel/layex"
	"github.com/halfpixel/layex/bitmap"
	rgbarenderer "github.com/halfpixel/layex/render/rgba"
	"github.com/halfpixel/layex/render/term"
)

func main() {
	atlas := bitmap.Descriptor{
		TextureID:   1,
		AtlasSize:   bitmap.Vec2{X: 160, Y: 160},
		CellSize:    bitmap.Vec2{X: 16, Y: 16},
		Characters:  " ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789.,!?-",
		CharsPerRow: 10,
	}

	root := layex.NewElement().
		Sizing(layex.Fit(), layex.Fit()).
		Padding(layex.AllPadding(8)).
		ChildGap(8).
		LayoutDirection(layex.LeftToRight)

	ctx := layex.BeginLayout(root, 400, 200)

	sidebar := layex.NewElement().
		Rectangle(layex.RGBAColor(40, 40, 40, 255), layex.AllCornerRadius(4)).
		Sizing(layex.Fixed(100), layex.Grow())
	ctx.Open(sidebar)
	ctx.Close()

	content := layex.NewElement().
		Rectangle(layex.RGBAColor(230, 230, 230, 255), layex.AllCornerRadius(4)).
		Sizing(layex.Grow(), layex.Grow()).
		Padding(layex.AllPadding(8))
	ctx.Open(content)

	label := layex.NewElement().
		Text(atlas, "Hello from a six-phase solve.", 16, layex.Black, true)
	ctx.Open(label)
	ctx.Close()

	ctx.Close() // content

	cmds := ctx.End()

	textures := map[uint32]image.Image{1: image.NewRGBA(image.Rect(0, 0, 160, 160))}
	r := rgbarenderer.Renderer{Width: 400, Height: 200, Textures: func(id uint32) image.Image { return textures[id] }}
	canvas := r.Render(cmds)

	f, err := os.Create("demo.png")
	if err != nil {
		fmt.Fprintln(os.Stderr, "create demo.png:", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, canvas); err != nil {
		fmt.Fprintln(os.Stderr, "encode demo.png:", err)
		os.Exit(1)
	}

	termRenderer := term.Renderer{Width: 80, Height: 24}
	termCtx := layex.BeginLayout(root, 80, 24)
	termCtx.Open(sidebar)
	termCtx.Close()
	termCtx.Open(content)
	termCtx.Open(label)
	termCtx.Close()
	termCtx.Close()
	fmt.Println(termRenderer.Render(termCtx.End()))
}
