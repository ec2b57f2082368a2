package ui

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

func drawRect(gtx layout.Context, x, y, width, height int, color color.NRGBA) {
	if width < 0 || height < 0 {
		panic("Invalid negative width or height")
	}

	if width == 0 || height == 0 {
		return
	}

	rect := clip.Rect{
		Min: image.Point{X: x, Y: y},
		Max: image.Point{X: x + width, Y: y + height},
	}

	paint.FillShape(gtx.Ops, color, rect.Op())
}

// fill returns a widget painting c over its minimum size, for use as a
// layout.Background.
func fill(c color.NRGBA) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		drawRect(gtx, 0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y, c)
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
}

func swatch(gtx layout.Context, size int, c color.NRGBA) layout.Dimensions {
	drawRect(gtx, 0, 0, size, size, c)
	return layout.Dimensions{Size: image.Point{X: size, Y: size}}
}
