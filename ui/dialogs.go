package ui

import (
	"image"
	"image/color"

	"hitgrid/capture"
	"hitgrid/palette"

	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

const pickerSwatches = 12
const pickerColumns = 6
const swatchDp = unit.Dp(32)

type colorPicker struct {
	swatches   []color.NRGBA
	clickables []widget.Clickable
	cancel     widget.Clickable
}

func newColorPicker(n int) colorPicker {
	return colorPicker{
		swatches:   palette.Swatches(n),
		clickables: make([]widget.Clickable, n),
	}
}

// update reports the swatch the user confirmed. done is true once the dialog
// should close, with picked false when it was cancelled.
func (p *colorPicker) update(gtx layout.Context) (c color.NRGBA, picked, done bool) {
	for i := range p.clickables {
		if p.clickables[i].Clicked(gtx) {
			c, picked, done = p.swatches[i], true, true
		}
	}

	if p.cancel.Clicked(gtx) && !done {
		return color.NRGBA{}, false, true
	}

	return c, picked, done
}

func (p *colorPicker) layout(gtx layout.Context, theme *material.Theme) layout.Dimensions {
	rows := make([]layout.FlexChild, 0, len(p.swatches)/pickerColumns+3)
	rows = append(rows, layout.Rigid(material.H6(theme, "Select Colour").Layout))

	for start := 0; start < len(p.swatches); start += pickerColumns {
		end := min(start+pickerColumns, len(p.swatches))
		rows = append(rows, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return p.layoutRow(gtx, start, end)
		}))
	}

	rows = append(rows, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Top: unit.Dp(8)}.Layout(gtx, material.Button(theme, &p.cancel, "Cancel").Layout)
	}))

	return dialogCard(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
	})
}

func (p *colorPicker) layoutRow(gtx layout.Context, start, end int) layout.Dimensions {
	cells := make([]layout.FlexChild, 0, end-start)

	for i := start; i < end; i++ {
		cells = append(cells, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(2)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return p.clickables[i].Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return swatch(gtx, gtx.Dp(swatchDp), p.swatches[i])
				})
			})
		}))
	}

	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, cells...)
}

type savePrompt struct {
	editor widget.Editor
	save   widget.Clickable
	cancel widget.Clickable

	// captured when Save was chosen, before the prompt covered the window
	shot *image.RGBA
}

func (s *savePrompt) open(gtx layout.Context, shot *image.RGBA) {
	s.shot = shot
	s.editor.SingleLine = true
	s.editor.Submit = true
	s.editor.SetText(capture.DefaultName)
	gtx.Execute(key.FocusCmd{Tag: &s.editor})
}

// update returns what the user typed once they submit, or an empty string if
// they cancel.
func (s *savePrompt) update(gtx layout.Context) (string, bool) {
	submitted := false

	for {
		ev, ok := s.editor.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(widget.SubmitEvent); ok {
			submitted = true
		}
	}

	if s.save.Clicked(gtx) {
		submitted = true
	}

	if s.cancel.Clicked(gtx) {
		return "", true
	}

	if submitted {
		return s.editor.Text(), true
	}

	return "", false
}

func (s *savePrompt) layout(gtx layout.Context, theme *material.Theme) layout.Dimensions {
	gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(320)))

	return dialogCard(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.H6(theme, "Save Image").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(material.Editor(theme, &s.editor, "PNG file").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
					layout.Rigid(material.Button(theme, &s.save, "Save").Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(material.Button(theme, &s.cancel, "Cancel").Layout),
				)
			}),
		)
	})
}

func dialogCard(gtx layout.Context, content layout.Widget) layout.Dimensions {
	return layout.Background{}.Layout(gtx, fill(dialogColor), func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(12)).Layout(gtx, content)
	})
}
