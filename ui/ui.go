package ui

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"hitgrid/config"
	"hitgrid/controller"
	"hitgrid/engine"
	"hitgrid/palette"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ui constants
const windowTitle = "My Game"
const panelTitle = "Log the Square"
const panelWidthDp = unit.Dp(200)
const menuBarDp = unit.Dp(48)
const cursorBorderDp = unit.Dp(3)
const defaultSizePct = 0.95

type UI struct {
	mode       Mode
	engine     *engine.Engine
	controller *controller.Controller
	cfg        config.Config
	logger     log.Logger
	theme      *material.Theme
	window     *app.Window

	boardTag *bool
	focused  bool

	saveButton widget.Clickable
	pickButton widget.Clickable
	quitButton widget.Clickable

	picker colorPicker
	saver  savePrompt

	// last frame geometry, reused by screenshots
	metric unit.Metric
	size   image.Point
}

func buildUI(cfg config.Config, logger log.Logger) *UI {
	e := engine.New(engine.Size, cfg.HitColor)

	ui := &UI{
		mode:       Idle,
		engine:     e,
		controller: controller.New(e),
		cfg:        cfg,
		logger:     logger,
		theme:      newTheme(),
		boardTag:   new(bool),
		picker:     newColorPicker(pickerSwatches),
	}

	e.OnCursorMoved = func(from, to engine.Coord) {
		level.Debug(logger).Log("msg", "cursor moved", "from", from, "to", to)
	}

	e.OnToggled = func(cell engine.Cell) {
		if cell.Hit {
			level.Info(logger).Log("msg", "cell toggled", "cell", cell, "color", palette.Hex(cell.Color))
			return
		}
		level.Info(logger).Log("msg", "cell toggled", "cell", cell)
	}

	e.OnPickedColorChanged = func(c color.NRGBA) {
		level.Info(logger).Log("msg", "picked color changed", "color", palette.Hex(c))
	}

	return ui
}

func newTheme() *material.Theme {
	theme := material.NewTheme()
	theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return theme
}

func (ui *UI) setMode(mode Mode) {
	level.Debug(ui.logger).Log("msg", "setting mode", "mode", showMode(mode))
	ui.mode = mode
}

func (ui *UI) getBackgroundColor() color.NRGBA {
	switch ui.mode {
	case Idle:
		return backgroundColor
	case PickingColor:
		return darkBlueColor
	case Saving:
		return darkGreenColor
	default:
		panic(fmt.Sprintf("Invalid mode: %d", ui.mode))
	}
}

func (ui *UI) run(window *app.Window) error {
	var ops op.Ops

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			ui.metric = gtx.Metric
			ui.size = gtx.Constraints.Max

			ui.update(gtx)
			ui.layout(gtx)
			ui.claimFocus(gtx)

			e.Frame(gtx.Ops)
		}
	}
}

// update drains this frame's input before anything is drawn, so the frame
// shows the state after the input.
func (ui *UI) update(gtx layout.Context) {
	if ui.quitButton.Clicked(gtx) {
		level.Info(ui.logger).Log("msg", "quit requested")
		ui.window.Perform(system.ActionClose)
	}

	if ui.saveButton.Clicked(gtx) && ui.mode == Idle {
		ui.beginSave(gtx)
	}

	if ui.pickButton.Clicked(gtx) && ui.mode == Idle {
		ui.setMode(PickingColor)
	}

	switch ui.mode {
	case PickingColor:
		if c, picked, done := ui.picker.update(gtx); done {
			if picked {
				ui.engine.SetPickedColor(c)
			} else {
				level.Debug(ui.logger).Log("msg", "color selection cancelled")
			}
			ui.setMode(Idle)
		}
	case Saving:
		if input, done := ui.saver.update(gtx); done {
			ui.finishSave(input)
			ui.setMode(Idle)
		}
	}

	ui.handleKeys(gtx)
}

func (ui *UI) handleKeys(gtx layout.Context) {
	filters := []event.Filter{key.FocusFilter{Target: ui.boardTag}}
	for _, name := range controller.Keys() {
		filters = append(filters, key.Filter{Focus: ui.boardTag, Name: name})
	}

	for {
		ev, ok := gtx.Event(filters...)
		if !ok {
			break
		}

		switch e := ev.(type) {
		case key.FocusEvent:
			ui.focused = e.Focus
		case key.Event:
			if e.State != key.Press || ui.mode != Idle {
				continue
			}
			ui.controller.HandleKey(e.Name)
		}
	}
}

// claimFocus hands keyboard focus back to the board once the board tag is
// registered in the frame. Buttons take focus when clicked.
func (ui *UI) claimFocus(gtx layout.Context) {
	if ui.mode == Idle && !ui.focused {
		gtx.Execute(key.FocusCmd{Tag: ui.boardTag})
	}
}

func (ui *UI) layout(gtx layout.Context) layout.Dimensions {
	return layout.Stack{Alignment: layout.Center}.Layout(gtx,
		layout.Expanded(ui.draw(ui.engine.Snapshot())),
		layout.Stacked(ui.layoutDialog),
	)
}

// draw lays out the window content for state, without dialogs.
func (ui *UI) draw(state engine.State) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		drawRect(gtx, 0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y, ui.getBackgroundColor())

		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(ui.layoutMenuBar),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return ui.layoutBoard(gtx, &state)
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return ui.layoutPanel(gtx, &state)
					}),
				)
			}),
		)
	}
}

func (ui *UI) layoutDialog(gtx layout.Context) layout.Dimensions {
	switch ui.mode {
	case PickingColor:
		return ui.picker.layout(gtx, ui.theme)
	case Saving:
		return ui.saver.layout(gtx, ui.theme)
	default:
		return layout.Dimensions{}
	}
}

func (ui *UI) layoutMenuBar(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	gtx.Constraints.Min.Y = gtx.Dp(menuBarDp)
	gtx.Constraints.Max.Y = gtx.Constraints.Min.Y

	return layout.Background{}.Layout(gtx, fill(menuBarColor), func(gtx layout.Context) layout.Dimensions {
		return layout.W.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(4)).Layout(gtx,
				material.Button(ui.theme, &ui.saveButton, "File: Save").Layout,
			)
		})
	})
}

func (ui *UI) layoutBoard(gtx layout.Context, state *engine.State) layout.Dimensions {
	n := state.Size()
	cellPx := gtx.Dp(ui.cfg.CellSize)
	size := image.Point{X: n * cellPx, Y: n * cellPx}

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, ui.boardTag)
	area.Pop()

	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			cell := *state.GetCell(engine.Coord{Row: row, Col: col})
			ui.drawCell(gtx, cellPx, cell, cell.Coord() == state.Cursor)
		}
	}

	return layout.Dimensions{Size: size}
}

func (ui *UI) drawCell(gtx layout.Context, cellPx int, cell engine.Cell, selected bool) {
	x := (cell.Col - 1) * cellPx
	y := (cell.Row - 1) * cellPx

	inset := int(float32(cellPx) * (1 - defaultSizePct) / 2)

	if selected {
		drawRect(gtx, x+inset, y+inset, cellPx-2*inset, cellPx-2*inset, cursorColor)
		inset += gtx.Dp(cursorBorderDp)
	}

	drawRect(gtx, x+inset, y+inset, cellPx-2*inset, cellPx-2*inset, cell.Fill(ui.cfg.EmptyColor))
}

func (ui *UI) layoutPanel(gtx layout.Context, state *engine.State) layout.Dimensions {
	width := gtx.Dp(panelWidthDp)
	gtx.Constraints.Min.X = width
	gtx.Constraints.Max.X = width
	gtx.Constraints.Min.Y = gtx.Dp(ui.cfg.CellSize) * state.Size()

	spacer := layout.Spacer{Height: unit.Dp(8)}.Layout

	return layout.Background{}.Layout(gtx, fill(panelColor), func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.H6(ui.theme, panelTitle).Layout),
				layout.Rigid(spacer),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return ui.layoutGridText(gtx, state)
				}),
				layout.Rigid(spacer),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return ui.layoutPreview(gtx, state.PickedColor)
				}),
				layout.Rigid(spacer),
				layout.Rigid(material.Button(ui.theme, &ui.pickButton, "Select Colour").Layout),
				layout.Rigid(spacer),
				layout.Rigid(material.Button(ui.theme, &ui.quitButton, "Quit").Layout),
			)
		})
	})
}

func (ui *UI) layoutGridText(gtx layout.Context, state *engine.State) layout.Dimensions {
	label := material.Label(ui.theme, unit.Sp(14), state.RenderText())
	label.Font.Typeface = "Go Mono, monospace"
	label.Font.Weight = font.Bold
	label.Alignment = text.Middle

	return label.Layout(gtx)
}

func (ui *UI) layoutPreview(gtx layout.Context, picked color.NRGBA) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return swatch(gtx, gtx.Dp(unit.Dp(24)), picked)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(material.Body2(ui.theme, palette.Hex(picked)).Layout),
	)
}

// windowSize is the initial window size for a board of n cells per side.
func windowSize(cfg config.Config, n int) (unit.Dp, unit.Dp) {
	board := unit.Dp(n) * cfg.CellSize
	return board + panelWidthDp, board + menuBarDp
}

func Run(cfg config.Config, logger log.Logger) {
	ui := buildUI(cfg, logger)

	go func() {
		window := new(app.Window)

		width, height := windowSize(cfg, ui.engine.Size())
		window.Option(
			app.Title(windowTitle),
			app.Size(width, height),
		)

		ui.window = window

		err := ui.run(window)
		if err != nil {
			level.Error(logger).Log("msg", "window closed", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}
