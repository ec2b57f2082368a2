package ui

import (
	"fmt"
	"image"
	"time"

	"hitgrid/capture"
	"hitgrid/engine"

	"gioui.org/gpu/headless"
	"gioui.org/layout"
	"gioui.org/op"
	"github.com/go-kit/log/level"
)

// screenshot renders state as window content, without dialogs, at the size
// of the last frame.
func (ui *UI) screenshot(state engine.State) (*image.RGBA, error) {
	size := ui.size
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("no frame drawn yet")
	}

	win, err := headless.NewWindow(size.X, size.Y)
	if err != nil {
		return nil, fmt.Errorf("create headless window: %w", err)
	}
	defer win.Release()

	var ops op.Ops
	gtx := layout.Context{
		Ops:         &ops,
		Metric:      ui.metric,
		Constraints: layout.Exact(size),
		Now:         time.Now(),
	}

	ui.draw(state)(gtx)

	if err := win.Frame(&ops); err != nil {
		return nil, fmt.Errorf("render screenshot: %w", err)
	}

	img := image.NewRGBA(image.Rectangle{Max: size})
	if err := win.Screenshot(img); err != nil {
		return nil, fmt.Errorf("read screenshot: %w", err)
	}

	return img, nil
}

func (ui *UI) beginSave(gtx layout.Context) {
	// the shot shows the board as it was when Save was chosen
	shot, err := ui.screenshot(ui.engine.Snapshot())
	if err != nil {
		level.Error(ui.logger).Log("msg", "screenshot failed", "err", err)
		return
	}

	ui.saver.open(gtx, shot)
	ui.setMode(Saving)
}

// finishSave writes the pending screenshot. Without a usable path nothing is
// written and nothing is reported.
func (ui *UI) finishSave(input string) {
	shot := ui.saver.shot
	ui.saver.shot = nil

	path, ok := capture.NormalizePath(input)
	if !ok {
		level.Debug(ui.logger).Log("msg", "save cancelled")
		return
	}

	if err := capture.WritePNG(path, shot); err != nil {
		level.Error(ui.logger).Log("msg", "saving screenshot failed", "path", path, "err", err)
		return
	}

	level.Info(ui.logger).Log("msg", "screenshot saved", "path", path)
}
