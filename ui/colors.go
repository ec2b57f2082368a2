package ui

import "image/color"

var backgroundColor = color.NRGBA{R: 30, G: 30, B: 36, A: 255}
var menuBarColor = color.NRGBA{R: 45, G: 45, B: 54, A: 255}
var panelColor = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
var dialogColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var cursorColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var darkBlueColor = color.NRGBA{R: 0, G: 0, B: 127, A: 255}
var darkGreenColor = color.NRGBA{R: 0, G: 127, B: 0, A: 255}
