//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Target is what the HUD reads from and writes to.
type Target interface {
	Name() string
	core.ParameterProvider
	core.ParameterControlsProvider
}

// HUD renders the control panel to the right of the board.
type HUD struct {
	target     Target
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	boolSetter   core.BoolParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for target with the given panel width.
func NewHUD(target Target, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{target: target, width: width, title: "Controls"}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if name := target.Name(); name != "" {
		h.title = name + " controls"
	}
	controls := target.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
	if setter, ok := target.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := target.(core.BoolParameterSetter); ok {
		h.boolSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.target.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeBool:
			parsed, err := strconv.ParseBool(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.boolValue = parsed
			state.value = onOff(parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if !h.canAdjust(state, direction) {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		target := adjustedInt(state.control, state.intValue, direction)
		if h.intSetter.SetIntParameter(state.control.Key, target) {
			state.intValue = target
			state.value = strconv.Itoa(target)
		}
	case core.ParamTypeBool:
		target := direction > 0
		if h.boolSetter.SetBoolParameter(state.control.Key, target) {
			state.boolValue = target
			state.value = onOff(target)
		}
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return false
		}
		return adjustedInt(state.control, state.intValue, direction) != state.intValue
	case core.ParamTypeBool:
		if h.boolSetter == nil {
			return false
		}
		return state.boolValue != (direction > 0)
	default:
		return false
	}
}

// adjustedInt moves value one step in direction, clamped to the control's
// bounds.
func adjustedInt(ctrl core.ParameterControl, value, direction int) int {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		infoY := headerY + infoSpacing
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, infoY, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		top := state.top
		labelY := top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		minusLabel, plusLabel := "-", "+"
		if state.control.Type == core.ParamTypeBool {
			minusLabel, plusLabel = "||", ">"
		}
		h.drawButton(state.minusRect, minusLabel, state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, plusLabel, state.hasValue && h.canAdjust(state, 1))
	}
	keysY := controlsTop + len(h.controls)*lineHeight + infoSpacing/2
	for i, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, keysY+i*16, color.RGBA{R: 140, G: 140, B: 150, A: 255})
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue  int
	boolValue bool
	hasValue  bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var keyHelp = []string{
	"space  pause/resume",
	"n      single step",
	"r      randomize",
	"s      reseed",
	"up/dn  grid size",
	"lt/rt  speed",
	"q      quit",
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
