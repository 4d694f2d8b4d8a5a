package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/asciiknight/ecs/component"
)

// Held movement keys repeat like a terminal's key repeat.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

// Input turns the keyboard and first gamepad into one action per frame.
// Keys follow the terminal layout: A/D move, W jumps, I/J/K/L attack and
// Escape quits.
type Input struct {
	gamepad ebiten.GamepadID
	hasPad  bool
}

func NewInput() *Input {
	return &Input{}
}

func repeating(frames int) bool {
	return frames == 1 || (frames > repeatDelay && (frames-repeatDelay)%repeatInterval == 0)
}

func keyRepeating(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if repeating(inpututil.KeyPressDuration(k)) {
			return true
		}
	}
	return false
}

func keyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (i *Input) padPressed(b ebiten.StandardGamepadButton) bool {
	return i.hasPad && inpututil.IsStandardGamepadButtonJustPressed(i.gamepad, b)
}

func (i *Input) padRepeating(b ebiten.StandardGamepadButton) bool {
	return i.hasPad && repeating(inpututil.StandardGamepadButtonPressDuration(i.gamepad, b))
}

// Poll returns the highest priority action pressed this frame: quit, then
// attacks, then jump, then movement.
func (i *Input) Poll() component.Action {
	i.hasPad = false
	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 && ebiten.IsStandardGamepadLayoutAvailable(ids[0]) {
		i.gamepad = ids[0]
		i.hasPad = true
	}

	switch {
	case keyPressed(ebiten.KeyEscape) || i.padPressed(ebiten.StandardGamepadButtonCenterRight):
		return component.ActionQuit
	case keyPressed(ebiten.KeyI) || i.padPressed(ebiten.StandardGamepadButtonRightTop):
		return component.ActionAttackUp
	case keyPressed(ebiten.KeyJ) || i.padPressed(ebiten.StandardGamepadButtonRightLeft):
		return component.ActionAttackLeft
	case keyPressed(ebiten.KeyK) || i.padPressed(ebiten.StandardGamepadButtonFrontBottomRight):
		return component.ActionAttackDown
	case keyPressed(ebiten.KeyL) || i.padPressed(ebiten.StandardGamepadButtonRightRight):
		return component.ActionAttackRight
	case keyPressed(ebiten.KeyW, ebiten.KeySpace) || i.padPressed(ebiten.StandardGamepadButtonRightBottom):
		return component.ActionJump
	case keyRepeating(ebiten.KeyA, ebiten.KeyArrowLeft) || i.padRepeating(ebiten.StandardGamepadButtonLeftLeft):
		return component.ActionMoveLeft
	case keyRepeating(ebiten.KeyD, ebiten.KeyArrowRight) || i.padRepeating(ebiten.StandardGamepadButtonLeftRight):
		return component.ActionMoveRight
	}
	return component.ActionNone
}
