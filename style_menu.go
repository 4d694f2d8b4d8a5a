package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/asciiknight/ecs/component"
)

var (
	menuWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	menuGrey  = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
)

// NewStyleMenu builds the centered combat-style picker shown before a run.
// Keys 1 and 2 pick the same options as the buttons.
func NewStyleMenu(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: menuWhite}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	label := func(s string, c color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(s, &face, c),
			widget.TextOpts.WidgetOpts(centered),
		)
	}

	button := func(s string, style component.CombatStyle) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(s, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered, widget.WidgetOpts.MinSize(200, 24)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				g.pick(style)
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(g.width/2), int(g.height/2)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(label("ASCII KNIGHT", menuWhite))
	panel.AddChild(label("Select combat style", menuGrey))
	panel.AddChild(button("1. Cooldown", component.StyleCooldown))
	panel.AddChild(label("long swings, wait between attacks", menuGrey))
	panel.AddChild(button("2. Spam", component.StyleSpam))
	panel.AddChild(label("short swings, attack as fast as you press", menuGrey))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
