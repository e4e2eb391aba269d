package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugOverlay is a corner panel of diagnostic lines.
type DebugOverlay struct {
	Visible bool
	Title   string
}

func (d *DebugOverlay) Toggle() {
	d.Visible = !d.Visible
}

// Draw renders lines in the top-right corner when visible.
func (d *DebugOverlay) Draw(screen *ebiten.Image, lines []string) {
	if !d.Visible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
		panelW  = 380.0
	)

	panelH := float64(len(lines)+1)*lineH + padY*2
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY
	DrawText(screen, d.Title, x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
