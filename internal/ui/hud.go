//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent status bar along the top edge of the screen.
type HUD struct{}

// NewHUD constructs the status overlay.
func NewHUD() *HUD { return &HUD{} }

const (
	barHeight    = 16
	textPadding  = 4
	textBaseline = 12
)

// Draw paints the status bar over the board.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	if h == nil {
		return
	}
	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, w, barHeight, color.RGBA{A: 160}, false)

	line := fmt.Sprintf("gen %d  pop %d  %d tps  %s", st.Generation, st.Population, st.TPS, st.Label())
	text.Draw(screen, line, basicfont.Face7x13, textPadding, textBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
