package lander

import (
	"fmt"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Glyphs for terminal rendering.
const (
	starChar    = '·'
	terrainChar = '█'
	padChar     = '═'
	noseChar    = '▲'
	bodyChar    = '█'
	legChar     = '╨'
	flameChar   = '▼'
)

// Render projects the world-space render model onto the terminal cell grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	m := g.BuildRenderModel()

	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height

	toCell := func(v core.Vec2) (int, int) {
		return int(v.X * sx), int(v.Y * sy)
	}

	// Background stars
	for _, s := range m.Stars {
		x, y := toCell(s)
		dst.SetColored(x, y, starChar, core.ColorGray)
	}

	// Terrain: one column per screen cell, filled from the interpolated
	// surface height to the bottom. Pad surfaces get their own glyph.
	for cx := 0; cx < dst.Width(); cx++ {
		worldX := (float64(cx) + 0.5) / sx
		surfaceY := int(g.terrain.HeightAt(worldX) * sy)
		for cy := surfaceY; cy < dst.Height(); cy++ {
			dst.SetColored(cx, cy, terrainChar, core.ColorGray)
		}
		if g.terrain.OnPad(worldX) {
			dst.SetColored(cx, surfaceY, padChar, core.ColorBrightGreen)
		}
	}

	// Explosion particles over the terrain
	for _, p := range m.Particles {
		x, y := toCell(p.Position)
		dst.SetColored(x, y, particleGlyph(p.Size), p.Color)
	}

	if m.ShowShip {
		g.renderShip(dst, m, toCell)
	}

	g.renderHUD(dst, m)
}

// particleGlyph shrinks the particle's glyph as it fades out.
func particleGlyph(size float64) rune {
	switch {
	case size > 1.2:
		return '*'
	case size > 0.6:
		return '+'
	default:
		return '·'
	}
}

// renderShip plots the hull vertices, legs and flame. At terminal scale
// the craft spans only a few cells, so vertices are drawn directly.
func (g *Game) renderShip(dst *core.Screen, m RenderModel, toCell func(core.Vec2) (int, int)) {
	if m.ShowFlame {
		for _, v := range m.Flame {
			x, y := toCell(v)
			dst.SetColored(x, y, flameChar, core.ColorOrange)
		}
	}

	for _, v := range m.Legs {
		x, y := toCell(v)
		dst.SetColored(x, y, legChar, core.ColorWhite)
	}

	noseX, noseY := toCell(m.Body[0])
	leftX, leftY := toCell(m.Body[1])
	rightX, rightY := toCell(m.Body[2])
	dst.SetColored(leftX, leftY, bodyChar, core.ColorWhite)
	dst.SetColored(rightX, rightY, bodyChar, core.ColorWhite)
	dst.SetColored(noseX, noseY, noseChar, core.ColorBrightWhite)
}

// renderHUD draws the scalar readouts and status banners.
func (g *Game) renderHUD(dst *core.Screen, m RenderModel) {
	dst.DrawText(1, 0, fmt.Sprintf("Fuel: %.1f%%", m.HUD.FuelPercent))
	dst.DrawText(1, 1, fmt.Sprintf("Velocity: (%.1f, %.1f)", m.HUD.Velocity.X, m.HUD.Velocity.Y))
	dst.DrawText(1, 2, fmt.Sprintf("Angle: %.1f°", m.HUD.AngleDegrees))

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
		return
	}

	if m.GameOver {
		if m.Safe {
			sub := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
			if g.padLanding {
				sub = fmt.Sprintf("Pad bonus! Score: %d  |  Press R to restart", g.score)
			}
			g.drawCenteredMessage(dst, "Successful Landing!", sub, core.ColorBrightGreen)
		} else {
			g.drawCenteredMessage(dst, "Crash Landing!", "Press R to restart", core.ColorBrightRed)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, titleColor core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, titleColor)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
