package scavenge

import (
	"fmt"

	"github.com/dkrajewski/tui-scavenger/internal/core"
)

// Render draws the current frame. The world is projected through the camera
// onto the screen rows between the HUD (row 0) and the inventory bar
// (bottom row); entities outside the camera simply clip away.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == phaseMenu {
		g.renderMenu(dst)
		return
	}

	cam := g.camera()
	g.renderGround(dst, cam)
	g.renderCars(dst, cam)
	g.renderEnemies(dst, cam)
	g.renderPlayer(dst, cam)
	g.renderShots(dst, cam)
	g.renderHUD(dst)
	g.renderInventoryBar(dst)

	switch g.phase {
	case phasePaused:
		g.renderOverlay(dst, "PAUSED", "press p to resume")
	case phaseOver:
		g.renderOverlay(dst, "GAME OVER",
			fmt.Sprintf("score %d  best %d  -  r to restart", g.score, g.highScore))
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "S C R A P Y A R D   C I T Y")
	dst.DrawTextCentered(mid-1, "wasd move  shift sprint  mouse aim + fire")
	dst.DrawTextCentered(mid, "e pick up  g drop  f vehicle  1-9/wheel slots")
	dst.DrawTextCentered(mid+2, "press enter to start")
	if g.highScore > 0 {
		dst.DrawTextCentered(mid+4, fmt.Sprintf("high score %d", g.highScore))
	}
}

// project converts world coordinates to a screen cell inside the viewport
// rows.
func (g *Game) project(dst *core.Screen, cam core.Rect, wx, wy int) (int, int) {
	vw := dst.Width()
	vh := dst.Height() - 2
	if vh < 1 {
		vh = 1
	}
	sx := (wx - cam.X) * vw / cam.W
	sy := 1 + (wy-cam.Y)*vh/cam.H
	return sx, sy
}

// projectBox converts a world box to a screen rect of at least one cell, so
// small entities stay visible at any terminal size.
func (g *Game) projectBox(dst *core.Screen, cam core.Rect, box core.Rect) core.Rect {
	x0, y0 := g.project(dst, cam, box.X, box.Y)
	x1, y1 := g.project(dst, cam, box.Right(), box.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// drawEntity draws a world box as a filled glyph rect, clipped to the
// viewport rows so entities never bleed into the HUD or inventory bar.
func (g *Game) drawEntity(dst *core.Screen, cam core.Rect, box core.Rect, glyph rune, c core.Color) {
	if !box.Intersects(cam) {
		return
	}
	r := g.projectBox(dst, cam, box)
	for y := r.Y; y < r.Bottom(); y++ {
		if y < 1 || y >= dst.Height()-1 {
			continue
		}
		for x := r.X; x < r.Right(); x++ {
			dst.SetCell(x, y, glyph, c)
		}
	}
}

func (g *Game) renderGround(dst *core.Screen, cam core.Rect) {
	for _, it := range g.items.Ground {
		g.drawEntity(dst, cam, it.Box, itemGlyph(it.Category), core.ColorGreen)
	}
}

func itemGlyph(c ItemCategory) rune {
	switch c {
	case CategoryMelee:
		return '/'
	case CategoryPistol:
		return 'p'
	case CategoryRifle:
		return 'r'
	case CategorySpecial:
		return 'f'
	case CategoryThrowable:
		return 'g'
	default:
		return '+'
	}
}

func (g *Game) renderCars(dst *core.Screen, cam core.Rect) {
	for _, car := range g.cars.Cars {
		if car == nil {
			continue
		}
		c := core.ColorCyan
		switch car.Tier {
		case "medium":
			c = core.ColorBlue
		case "large":
			c = core.ColorMagenta
		}
		g.drawEntity(dst, cam, car.Box, '#', c)
	}
}

func (g *Game) renderEnemies(dst *core.Screen, cam core.Rect) {
	for _, e := range g.enemies.Enemies {
		switch e.State {
		case EnemyDead:
			g.drawEntity(dst, cam, e.Box, '*', core.ColorGray)
		case EnemyChasing:
			g.drawEntity(dst, cam, e.Box, 'x', core.ColorBrightRed)
		default:
			g.drawEntity(dst, cam, e.Box, 'x', core.ColorRed)
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, cam core.Rect) {
	if !g.player.Visible {
		return
	}
	g.drawEntity(dst, cam, g.player.Box, '@', core.ColorBrightYellow)
}

func (g *Game) renderShots(dst *core.Screen, cam core.Rect) {
	for _, p := range g.shots.Shots {
		g.drawEntity(dst, cam, p.Box, '•', core.ColorBrightWhite)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" hp %d/%d  score %d  high %d",
		g.player.HP, g.player.MaxHP, g.score, g.highScore)
	if car, ok := g.cars.Get(g.player.Vehicle); ok {
		hud += fmt.Sprintf("  %s %.0f", car.Tier, car.Speed)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

func (g *Game) renderInventoryBar(dst *core.Screen) {
	inv := g.player.Inventory
	y := dst.Height() - 1
	x := 0
	for i := 0; i < inv.Capacity(); i++ {
		name := "-"
		if it := inv.Slot(i); it != nil {
			name = it.Name
		}
		cell := fmt.Sprintf("%d:%s ", i+1, name)
		c := core.ColorGray
		if i == inv.SelectedIndex() {
			c = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, y, cell, c)
		x += len(cell)
	}
}

// renderOverlay draws a centered two-line box over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, title, sub string) {
	w := core.Max(len(title), len(sub)) + 6
	h := 5
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r)
	dst.DrawTextCentered(r.Y+1, title)
	dst.DrawTextCentered(r.Y+3, sub)
}
