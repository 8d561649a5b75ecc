package game

import (
	"fmt"
	"strings"
)

// fieldToScreen maps a field-pixel position to framebuffer pixels under
// the letterboxing view used by all world draws.
func fieldToScreen(cfg Config, fbW, fbH int, x, y float64) (int, int) {
	camX, camY, zoom := fieldView(cfg, fbW, fbH)
	sx := (float32(x)-camX)*zoom + float32(fbW)*0.5
	sy := (float32(y)-camY)*zoom + float32(fbH)*0.5
	return int(sx), int(sy)
}

// RenderHUD draws the scoreboard band, state overlays, and the active
// effect indicator. Quads go through the field-space pipeline so the
// band lines up with the reserved top rows; text is screen space.
func RenderHUD(r *Renderer, snap Snapshot, cfg Config, fbW, fbH int, uiBuf []float32) []float32 {
	_, _, zoom := fieldView(cfg, fbW, fbH)
	s := zoom * 1.4
	big := zoom * 2.8
	huge := zoom * 4.2

	uiBuf = uiBuf[:0]
	uiBuf = appendQuad(uiBuf, Rect{X: 0, Y: 0, W: cfg.Width, H: cfg.TopBand()}, Palette.Bar, 1)
	uiBuf = appendQuad(uiBuf, Rect{X: 0, Y: cfg.TopBand() - 2, W: cfg.Width, H: 2}, Palette.BarLine, 1)

	dimmed := snap.State == StatePaused || snap.State == StateGameOver || snap.State == StateMenu
	if dimmed {
		uiBuf = appendQuad(uiBuf, Rect{X: 0, Y: 0, W: cfg.Width, H: cfg.Height}, RGB{}, 0.55)
	}
	r.DrawQuads(uiBuf, cfg, fbW, fbH)

	// Scoreboard row, placed inside the band.
	bandMidY := float64(cfg.TopBand())/2 - float64(FontCellH)*float64(s)/float64(zoom)/2
	textY := func() int {
		_, y := fieldToScreen(cfg, fbW, fbH, 0, bandMidY)
		return y
	}()
	leftX, _ := fieldToScreen(cfg, fbW, fbH, 10, 0)
	rightEdge, _ := fieldToScreen(cfg, fbW, fbH, float64(cfg.Width)-10, 0)
	centerX, _ := fieldToScreen(cfg, fbW, fbH, float64(cfg.Width)/2, 0)

	r.DrawString(fmt.Sprintf("SCORE: %d", snap.Score), leftX, textY, s, Palette.Text)
	lvlX, _ := fieldToScreen(cfg, fbW, fbH, 150, 0)
	r.DrawString(fmt.Sprintf("LEVEL: %d", snap.Level), lvlX, textY, s, Palette.Text)

	hearts := strings.Repeat("* ", clamp(snap.Lives, 0, 9))
	r.DrawString(hearts, centerX-TextWidth(hearts, s)/2, textY, s, Palette.Hearts)

	hi := fmt.Sprintf("HIGH: %d", snap.High)
	r.DrawString(hi, rightEdge-TextWidth(hi, s), textY, s, Palette.High)

	// Active effect indicator, bottom-right of the field.
	if snap.Effect.Present {
		msg := fmt.Sprintf("%s %.1fS", snap.Effect.Kind.Name(), snap.Effect.Remaining)
		ex, ey := fieldToScreen(cfg, fbW, fbH, float64(cfg.Width)-10, float64(cfg.Height)-14)
		r.DrawString(msg, ex-TextWidth(msg, s), ey, s, snap.Effect.Kind.Color())
	}

	cx := fbW / 2
	cy := fbH / 2

	switch snap.State {
	case StateMenu:
		title := "SNAKE - DELUXE"
		r.DrawString(title, cx-TextWidth(title, huge)/2, cy-int(huge*16), huge, Palette.Text)
		sub := "ARROWS/WASD TO MOVE - P TO PAUSE"
		r.DrawString(sub, cx-TextWidth(sub, s)/2, cy+int(s*4), s, Palette.TextDim)
		hint := "AVOID OBSTACLES - EAT GOLD FOR +5"
		r.DrawString(hint, cx-TextWidth(hint, s)/2, cy+int(s*16), s, Palette.TextDim)
		start := "PRESS ANY ARROW TO START"
		r.DrawString(start, cx-TextWidth(start, big)/2, cy+int(s*32), big, Palette.Food)

	case StatePaused:
		msg := "PAUSED (PRESS P)"
		r.DrawString(msg, cx-TextWidth(msg, big)/2, cy-int(big*4), big, Palette.Text)

	case StateGameOver:
		over := "GAME OVER"
		r.DrawString(over, cx-TextWidth(over, huge)/2, cy-int(huge*16), huge, Palette.Hearts)
		score := fmt.Sprintf("SCORE: %d   HIGH: %d", snap.Score, snap.High)
		r.DrawString(score, cx-TextWidth(score, big)/2, cy+int(s*4), big, Palette.Text)
		again := "PRESS R TO RESTART - Q TO QUIT"
		r.DrawString(again, cx-TextWidth(again, s)/2, cy+int(s*28), s, Palette.TextDim)
	}

	r.FlushText(fbW, fbH)
	return uiBuf
}
