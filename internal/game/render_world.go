package game

import "math"

// appendCell appends one rounded-cell sprite centred on c.
func appendCell(buf []float32, c Cell, size float64, col RGB, a float32, grid int) []float32 {
	return append(buf,
		float32(c.X)+float32(grid)*0.5,
		float32(c.Y)+float32(grid)*0.5,
		float32(size),
		float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0, a, 0,
	)
}

// appendQuad appends one rectangle as two triangles.
func appendQuad(buf []float32, rc Rect, col RGB, a float32) []float32 {
	x0 := float32(rc.X)
	y0 := float32(rc.Y)
	x1 := float32(rc.X + rc.W)
	y1 := float32(rc.Y + rc.H)
	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0
	return append(buf,
		x0, y0, cr, cg, cb, a,
		x1, y0, cr, cg, cb, a,
		x1, y1, cr, cg, cb, a,
		x0, y0, cr, cg, cb, a,
		x1, y1, cr, cg, cb, a,
		x0, y1, cr, cg, cb, a,
	)
}

// SnakeSprites builds the snake body with a highlighted head. The head
// is the last segment, drawn last so it sits on top; the body darkens
// toward the tail.
func SnakeSprites(snap Snapshot, cfg Config, buf []float32) []float32 {
	buf = buf[:0]
	tail := Palette.Snake.Mul(140)
	n := len(snap.Snake)
	for i, seg := range snap.Snake {
		col := Palette.SnakeHead
		if i < n-1 {
			col = lerpRGB(tail, Palette.Snake, float64(i)/float64(n-1))
		}
		buf = appendCell(buf, seg, float64(cfg.Grid), col, 1, cfg.Grid)
	}
	return buf
}

// EntitySprites builds food, special food, and power-up sprites.
// Pulse animation keys off the game clock so it freezes on pause.
func EntitySprites(snap Snapshot, cfg Config, buf []float32) []float32 {
	buf = buf[:0]
	g := float64(cfg.Grid)

	if snap.HasFood {
		pulse := (math.Sin(snap.Clock*5) + 1) * 2 // 0..4 px
		buf = appendCell(buf, snap.Food, g+pulse, Palette.Food, 1, cfg.Grid)
	}

	if snap.HasSpecial {
		wave := math.Sin(snap.Clock * 7.5)
		pulse := (wave + 1) * 3
		glint := Palette.Special.Add(int(wave*30), int(wave*20), 0)
		buf = appendCell(buf, snap.Special, g+pulse, glint, 1, cfg.Grid)
		buf = appendCell(buf, snap.Special, g*0.45, Palette.SpecialDot, 1, cfg.Grid)
	}

	for _, p := range snap.PowerUps {
		pulse := (math.Sin(snap.Clock*6) + 1) * 2.5
		// Fade out over the last second of TTL.
		a := float32(clampF(p.Remaining, 0, 1))
		buf = appendCell(buf, p.Pos, g+pulse, p.Kind.Color(), a, cfg.Grid)
		buf = appendCell(buf, p.Pos, g*0.4, Palette.SpecialDot, a, cfg.Grid)
	}

	return buf
}

// ObstacleQuads builds static obstacles and moving strips.
func ObstacleQuads(snap Snapshot, buf []float32) []float32 {
	buf = buf[:0]
	for _, o := range snap.Statics {
		buf = appendQuad(buf, o, Palette.Obstacle, 1)
	}
	for _, m := range snap.Movers {
		buf = appendQuad(buf, m, Palette.Mover, 1)
	}
	return buf
}
