package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	BgTop      RGB
	BgBottom   RGB
	Bar        RGB
	BarLine    RGB
	Text       RGB
	TextDim    RGB
	Snake      RGB
	SnakeHead  RGB
	Food       RGB
	Special    RGB
	SpecialDot RGB
	Obstacle   RGB
	Mover      RGB
	Hearts     RGB
	High       RGB
	Speed      RGB
	Slow       RGB
	Bonus      RGB
}{
	BgTop:      RGB{R: 18, G: 18, B: 24},
	BgBottom:   RGB{R: 28, G: 28, B: 40},
	Bar:        RGB{R: 22, G: 22, B: 30},
	BarLine:    RGB{R: 70, G: 72, B: 82},
	Text:       RGB{R: 255, G: 255, B: 255},
	TextDim:    RGB{R: 200, G: 200, B: 210},
	Snake:      RGB{R: 80, G: 220, B: 140},
	SnakeHead:  RGB{R: 120, G: 255, B: 170},
	Food:       RGB{R: 40, G: 220, B: 120},
	Special:    RGB{R: 255, G: 200, B: 60},
	SpecialDot: RGB{R: 255, G: 255, B: 255},
	Obstacle:   RGB{R: 90, G: 90, B: 110},
	Mover:      RGB{R: 110, G: 100, B: 130},
	Hearts:     RGB{R: 220, G: 68, B: 90},
	High:       RGB{R: 255, G: 200, B: 60},
	Speed:      RGB{R: 80, G: 240, B: 240},
	Slow:       RGB{R: 160, G: 120, B: 255},
	Bonus:      RGB{R: 255, G: 200, B: 60},
}
