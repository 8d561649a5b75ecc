package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for GL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// fieldView returns the camera centre and zoom that letterbox the whole
// field into the framebuffer.
func fieldView(cfg Config, fbW, fbH int) (camX, camY, zoom float32) {
	zx := float64(fbW) / float64(cfg.Width)
	zy := float64(fbH) / float64(cfg.Height)
	z := zx
	if zy < z {
		z = zy
	}
	return float32(cfg.Width) * 0.5, float32(cfg.Height) * 0.5, float32(z)
}

type Renderer struct {
	// Background gradient program.
	bgProg    uint32
	bgVAO     uint32
	bgVBO     uint32
	bgUTop    int32
	bgUBottom int32

	// Sprite programs share one streaming VBO.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	cellProg     uint32
	particleProg uint32
	glowProg     uint32
	spriteVAO    uint32
	spriteVBO    uint32

	cellUCamera     int32
	cellUZoom       int32
	cellUResolution int32
	partUCamera     int32
	partUZoom       int32
	partUResolution int32
	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32

	// Quad program: field-space colored triangles, 6 floats per vertex.
	quadProg        uint32
	quadVAO         uint32
	quadVBO         uint32
	quadUCamera     int32
	quadUZoom       int32
	quadUResolution int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	bgProg, err := linkProgram(bgVertSrc, bgFragSrc)
	if err != nil {
		return nil, fmt.Errorf("background program: %w", err)
	}
	cellProg, err := linkProgram(spriteVertSrc, cellFragSrc)
	if err != nil {
		gl.DeleteProgram(bgProg)
		return nil, fmt.Errorf("cell program: %w", err)
	}
	particleProg, err := linkProgram(spriteVertSrc, particleFragSrc)
	if err != nil {
		gl.DeleteProgram(bgProg)
		gl.DeleteProgram(cellProg)
		return nil, fmt.Errorf("particle program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(bgProg)
		gl.DeleteProgram(cellProg)
		gl.DeleteProgram(particleProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		gl.DeleteProgram(bgProg)
		gl.DeleteProgram(cellProg)
		gl.DeleteProgram(particleProg)
		gl.DeleteProgram(glowProg)
		return nil, fmt.Errorf("quad program: %w", err)
	}

	r := &Renderer{
		bgProg:       bgProg,
		cellProg:     cellProg,
		particleProg: particleProg,
		glowProg:     glowProg,
		quadProg:     quadProg,
	}

	// Background VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var bVAO, bVBO uint32
	gl.GenVertexArrays(1, &bVAO)
	gl.GenBuffers(1, &bVBO)
	gl.BindVertexArray(bVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, bVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.bgVAO = bVAO
	r.bgVBO = bVBO

	gl.UseProgram(bgProg)
	r.bgUTop = gl.GetUniformLocation(bgProg, gl.Str("uTop\x00"))
	r.bgUBottom = gl.GetUniformLocation(bgProg, gl.Str("uBottom\x00"))

	// Sprite VAO/VBO: streaming buffer for point sprites.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	// aFieldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(cellProg)
	r.cellUCamera = gl.GetUniformLocation(cellProg, gl.Str("uCamera\x00"))
	r.cellUZoom = gl.GetUniformLocation(cellProg, gl.Str("uZoom\x00"))
	r.cellUResolution = gl.GetUniformLocation(cellProg, gl.Str("uResolution\x00"))

	gl.UseProgram(particleProg)
	r.partUCamera = gl.GetUniformLocation(particleProg, gl.Str("uCamera\x00"))
	r.partUZoom = gl.GetUniformLocation(particleProg, gl.Str("uZoom\x00"))
	r.partUResolution = gl.GetUniformLocation(particleProg, gl.Str("uResolution\x00"))

	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	// Quad VAO/VBO: streaming buffer for colored triangles.
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)

	qStride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 1024*6*int(qStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aFieldPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, qStride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aColor
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, qStride, glOffset(2*4))
	r.quadVAO = qVAO
	r.quadVBO = qVBO

	gl.UseProgram(quadProg)
	r.quadUCamera = gl.GetUniformLocation(quadProg, gl.Str("uCamera\x00"))
	r.quadUZoom = gl.GetUniformLocation(quadProg, gl.Str("uZoom\x00"))
	r.quadUResolution = gl.GetUniformLocation(quadProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

// InitFont rasterizes the built-in glyph table, uploads it as the font
// atlas texture, and sets up the text pipeline.
func (r *Renderer) InitFont() error {
	pix := buildFontAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(FontAtlasW), int32(FontAtlasH), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.bgVBO, r.spriteVBO, r.quadVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.bgVAO, r.spriteVAO, r.quadVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.bgProg, r.cellProg, r.particleProg, r.glowProg, r.quadProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawBackground fills the viewport with the vertical gradient.
func (r *Renderer) DrawBackground() {
	gl.UseProgram(r.bgProg)
	gl.BindVertexArray(r.bgVAO)
	gl.Uniform3f(r.bgUTop,
		float32(Palette.BgTop.R)/255.0,
		float32(Palette.BgTop.G)/255.0,
		float32(Palette.BgTop.B)/255.0)
	gl.Uniform3f(r.bgUBottom,
		float32(Palette.BgBottom.R)/255.0,
		float32(Palette.BgBottom.G)/255.0,
		float32(Palette.BgBottom.B)/255.0)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (r *Renderer) drawSpriteBuf(prog uint32, uCam, uZoom, uRes int32, buf []float32, cfg Config, fbW, fbH int, additive bool) {
	if len(buf) == 0 {
		return
	}
	camX, camY, zoom := fieldView(cfg, fbW, fbH)

	gl.UseProgram(prog)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(uCam, camX, camY)
	gl.Uniform1f(uZoom, zoom)
	gl.Uniform2f(uRes, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	count := len(buf) / 8
	if count > MaxParticleRender {
		count = MaxParticleRender
		buf = buf[:count*8]
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawCells renders grid entities as rounded squares.
// Format: [x, y, size, r, g, b, a, rotation] * N, positions at cell centres.
func (r *Renderer) DrawCells(buf []float32, cfg Config, fbW, fbH int) {
	r.drawSpriteBuf(r.cellProg, r.cellUCamera, r.cellUZoom, r.cellUResolution, buf, cfg, fbW, fbH, false)
}

// DrawSprites renders plain square particles with alpha blending.
func (r *Renderer) DrawSprites(buf []float32, cfg Config, fbW, fbH int) {
	r.drawSpriteBuf(r.particleProg, r.partUCamera, r.partUZoom, r.partUResolution, buf, cfg, fbW, fbH, false)
}

// DrawGlowSprites renders additive radial glows.
func (r *Renderer) DrawGlowSprites(buf []float32, cfg Config, fbW, fbH int) {
	r.drawSpriteBuf(r.glowProg, r.glowUCamera, r.glowUZoom, r.glowUResolution, buf, cfg, fbW, fbH, true)
}

// DrawQuads renders field-space colored triangles.
// Format: [x, y, r, g, b, a] per vertex, 6 vertices per rectangle.
func (r *Renderer) DrawQuads(buf []float32, cfg Config, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	camX, camY, zoom := fieldView(cfg, fbW, fbH)

	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.Uniform2f(r.quadUCamera, camX, camY)
	gl.Uniform1f(r.quadUZoom, zoom)
	gl.Uniform2f(r.quadUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(buf)/6))

	gl.Disable(gl.BLEND)
}

// DrawChar queues a single character as a textured quad in screen pixel
// space. Lowercase folds to uppercase; the atlas has no minuscules.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col RGB) {
	if ch >= 'a' && ch <= 'z' {
		ch -= 32
	}
	if ch < 32 || ch > 127 {
		return
	}
	c := int(ch) - 32
	column := c % FontCols
	row := c / FontCols

	u0 := float32(column*FontCellW) / float32(FontAtlasW)
	v0 := float32(row*FontCellH) / float32(FontAtlasH)
	u1 := float32((column+1)*FontCellW) / float32(FontAtlasW)
	v1 := float32((row+1)*FontCellH) / float32(FontAtlasH)

	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale

	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0

	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx+w, sy+h, u1, v1, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
	)
}

// DrawString queues a string at screen pixel position (sx, sy).
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB) {
	advance := float32(FontCellW) * scale
	lineAdvance := float32(FontCellH) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col)
		x += advance
	}
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*FontCellW) * scale)
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
