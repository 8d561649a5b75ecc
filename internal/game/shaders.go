package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Fullscreen background: a unit quad with a vertical two-colour gradient.
const bgVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // unit-quad corner in 0..1

out vec2 vGrad;

void main() {
    vGrad = aPos;
    vec2 clip = aPos * 2.0 - 1.0;
    gl_Position = vec4(clip.x, -clip.y, 0.0, 1.0);
}
` + "\x00"

const bgFragSrc = `#version 410 core

uniform vec3 uTop;
uniform vec3 uBottom;

in vec2 vGrad;
out vec4 FragColor;

void main() {
    FragColor = vec4(mix(uTop, uBottom, vGrad.y), 1.0);
}
` + "\x00"

// Point-sprite vertex stage shared by cells, particles, and glows.
// Positions arrive in field pixels; uCamera/uZoom letterbox them onto
// the framebuffer.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 aFieldPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aRotation;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;

void main() {
    vec2 view = (aFieldPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 clip = view / uResolution * 2.0 - 1.0;
    gl_Position = vec4(clip.x, -clip.y, 0.0, 1.0);
    gl_PointSize = max(1.0, floor(aSize * uZoom + 0.5));
    vColor = aColor;
}
` + "\x00"

// Rounded square, the look of every grid entity.
const cellFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    const float radius = 0.16;
    vec2 q = abs(gl_PointCoord - 0.5);
    if (length(max(q - (0.5 - radius), 0.0)) > radius) discard;
    FragColor = vColor;
}
` + "\x00"

// Plain square spark.
const particleFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// Additive radial glow; vColor.rgb carries the brightness.
const glowFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float edge = length(gl_PointCoord - 0.5) * 2.0;
    float falloff = clamp(1.0 - edge, 0.0, 1.0);
    FragColor = vec4(vColor.rgb * falloff * falloff, 1.0);
}
` + "\x00"

// Field-space coloured triangles for the rectangles that are not square
// cells: obstacles and the scoreboard band.
const quadVertSrc = `#version 410 core

layout(location = 0) in vec2 aFieldPos;
layout(location = 1) in vec4 aColor;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;

void main() {
    vec2 view = (aFieldPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 clip = view / uResolution * 2.0 - 1.0;
    gl_Position = vec4(clip.x, -clip.y, 0.0, 1.0);
    vColor = aColor;
}
` + "\x00"

const quadFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// Screen-space textured quads for the font atlas.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 clip = aPos / uResolution * 2.0 - 1.0;
    gl_Position = vec4(clip.x, -clip.y, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

func compileShader(src string, kind uint32) (uint32, error) {
	sh := gl.CreateShader(kind)
	ptr, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, ptr, nil)
	free()
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetShaderInfoLog(sh, n, nil, &log[0])
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(string(log), "\x00"))
	}
	return sh, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetProgramInfoLog(prog, n, nil, &log[0])
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(string(log), "\x00"))
	}
	return prog, nil
}
