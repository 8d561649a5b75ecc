package game

import "math"

// Particle limits.
const (
	MaxParticles      = 4000
	MaxParticleRender = 5000
)

type ParticleKind uint8

const (
	ParticleBurst ParticleKind = iota
	ParticleGlow
)

// Particle is a purely cosmetic sprite spawned from display events.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Size float64

	Life    float64
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(splitmix64(seed)),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// SpawnBurst throws a radial shower of sparks from a cell centre.
// Used for eating, pickups, and hits.
func (ps *ParticleSystem) SpawnBurst(x, y float64, col RGB, count int) {
	for i := 0; i < count; i++ {
		ang := ps.rng.RangeF(0, 2*math.Pi)
		spd := ps.rng.RangeF(60, 140)
		ps.Add(Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(ang) * spd,
			VY:      math.Sin(ang) * spd,
			Size:    ps.rng.RangeF(2, 4),
			MaxLife: 0.45,
			Col:     col,
			Kind:    ParticleBurst,
		})
	}
	// A short-lived glow flash under the burst.
	ps.Add(Particle{
		X:       x,
		Y:       y,
		Size:    18,
		MaxLife: 0.3,
		Col:     col,
		Kind:    ParticleGlow,
	})
}

// Update integrates positions and drops expired particles.
func (ps *ParticleSystem) Update(dt float64) {
	kept := ps.P[:0]
	for _, p := range ps.P {
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		// Sparks slow down as they fade.
		p.VX *= 1 - 2.2*dt
		p.VY *= 1 - 2.2*dt
		kept = append(kept, p)
	}
	ps.P = kept
	if len(ps.P) < ps.Max {
		ps.ovrIdx = 0
	}
}

// ParticleRenderData splits particles into glow (additive) and normal
// (alpha blend) buffers. Format: [x, y, size, r, g, b, a, rotation] * N.
func (ps *ParticleSystem) ParticleRenderData(glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for _, p := range ps.P {
		t := clampF(p.Life/p.MaxLife, 0, 1)
		a := float32(1.0 - t)
		if a <= 0 {
			continue
		}

		rc := float32(p.Col.R) / 255.0
		gc := float32(p.Col.G) / 255.0
		bc := float32(p.Col.B) / 255.0

		sx := float32(p.X)
		sy := float32(p.Y)

		if p.Kind == ParticleGlow {
			// Additive: pre-multiply by alpha.
			glowBuf = append(glowBuf, sx, sy, float32(p.Size), rc*a, gc*a, bc*a, 1, 0)
		} else {
			normBuf = append(normBuf, sx, sy, float32(p.Size), rc, gc, bc, a, 0)
		}
	}
	return glowBuf, normBuf
}
