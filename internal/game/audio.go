package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the game's sound effects.
type SoundKind int

const (
	SoundEat SoundKind = iota
	SoundSpecial
	SoundPower
	SoundHurt
	SoundLevelUp
	SoundGameOver
	SoundMenuSelect
)

// AudioSystem holds the oto context. Effects are synthesized on demand;
// there are no audio assets.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.58

// InitAudio opens the audio device. The returned context warms up
// asynchronously; PlaySound drops effects until it is ready.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound synthesizes and plays one effect. Safe before InitAudio or
// while the device is still warming up; the sound is simply dropped.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	pcm := renderEffect(kind)
	if len(pcm) == 0 {
		return
	}
	go func() {
		player := globalAudio.ctx.NewPlayer(&pcmReader{data: pcm})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type pcmReader struct {
	data []byte
	pos  int
}

func (r *pcmReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// voice is one FM layer of an effect: a carrier sweeping from f0 to f1
// over dur seconds, starting at onset. All seven effects are tables of
// voices fed through the same renderer.
type voice struct {
	onset float64 // seconds into the effect
	dur   float64
	f0    float64 // carrier start frequency
	f1    float64 // carrier end frequency
	ratio float64 // modulator/carrier ratio (0 = pure sine)
	depth float64 // modulation index at full envelope
	gain  float64
	att   float64 // attack, fraction of dur
	decay float64 // exponential decay strength
}

// shape is an attack ramp into an exponential tail, evaluated at
// normalized progress p in [0,1].
func (v voice) shape(p float64) float64 {
	e := math.Exp(-v.decay * p)
	if p < v.att {
		return p / v.att * e
	}
	return e
}

// limit is a cubic soft clip keeping summed layers inside [-1,1].
func limit(x float64) float64 {
	if x >= 1.5 {
		return 1
	}
	if x <= -1.5 {
		return -1
	}
	return x - 4.0/27.0*x*x*x
}

// renderVoices synthesizes the layer table into interleaved stereo
// float32 PCM. Carriers integrate phase so frequency sweeps stay smooth.
func renderVoices(voices []voice) []byte {
	total := 0.0
	for _, v := range voices {
		if end := v.onset + v.dur; end > total {
			total = end
		}
	}
	frames := int(total * SampleRate)
	if frames == 0 {
		return nil
	}
	mix := make([]float64, frames)

	const dt = 1.0 / SampleRate
	for _, v := range voices {
		start := int(v.onset * SampleRate)
		count := int(v.dur * SampleRate)
		phase := 0.0
		for j := 0; j < count && start+j < frames; j++ {
			p := float64(j) / float64(count)
			freq := v.f0 + (v.f1-v.f0)*p
			phase += 2 * math.Pi * freq * dt
			env := v.shape(p)
			s := phase
			if v.ratio > 0 {
				s += v.depth * env * math.Sin(phase*v.ratio)
			}
			mix[start+j] += math.Sin(s) * env * v.gain
		}
	}

	out := make([]byte, frames*8)
	for i, s := range mix {
		bits := math.Float32bits(float32(limit(s)))
		for c := 0; c < 2; c++ {
			o := i*8 + c*4
			out[o] = byte(bits)
			out[o+1] = byte(bits >> 8)
			out[o+2] = byte(bits >> 16)
			out[o+3] = byte(bits >> 24)
		}
	}
	return out
}

func renderEffect(kind SoundKind) []byte {
	switch kind {
	case SoundEat:
		// Short upward blip.
		return renderVoices([]voice{
			{dur: 0.09, f0: 460, f1: 1150, ratio: 2, depth: 2.6, gain: 0.5, att: 0.05, decay: 3.2},
		})
	case SoundSpecial:
		// Two-note golden chime with an octave sparkle.
		return renderVoices([]voice{
			{dur: 0.14, f0: 660, f1: 660, ratio: 3, depth: 2.2, gain: 0.4, att: 0.04, decay: 2.4},
			{onset: 0.11, dur: 0.2, f0: 880, f1: 880, ratio: 3, depth: 2.2, gain: 0.42, att: 0.04, decay: 2.8},
			{onset: 0.11, dur: 0.2, f0: 1760, f1: 1760, gain: 0.08, att: 0.04, decay: 3.5},
		})
	case SoundPower:
		// Shimmer sweeping up and settling.
		return renderVoices([]voice{
			{dur: 0.22, f0: 520, f1: 1040, ratio: 1.5, depth: 3.4, gain: 0.38, att: 0.08, decay: 2.2},
			{dur: 0.22, f0: 780, f1: 1560, gain: 0.1, att: 0.1, decay: 2.6},
		})
	case SoundHurt:
		// Falling thud with a sub layer.
		return renderVoices([]voice{
			{dur: 0.17, f0: 300, f1: 95, ratio: 1.5, depth: 2.4, gain: 0.55, att: 0.04, decay: 2.8},
			{dur: 0.17, f0: 150, f1: 60, gain: 0.18, att: 0.04, decay: 3.0},
		})
	case SoundLevelUp:
		// Ascending A-major arpeggio, each bell rings into the next.
		return renderVoices([]voice{
			{onset: 0.00, dur: 0.30, f0: 440, f1: 440, ratio: 3.5, depth: 4.2, gain: 0.26, att: 0.02, decay: 4.5},
			{onset: 0.09, dur: 0.30, f0: 554.37, f1: 554.37, ratio: 3.5, depth: 4.2, gain: 0.26, att: 0.02, decay: 4.5},
			{onset: 0.18, dur: 0.30, f0: 659.25, f1: 659.25, ratio: 3.5, depth: 4.2, gain: 0.26, att: 0.02, decay: 4.5},
			{onset: 0.27, dur: 0.34, f0: 880, f1: 880, ratio: 3.5, depth: 4.2, gain: 0.3, att: 0.02, decay: 4.0},
		})
	case SoundGameOver:
		// A-minor chord arriving note by note, drooping slightly flat.
		return renderVoices([]voice{
			{onset: 0.00, dur: 0.75, f0: 329.63, f1: 321, ratio: 2, depth: 1.8, gain: 0.3, att: 0.03, decay: 2.0},
			{onset: 0.14, dur: 0.61, f0: 261.63, f1: 255, ratio: 2, depth: 1.8, gain: 0.3, att: 0.03, decay: 2.0},
			{onset: 0.28, dur: 0.47, f0: 220, f1: 214, ratio: 2, depth: 1.8, gain: 0.34, att: 0.03, decay: 1.8},
			{onset: 0.28, dur: 0.47, f0: 110, f1: 107, gain: 0.14, att: 0.05, decay: 1.8},
		})
	case SoundMenuSelect:
		// Crisp click.
		return renderVoices([]voice{
			{dur: 0.06, f0: 1400, f1: 760, ratio: 1, depth: 0.6, gain: 0.36, att: 0.08, decay: 4.2},
		})
	}
	return nil
}
