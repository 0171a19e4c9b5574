// Package sound synthesizes the game's sound effects as raw PCM, so no audio
// files are shipped or decoded.
package sound

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/gazelaser/config"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveNoise
)

// buffer is mono float64 samples at unity gain
type buffer []float64

type synth struct {
	rate int
	rng  *rand.Rand
}

func (s synth) samples(d time.Duration) int {
	return int(math.Round(d.Seconds() * float64(s.rate)))
}

// sweep generates a waveform whose frequency moves linearly from f0 to f1
func (s synth) sweep(wave int, f0, f1 float64, d time.Duration) buffer {
	n := s.samples(d)
	buf := make(buffer, n)
	phase := 0.0
	for i := range buf {
		switch wave {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case waveNoise:
			buf[i] = s.rng.Float64()*2 - 1
		}

		f := f0 + (f1-f0)*float64(i)/float64(n)
		phase += f / float64(s.rate)
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

// envelope applies a linear attack and an exponential decay in place
func (s synth) envelope(buf buffer, attack time.Duration, decay float64) {
	a := s.samples(attack)
	for i := range buf {
		vol := math.Exp(-decay * float64(i) / float64(len(buf)))
		if i < a {
			vol *= float64(i) / float64(a)
		}
		buf[i] *= vol
	}
}

// lowpass smooths noise into a rumble
func lowpass(buf buffer, alpha float64) {
	prev := 0.0
	for i, v := range buf {
		prev += alpha * (v - prev)
		buf[i] = prev
	}
}

func mix(a, b buffer, bScale float64) buffer {
	if len(b) > len(a) {
		extended := make(buffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

func concat(parts ...buffer) buffer {
	var out buffer
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func (s synth) laser() buffer {
	buf := s.sweep(waveSquare, 1400, 250, 180*time.Millisecond)
	s.envelope(buf, 2*time.Millisecond, 4)
	return buf
}

func (s synth) explosion(d time.Duration, alpha float64) buffer {
	noise := s.sweep(waveNoise, 0, 0, d)
	lowpass(noise, alpha)
	thump := s.sweep(waveSine, 120, 40, d)
	buf := mix(noise, thump, 0.6)
	s.envelope(buf, 5*time.Millisecond, 5)
	return buf
}

func (s synth) gameOver() buffer {
	var notes []buffer
	for _, f := range []float64{392, 330, 262} {
		n := s.sweep(waveSine, f, f*0.98, 300*time.Millisecond)
		s.envelope(n, 10*time.Millisecond, 2)
		notes = append(notes, n)
	}
	return concat(notes...)
}

// Synthesize renders a sound as 16-bit little-endian stereo PCM at rate,
// the format ebiten's audio players take. Output for a given sound and rate
// is always the same. SoundNone renders nothing.
func Synthesize(id cfg.SoundID, rate int) []byte {
	s := synth{rate: rate, rng: rand.New(rand.NewSource(int64(id)))}

	var buf buffer
	switch id {
	case cfg.SoundLaser:
		buf = s.laser()
	case cfg.SoundExplosion:
		buf = s.explosion(400*time.Millisecond, 0.25)
	case cfg.SoundBombExplosion:
		buf = s.explosion(900*time.Millisecond, 0.08)
	case cfg.SoundGameOver:
		buf = s.gameOver()
	default:
		return nil
	}
	return encode(buf)
}

func encode(buf buffer) []byte {
	out := make([]byte, len(buf)*4)
	for i, v := range buf {
		v = math.Max(-1, math.Min(1, v))
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], sample)
		binary.LittleEndian.PutUint16(out[i*4+2:], sample)
	}
	return out
}
