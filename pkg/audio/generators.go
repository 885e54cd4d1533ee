package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sweep is a finite sine tone gliding linearly from one frequency to another
// under a short attack and a linear release.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	volume   float64
	pos      int
	samples  int
	phase    float64
}

// NewAlertGenerator returns a 250ms chirp falling from 1320Hz to 660Hz.
func NewAlertGenerator(sr beep.SampleRate) beep.Streamer {
	first := &sweep{sr: sr, from: 1320, to: 990, volume: 0.35, samples: sr.N(110 * time.Millisecond)}
	second := &sweep{sr: sr, from: 990, to: 660, volume: 0.35, samples: sr.N(140 * time.Millisecond)}
	return beep.Seq(first, second)
}

// NewJumpGenerator returns an 80ms blip rising from 300Hz to 600Hz.
func NewJumpGenerator(sr beep.SampleRate) beep.Streamer {
	return &sweep{sr: sr, from: 300, to: 600, volume: 0.2, samples: sr.N(80 * time.Millisecond)}
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}

		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
		sample := math.Sin(g.phase) * g.volume * attack * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error {
	return nil
}

// Len returns the total length of the tone in samples.
func (g *sweep) Len() int {
	return g.samples
}
