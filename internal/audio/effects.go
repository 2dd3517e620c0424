package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(44100)

// Effect durations.
const (
	flapDuration  = 90 * time.Millisecond
	goalNote      = 70 * time.Millisecond
	goalTail      = 160 * time.Millisecond
	deathDuration = 450 * time.Millisecond
)

// voice renders a finite mono sound from a sample function.
// progress runs from 0 to 1 over the voice's length.
type voice struct {
	sr     beep.SampleRate
	pos    int
	total  int
	sample func(t, progress float64) float64
}

func newVoice(sr beep.SampleRate, d time.Duration, fn func(t, progress float64) float64) *voice {
	return &voice{sr: sr, total: sr.N(d), sample: fn}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.pos >= v.total {
		return 0, false
	}
	for i := range samples {
		if v.pos >= v.total {
			return i, true
		}
		t := float64(v.pos) / float64(v.sr)
		s := v.sample(t, float64(v.pos)/float64(v.total))
		samples[i][0] = s
		samples[i][1] = s
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error {
	return nil
}

// envelope is a short linear attack followed by a linear release.
func envelope(progress float64) float64 {
	const attack = 0.05
	if progress < attack {
		return progress / attack
	}
	return 1 - (progress-attack)/(1-attack)
}

// sweep returns the phase of a tone gliding linearly from f0 to f1 over d seconds.
func sweep(t, f0, f1, d float64) float64 {
	return 2 * math.Pi * (f0*t + (f1-f0)*t*t/(2*d))
}

// NewFlap is a short upward chirp.
func NewFlap(sr beep.SampleRate) beep.Streamer {
	d := flapDuration.Seconds()
	return newVoice(sr, flapDuration, func(t, p float64) float64 {
		return 0.25 * envelope(p) * math.Sin(sweep(t, 420, 960, d))
	})
}

// NewGoal is a two-note pickup jingle.
func NewGoal(sr beep.SampleRate) beep.Streamer {
	note := func(freq float64, d time.Duration) beep.Streamer {
		return newVoice(sr, d, func(t, p float64) float64 {
			s := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
			return 0.18 * envelope(p) * s
		})
	}
	return beep.Seq(note(988, goalNote), note(1319, goalTail))
}

// NewDeath is a falling thud over crackling noise.
func NewDeath(sr beep.SampleRate) beep.Streamer {
	d := deathDuration.Seconds()
	seed := int64(0x2545f491)
	return newVoice(sr, deathDuration, func(t, p float64) float64 {
		seed = (seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(seed)/float64(0x7fffffff)*2 - 1
		decay := math.Exp(-t * 6)
		return decay * (0.3*math.Sin(sweep(t, 220, 55, d)) + 0.15*noise) * (1 - p)
	})
}
