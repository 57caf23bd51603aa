// Package audio synthesizes the game's sound effects with gopxl/beep.
// Everything is generated at play time from oscillators and envelopes; no
// sample assets are shipped.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator streams a raw waveform for a fixed duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s in an attack/sustain/release volume shape.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer. math.Log2(0) is -Inf, so zero volume is
// handled by silencing instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Event identifies a game sound cue.
type Event int

const (
	// EventPulseWarning plays when a hazard node fires a new pulse.
	EventPulseWarning Event = iota
	// EventGateSolved plays when a sequence gate is completed.
	EventGateSolved
	// EventTrailHardened plays when trails harden into new edges.
	EventTrailHardened
	// EventMilestone plays on reaching a milestone.
	EventMilestone
	// EventCollision plays when a pulse sends the player back to start.
	EventCollision
)

// createPulseWarning is a short low saw buzz.
func createPulseWarning(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(110, 150*time.Millisecond, WaveSaw, rate)
	shaped := NewEnvelope(osc, 150*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, rate)
	return newVolume(shaped, vol*0.5)
}

// createGateSolved is a rising two-note square chime.
func createGateSolved(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewOscillator(987.77, 90*time.Millisecond, WaveSquare, rate)
	n1s := NewEnvelope(n1, 90*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, rate)
	n2 := NewOscillator(1318.51, 140*time.Millisecond, WaveSquare, rate)
	n2s := NewEnvelope(n2, 140*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, rate)
	return newVolume(beep.Seq(n1s, n2s), vol*0.4)
}

// createTrailHardened is a soft sine bell with an octave overtone.
func createTrailHardened(rate beep.SampleRate, vol float64) beep.Streamer {
	fund := NewOscillator(660, 220*time.Millisecond, WaveSine, rate)
	fundShaped := NewEnvelope(fund, 220*time.Millisecond, 5*time.Millisecond, 180*time.Millisecond, rate)
	over := NewOscillator(1320, 220*time.Millisecond, WaveSine, rate)
	overShaped := NewEnvelope(over, 220*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, rate)
	mixed := beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
	return newVolume(mixed, vol*0.5)
}

// createMilestone is a three-note ascending fanfare.
func createMilestone(rate beep.SampleRate, vol float64) beep.Streamer {
	note := func(freq float64, dur time.Duration) beep.Streamer {
		o := NewOscillator(freq, dur, WaveSquare, rate)
		return NewEnvelope(o, dur, 5*time.Millisecond, 50*time.Millisecond, rate)
	}
	seq := beep.Seq(
		note(523.25, 110*time.Millisecond),
		note(659.25, 110*time.Millisecond),
		note(783.99, 220*time.Millisecond),
	)
	return newVolume(seq, vol*0.5)
}

// createCollision is a harsh descending noise burst.
func createCollision(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, 250*time.Millisecond, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, 250*time.Millisecond, 2*time.Millisecond, 200*time.Millisecond, rate)
	low := NewOscillator(80, 250*time.Millisecond, WaveSaw, rate)
	lowShaped := NewEnvelope(low, 250*time.Millisecond, 2*time.Millisecond, 200*time.Millisecond, rate)
	mixed := beep.Mix(newVolume(noiseShaped, 0.4), newVolume(lowShaped, 0.6))
	return newVolume(mixed, vol*0.6)
}

// streamerFor builds the streamer for a given event at the given volume.
func streamerFor(ev Event, rate beep.SampleRate, vol float64) beep.Streamer {
	switch ev {
	case EventPulseWarning:
		return createPulseWarning(rate, vol)
	case EventGateSolved:
		return createGateSolved(rate, vol)
	case EventTrailHardened:
		return createTrailHardened(rate, vol)
	case EventMilestone:
		return createMilestone(rate, vol)
	case EventCollision:
		return createCollision(rate, vol)
	default:
		return nil
	}
}
