package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the output rate of every generated sound.
const SampleRate = beep.SampleRate(44100)

// WaveType selects an oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer producing duration worth of wave at freq Hz.
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
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release inside duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := range n {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, duration, attack, release time.Duration, wave WaveType) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, SampleRate), duration, attack, release, SampleRate)
}

// LockSound is a short low thud.
func LockSound() beep.Streamer {
	return newVolume(tone(110, 60*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, WaveSquare), 0.4)
}

// ClearSound rises one note per cleared row. Four rows add an octave chord.
func ClearSound(rows int) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	rows = min(max(rows, 1), len(notes))

	var seq []beep.Streamer
	for _, freq := range notes[:rows] {
		seq = append(seq, tone(freq, 70*time.Millisecond, 3*time.Millisecond, 30*time.Millisecond, WaveSine))
	}
	if rows == len(notes) {
		seq = append(seq, beep.Mix(
			newVolume(tone(1046.50, 250*time.Millisecond, 5*time.Millisecond, 200*time.Millisecond, WaveSine), 0.7),
			newVolume(tone(2093.00, 250*time.Millisecond, 5*time.Millisecond, 150*time.Millisecond, WaveSine), 0.3),
		))
	}
	return newVolume(beep.Seq(seq...), 0.6)
}

// GameOverSound is a falling saw sequence.
func GameOverSound() beep.Streamer {
	var seq []beep.Streamer
	for _, freq := range []float64{392.00, 311.13, 261.63, 196.00} {
		seq = append(seq, tone(freq, 180*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, WaveSaw))
	}
	return newVolume(beep.Seq(seq...), 0.35)
}

// RestartSound is a brief noise sweep.
func RestartSound() beep.Streamer {
	return newVolume(tone(0, 120*time.Millisecond, 20*time.Millisecond, 90*time.Millisecond, WaveNoise), 0.2)
}
