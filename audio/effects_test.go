package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			peak = max(peak, frame[0], -frame[0], frame[1], -frame[1])
		}
		total += n
		if !ok {
			require.NoError(t, s.Err())
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillatorLengthAndRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(t, NewOscillator(440, 100*time.Millisecond, wave, SampleRate))
		assert.Equal(t, SampleRate.N(100*time.Millisecond), n, "wave %d", wave)
		assert.LessOrEqual(t, peak, 1.0, "wave %d", wave)
	}
}

func TestSquareWaveIsBinary(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, SampleRate)
	buf := make([][2]float64, 64)
	n, ok := osc.Stream(buf)
	require.True(t, ok)
	for _, frame := range buf[:n] {
		assert.Contains(t, []float64{-1, 1}, frame[0])
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	d := 20 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, SampleRate), d, 5*time.Millisecond, 5*time.Millisecond, SampleRate)

	buf := make([][2]float64, SampleRate.N(d))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Zero(t, buf[0][0])
	assert.InDelta(t, 1.0, buf[n/2][0], 1e-9)
	assert.Less(t, buf[n-1][0], 0.1)
}

func TestEffectsTerminate(t *testing.T) {
	sounds := map[string]beep.Streamer{
		"lock":     LockSound(),
		"clear1":   ClearSound(1),
		"clear4":   ClearSound(4),
		"gameover": GameOverSound(),
		"restart":  RestartSound(),
	}
	for name, s := range sounds {
		n, peak := drain(t, s)
		assert.Positive(t, n, name)
		assert.LessOrEqual(t, peak, 1.0, name)
	}

	short, _ := drain(t, ClearSound(1))
	long, _ := drain(t, ClearSound(4))
	assert.Greater(t, long, short)
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(t, newVolume(NewOscillator(440, 10*time.Millisecond, WaveSine, SampleRate), 0))
	assert.Zero(t, peak)
}
