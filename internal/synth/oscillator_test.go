package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSamplesLengthAndRange(t *testing.T) {
	osc := &Oscillator{Waveform: WaveformSine, Frequency: 440, Amplitude: 0.5}

	for _, n := range []int{0, 1, 7, 48000} {
		samples, err := osc.GenerateSamples(n, 48000)
		require.NoError(t, err)
		require.Len(t, samples, n)

		for i, s := range samples {
			if s < -0.5 || s > 0.5 {
				t.Fatalf("sample %d out of range: %v", i, s)
			}
		}
	}
}

func TestGenerateSamplesNegativeAmplitude(t *testing.T) {
	osc := &Oscillator{Frequency: 100, Amplitude: -2}

	samples, err := osc.GenerateSamples(441, 44100)
	require.NoError(t, err)
	for _, s := range samples {
		assert.LessOrEqual(t, math.Abs(s), 2.0)
	}
}

func TestGenerateSamplesDeterministic(t *testing.T) {
	osc := &Oscillator{Waveform: WaveformSine, Frequency: 440, Amplitude: 0.5}

	first, err := osc.GenerateSamples(4096, 44100)
	require.NoError(t, err)
	second, err := osc.GenerateSamples(4096, 44100)
	require.NoError(t, err)

	for i := range first {
		if math.Float64bits(first[i]) != math.Float64bits(second[i]) {
			t.Fatalf("sample %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}

	// 子区间与整体逐位一致
	for i := 1000; i < 1100; i++ {
		assert.Equal(t, math.Float64bits(first[i]), math.Float64bits(osc.SampleAt(i, 44100)))
	}
}

func TestGenerateSamplesPeriodicity(t *testing.T) {
	t.Run("frequency equals sample rate", func(t *testing.T) {
		osc := &Oscillator{Frequency: 8000, Amplitude: 1}
		samples, err := osc.GenerateSamples(32, 8000)
		require.NoError(t, err)
		for i, s := range samples {
			assert.Equal(t, 0.0, s, "sample %d", i)
		}
	})

	t.Run("quarter sample rate", func(t *testing.T) {
		osc := &Oscillator{Frequency: 2000, Amplitude: 0.8}
		samples, err := osc.GenerateSamples(64, 8000)
		require.NoError(t, err)

		assert.Equal(t, 0.0, samples[0])
		assert.InDelta(t, 0.8, samples[1], 1e-12)
		assert.InDelta(t, 0.0, samples[2], 1e-12)
		assert.InDelta(t, -0.8, samples[3], 1e-12)

		for i := 0; i+4 < len(samples); i++ {
			assert.Equal(t, samples[i], samples[i+4], "period broken at %d", i)
		}
	})
}

func TestGenerateSamplesContractViolations(t *testing.T) {
	tests := []struct {
		name       string
		osc        Oscillator
		count      int
		sampleRate int
		wantErr    error
	}{
		{"negative count", Oscillator{Frequency: 440, Amplitude: 1}, -1, 48000, ErrInvalidCount},
		{"zero sample rate", Oscillator{Frequency: 440, Amplitude: 1}, 10, 0, ErrInvalidSampleRate},
		{"negative sample rate", Oscillator{Frequency: 440, Amplitude: 1}, 10, -44100, ErrInvalidSampleRate},
		{"zero frequency", Oscillator{Frequency: 0, Amplitude: 1}, 10, 48000, ErrInvalidFrequency},
		{"negative frequency", Oscillator{Frequency: -5, Amplitude: 1}, 10, 48000, ErrInvalidFrequency},
		{"nan frequency", Oscillator{Frequency: math.NaN(), Amplitude: 1}, 10, 48000, ErrInvalidFrequency},
		{"inf frequency", Oscillator{Frequency: math.Inf(1), Amplitude: 1}, 10, 48000, ErrInvalidFrequency},
		{"unknown waveform", Oscillator{Waveform: Waveform(7), Frequency: 440, Amplitude: 1}, 10, 48000, ErrUnknownWaveform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, err := tt.osc.GenerateSamples(tt.count, tt.sampleRate)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, samples)

			_, err = tt.osc.Samples(tt.count, tt.sampleRate)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSamplesIterator(t *testing.T) {
	osc := &Oscillator{Frequency: 440, Amplitude: 0.5}

	eager, err := osc.GenerateSamples(256, 48000)
	require.NoError(t, err)

	seq, err := osc.Samples(256, 48000)
	require.NoError(t, err)

	// 可重复遍历
	for pass := 0; pass < 2; pass++ {
		n := 0
		for i, s := range seq {
			assert.Equal(t, eager[i], s)
			n++
		}
		assert.Equal(t, 256, n)
	}

	// 提前终止
	n := 0
	for range seq {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)
}

func TestWaveformText(t *testing.T) {
	w, err := ParseWaveform(" Sine ")
	require.NoError(t, err)
	assert.Equal(t, WaveformSine, w)
	assert.Equal(t, "sine", w.String())

	_, err = ParseWaveform("square")
	assert.ErrorIs(t, err, ErrUnknownWaveform)

	var decoded Waveform
	require.NoError(t, decoded.UnmarshalText([]byte("sin")))
	assert.Equal(t, WaveformSine, decoded)

	text, err := WaveformSine.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "sine", string(text))

	_, err = Waveform(3).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownWaveform)
	assert.Equal(t, "Waveform(3)", Waveform(3).String())
}
