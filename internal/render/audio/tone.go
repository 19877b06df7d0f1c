package audio

import (
	"fmt"
	"math"
	"time"
)

const (
	// DefaultFrequency is the tone pitch in Hz. 660 Hz is the customary
	// sidetone default.
	DefaultFrequency = 660.0
	// DefaultWPM is the keying speed in words per minute.
	DefaultWPM = 20
	// DefaultSampleRate is the PCM sample rate in Hz.
	DefaultSampleRate = 44100

	// amplitude keeps headroom below full scale.
	amplitude = 0.3
	// rampFrames is the attack/release length, around 5ms at 44.1kHz.
	// Without it each tone starts and stops with an audible click.
	rampFrames = 220
)

// ToneConfig holds the synthesis knobs shared by the player and the file
// writer.
type ToneConfig struct {
	Frequency  float64
	WPM        int
	SampleRate int
}

// DefaultToneConfig returns the standard 660 Hz, 20 WPM, 44.1 kHz setup.
func DefaultToneConfig() ToneConfig {
	return ToneConfig{
		Frequency:  DefaultFrequency,
		WPM:        DefaultWPM,
		SampleRate: DefaultSampleRate,
	}
}

// Validate checks the config for values synthesis cannot work with.
func (c ToneConfig) Validate() error {
	if c.Frequency <= 0 {
		return fmt.Errorf("tone frequency must be positive, got %v", c.Frequency)
	}
	if c.WPM <= 0 {
		return fmt.Errorf("wpm must be positive, got %d", c.WPM)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	return nil
}

// Unit returns the duration of one timing unit. "PARIS " is 50 units, so
// at wpm words per minute one unit lasts 60s/(50*wpm).
func (c ToneConfig) Unit() time.Duration {
	return 60 * time.Second / time.Duration(50*c.WPM)
}

// FramesPerUnit returns how many PCM frames one timing unit spans.
func (c ToneConfig) FramesPerUnit() int {
	return int(int64(c.SampleRate) * int64(c.Unit()) / int64(time.Second))
}

// sineFrames synthesizes frames of a sine tone as floats in [-1, 1], with
// a short linear ramp at both ends.
func sineFrames(freq float64, frames, sampleRate int) []float64 {
	out := make([]float64, frames)
	period := float64(sampleRate) / freq
	for i := range out {
		v := math.Sin(2*math.Pi*float64(i)/period) * amplitude
		if i < rampFrames {
			v *= float64(i) / rampFrames
		}
		if tail := frames - 1 - i; tail < rampFrames {
			v *= float64(tail) / rampFrames
		}
		out[i] = v
	}
	return out
}

// pcm16Stereo interleaves mono float frames into two-channel signed 16-bit
// little-endian PCM, the layout the playback device consumes.
func pcm16Stereo(frames []float64) []byte {
	const max = 32767
	out := make([]byte, len(frames)*4)
	for i, v := range frames {
		b := int16(v * max)
		out[4*i] = byte(b)
		out[4*i+1] = byte(b >> 8)
		out[4*i+2] = byte(b)
		out[4*i+3] = byte(b >> 8)
	}
	return out
}

// intFrames scales mono float frames to signed integers at the given bit
// depth, the layout the WAV encoder consumes.
func intFrames(frames []float64, bitDepth int) []int {
	max := float64(int64(1)<<(bitDepth-1) - 1)
	out := make([]int, len(frames))
	for i, v := range frames {
		out[i] = int(v * max)
	}
	return out
}
