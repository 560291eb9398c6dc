package modal

type (
	// AudioBuffer is a buffer of stereo audio samples of variable length,
	// each sample represented by [2]float32. [0] is left channel, [1] is
	// right.
	AudioBuffer [][2]float32

	// AudioContext is the output device. Play schedules the buffer for
	// playback and returns immediately; buffers played on top of each other
	// are mixed by the device.
	AudioContext interface {
		Play(buffer AudioBuffer) Waiter
		Close() error
	}

	// Waiter is returned by AudioContext.Play; Wait blocks until the buffer
	// has been played.
	Waiter interface {
		Wait()
	}
)

// Duration returns the length of the buffer in seconds at the given sample
// rate.
func (b AudioBuffer) Duration(sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(len(b)) / float64(sampleRate)
}

// Interleaved returns the samples as a flat slice: left, right, left, right...
func (b AudioBuffer) Interleaved() []float32 {
	ret := make([]float32, 0, len(b)*2)
	for _, s := range b {
		ret = append(ret, s[0], s[1])
	}
	return ret
}
