package synth

import (
	"fmt"
	"math"

	"github.com/lobo-larsen/modal-composer"
	"github.com/viterin/vek/vek32"
)

// Render mixes the tone events into a stereo buffer at the given sample rate.
// The buffer starts at time 0 and ends when the last tone stops. Tones are
// summed; if the sum would clip, the whole buffer is scaled down to a peak of
// 1.
func Render(events []ToneEvent, sampleRate int) (modal.AudioBuffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %v", sampleRate)
	}
	end := 0.0
	for _, e := range events {
		if err := e.Envelope.Validate(); err != nil {
			return nil, fmt.Errorf("cannot render %v%v: %w", e.Note, e.Octave, err)
		}
		if e.Start < 0 {
			return nil, fmt.Errorf("cannot render %v%v: negative start time %v", e.Note, e.Octave, e.Start)
		}
		end = max(end, e.End())
	}
	length := int(math.Ceil(end * float64(sampleRate)))
	mix := make([]float32, length)
	var tone []float32
	for _, e := range events {
		first := int(math.Round(e.Start * float64(sampleRate)))
		if first >= length {
			continue
		}
		n := min(int(math.Ceil(e.Envelope.Duration*float64(sampleRate))), length-first)
		tone = renderTone(tone, e, n, sampleRate)
		vek32.Add_Inplace(mix[first:first+n], tone)
	}
	if peak := Peak(mix); peak > 1 {
		vek32.MulNumber_Inplace(mix, 1/peak)
	}
	ret := make(modal.AudioBuffer, length)
	for i, v := range mix {
		ret[i] = [2]float32{v, v}
	}
	return ret, nil
}

// renderTone writes n samples of the tone into buf, reusing its capacity.
func renderTone(buf []float32, e ToneEvent, n, sampleRate int) []float32 {
	if cap(buf) < n {
		buf = make([]float32, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = float32(e.Value(float64(i) / float64(sampleRate)))
	}
	return buf
}

// Peak returns the largest absolute sample value.
func Peak(samples []float32) float32 {
	if len(samples) == 0 {
		return 0
	}
	abs := vek32.Abs(samples)
	return vek32.Max(abs)
}

// RenderChord renders a single block chord starting at time 0.
func RenderChord(chord modal.Chord, sampleRate int) (modal.AudioBuffer, error) {
	return Render(Synthesize(chord, 0), sampleRate)
}

// RenderProgression renders the chords one after another, spacing seconds
// apart.
func RenderProgression(chords []modal.Chord, spacing float64, sampleRate int) (modal.AudioBuffer, error) {
	return Render(SynthesizeProgression(chords, spacing), sampleRate)
}
