package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/germ-smash/internal/encounter"
)

var (
	rate   = beep.SampleRate(SampleRate)
	format = beep.Format{SampleRate: rate, NumChannels: NumChannels, Precision: 2}
)

// Each effect has a few pitch variants picked at random on playback.
const variantsPerEffect = 3

// tone returns d of a sine at freq. SineTone only fails for freq >= rate/2.
func tone(freq float64, d time.Duration) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), s)
}

// square returns d of a square wave at freq.
func square(freq float64, d time.Duration) beep.Streamer {
	n := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			phase := math.Mod(float64(pos)*freq/float64(rate), 1)
			v := 1.0
			if phase >= 0.5 {
				v = -1
			}
			samples[i] = [2]float64{v, v}
			pos++
		}
		return i, true
	})
}

// noise returns d of white noise from rng.
func noise(rng *rand.Rand, d time.Duration) beep.Streamer {
	n := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			v := rng.Float64()*2 - 1
			samples[i] = [2]float64{v, v}
			pos++
		}
		return i, true
	})
}

// shape applies a linear attack and release over a clip of length d.
func shape(s beep.Streamer, d time.Duration) beep.Streamer {
	total, att, rel := rate.N(d), rate.N(attack), rate.N(release)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			g := 1.0
			if pos < att {
				g = float64(pos) / float64(att)
			}
			if left := total - pos; left < rel {
				g = math.Max(0, float64(left)/float64(rel))
			}
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// gain scales s linearly. Zero or less is silent.
func gain(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Synthesize builds one variant of an effect. variant selects a pitch
// offset so repeated smashes do not sound identical.
func Synthesize(s encounter.Sound, variant int, rng *rand.Rand) beep.Streamer {
	shift := math.Pow(2, float64(variant%variantsPerEffect)/12*2) // whole-tone steps
	switch s {
	case encounter.SoundSmash:
		// A wet splat: low thump under a noise burst.
		return beep.Take(rate.N(smashDuration), beep.Mix(
			gain(shape(noise(rng, smashDuration), smashDuration), 0.35),
			gain(shape(tone(110*shift, smashDuration), smashDuration), 0.6),
		))
	case encounter.SoundWin:
		notes := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
		parts := make([]beep.Streamer, len(notes))
		for i, f := range notes {
			parts[i] = gain(shape(tone(f*shift, noteDuration), noteDuration), 0.5)
		}
		return beep.Seq(parts...)
	case encounter.SoundFail:
		notes := []float64{392, 329.63, 261.63} // G4 E4 C4
		parts := make([]beep.Streamer, len(notes))
		for i, f := range notes {
			d := noteDuration * 2
			parts[i] = gain(shape(square(f/shift, d), d), 0.25)
		}
		return beep.Seq(parts...)
	default:
		return beep.Silence(0)
	}
}

// Render drains s into signed 16-bit little-endian stereo PCM at volume.
func Render(s beep.Streamer, volume float64) []byte {
	s = gain(s, volume)
	buf := make([][2]float64, 512)
	var out []byte
	frame := make([]byte, BytesPerFrame)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			format.EncodeSigned(frame, clampSample(buf[i]))
			out = append(out, frame...)
		}
		if !ok {
			return out
		}
	}
}

func clampSample(s [2]float64) [2]float64 {
	for c := range s {
		s[c] = math.Max(-1, math.Min(1, s[c]))
	}
	return s
}
