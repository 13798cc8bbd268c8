// Package sound synthesizes the board's sound effects and picks the effect
// for each session event.
package sound

import (
	"math"

	"github.com/hailam/chessgui/internal/game"
)

// SampleRate is the rate of every buffer returned by PCM.
const SampleRate = 44100

// bytesPerFrame is one 16-bit stereo frame.
const bytesPerFrame = 4

// Effect is a sound effect.
type Effect int

const (
	Move Effect = iota
	Capture
	Check
	Castle
	Invalid
	GameEnd
)

// Effects lists every effect.
var Effects = []Effect{Move, Capture, Check, Castle, Invalid, GameEnd}

func (e Effect) String() string {
	switch e {
	case Move:
		return "Move"
	case Capture:
		return "Capture"
	case Check:
		return "Check"
	case Castle:
		return "Castle"
	case Invalid:
		return "Invalid"
	case GameEnd:
		return "GameEnd"
	default:
		return "Unknown"
	}
}

// ForMove picks the effect for an accepted move. Check beats castling,
// castling beats a capture.
func ForMove(ev game.MoveEvent) Effect {
	switch {
	case ev.Check:
		return Check
	case ev.Castle:
		return Castle
	case ev.Capture:
		return Capture
	default:
		return Move
	}
}

// PCM returns e as signed 16-bit little-endian stereo at SampleRate.
// Unknown effects are silent.
func PCM(e Effect) []byte {
	switch e {
	case Move:
		return click(440, 0.08, 0.3)
	case Capture:
		return click(330, 0.12, 0.5)
	case Check:
		return tone(880, 0.15, 0.4)
	case Castle:
		return concat(click(400, 0.06, 0.3), silence(0.05), click(440, 0.06, 0.24))
	case Invalid:
		return buzz(150, 0.1, 0.3)
	case GameEnd:
		return chord([]float64{261.63, 329.63, 392.00}, 0.4, 0.5)
	default:
		return nil
	}
}

// frames is the number of stereo frames in d seconds.
func frames(d float64) int {
	return int(SampleRate * d)
}

// synth renders d seconds of fn, called with the time in seconds and the
// progress through the buffer in [0, 1).
func synth(d float64, fn func(t, progress float64) float64) []byte {
	n := frames(d)
	data := make([]byte, n*bytesPerFrame)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		v := int16(math.Max(-1, math.Min(1, fn(t, t/d))) * math.MaxInt16)

		lo, hi := byte(v), byte(v>>8)
		data[i*bytesPerFrame] = lo
		data[i*bytesPerFrame+1] = hi
		data[i*bytesPerFrame+2] = lo
		data[i*bytesPerFrame+3] = hi
	}
	return data
}

// click is a percussive knock: a sine with a little rattle under a fast
// exponential decay.
func click(freq, d, amp float64) []byte {
	return synth(d, func(t, _ float64) float64 {
		i := t * SampleRate
		rattle := (math.Sin(i*0.3) + math.Sin(i*0.7)) * 0.3
		return (math.Sin(2*math.Pi*freq*t) + rattle) * math.Exp(-t*30) * amp
	})
}

// tone rises over the first tenth and fades out linearly.
func tone(freq, d, amp float64) []byte {
	return synth(d, func(t, p float64) float64 {
		env := 1 - (p-0.1)/0.9
		if p < 0.1 {
			env = p / 0.1
		}
		return math.Sin(2*math.Pi*freq*t) * env * amp
	})
}

// buzz is a low tone with its second harmonic, fading linearly.
func buzz(freq, d, amp float64) []byte {
	return synth(d, func(t, p float64) float64 {
		w := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		return w * (1 - p) * amp * 0.5
	})
}

// chord mixes freqs evenly with a short fade in and a longer fade out.
func chord(freqs []float64, d, amp float64) []byte {
	return synth(d, func(t, p float64) float64 {
		env := 1.0
		switch {
		case p < 0.1:
			env = p / 0.1
		case p > 0.7:
			env = (1 - p) / 0.3
		}
		var sum float64
		for _, f := range freqs {
			sum += math.Sin(2 * math.Pi * f * t)
		}
		return sum / float64(len(freqs)) * env * amp
	})
}

func silence(d float64) []byte {
	return make([]byte, frames(d)*bytesPerFrame)
}

func concat(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
