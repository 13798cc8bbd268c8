package sound

import (
	"testing"

	"github.com/hailam/chessgui/internal/game"
)

func TestForMove(t *testing.T) {
	tests := []struct {
		name string
		ev   game.MoveEvent
		want Effect
	}{
		{"Quiet", game.MoveEvent{}, Move},
		{"Capture", game.MoveEvent{Capture: true}, Capture},
		{"Castle", game.MoveEvent{Castle: true}, Castle},
		{"Check", game.MoveEvent{Check: true}, Check},
		{"CaptureWithCheck", game.MoveEvent{Capture: true, Check: true}, Check},
		{"CastleWithCheck", game.MoveEvent{Castle: true, Check: true}, Check},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForMove(tt.ev); got != tt.want {
				t.Errorf("ForMove(%+v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestPCM(t *testing.T) {
	durations := map[Effect]float64{
		Move:    0.08,
		Capture: 0.12,
		Check:   0.15,
		Castle:  0.06 + 0.05 + 0.06,
		Invalid: 0.1,
		GameEnd: 0.4,
	}

	for _, e := range Effects {
		t.Run(e.String(), func(t *testing.T) {
			data := PCM(e)
			if len(data)%bytesPerFrame != 0 {
				t.Fatalf("Expected whole stereo frames, got %d bytes", len(data))
			}

			want := int(SampleRate * durations[e])
			if got := len(data) / bytesPerFrame; got < want-2 || got > want+2 {
				t.Errorf("Expected about %d frames, got %d", want, got)
			}

			var loud bool
			for i := 0; i+3 < len(data); i += bytesPerFrame {
				if data[i] != data[i+2] || data[i+1] != data[i+3] {
					t.Fatalf("Channels differ at frame %d", i/bytesPerFrame)
				}
				if data[i] != 0 || data[i+1] != 0 {
					loud = true
				}
			}
			if !loud {
				t.Error("Expected an audible buffer")
			}
		})
	}

	if PCM(Effect(99)) != nil {
		t.Error("Expected unknown effect to be silent")
	}
}

func TestSynthClamps(t *testing.T) {
	data := synth(0.01, func(_, _ float64) float64 { return 4 })
	v := int16(uint16(data[0]) | uint16(data[1])<<8)
	if v != 32767 {
		t.Errorf("Expected clamped sample 32767, got %d", v)
	}
}
