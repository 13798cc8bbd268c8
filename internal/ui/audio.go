package ui

import (
	"github.com/hailam/chessgui/internal/board"
	"github.com/hailam/chessgui/internal/game"
	"github.com/hailam/chessgui/internal/sound"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager plays sound effects for session events.
type AudioManager struct {
	context *audio.Context
	pcm     map[sound.Effect][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates an audio manager. A disabled manager never opens
// the audio device.
func NewAudioManager(enabled bool) *AudioManager {
	am := &AudioManager{
		pcm:    make(map[sound.Effect][]byte, len(sound.Effects)),
		volume: 0.5,
	}
	for _, e := range sound.Effects {
		am.pcm[e] = sound.PCM(e)
	}
	am.SetEnabled(enabled)
	return am
}

// Play plays e. Each call gets its own player so effects may overlap.
func (am *AudioManager) Play(e sound.Effect) {
	if !am.enabled || am.context == nil {
		return
	}
	data, ok := am.pcm[e]
	if !ok {
		return
	}

	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled turns effects on or off, opening the audio device the first
// time they are enabled. Ebitengine allows one context per process.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
	if enabled && am.context == nil {
		if am.context = audio.CurrentContext(); am.context == nil {
			am.context = audio.NewContext(sound.SampleRate)
		}
	}
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}

// SetVolume sets the audio volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = max(0, min(1, volume))
}

// OnMove plays the effect for an accepted move.
func (am *AudioManager) OnMove(ev game.MoveEvent) {
	am.Play(sound.ForMove(ev))
}

// OnReject plays the invalid-move buzz.
func (am *AudioManager) OnReject(from, to board.Square) {
	am.Play(sound.Invalid)
}

// OnEnd plays the end-of-game chord.
func (am *AudioManager) OnEnd(game.Outcome) {
	am.Play(sound.GameEnd)
}

// SessionOptions hooks the manager to a session's move and reject events.
// OnEnd is left to the caller, which usually has its own end-of-game work.
func (am *AudioManager) SessionOptions() []game.SessionOption {
	return []game.SessionOption{
		game.OnMove(am.OnMove),
		game.OnReject(am.OnReject),
	}
}
