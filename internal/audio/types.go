// Package audio synthesizes the game's sound effects with beep and plays
// them by piping raw PCM into a system audio tool (pacat, aplay, ...).
// When no tool is available the player runs silent.
package audio

import (
	"errors"
	"time"
)

// BackendType identifies the audio backend.
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
)

// BackendConfig describes a CLI audio backend.
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

var (
	ErrNoAudioBackend = errors.New("audio: no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio: pipe closed")
)

// Output format shared by synthesis and every backend: signed 16-bit
// little-endian stereo.
const (
	SampleRate    = 44100
	NumChannels   = 2
	BytesPerFrame = 4
)

// Config controls the player.
type Config struct {
	Enabled bool
	Volume  float64 // 0..1
}

// DefaultConfig returns an enabled player at 60% volume.
func DefaultConfig() Config {
	return Config{Enabled: true, Volume: 0.6}
}

// Effect durations.
const (
	smashDuration = 120 * time.Millisecond
	noteDuration  = 110 * time.Millisecond
	attack        = 5 * time.Millisecond
	release       = 40 * time.Millisecond
)
