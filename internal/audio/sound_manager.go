// Package audio plays the game's sound effects through beep's speaker.
// All effects are synthesized, no sample files are shipped.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Effect names understood by Play.
const (
	EffectFlap  = "flap"
	EffectGoal  = "goal"
	EffectDeath = "death"
)

var effects = map[string]func(beep.SampleRate) beep.Streamer{
	EffectFlap:  NewFlap,
	EffectGoal:  NewGoal,
	EffectDeath: NewDeath,
}

// Effect builds a fresh streamer for a named effect.
func Effect(name string) (beep.Streamer, bool) {
	fn, ok := effects[name]
	if !ok {
		return nil, false
	}
	return fn(sampleRate), true
}

// SoundManager mixes effects onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. Nothing is played until Initialize succeeds.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play starts a named effect. Unknown names and an uninitialized manager are ignored.
func (sm *SoundManager) Play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, ok := Effect(name)
	if !ok {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup silences every playing effect.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Nop discards every effect. It is used when audio is muted or unavailable.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string) {}
