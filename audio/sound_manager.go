package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/killer-chase/engine"
)

const (
	sampleRate = beep.SampleRate(48000)

	// DefaultVolume is the linear gain applied to every cue
	DefaultVolume = 0.3
)

var _ engine.SoundPlayer = (*SoundManager)(nil)

// SoundManager plays the game cues through a single mixer attached to the speaker.
// Every method is a no-op until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: DefaultVolume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayReseed plays the teleport blips
func (sm *SoundManager) PlayReseed() {
	streamer, err := CreateReseedSound(sampleRate, sm.volume)
	if err != nil {
		log.Printf("Reseed sound unavailable: %v", err)
		return
	}
	sm.play(streamer)
}

// PlayGameOver plays the falling game over tone
func (sm *SoundManager) PlayGameOver() {
	sm.play(CreateGameOverSound(sampleRate, sm.volume))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
