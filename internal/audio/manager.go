package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and a persistent mixer that event cues are played
// into. A nil or uninitialized Manager drops Play calls silently, so the game
// runs unchanged when audio is disabled or the speaker fails to open.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewManager creates a manager with the given master volume in [0,1].
func NewManager(masterVolume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: masterVolume,
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call twice.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play queues the cue for an event. No-op when the manager is nil or the
// speaker never initialized.
func (m *Manager) Play(ev Event) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	s := streamerFor(ev, sampleRate, m.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}
