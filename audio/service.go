package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/parameter"
	"github.com/lixenwraith/gyre/service"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

var _ service.Service = (*Service)(nil)

// Service owns the speaker and plays one looping drone per animation
// mode. Every operation is a no-op when the speaker failed to open, so
// a refused audio device never reaches the frame loop.
type Service struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	track       *beep.Ctrl
	level       float64
	muted       bool
	initialized bool
}

// NewService creates the audio service; call Init then Start
func NewService() *Service {
	mixer := &beep.Mixer{}
	return &Service{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   (parameter.VolumeDefault - 1) * parameter.VolumeRange,
		},
		level: parameter.VolumeDefault,
	}
}

// Name returns the service identifier
func (s *Service) Name() string {
	return "audio"
}

// Init opens the speaker
func (s *Service) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// Start begins playing the (initially silent) mix
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil
	}
	speaker.Play(s.volume)
	return nil
}

// Stop silences and releases the mix. Idempotent.
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil
	}
	speaker.Clear()
	s.mixer.Clear()
	s.track = nil
	s.initialized = false
	return nil
}

// PlayMode switches the active drone to the mode's track.
// ModeNone stops playback. The volume/mute chain is untouched, so the
// new track inherits the current level.
func (s *Service) PlayMode(m core.AnimMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if s.track != nil {
		s.track.Paused = true
		s.track = nil
	}
	s.mixer.Clear()

	freq := modeFrequency(m)
	if freq <= 0 {
		return
	}
	ctrl := &beep.Ctrl{Streamer: newDrone(sampleRate, freq)}
	s.track = ctrl
	s.mixer.Add(ctrl)
}

// SetVolume sets the linear level in [0,1], mapped to exponential gain
func (s *Service) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	s.level = level
	s.applyVolumeLocked()
}

// AdjustVolume shifts the level by delta, clamped to [0,1]
func (s *Service) AdjustVolume(delta float64) {
	s.mu.Lock()
	level := s.level + delta
	s.mu.Unlock()
	s.SetVolume(level)
}

// ToggleMute flips the mute state and returns the new value
func (s *Service) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted = !s.muted
	s.applyVolumeLocked()
	return s.muted
}

// Level returns the current linear volume level
func (s *Service) Level() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Muted returns the current mute state
func (s *Service) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// applyVolumeLocked pushes level and mute into the speaker chain.
// Caller holds s.mu.
func (s *Service) applyVolumeLocked() {
	silent := s.muted || s.level <= 0
	gain := (s.level - 1) * parameter.VolumeRange

	if s.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	s.volume.Volume = gain
	s.volume.Silent = silent
}

// SetMuted forces the mute state (config restore)
func (s *Service) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
	s.applyVolumeLocked()
}
