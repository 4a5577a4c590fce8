// Package sound plays short tones for game events
package sound

import (
	"fmt"
	"sync"
	"time"

	"grid-snake/game"
	"grid-snake/game/manager"

	"github.com/golang/glog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// note is one segment of a cue
type note struct {
	freq float64
	dur  time.Duration
}

var (
	eatCue   = []note{{880, 50 * time.Millisecond}}
	crashCue = []note{{220, 120 * time.Millisecond}, {110, 200 * time.Millisecond}}
	winCue   = []note{{523, 90 * time.Millisecond}, {659, 90 * time.Millisecond}, {784, 180 * time.Millisecond}}
)

// Effects reacts to game events
type Effects interface {
	Eat()
	Crash()
	Win()
	Close()
}

// Notify forwards the outcome of a tick to fx
func Notify(fx Effects, result game.StepResult) {
	switch {
	case result.Won:
		fx.Win()
	case result.Collision != manager.NoCollision:
		fx.Crash()
	case result.Ate:
		fx.Eat()
	}
}

// Silent is the Effects used when audio is off or unavailable
type Silent struct{}

func (Silent) Eat()   {}
func (Silent) Crash() {}
func (Silent) Win()   {}
func (Silent) Close() {}

// Player renders cues through the system speaker
type Player struct {
	mu     sync.Mutex
	play   func(beep.Streamer)
	closed bool
}

// NewPlayer initializes the speaker
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &Player{play: func(s beep.Streamer) { speaker.Play(s) }}, nil
}

// Open returns a Player, or Silent when the speaker cannot be initialized
func Open() Effects {
	p, err := NewPlayer()
	if err != nil {
		glog.Warningf("Audio initialization failed: %v (continuing without audio)", err)
		return Silent{}
	}
	return p
}

func (p *Player) Eat()   { p.cue(eatCue) }
func (p *Player) Crash() { p.cue(crashCue) }
func (p *Player) Win()   { p.cue(winCue) }

// Close stops the speaker; later cues are dropped
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Close()
}

func (p *Player) cue(notes []note) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	s, err := render(notes)
	if err != nil {
		glog.Warningf("Sound cue: %v", err)
		return
	}
	p.play(s)
}

// render chains the notes of a cue into one finite streamer
func render(notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return beep.Seq(parts...), nil
}
