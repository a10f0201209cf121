package machine

import (
	"fmt"
	"sync"
	"time"

	"eight-way-tiles/internal/coords"
	"eight-way-tiles/internal/device"
	"eight-way-tiles/internal/input"
	"eight-way-tiles/internal/viewport"
)

// FrameChan is the per-session channel that receives frame snapshots.
type FrameChan chan Frame

type session struct {
	name    string
	machine *Machine
	frames  FrameChan
}

// Loop steps every session's machine once per PAL frame and publishes the
// result. All sessions share one read-only world.
type Loop struct {
	tiles coords.Tiles
	cfg   Config

	mu       sync.RWMutex
	sessions map[string]*session
	saved    map[string]viewport.View // last view, keyed by user name

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop serving tiles. cfg applies to every new machine.
func NewLoop(tiles coords.Tiles, cfg Config) *Loop {
	return &Loop{
		tiles:    tiles,
		cfg:      cfg,
		sessions: make(map[string]*session),
		saved:    make(map[string]viewport.View),
		stopCh:   make(chan struct{}),
	}
}

// AddSession starts a machine for the named user reading joy. A user seen
// before resumes at their last view. It returns the session id and the
// channel that receives its frames.
func (l *Loop) AddSession(name string, joy input.Joystick) (string, FrameChan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := name
	if _, online := l.sessions[id]; online {
		id = fmt.Sprintf("%s_%04d", name, time.Now().UnixNano()%10000)
	}

	cfg := l.cfg
	if v, ok := l.saved[name]; ok {
		cfg.Start = v
	}
	m, err := New(cfg, l.tiles, joy)
	if err != nil {
		return "", nil, err
	}

	ch := make(FrameChan, 2)
	l.sessions[id] = &session{name: name, machine: m, frames: ch}
	return id, ch, nil
}

// RemoveSession remembers the session's view and closes its channel.
func (l *Loop) RemoveSession(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.sessions[id]
	if !ok {
		return
	}
	l.saved[s.name] = s.machine.View()
	close(s.frames)
	delete(l.sessions, id)
}

// Machine returns the machine behind a session id.
func (l *Loop) Machine(id string) (*Machine, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.sessions[id]
	if !ok {
		return nil, false
	}
	return s.machine, true
}

// Sessions returns the number of connected sessions.
func (l *Loop) Sessions() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sessions)
}

// Run ticks at the frame rate until Stop is called.
func (l *Loop) Run() {
	ticker := time.NewTicker(device.FrameDuration)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			l.Tick()
		}
	}
}

// Stop shuts the loop down. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

// Tick advances every machine by one frame and publishes the snapshots.
func (l *Loop) Tick() {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, s := range l.sessions {
		s.machine.StepFrame()
		select {
		case s.frames <- s.machine.Snapshot():
		default:
			// Drop frame for slow client
		}
	}
}
