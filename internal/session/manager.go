// Package session keeps the live games of the remote transports.
//
// Games themselves are single-writer; the Manager guards its map with an
// RWMutex and serialises every operation on one game with that game's mutex.
package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tilemerge/internal/board"
	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/game"
)

// ErrNotFound is returned for an unknown or evicted session id.
var ErrNotFound = errors.New("session not found")

// State is a game snapshot together with the id it lives under.
type State struct {
	ID string `json:"id"`
	game.Snapshot
}

// Info summarises a session for listings.
type Info struct {
	ID      string    `json:"id"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Moves   int       `json:"moves"`
	MaxTile int       `json:"max_tile"`
	Created time.Time `json:"created"`
	Touched time.Time `json:"touched"`
}

type entry struct {
	mu      sync.Mutex
	game    *game.Game
	created time.Time
	touched time.Time
	pinned  bool // owned by a live connection; never swept
}

// Manager tracks live games by id.
// Thread-safe for concurrent access.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Create starts a new game and returns its state.
// A zero seed is replaced by one taken from the clock.
func (m *Manager) Create(width, height int, seed int64) (State, error) {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g, err := game.New(width, height, cfg.ResolveSeed())
	if err != nil {
		return State{}, err
	}

	id := uuid.NewString()
	now := m.now()
	e := &entry{game: g, created: now, touched: now}

	m.mu.Lock()
	m.sessions[id] = e
	m.mu.Unlock()

	return State{ID: id, Snapshot: g.Snapshot()}, nil
}

// Get returns the current state of a session.
func (m *Manager) Get(id string) (State, error) {
	var st State
	err := m.with(id, func(g *game.Game) {
		st = State{ID: id, Snapshot: g.Snapshot()}
	})
	return st, err
}

// Move applies one move. Remote games have no settle phase, so the
// next move is accepted immediately.
func (m *Manager) Move(id string, dir board.Direction) (board.MoveResult, State, error) {
	var (
		res board.MoveResult
		st  State
	)
	err := m.with(id, func(g *game.Game) {
		res = g.Move(dir)
		g.Settle()
		st = State{ID: id, Snapshot: g.Snapshot()}
	})
	return res, st, err
}

// Reset replaces the board of a session with a fresh one of the same size.
func (m *Manager) Reset(id string) (State, error) {
	var (
		st       State
		resetErr error
	)
	err := m.with(id, func(g *game.Game) {
		resetErr = g.Reset()
		st = State{ID: id, Snapshot: g.Snapshot()}
	})
	if err != nil {
		return State{}, err
	}
	return st, resetErr
}

// Pin marks a session as owned by a live connection. Sweep skips pinned
// sessions; the owner deletes its session when it goes away.
func (m *Manager) Pin(id string) error {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("session: %q: %w", id, ErrNotFound)
	}

	e.mu.Lock()
	e.pinned = true
	e.mu.Unlock()
	return nil
}

// Delete removes a session. It reports whether the session existed.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	return ok
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// List returns all sessions, oldest first.
func (m *Manager) List() []Info {
	m.mu.RLock()
	ids := make([]string, 0, len(m.sessions))
	entries := make([]*entry, 0, len(m.sessions))
	for id, e := range m.sessions {
		ids = append(ids, id)
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	infos := make([]Info, 0, len(entries))
	for i, e := range entries {
		e.mu.Lock()
		infos = append(infos, Info{
			ID:      ids[i],
			Width:   e.game.Width(),
			Height:  e.game.Height(),
			Moves:   e.game.Moves(),
			MaxTile: int(e.game.MaxTile()),
			Created: e.created,
			Touched: e.touched,
		})
		e.mu.Unlock()
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Created.Equal(infos[j].Created) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].Created.Before(infos[j].Created)
	})
	return infos
}

// Sweep removes unpinned sessions untouched for longer than maxIdle and
// returns how many were removed.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, e := range m.sessions {
		e.mu.Lock()
		idle, pinned := now.Sub(e.touched), e.pinned
		e.mu.Unlock()
		if !pinned && idle > maxIdle {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every period until ctx is done.
func (m *Manager) Run(ctx context.Context, period, maxIdle time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Sweep(maxIdle)
		case <-ctx.Done():
			return
		}
	}
}

// with runs fn on the session's game under its lock and marks it touched.
func (m *Manager) with(id string, fn func(g *game.Game)) error {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("session: %q: %w", id, ErrNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.game)
	e.touched = m.now()
	return nil
}
