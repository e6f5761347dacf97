// Package appstate holds the UI-preference slice of application state.
// Only this slice survives reloads; query-cache state never does.
package appstate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type State struct {
	IsSidebarCollapsed bool `json:"isSidebarCollapsed"`
	IsDarkMode         bool `json:"isDarkMode"`
}

// Store applies setter actions to an explicit, serializable state object
// and notifies subscribers of every change.
type Store struct {
	mu    sync.Mutex
	state State
	path  string
	subs  []func(State)
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) SetSidebarCollapsed(collapsed bool) {
	s.update(func(st *State) { st.IsSidebarCollapsed = collapsed })
}

func (s *Store) SetDarkMode(dark bool) {
	s.update(func(st *State) { st.IsDarkMode = dark })
}

func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) update(apply func(*State)) {
	s.mu.Lock()
	apply(&s.state)
	state := s.state
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// Load restores persisted preferences. A missing file leaves the defaults.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return err
	}
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	return nil
}

// Save writes the preference slice atomically.
func (s *Store) Save() error {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Clean(s.path))
}
