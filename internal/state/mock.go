// internal/state/mock.go
package state

import (
	"database/sql"
	"time"
)

// Mock is an in-memory test double for Manager.
type Mock struct {
	profiles map[string]*Keymap
	saved    map[string]time.Time
	saves    int
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{
		profiles: make(map[string]*Keymap),
		saved:    make(map[string]time.Time),
	}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveProfile(name string, km *Keymap) error {
	if name == "" {
		return ErrEmptyName
	}
	m.profiles[name] = km.Clone()
	m.saved[name] = time.Now()
	m.saves++
	return nil
}

func (m *Mock) QueueSave(name string, km *Keymap) {
	_ = m.SaveProfile(name, km)
}

func (m *Mock) LoadProfile(name string) (*Keymap, error) {
	km, ok := m.profiles[name]
	if !ok {
		return nil, nil //nolint:nilnil // matches Manager
	}
	return km.Clone(), nil
}

func (m *Mock) ListProfiles() ([]Profile, error) {
	profiles := make([]Profile, 0, len(m.profiles))
	for name := range m.profiles {
		profiles = append(profiles, Profile{Name: name, UpdatedAt: m.saved[name]})
	}
	return profiles, nil
}

func (m *Mock) DeleteProfile(name string) error {
	delete(m.profiles, name)
	delete(m.saved, name)
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Saves returns how many times a profile was stored.
func (m *Mock) Saves() int { return m.saves }

// Closed returns whether Close was called.
func (m *Mock) Closed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
