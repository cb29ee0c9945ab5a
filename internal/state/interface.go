// internal/state/interface.go
package state

import (
	"database/sql"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveProfile(name string, km *Keymap) error
	QueueSave(name string, km *Keymap)
	LoadProfile(name string) (*Keymap, error)
	ListProfiles() ([]Profile, error)
	DeleteProfile(name string) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
