// Package state persists binding profiles in a SQLite database.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "rebind"
	dbFileName   = "rebind.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db *sql.DB

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]*Keymap
	onError   func(error)
}

// Open opens the database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens or creates the database at path.
func OpenPath(dbPath string) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	// Pragmas in the DSN apply to every pooled connection
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, pending: make(map[string]*Keymap)}, nil
}

// SetErrorHandler sets the function called when a queued save fails.
func (m *Manager) SetErrorHandler(fn func(error)) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	m.onError = fn
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	// Flush pending saves
	m.flush()

	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) SaveProfile(name string, km *Keymap) error {
	return saveProfile(m.db, name, km, time.Now())
}

// QueueSave schedules a save of km under name. Saves arriving within the
// debounce window replace each other; Close flushes whatever is pending.
// km is copied, so the caller keeps ownership.
func (m *Manager) QueueSave(name string, km *Keymap) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[name] = km.Clone()

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, m.flush)
}

func (m *Manager) flush() {
	m.saveMu.Lock()
	pending := m.pending
	m.pending = make(map[string]*Keymap)
	onError := m.onError
	m.saveMu.Unlock()

	for name, km := range pending {
		if err := saveProfile(m.db, name, km, time.Now()); err != nil && onError != nil {
			onError(err)
		}
	}
}

func (m *Manager) LoadProfile(name string) (*Keymap, error) {
	return getProfile(m.db, name)
}

func (m *Manager) ListProfiles() ([]Profile, error) {
	return listProfiles(m.db)
}

func (m *Manager) DeleteProfile(name string) error {
	m.saveMu.Lock()
	delete(m.pending, name)
	m.saveMu.Unlock()

	return deleteProfile(m.db, name)
}

func dsn(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)"
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
