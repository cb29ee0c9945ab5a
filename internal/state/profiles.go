package state

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MarkMcCaskey/rebind/internal/actions"
	"github.com/MarkMcCaskey/rebind/internal/button"
	"github.com/MarkMcCaskey/rebind/internal/keymap"
)

// Keymap is the editable binding table stored per profile.
type Keymap = keymap.RebindMap[button.Button, actions.Action]

// ErrEmptyName is returned when a profile is saved without a name.
var ErrEmptyName = errors.New("empty profile name")

// Profile describes a stored profile.
type Profile struct {
	Name      string
	UpdatedAt time.Time
}

func saveProfile(db *sql.DB, name string, km *Keymap, now time.Time) error {
	if name == "" {
		return ErrEmptyName
	}

	return withTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO profiles (name, invert_motion_x, invert_motion_y, invert_scroll_x, invert_scroll_y, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				invert_motion_x = excluded.invert_motion_x,
				invert_motion_y = excluded.invert_motion_y,
				invert_scroll_x = excluded.invert_scroll_x,
				invert_scroll_y = excluded.invert_scroll_y,
				updated_at = excluded.updated_at
		`, name, km.InvertMotionX(), km.InvertMotionY(), km.InvertScrollX(), km.InvertScrollY(), now.Unix())
		if err != nil {
			return err
		}

		if _, err := tx.Exec(`DELETE FROM profile_bindings WHERE profile = ?`, name); err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO profile_bindings (profile, action, slot, button)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, a := range km.Actions() {
			set, _ := km.Bindings(a)
			for i, slot := range set.Slots() {
				var b sql.NullString
				if slot.OK {
					b = sql.NullString{String: slot.Button.String(), Valid: true}
				}
				if _, err := stmt.Exec(name, string(a), i, b); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// getProfile returns nil, nil when the profile does not exist.
func getProfile(db *sql.DB, name string) (*Keymap, error) {
	var mx, my, sx, sy bool
	err := db.QueryRow(`
		SELECT invert_motion_x, invert_motion_y, invert_scroll_x, invert_scroll_y
		FROM profiles WHERE name = ?
	`, name).Scan(&mx, &my, &sx, &sy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // nil means no saved profile
	}
	if err != nil {
		return nil, err
	}

	km := keymap.NewRebindMap[button.Button, actions.Action]()
	km.SetAxes(keymap.AxisConfig{
		InvertMotionX: mx,
		InvertMotionY: my,
		InvertScrollX: sx,
		InvertScrollY: sy,
	})

	rows, err := db.Query(`
		SELECT action, button FROM profile_bindings
		WHERE profile = ?
		ORDER BY action, slot
	`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var action string
		var raw sql.NullString
		if err := rows.Scan(&action, &raw); err != nil {
			return nil, err
		}

		a, err := actions.Parse(action)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		if _, ok := km.Bindings(a); !ok {
			km.InsertAction(a)
		}
		if !raw.Valid {
			continue
		}

		b, err := button.Parse(raw.String)
		if err != nil {
			return nil, fmt.Errorf("profile %q, action %q: %w", name, action, err)
		}
		km.Update(a, func(set *keymap.ButtonSet[button.Button]) {
			set.TryInsert(b)
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return km, nil
}

func listProfiles(db *sql.DB) ([]Profile, error) {
	rows, err := db.Query(`SELECT name, updated_at FROM profiles ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		var updatedAt int64
		if err := rows.Scan(&p.Name, &updatedAt); err != nil {
			return nil, err
		}
		p.UpdatedAt = time.Unix(updatedAt, 0)
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func deleteProfile(db *sql.DB, name string) error {
	_, err := db.Exec(`DELETE FROM profiles WHERE name = ?`, name)
	return err
}

// withTx runs fn in a transaction, rolling back if fn fails.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
