// Package settings persists the last published parameter set across
// sessions. Only parameters are stored; simulation state (particle
// positions) never is.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"snowglobe/internal/scene"
)

const (
	settingsObject = "settings"
	settingsProp   = "params"
)

// Manager loads and saves parameters through a gdata store. A nil store
// degrades to in-memory defaults without erroring.
type Manager struct {
	store *gdata.Manager
}

// New constructs a Manager. store may be nil.
func New(store *gdata.Manager) *Manager {
	return &Manager{store: store}
}

// Open creates a gdata-backed manager for the application, falling back to
// the degraded in-memory mode when the platform store is unavailable.
func Open() *Manager {
	store, err := gdata.Open(gdata.Config{AppName: "snowglobe"})
	if err != nil {
		log.Printf("settings: storage unavailable, using defaults only: %v", err)
		return New(nil)
	}
	return New(store)
}

// Load returns the saved parameter set, or defaults when nothing was saved
// yet or no store is available. A corrupt record returns defaults alongside
// the error.
func (m *Manager) Load() (scene.Params, error) {
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProp) {
		return scene.Defaults(), nil
	}
	data, err := m.store.LoadObjectProp(settingsObject, settingsProp)
	if err != nil {
		return scene.Defaults(), fmt.Errorf("load settings: %w", err)
	}
	p := scene.Defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return scene.Defaults(), fmt.Errorf("decode settings: %w", err)
	}
	return p.Normalized(), nil
}

// Save stores the parameter set. With no backing store it is a silent no-op.
func (m *Manager) Save(p scene.Params) error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(p.Normalized())
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProp, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
