package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"

	"snowglobe/internal/scene"
)

func TestNilStoreFallsBackToDefaults(t *testing.T) {
	m := New(nil)
	p, err := m.Load()
	if err != nil {
		t.Fatalf("Load with nil store returned error: %v", err)
	}
	if p != scene.Defaults() {
		t.Fatalf("Load with nil store = %+v, want defaults", p)
	}
	if err := m.Save(scene.Defaults()); err != nil {
		t.Fatalf("Save with nil store returned error: %v", err)
	}
}

func newTempStore(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	store, err := gdata.Open(gdata.Config{AppName: "snowglobe_test"})
	if err != nil {
		t.Skipf("gdata store unavailable in this environment: %v", err)
	}
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := New(newTempStore(t))

	p := scene.Defaults()
	p.ParticleCount = 321
	p.WindSpeed = -4.5
	p.Color = "#9db8d9"
	p.TimeOfDay = 3.25

	if err := m.Save(p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != p.Normalized() {
		t.Fatalf("round trip = %+v, want %+v", got, p.Normalized())
	}
}

func TestLoadBeforeAnySave(t *testing.T) {
	m := New(newTempStore(t))
	p, err := m.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != scene.Defaults() {
		t.Fatalf("Load before save = %+v, want defaults", p)
	}
}

func TestCorruptRecordFallsBackToDefaults(t *testing.T) {
	store := newTempStore(t)
	if err := store.SaveObjectProp(settingsObject, settingsProp, []byte("{not yaml")); err != nil {
		t.Fatal(err)
	}
	m := New(store)
	p, err := m.Load()
	if err == nil {
		t.Fatal("expected an error for a corrupt record")
	}
	if p != scene.Defaults() {
		t.Fatalf("corrupt record should yield defaults, got %+v", p)
	}
}
