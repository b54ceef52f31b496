package config

import (
	"os"
	"path/filepath"
	"io"
	"sync"
	"testing"
	"time"

	"dial-sweep.klederson.com/internal/dial"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	s, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, dial.DefaultSelectionCount, s.Dial.Selections)
	assert.Equal(t, dial.DefaultDurationMs, s.Dial.DurationMs)
	assert.Equal(t, dial.DefaultAngularOffsetSlots, s.Dial.OffsetSlots)
	assert.Equal(t, TargetFPS, s.Render.FPS)
	assert.Equal(t, "info", s.Log.Level)

	cfg, err := s.DialConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.SelectionCount)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
dial:
  selections: 4
  duration_ms: 250
  truncate_slot_degrees: true
render:
  diagnostics: true
`)

	s, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Dial.Selections)
	assert.Equal(t, 250, s.Dial.DurationMs)
	assert.True(t, s.Dial.TruncateSlotDegrees)
	assert.True(t, s.Render.Diagnostics)
	assert.Equal(t, dial.DefaultStrokeWidth, s.Dial.StrokeWidth)
}

func TestLoadSearchPath(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dial-sweep"), 0o755))
	writeConfig(t, filepath.Join(dir, "dial-sweep"), "dial:\n  selections: 8\n")

	s, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, 8, s.Dial.Selections)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "dial:\n  selections: 4\n")
	t.Setenv("DIALSWEEP_DIAL_SELECTIONS", "6")

	s, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Dial.Selections)
}

func TestLoadFlagOverride(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "dial:\n  selections: 4\n  duration_ms: 300\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("selections", 12, "")
	fs.Int("duration", 1000, "")
	require.NoError(t, fs.Parse([]string{"--selections", "9"}))

	v := NewViper()
	require.NoError(t, BindFlags(v, fs))
	s, err := Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, 9, s.Dial.Selections, "changed flag wins over file")
	assert.Equal(t, 300, s.Dial.DurationMs, "unchanged flag does not mask file")
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "dial:\n  selections: 0\n  duration_ms: -5\n")

	_, err := Load(NewViper(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial.selections")
	assert.Contains(t, err.Error(), "dial.duration_ms")
}

func TestValidate(t *testing.T) {
	valid := func() Settings {
		var s Settings
		s.Dial.Selections = 12
		s.Dial.DurationMs = 1000
		s.Dial.StrokeWidth = 15
		s.Render.FPS = 30
		s.Log.Level = "debug"
		return s
	}

	tests := []struct {
		name   string
		mutate func(*Settings)
		errs   int
	}{
		{"valid", func(*Settings) {}, 0},
		{"zero selections", func(s *Settings) { s.Dial.Selections = 0 }, 1},
		{"zero duration", func(s *Settings) { s.Dial.DurationMs = 0 }, 1},
		{"negative stroke", func(s *Settings) { s.Dial.StrokeWidth = -1 }, 1},
		{"fps too high", func(s *Settings) { s.Render.FPS = 1000 }, 1},
		{"bad level", func(s *Settings) { s.Log.Level = "loud" }, 1},
		{"everything wrong", func(s *Settings) {
			s.Dial.Selections = -1
			s.Dial.DurationMs = -1
			s.Render.FPS = 0
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			assert.Len(t, Validate(&s), tt.errs)
		})
	}
}

func TestSafeSettingsConcurrency(t *testing.T) {
	ss := &SafeSettings{}
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				var s Settings
				s.Dial.Selections = id + 1
				ss.Set(s)
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = ss.Get().Dial.Selections
			}
		}()
	}
	wg.Wait()
}

func TestSafeSettingsGetReturnsCopy(t *testing.T) {
	ss := &SafeSettings{}
	var s Settings
	s.Dial.Selections = 5
	ss.Set(s)

	got := ss.Get()
	got.Dial.Selections = 99
	assert.Equal(t, 5, ss.Get().Dial.Selections)
}

func quietLog() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func watched(t *testing.T, body string) (path string, safe *SafeSettings, changed <-chan struct{}) {
	t.Helper()
	dir := isolate(t)
	path = writeConfig(t, dir, body)

	v := NewViper()
	s, err := Load(v, path)
	require.NoError(t, err)
	safe = &SafeSettings{}
	safe.Set(s)
	return path, safe, Watch(v, safe, quietLog())
}

func TestWatchAppliesLastWriteOfBurst(t *testing.T) {
	path, safe, changed := watched(t, "dial:\n  selections: 12\n")

	require.NoError(t, os.WriteFile(path, []byte("dial:\n  selections: 5\n"), 0o644))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("dial:\n  selections: 8\n"), 0o644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no reload signalled")
	}
	assert.Eventually(t, func() bool {
		return safe.Get().Dial.Selections == 8
	}, 3*time.Second, 20*time.Millisecond)

	// nothing further arrives once the burst has settled
	time.Sleep(2 * ReloadDebounce)
	assert.Equal(t, 8, safe.Get().Dial.Selections)
}

func TestWatchRejectsInvalidReload(t *testing.T) {
	path, safe, changed := watched(t, "dial:\n  selections: 12\n")

	require.NoError(t, os.WriteFile(path, []byte("dial:\n  selections: 0\n"), 0o644))

	select {
	case <-changed:
		t.Fatal("invalid reload was signalled")
	case <-time.After(4 * ReloadDebounce):
	}
	assert.Equal(t, 12, safe.Get().Dial.Selections)
}
