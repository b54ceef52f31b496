package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"dial-sweep.klederson.com/internal/dial"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DialSettings mirrors the dial configuration surface.
type DialSettings struct {
	Selections          int     `mapstructure:"selections"`
	DurationMs          int     `mapstructure:"duration_ms"`
	OffsetSlots         float64 `mapstructure:"offset_slots"`
	LabelOffset         float64 `mapstructure:"label_offset"`
	MarkerOffset        float64 `mapstructure:"marker_offset"`
	StrokeWidth         float64 `mapstructure:"stroke_width"`
	TruncateSlotDegrees bool    `mapstructure:"truncate_slot_degrees"`
}

// RenderSettings controls the terminal host.
type RenderSettings struct {
	Diagnostics bool `mapstructure:"diagnostics"`
	FPS         int  `mapstructure:"fps"`
}

// LogSettings controls logrus output.
type LogSettings struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Settings holds all application configuration.
type Settings struct {
	Dial   DialSettings   `mapstructure:"dial"`
	Render RenderSettings `mapstructure:"render"`
	Log    LogSettings    `mapstructure:"log"`
}

// DialOptions converts the dial section for dial.NewConfig.
func (s Settings) DialOptions() dial.Options {
	return dial.Options{
		SelectionCount:      s.Dial.Selections,
		DurationMs:          s.Dial.DurationMs,
		AngularOffsetSlots:  s.Dial.OffsetSlots,
		LabelRadiusOffset:   s.Dial.LabelOffset,
		MarkerRadiusOffset:  s.Dial.MarkerOffset,
		StrokeWidth:         s.Dial.StrokeWidth,
		TruncateSlotDegrees: s.Dial.TruncateSlotDegrees,
	}
}

// DialConfig validates and converts the dial section.
func (s Settings) DialConfig() (dial.Config, error) {
	return dial.NewConfig(s.DialOptions())
}

// SafeSettings wraps Settings with thread-safe access.
type SafeSettings struct {
	mu  sync.RWMutex
	cur Settings
}

// Get returns a copy of the current settings.
func (ss *SafeSettings) Get() Settings {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.cur
}

// Set replaces the current settings.
func (ss *SafeSettings) Set(s Settings) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.cur = s
}

// NewViper returns a viper instance with defaults, the XDG config search
// path and DIALSWEEP_ environment overrides.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("dial.selections", dial.DefaultSelectionCount)
	v.SetDefault("dial.duration_ms", dial.DefaultDurationMs)
	v.SetDefault("dial.offset_slots", dial.DefaultAngularOffsetSlots)
	v.SetDefault("dial.label_offset", dial.DefaultLabelRadiusOffset)
	v.SetDefault("dial.marker_offset", dial.DefaultMarkerRadiusOffset)
	v.SetDefault("dial.stroke_width", dial.DefaultStrokeWidth)
	v.SetDefault("dial.truncate_slot_degrees", false)
	v.SetDefault("render.diagnostics", false)
	v.SetDefault("render.fps", TargetFPS)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		v.AddConfigPath(filepath.Join(configHome, "dial-sweep"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// flagKeys maps command-line flags to settings keys.
var flagKeys = map[string]string{
	"selections":  "dial.selections",
	"duration":    "dial.duration_ms",
	"truncate":    "dial.truncate_slot_degrees",
	"diagnostics": "render.diagnostics",
	"log-level":   "log.level",
	"log-file":    "log.file",
}

// BindFlags lets any flag in fs that maps to a settings key take precedence
// over file and environment values. Flags absent from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file (file, or the search path when empty),
// unmarshals and validates. A missing file on the search path is not an
// error; a missing explicit file is.
func Load(v *viper.Viper, file string) (Settings, error) {
	if file != "" {
		v.SetConfigFile(file)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}
	if errs := Validate(&s); len(errs) > 0 {
		return Settings{}, errors.Join(errs...)
	}
	return s, nil
}

// Validate returns every invalid field in s.
func Validate(s *Settings) []error {
	var errs []error
	if s.Dial.Selections <= 0 {
		errs = append(errs, fmt.Errorf("dial.selections must be > 0, got %d", s.Dial.Selections))
	}
	if s.Dial.DurationMs <= 0 {
		errs = append(errs, fmt.Errorf("dial.duration_ms must be > 0, got %d", s.Dial.DurationMs))
	}
	if s.Dial.StrokeWidth < 0 {
		errs = append(errs, fmt.Errorf("dial.stroke_width must be >= 0, got %g", s.Dial.StrokeWidth))
	}
	if s.Render.FPS <= 0 || s.Render.FPS > 240 {
		errs = append(errs, fmt.Errorf("render.fps must be in 1..240, got %d", s.Render.FPS))
	}
	if _, err := logrus.ParseLevel(s.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errs
}

// Watch reloads settings whenever the config file changes. Valid reloads
// are stored in safe and signalled on the returned channel; invalid ones
// are logged and dropped. A burst of file events is applied once,
// ReloadDebounce after the last event, using the file as last written.
func Watch(v *viper.Viper, safe *SafeSettings, log logrus.FieldLogger) <-chan struct{} {
	changed := make(chan struct{}, 1)
	var (
		mu      sync.Mutex
		timer   *time.Timer
		pending Settings
		failed  error
		file    string
	)

	apply := func() {
		mu.Lock()
		s, err, name := pending, failed, file
		mu.Unlock()

		if err != nil {
			log.WithError(err).WithField("file", name).Warn("config reload rejected")
			return
		}
		safe.Set(s)
		log.WithField("file", name).Info("config reloaded")

		select {
		case changed <- struct{}{}:
		default:
			// reload already pending
		}
	}

	// viper re-reads the file before calling back, on its watcher goroutine,
	// so decoding here never races a read.
	v.OnConfigChange(func(e fsnotify.Event) {
		s, err := decode(v)

		mu.Lock()
		defer mu.Unlock()
		pending, failed, file = s, err, e.Name
		if timer == nil {
			timer = time.AfterFunc(ReloadDebounce, apply)
			return
		}
		timer.Reset(ReloadDebounce)
	})
	v.WatchConfig()
	return changed
}
