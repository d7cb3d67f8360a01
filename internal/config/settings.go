package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"go-landing/internal/field"
	"go-landing/internal/magnetic"
	"go-landing/internal/splash"
	"go-landing/internal/trail"
)

var ErrInvalidSettings = errors.New("invalid settings")

// FieldSettings — параметры облака точек.
type FieldSettings struct {
	Count       int     `yaml:"count"`
	Radius      float64 `yaml:"radius"`
	YawRate     float64 `yaml:"yaw_rate"`
	PitchRate   float64 `yaml:"pitch_rate"`
	PointerGain float64 `yaml:"pointer_gain"`
}

// MagneticSettings — параметры магнитного эффекта.
type MagneticSettings struct {
	MaxDistance float64 `yaml:"max_distance"`
	Pull        float64 `yaml:"pull"`
	Twist       float64 `yaml:"twist"`
	Grow        float64 `yaml:"grow"`
}

// TrailSettings — параметры следа указателя.
type TrailSettings struct {
	Capacity   int     `yaml:"capacity"`
	LifetimeMs int     `yaml:"lifetime_ms"`
	MinSize    float64 `yaml:"min_size"`
	MaxSize    float64 `yaml:"max_size"`
	Rise       float64 `yaml:"rise"`
}

// SplashSettings — параметры заставки.
type SplashSettings struct {
	Greetings       []string `yaml:"greetings"`
	CycleIntervalMs int      `yaml:"cycle_interval_ms"`
	DurationMs      int      `yaml:"duration_ms"`
	ExitDelayMs     int      `yaml:"exit_delay_ms"`
}

// Settings — все настраиваемые параметры движка.
type Settings struct {
	Field        FieldSettings    `yaml:"field"`
	Magnetic     MagneticSettings `yaml:"magnetic"`
	Trail        TrailSettings    `yaml:"trail"`
	Splash       SplashSettings   `yaml:"splash"`
	TypewriterMs int              `yaml:"typewriter_interval_ms"`
}

// DefaultSettings возвращает значения по умолчанию.
func DefaultSettings() Settings {
	f := field.DefaultConfig()
	m := magnetic.DefaultConfig()
	t := trail.DefaultConfig()
	s := splash.DefaultConfig()
	return Settings{
		Field: FieldSettings{
			Count:       f.Count,
			Radius:      f.Radius,
			YawRate:     f.Rates.Yaw,
			PitchRate:   f.Rates.Pitch,
			PointerGain: f.Rates.PointerGain,
		},
		Magnetic: MagneticSettings(m),
		Trail: TrailSettings{
			Capacity:   t.Capacity,
			LifetimeMs: int(t.Lifetime / time.Millisecond),
			MinSize:    t.MinSize,
			MaxSize:    t.MaxSize,
			Rise:       t.Rise,
		},
		Splash: SplashSettings{
			Greetings:       s.Greetings,
			CycleIntervalMs: int(s.CycleInterval / time.Millisecond),
			DurationMs:      int(s.Duration / time.Millisecond),
			ExitDelayMs:     int(s.ExitDelay / time.Millisecond),
		},
		TypewriterMs: 80,
	}
}

// LoadSettings читает YAML поверх значений по умолчанию. Пустой путь или
// отсутствующий файл дают значения по умолчанию.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate собирает все нарушения сразу.
func (s Settings) Validate() error {
	var err error
	err = multierr.Append(err, s.FieldConfig().Validate())
	err = multierr.Append(err, s.MagneticConfig().Validate())
	err = multierr.Append(err, s.TrailConfig().Validate())
	err = multierr.Append(err, s.SplashConfig().Validate())
	if s.TypewriterMs <= 0 {
		err = multierr.Append(err, fmt.Errorf("typewriter interval must be positive, got %dms", s.TypewriterMs))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// FieldConfig возвращает параметры для field.NewAnimator.
func (s Settings) FieldConfig() field.Config {
	return field.Config{
		Count:  s.Field.Count,
		Radius: s.Field.Radius,
		Rates: field.Rates{
			Yaw:         s.Field.YawRate,
			Pitch:       s.Field.PitchRate,
			PointerGain: s.Field.PointerGain,
		},
	}
}

// MagneticConfig возвращает параметры для magnetic.NewEngine.
func (s Settings) MagneticConfig() magnetic.Config {
	return magnetic.Config(s.Magnetic)
}

// TrailConfig возвращает параметры для trail.NewEmitter.
func (s Settings) TrailConfig() trail.Config {
	return trail.Config{
		Capacity: s.Trail.Capacity,
		Lifetime: time.Duration(s.Trail.LifetimeMs) * time.Millisecond,
		MinSize:  s.Trail.MinSize,
		MaxSize:  s.Trail.MaxSize,
		Rise:     s.Trail.Rise,
	}
}

// SplashConfig возвращает параметры для splash.New.
func (s Settings) SplashConfig() splash.Config {
	return splash.Config{
		Greetings:     s.Splash.Greetings,
		CycleInterval: time.Duration(s.Splash.CycleIntervalMs) * time.Millisecond,
		Duration:      time.Duration(s.Splash.DurationMs) * time.Millisecond,
		ExitDelay:     time.Duration(s.Splash.ExitDelayMs) * time.Millisecond,
	}
}

// TypewriterInterval возвращает шаг печатающей машинки.
func (s Settings) TypewriterInterval() time.Duration {
	return time.Duration(s.TypewriterMs) * time.Millisecond
}
