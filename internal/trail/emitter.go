// Package trail spawns short-lived markers along the pointer path.
package trail

import (
	"errors"
	"fmt"
	"time"

	"go-landing/internal/timer"
	"go-landing/internal/utils"
)

var ErrInvalidConfig = errors.New("trail: invalid config")

// Particle — одна частица следа.
type Particle struct {
	ID   uint64
	X, Y float64
	Size float64
	Born time.Duration
}

// Config — параметры следа.
type Config struct {
	Capacity int           // максимум живых частиц
	Lifetime time.Duration // время жизни и длительность анимации
	MinSize  float64
	MaxSize  float64
	Rise     float64 // подъём к концу жизни, px
}

// DefaultConfig возвращает параметры по умолчанию.
func DefaultConfig() Config {
	return Config{
		Capacity: 20,
		Lifetime: time.Second,
		MinSize:  2,
		MaxSize:  6,
		Rise:     30,
	}
}

// Validate проверяет параметры.
func (c Config) Validate() error {
	switch {
	case c.Capacity < 1:
		return fmt.Errorf("%w: capacity must be at least 1, got %d", ErrInvalidConfig, c.Capacity)
	case c.Lifetime <= 0:
		return fmt.Errorf("%w: lifetime must be positive, got %v", ErrInvalidConfig, c.Lifetime)
	case c.MinSize <= 0 || c.MaxSize < c.MinSize:
		return fmt.Errorf("%w: size range [%v, %v] is invalid", ErrInvalidConfig, c.MinSize, c.MaxSize)
	}
	return nil
}

// Appearance — состояние анимации частицы в момент отрисовки.
type Appearance struct {
	Opacity float64
	Scale   float64
	OffsetY float64
}

// Appearance вычисляет анимацию частицы. Используется то же Lifetime, что и
// для удаления, поэтому к моменту удаления частица уже полностью погасла.
func (c Config) Appearance(p Particle, now time.Duration) Appearance {
	progress := utils.Clamp(float64(now-p.Born)/float64(c.Lifetime), 0, 1)
	return Appearance{
		Opacity: 1 - progress,
		Scale:   1 - progress,
		OffsetY: -c.Rise * progress,
	}
}

// SizeSource — источник случайного размера.
type SizeSource interface {
	Range(min, max float64) float64
}

// Emitter — живой набор частиц и таймеры их удаления.
type Emitter struct {
	cfg    Config
	timers *timer.Group
	rng    SizeSource
	nextID uint64
	live   []Particle
	expiry map[uint64]timer.ID
}

// NewEmitter создаёт эмиттер поверх планировщика.
func NewEmitter(cfg Config, s *timer.Scheduler, rng SizeSource) (*Emitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create trail emitter: %w", err)
	}
	return &Emitter{
		cfg:    cfg,
		timers: timer.NewGroup(s),
		rng:    rng,
		nextID: 1,
		expiry: make(map[uint64]timer.ID),
	}, nil
}

// Config возвращает параметры эмиттера.
func (e *Emitter) Config() Config {
	return e.cfg
}

// PointerMove порождает частицу в точке указателя. Если набор переполнен,
// самая старая частица удаляется независимо от оставшегося времени жизни.
func (e *Emitter) PointerMove(x, y float64) Particle {
	p := Particle{
		ID:   e.nextID,
		X:    x,
		Y:    y,
		Size: e.rng.Range(e.cfg.MinSize, e.cfg.MaxSize),
		Born: e.timers.Now(),
	}
	e.nextID++

	e.live = append(e.live, p)
	for len(e.live) > e.cfg.Capacity {
		oldest := e.live[0]
		e.live = e.live[1:]
		e.timers.Cancel(e.expiry[oldest.ID])
		delete(e.expiry, oldest.ID)
	}

	id := p.ID
	e.expiry[id] = e.timers.After(e.cfg.Lifetime, func() {
		e.remove(id)
	})
	return p
}

// Live возвращает копию живого набора, от старых к новым.
func (e *Emitter) Live() []Particle {
	out := make([]Particle, len(e.live))
	copy(out, e.live)
	return out
}

// Len возвращает число живых частиц.
func (e *Emitter) Len() int {
	return len(e.live)
}

// Unmount отменяет все таймеры и очищает набор.
func (e *Emitter) Unmount() {
	e.timers.CancelAll()
	clear(e.expiry)
	e.live = nil
}

func (e *Emitter) remove(id uint64) {
	delete(e.expiry, id)
	for i, p := range e.live {
		if p.ID == id {
			e.live = append(e.live[:i], e.live[i+1:]...)
			return
		}
	}
}
