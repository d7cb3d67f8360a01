// Package splash runs the introductory greeting sequence: cycle greetings on
// a fast tick, exit after a fixed duration, then report completion once.
package splash

import (
	"errors"
	"fmt"
	"time"

	"go-landing/internal/timer"
)

var (
	ErrNoGreetings   = errors.New("splash: greeting list is empty")
	ErrInvalidTiming = errors.New("splash: timings must be positive")
)

// Phase — состояние последовательности.
type Phase int

const (
	Cycling Phase = iota
	Exiting
	Done
)

func (p Phase) String() string {
	switch p {
	case Cycling:
		return "cycling"
	case Exiting:
		return "exiting"
	case Done:
		return "done"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Config — параметры заставки.
type Config struct {
	Greetings     []string
	CycleInterval time.Duration
	Duration      time.Duration // от входа в Cycling до Exiting
	ExitDelay     time.Duration // от Exiting до Done
}

// DefaultConfig возвращает параметры по умолчанию.
func DefaultConfig() Config {
	return Config{
		Greetings:     DefaultGreetings(),
		CycleInterval: 100 * time.Millisecond,
		Duration:      4000 * time.Millisecond,
		ExitDelay:     800 * time.Millisecond,
	}
}

// Validate проверяет параметры.
func (c Config) Validate() error {
	if len(c.Greetings) == 0 {
		return ErrNoGreetings
	}
	if c.CycleInterval <= 0 || c.Duration <= 0 || c.ExitDelay <= 0 {
		return fmt.Errorf("%w: cycle=%v duration=%v exit=%v", ErrInvalidTiming, c.CycleInterval, c.Duration, c.ExitDelay)
	}
	return nil
}

// Sequencer — конечный автомат Cycling → Exiting → Done. Таймеры текущего
// состояния отменяются при каждом переходе и при Unmount.
type Sequencer struct {
	cfg       Config
	timers    *timer.Group
	onDone    func()
	index     int
	phase     Phase
	exitStart time.Duration
	mounted   bool
	disposed  bool
	fired     bool
}

// New создаёт последовательность. onDone вызывается ровно один раз при входе в Done.
func New(cfg Config, s *timer.Scheduler, onDone func()) (*Sequencer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	greetings := make([]string, len(cfg.Greetings))
	copy(greetings, cfg.Greetings)
	cfg.Greetings = greetings

	return &Sequencer{
		cfg:    cfg,
		timers: timer.NewGroup(s),
		onDone: onDone,
	}, nil
}

// Mount входит в Cycling. Экземпляр одноразовый: повторный Mount ничего не делает.
func (s *Sequencer) Mount() {
	if s.mounted || s.disposed {
		return
	}
	s.mounted = true
	s.phase = Cycling
	s.timers.Every(s.cfg.CycleInterval, func() {
		s.index = (s.index + 1) % len(s.cfg.Greetings)
	})
	s.timers.After(s.cfg.Duration, s.exit)
}

// Unmount отменяет все ожидающие таймеры; после него onDone не вызовется.
func (s *Sequencer) Unmount() {
	s.timers.CancelAll()
	s.disposed = true
}

func (s *Sequencer) exit() {
	s.timers.CancelAll()
	s.phase = Exiting
	s.exitStart = s.timers.Now()
	s.timers.After(s.cfg.ExitDelay, s.finish)
}

func (s *Sequencer) finish() {
	s.timers.CancelAll()
	s.phase = Done
	if s.fired || s.disposed {
		return
	}
	s.fired = true
	if s.onDone != nil {
		s.onDone()
	}
}

func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Index возвращает индекс текущего приветствия, всегда в [0, len).
func (s *Sequencer) Index() int {
	return s.index
}

// Greeting возвращает текущее приветствие.
func (s *Sequencer) Greeting() string {
	return s.cfg.Greetings[s.index]
}

// ExitProgress возвращает долю пройденного выходного перехода в [0, 1].
func (s *Sequencer) ExitProgress() float64 {
	switch s.phase {
	case Cycling:
		return 0
	case Done:
		return 1
	}
	p := float64(s.timers.Now()-s.exitStart) / float64(s.cfg.ExitDelay)
	if p > 1 {
		return 1
	}
	return p
}
