// Package typewriter reveals a string one character per tick.
package typewriter

import (
	"errors"
	"fmt"
	"time"

	"go-landing/internal/timer"
)

var ErrInvalidInterval = errors.New("typewriter: tick interval must be positive")

// DefaultInterval — шаг раскрытия по умолчанию.
const DefaultInterval = 80 * time.Millisecond

// Typewriter — курсор раскрытия одного текста. Курсор только растёт и
// останавливается на длине текста. Новый текст означает новый экземпляр.
type Typewriter struct {
	text     []rune
	cursor   int
	interval time.Duration
	timers   *timer.Group
	tick     timer.ID
}

// New создаёт печатающую машинку с курсором в нуле.
func New(text string, interval time.Duration, s *timer.Scheduler) (*Typewriter, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidInterval, interval)
	}
	return &Typewriter{
		text:     []rune(text),
		interval: interval,
		timers:   timer.NewGroup(s),
	}, nil
}

// Mount запускает тики. Пустой или уже раскрытый текст тиков не требует.
func (t *Typewriter) Mount() {
	if t.tick != 0 || t.Done() {
		return
	}
	t.tick = t.timers.Every(t.interval, t.Step)
}

// Unmount останавливает тики.
func (t *Typewriter) Unmount() {
	t.timers.CancelAll()
	t.tick = 0
}

// Step раскрывает ещё один символ; после полного раскрытия тики прекращаются.
func (t *Typewriter) Step() {
	if t.cursor < len(t.text) {
		t.cursor++
	}
	if t.Done() {
		t.Unmount()
	}
}

// Revealed возвращает длину раскрытого префикса в символах.
func (t *Typewriter) Revealed() int {
	return t.cursor
}

// Text возвращает раскрытый префикс.
func (t *Typewriter) Text() string {
	return string(t.text[:t.cursor])
}

// Full возвращает полный текст.
func (t *Typewriter) Full() string {
	return string(t.text)
}

func (t *Typewriter) Done() bool {
	return t.cursor >= len(t.text)
}

// Ticking сообщает, запланированы ли ещё тики.
func (t *Typewriter) Ticking() bool {
	return t.timers.Len() > 0
}
