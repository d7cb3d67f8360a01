// Package scroll tracks the page offset, reading progress and the section
// under the viewport for the progress bar and navigation highlight.
package scroll

import (
	"sort"

	"github.com/charmbracelet/harmonica"

	"go-landing/internal/utils"
)

// Section — именованная секция страницы.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

const (
	springFrequency = 6.0
	springDamping   = 1.0 // критическое затухание, без перелёта
	settleEpsilon   = 0.05

	// ScrolledThreshold — смещение, после которого навигация получает фон.
	ScrolledThreshold = 50.0
)

// Tracker хранит смещение прокрутки; смещение плавно догоняет цель пружиной.
type Tracker struct {
	viewport float64
	content  float64
	sections []Section

	offset   float64
	velocity float64
	target   float64
	spring   harmonica.Spring
}

// NewTracker создаёт трекер; tps — частота вызова Update.
func NewTracker(viewportHeight float64, tps int) *Tracker {
	return &Tracker{
		viewport: viewportHeight,
		spring:   harmonica.NewSpring(harmonica.FPS(tps), springFrequency, springDamping),
	}
}

// SetSections задаёт секции; высота контента — нижняя граница последней секции.
// Пустой список допустим.
func (t *Tracker) SetSections(sections []Section) {
	t.sections = append(t.sections[:0], sections...)
	sort.SliceStable(t.sections, func(i, j int) bool {
		return t.sections[i].Top < t.sections[j].Top
	})
	t.content = 0
	for _, s := range t.sections {
		if bottom := s.Top + s.Height; bottom > t.content {
			t.content = bottom
		}
	}
	t.target = t.clamp(t.target)
	t.offset = t.clamp(t.offset)
}

// ScrollBy сдвигает цель прокрутки.
func (t *Tracker) ScrollBy(delta float64) {
	t.target = t.clamp(t.target + delta)
}

// ScrollTo задаёт цель прокрутки.
func (t *Tracker) ScrollTo(offset float64) {
	t.target = t.clamp(offset)
}

// ScrollToSection прокручивает к началу секции. Неизвестный id игнорируется.
func (t *Tracker) ScrollToSection(id string) bool {
	for _, s := range t.sections {
		if s.ID == id {
			t.ScrollTo(s.Top)
			return true
		}
	}
	return false
}

// Update делает один шаг пружины.
func (t *Tracker) Update() {
	t.offset, t.velocity = t.spring.Update(t.offset, t.velocity, t.target)
	if d := t.offset - t.target; d < settleEpsilon && d > -settleEpsilon && t.velocity < settleEpsilon && t.velocity > -settleEpsilon {
		t.offset, t.velocity = t.target, 0
	}
}

// Offset возвращает текущее смещение.
func (t *Tracker) Offset() float64 {
	return t.offset
}

// Scrolled сообщает, что страница прокручена дальше ScrolledThreshold.
func (t *Tracker) Scrolled() bool {
	return t.offset > ScrolledThreshold
}

// Target возвращает цель прокрутки.
func (t *Tracker) Target() float64 {
	return t.target
}

// Progress возвращает долю прочитанного в [0, 1].
func (t *Tracker) Progress() float64 {
	max := t.content - t.viewport
	if max <= 0 {
		return 0
	}
	return utils.Clamp(t.offset/max, 0, 1)
}

// Active возвращает id последней секции, верх которой выше трети вьюпорта.
// До первой секции активна первая; без секций — пустая строка.
func (t *Tracker) Active() string {
	if len(t.sections) == 0 {
		return ""
	}
	line := t.offset + t.viewport/3
	active := t.sections[0].ID
	for _, s := range t.sections {
		if s.Top <= line {
			active = s.ID
		}
	}
	return active
}

func (t *Tracker) clamp(v float64) float64 {
	max := t.content - t.viewport
	if max < 0 {
		max = 0
	}
	return utils.Clamp(v, 0, max)
}
