// Package pointer holds the shared pointer state: one writer samples the
// cursor each update, every other component reads through Reader.
package pointer

// Reader — доступ к состоянию указателя только на чтение.
type Reader interface {
	// Position возвращает последнюю позицию во вьюпорте; ok=false до первого движения.
	Position() (x, y float64, ok bool)
	// Normalized возвращает позицию в [-1,1]; (0,0) до первого движения.
	Normalized() (nx, ny float64)
}

// Tracker — единственный писатель состояния указателя.
type Tracker struct {
	x, y          float64
	nx, ny        float64
	moved         bool
	width, height float64
}

// NewTracker создаёт трекер для вьюпорта заданного размера.
func NewTracker(width, height int) *Tracker {
	t := &Tracker{}
	t.SetViewport(width, height)
	return t
}

// SetViewport задаёт размер вьюпорта для нормализации.
func (t *Tracker) SetViewport(width, height int) {
	t.width = float64(width)
	t.height = float64(height)
	if t.moved {
		t.normalize()
	}
}

// Sample записывает позицию курсора. Возвращает true, если позиция изменилась
// (это и есть событие «pointer move»). Все движения между двумя кадрами
// схлопываются в последнее значение.
func (t *Tracker) Sample(x, y float64) bool {
	if t.moved && x == t.x && y == t.y {
		return false
	}
	t.x, t.y = x, y
	t.moved = true
	t.normalize()
	return true
}

func (t *Tracker) Position() (float64, float64, bool) {
	return t.x, t.y, t.moved
}

func (t *Tracker) Normalized() (float64, float64) {
	return t.nx, t.ny
}

func (t *Tracker) normalize() {
	if t.width <= 0 || t.height <= 0 {
		t.nx, t.ny = 0, 0
		return
	}
	t.nx = clamp(2*t.x/t.width-1, -1, 1)
	t.ny = clamp(-(2*t.y/t.height - 1), -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
