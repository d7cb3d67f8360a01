package magnetic

import "fmt"

// registration — учётная запись элемента в реестре движка.
type registration struct {
	transform Transform
}

// Engine владеет реестром элементов и применяет к ним эффект.
// Каждое движение обходит все элементы без пространственного индекса,
// поэтому набор рассчитан на несколько десятков элементов.
type Engine struct {
	cfg      Config
	registry map[Target]*registration
	order    []Target
}

// NewEngine создаёт движок с проверенной конфигурацией.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create magnetic engine: %w", err)
	}
	return &Engine{
		cfg:      cfg,
		registry: make(map[Target]*registration),
	}, nil
}

// Mount регистрирует набор элементов. Повторный Mount сначала снимает
// предыдущую регистрацию. Пустой набор допустим.
func (e *Engine) Mount(targets []Target) {
	e.Unmount()
	for _, t := range targets {
		if t == nil {
			continue
		}
		if _, dup := e.registry[t]; dup {
			continue
		}
		e.registry[t] = &registration{transform: Identity}
		e.order = append(e.order, t)
	}
}

// Unmount сбрасывает преобразования всех элементов и очищает реестр.
func (e *Engine) Unmount() {
	for _, t := range e.order {
		t.SetTransform(Identity)
	}
	clear(e.registry)
	e.order = nil
}

// Len возвращает число зарегистрированных элементов.
func (e *Engine) Len() int {
	return len(e.order)
}

// PointerMove пересчитывает преобразования всех элементов. Преобразование
// получает только элемент под указателем, остальные возвращаются к Identity.
func (e *Engine) PointerMove(x, y float64) {
	for _, t := range e.order {
		reg := e.registry[t]
		b := t.Bounds()
		tr := Identity
		if b.Contains(x, y) {
			cx, cy := b.Center()
			tr = Compute(cx, cy, x, y, e.cfg)
		}
		e.apply(t, reg, tr)
	}
}

// PointerLeave сбрасывает преобразование элемента к Identity.
func (e *Engine) PointerLeave(t Target) {
	reg, ok := e.registry[t]
	if !ok {
		return
	}
	e.apply(t, reg, Identity)
}

// LeaveAll вызывается, когда указатель покидает окно.
func (e *Engine) LeaveAll() {
	for _, t := range e.order {
		e.PointerLeave(t)
	}
}

// Transform возвращает последнее применённое к элементу преобразование.
func (e *Engine) Transform(t Target) (Transform, bool) {
	reg, ok := e.registry[t]
	if !ok {
		return Identity, false
	}
	return reg.transform, true
}

func (e *Engine) apply(t Target, reg *registration, tr Transform) {
	reg.transform = tr
	t.SetTransform(tr)
}
