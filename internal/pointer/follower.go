package pointer

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Параметры пружины курсора-спутника: жёсткость 320, демпфирование 28, масса 1.
const (
	FollowerStiffness = 320.0
	FollowerDamping   = 28.0
)

// Follower — точка, догоняющая указатель по пружине. До первого движения
// указателя скрыта, первое движение переносит её сразу под курсор.
type Follower struct {
	src     Reader
	spring  harmonica.Spring
	x, y    float64
	vx, vy  float64
	visible bool
}

// NewFollower создаёт спутник; tps — частота вызова Update.
func NewFollower(src Reader, tps int) *Follower {
	freq := math.Sqrt(FollowerStiffness)
	ratio := FollowerDamping / (2 * freq)
	return &Follower{
		src:    src,
		spring: harmonica.NewSpring(harmonica.FPS(tps), freq, ratio),
	}
}

// Update делает один шаг пружины к текущей позиции указателя.
func (f *Follower) Update() {
	px, py, ok := f.src.Position()
	if !ok {
		return
	}
	if !f.visible {
		f.x, f.y, f.visible = px, py, true
		return
	}
	f.x, f.vx = f.spring.Update(f.x, f.vx, px)
	f.y, f.vy = f.spring.Update(f.y, f.vy, py)
}

// Position возвращает позицию спутника; ok=false, пока он скрыт.
func (f *Follower) Position() (x, y float64, ok bool) {
	return f.x, f.y, f.visible
}
