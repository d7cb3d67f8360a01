// internal/ui/reveal.go
package ui

import (
	"time"

	"go-landing/internal/utils"
)

// HeroStyle возвращает масштаб и прозрачность героя для прогресса прокрутки:
// масштаб 1→0.9 на всём пути, прозрачность 1→0.2 на первых 60%.
func HeroStyle(progress float64) (scale, opacity float64) {
	p := utils.Clamp(progress, 0, 1)
	scale = utils.Lerp(1, 0.9, p)
	opacity = utils.Lerp(1, 0.2, utils.Clamp(p/0.6, 0, 1))
	return scale, opacity
}

// Рост полос навыков после появления секции на экране.
const (
	SkillBarDuration = 900 * time.Millisecond
	SkillBarStagger  = 50 * time.Millisecond
)

// SkillBars — состояние роста полос. Полосы растут, пока секция видна,
// и сбрасываются к нулю, когда она уходит с экрана.
type SkillBars struct {
	start time.Duration
	shown bool
}

// SetVisible отмечает видимость секции в момент now.
func (b *SkillBars) SetVisible(visible bool, now time.Duration) {
	switch {
	case visible && !b.shown:
		b.shown, b.start = true, now
	case !visible:
		b.shown = false
	}
}

// Shown сообщает, растут ли полосы.
func (b *SkillBars) Shown() bool {
	return b.shown
}

// Fraction возвращает долю длины i-й полосы в [0, 1].
func (b *SkillBars) Fraction(i int, now time.Duration) float64 {
	if !b.shown {
		return 0
	}
	elapsed := now - b.start - time.Duration(i)*SkillBarStagger
	return utils.EaseInOutCubic(float64(elapsed) / float64(SkillBarDuration))
}
