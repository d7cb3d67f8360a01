// internal/state/splash_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"go-landing/internal/app"
	"go-landing/internal/config"
	"go-landing/internal/event"
	"go-landing/internal/splash"
	"go-landing/internal/utils"
)

// SplashState — заставка с приветствиями. По завершении переключает
// машину на next.
type SplashState struct {
	sm       *StateMachine
	app      *app.Landing
	input    Input
	seq      *splash.Sequencer
	next     State
	finished bool
}

// NewSplashState создаёт заставку. Последовательность создаётся здесь,
// чтобы ошибки конфигурации всплыли до запуска окна.
func NewSplashState(sm *StateMachine, l *app.Landing, input Input, next State) (*SplashState, error) {
	s := &SplashState{sm: sm, app: l, input: input, next: next}
	seq, err := splash.New(l.Settings.SplashConfig(), l.Scheduler, s.onDone)
	if err != nil {
		return nil, err
	}
	s.seq = seq
	return s, nil
}

// onDone вызывается из Advance; смена состояния откладывается до конца Update.
func (s *SplashState) onDone() {
	s.finished = true
	s.app.Events.Dispatch(event.Event{Type: event.SplashFinished})
}

func (s *SplashState) Enter() {
	s.app.Logger.Debug("Splash mounted")
	s.seq.Mount()
}

func (s *SplashState) Update(deltaTime float64) {
	x, y := s.input.Cursor()
	s.app.Pointer.Sample(float64(x), float64(y))
	s.app.Advance(deltaTime)

	if s.finished {
		s.app.Logger.Debug("Splash finished", zap.Duration("at", s.app.Scheduler.Now()))
		s.sm.SetState(s.next)
	}
}

func (s *SplashState) Draw(screen *ebiten.Image) {
	pal := s.app.Palette()
	screen.Fill(pal.Background)

	// Шторка уезжает вверх, приветствие гаснет
	e := utils.EaseInOutCubic(s.seq.ExitProgress())
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	top := utils.Lerp(0, -h, e)
	vector.DrawFilledRect(screen, 0, float32(top), float32(w), float32(h), pal.Splash, false)

	greeting := s.seq.Greeting()
	face := s.app.Fonts.Splash
	b := text.BoundString(face, greeting)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate((w-float64(b.Dx()))/2-float64(b.Min.X), top+h/2-float64(b.Min.Y)-float64(b.Dy())/2)
	op.ColorScale.ScaleWithColor(color.White)
	op.ColorScale.ScaleAlpha(float32(1 - e))
	text.DrawWithOptions(screen, greeting, face, op)
}

func (s *SplashState) Exit() {
	s.seq.Unmount()
}

// Phase возвращает фазу последовательности.
func (s *SplashState) Phase() splash.Phase {
	return s.seq.Phase()
}
