// internal/state/landing_state.go
package state

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"go-landing/internal/app"
	"go-landing/internal/config"
	"go-landing/internal/field"
	"go-landing/internal/magnetic"
	"go-landing/internal/pointer"
	"go-landing/internal/scroll"
	"go-landing/internal/trail"
	"go-landing/internal/typewriter"
	"go-landing/internal/ui"
	"go-landing/pkg/render"
)

// LandingState — основная страница: поле точек, магнитные кнопки, след
// указателя, печатающийся заголовок и прокрутка секций.
type LandingState struct {
	app   *app.Landing
	input Input

	animator *field.Animator
	renderer *render.FieldRenderer
	magnet   *magnetic.Engine
	trail    *trail.Emitter
	follower *pointer.Follower
	scroll   *scroll.Tracker
	page     *ui.Page
	toggle   *ui.ThemeToggle
	progress ui.ProgressBar

	title    *typewriter.Typewriter
	subtitle *typewriter.Typewriter

	mounted      bool
	pointerIn    bool
	lastOffset   float64
	showFPS      bool
	wantSnapshot bool
}

// NewLandingState создаёт компоненты страницы; монтирование происходит в Enter.
func NewLandingState(l *app.Landing, input Input) (*LandingState, error) {
	animator, err := field.NewAnimator(l.Settings.FieldConfig(), l.Rng, l.Pointer)
	if err != nil {
		return nil, err
	}
	magnet, err := magnetic.NewEngine(l.Settings.MagneticConfig())
	if err != nil {
		return nil, err
	}
	emitter, err := trail.NewEmitter(l.Settings.TrailConfig(), l.Scheduler, l.Rng)
	if err != nil {
		return nil, err
	}

	s := &LandingState{
		app:      l,
		input:    input,
		animator: animator,
		magnet:   magnet,
		trail:    emitter,
		follower: pointer.NewFollower(l.Pointer, config.TPS),
		scroll:   scroll.NewTracker(config.ScreenHeight, config.TPS),
		progress: ui.ProgressBar{Width: config.ScreenWidth, Height: config.ProgressBarHeight},
	}
	s.toggle = ui.NewThemeToggle(36, config.NavHeight/2, 12, config.MagneticMarker, l.Theme, func() {
		s.toggle.Current = l.ToggleTheme()
	})
	return s, nil
}

func (s *LandingState) Enter() {
	s.animator.Reset()
	if err := s.mount(); err != nil {
		s.app.Logger.Error("Failed to mount page", zap.Error(err))
		return
	}
	s.app.Logger.Info("Landing mounted",
		zap.Int("points", s.animator.Cloud().Len()),
		zap.Int("magnetic_targets", s.magnet.Len()))
}

// mount строит страницу из текущего контента и запускает печать заголовка.
func (s *LandingState) mount() error {
	feed := s.app.Feed
	s.page = ui.BuildPage(feed, s.app.Fonts, config.ScreenWidth, config.ScreenHeight, s.scroll,
		func(id string) { s.scroll.ScrollToSection(id) },
		s.app.OpenLink)
	s.scroll.SetSections(s.page.Sections())

	interval := s.app.Settings.TypewriterInterval()
	title, err := typewriter.New(feed.Title, interval, s.app.Scheduler)
	if err != nil {
		return fmt.Errorf("failed to create title typewriter: %w", err)
	}
	subtitle, err := typewriter.New(feed.Subtitle, interval, s.app.Scheduler)
	if err != nil {
		return fmt.Errorf("failed to create subtitle typewriter: %w", err)
	}
	s.title, s.subtitle = title, subtitle
	s.title.Mount()
	s.subtitle.Mount()

	targets := append(s.page.Targets(config.MagneticMarker), magnetic.Target(s.toggle))
	s.magnet.Mount(targets)
	s.mounted = true
	return nil
}

func (s *LandingState) unmount() {
	s.magnet.Unmount()
	if s.title != nil {
		s.title.Unmount()
		s.subtitle.Unmount()
	}
	s.mounted = false
}

func (s *LandingState) Update(deltaTime float64) {
	if s.app.PollFeed() {
		s.unmount()
		if err := s.mount(); err != nil {
			s.app.Logger.Error("Failed to remount page", zap.Error(err))
		}
	}

	s.handlePointer()
	s.handleKeys()

	s.app.Advance(deltaTime)
	s.animator.Tick(deltaTime)
	s.scroll.Update()
	s.follower.Update()

	// Кнопки страницы сдвигаются вместе с прокруткой под неподвижным указателем
	if offset := s.scroll.Offset(); offset != s.lastOffset {
		s.lastOffset = offset
		if x, y, ok := s.app.Pointer.Position(); ok && s.pointerIn {
			s.magnet.PointerMove(x, y)
		}
	}
	if s.page != nil {
		s.page.Update(s.lastOffset, s.app.Scheduler.Now())
	}
}

func (s *LandingState) handlePointer() {
	cx, cy := s.input.Cursor()
	x, y := float64(cx), float64(cy)
	inside := cx >= 0 && cy >= 0 && cx < config.ScreenWidth && cy < config.ScreenHeight

	if !inside {
		if s.pointerIn {
			s.magnet.LeaveAll()
			s.pointerIn = false
		}
	} else {
		s.pointerIn = true
		if s.app.Pointer.Sample(x, y) {
			s.magnet.PointerMove(x, y)
			s.trail.PointerMove(x, y)
		}
	}

	if s.page == nil {
		return
	}
	hit := s.page.ButtonAt(x, y)
	for _, b := range s.page.Buttons() {
		b.SetHovered(b == hit)
	}
	s.toggle.SetHovered(inside && s.toggle.Contains(x, y))
	if !s.input.Clicked() || !inside {
		return
	}
	switch {
	case s.toggle.Contains(x, y):
		s.toggle.Click()
	case hit != nil:
		hit.Click()
	}
}

func (s *LandingState) handleKeys() {
	if wy := s.input.Wheel(); wy != 0 {
		s.scroll.ScrollBy(-wy * config.ScrollStep)
	}
	switch {
	case s.input.KeyPressed(ebiten.KeyArrowDown):
		s.scroll.ScrollBy(config.ScrollStep)
	case s.input.KeyPressed(ebiten.KeyArrowUp):
		s.scroll.ScrollBy(-config.ScrollStep)
	case s.input.KeyPressed(ebiten.KeyPageDown):
		s.scroll.ScrollBy(config.ScreenHeight)
	case s.input.KeyPressed(ebiten.KeyPageUp):
		s.scroll.ScrollBy(-config.ScreenHeight)
	case s.input.KeyPressed(ebiten.KeyHome):
		s.scroll.ScrollTo(0)
	}
	if s.input.KeyPressed(ebiten.KeyT) {
		s.toggle.Click()
	}
	if s.input.KeyPressed(ebiten.KeyF3) {
		s.showFPS = !s.showFPS
	}
	if s.input.KeyPressed(ebiten.KeyF12) {
		s.wantSnapshot = true
	}
}

func (s *LandingState) Draw(screen *ebiten.Image) {
	pal := s.app.Palette()
	screen.Fill(pal.Background)

	if s.renderer == nil {
		s.renderer = render.NewFieldRenderer(render.Projector{
			CX:       config.ScreenWidth / 2,
			CY:       config.ScreenHeight / 2,
			Scale:    config.FieldScale,
			Distance: config.CameraDistance,
		}, config.PointSize)
	}
	s.renderer.Draw(screen, s.animator, pal.Point)

	if s.page != nil {
		s.page.Draw(screen, pal, ui.View{
			Offset:   s.scroll.Offset(),
			Progress: s.scroll.Progress(),
			Active:   s.scroll.Active(),
			Scrolled: s.scroll.Scrolled(),
			Now:      s.app.Scheduler.Now(),
			Hero: ui.HeroText{
				Title:    s.title.Text(),
				Subtitle: s.subtitle.Text(),
				Caret:    !s.title.Done(),
			},
		})
	}
	s.toggle.Draw(screen, pal.Surface, pal.Text)
	s.progress.Draw(screen, s.scroll.Progress(), pal.Accent)
	render.DrawTrail(screen, s.trail, s.app.Scheduler.Now(), pal.Trail)
	if x, y, ok := s.follower.Position(); ok && s.pointerIn {
		ui.DrawFollower(screen, x, y, pal.Accent)
	}

	if s.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()), 8, config.ScreenHeight-20)
	}
	if s.wantSnapshot {
		s.wantSnapshot = false
		s.snapshot(screen)
	}
}

func (s *LandingState) snapshot(screen *ebiten.Image) {
	b := screen.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pix)
	path, err := s.app.SaveSnapshot(pix, b.Dx(), b.Dy(), time.Now())
	if err != nil {
		s.app.Logger.Warn("Snapshot failed", zap.Error(err))
		return
	}
	s.app.Logger.Info("Snapshot saved", zap.String("path", path))
}

func (s *LandingState) Exit() {
	s.unmount()
	s.trail.Unmount()
	s.app.Logger.Debug("Landing unmounted")
}

// Magnet возвращает магнитный движок страницы.
func (s *LandingState) Magnet() *magnetic.Engine { return s.magnet }

// Trail возвращает эмиттер следа.
func (s *LandingState) Trail() *trail.Emitter { return s.trail }

// Follower возвращает курсор-спутник.
func (s *LandingState) Follower() *pointer.Follower { return s.follower }

// Toggle возвращает переключатель темы.
func (s *LandingState) Toggle() *ui.ThemeToggle { return s.toggle }

// Scroll возвращает трекер прокрутки.
func (s *LandingState) Scroll() *scroll.Tracker { return s.scroll }

// Title возвращает печатающую машинку заголовка.
func (s *LandingState) Title() *typewriter.Typewriter { return s.title }

// Page возвращает текущую разметку.
func (s *LandingState) Page() *ui.Page { return s.page }

// Mounted сообщает, смонтирована ли страница.
func (s *LandingState) Mounted() bool { return s.mounted }
