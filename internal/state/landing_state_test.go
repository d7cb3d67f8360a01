package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-landing/internal/app"
	"go-landing/internal/config"
	"go-landing/internal/defs"
	"go-landing/internal/magnetic"
	"go-landing/internal/theme"
	"go-landing/internal/ui"
)

func mountLanding(t *testing.T) (*StateMachine, *LandingState, *fakeInput, *app.Landing) {
	t.Helper()
	l := newApp(t, app.Options{})
	in := &fakeInput{x: -1, y: -1}
	s, err := NewLandingState(l, in)
	require.NoError(t, err)
	sm := NewStateMachine()
	sm.SetState(s)
	t.Cleanup(sm.Close)
	return sm, s, in, l
}

func TestLandingMountsEveryComponent(t *testing.T) {
	_, s, _, l := mountLanding(t)
	require.True(t, s.Mounted())

	feed := l.Feed
	buttons := len(s.Page().Buttons())
	assert.Equal(t, 4+len(feed.Projects)+len(feed.Contacts), buttons)
	assert.Equal(t, buttons+1, s.Magnet().Len(), "page buttons plus the theme toggle")
	assert.Equal(t, ui.SectionHome, s.Scroll().Active())
	assert.Zero(t, s.Title().Revealed())
}

func TestLandingPointerFeedsTrailOnce(t *testing.T) {
	sm, s, in, _ := mountLanding(t)

	in.x, in.y = 300, 300
	sm.Update(0.016)
	assert.Equal(t, 1, s.Trail().Len())

	sm.Update(0.016)
	assert.Equal(t, 1, s.Trail().Len(), "no new particle without movement")

	in.x = 301
	sm.Update(0.016)
	assert.Equal(t, 2, s.Trail().Len())
}

func TestLandingPointerLeaveClearsTransforms(t *testing.T) {
	sm, s, in, _ := mountLanding(t)
	nav := s.Page().Buttons()[0]
	cx, cy := nav.Bounds().Center()

	in.x, in.y = int(cx)+5, int(cy)
	sm.Update(0.016)
	tr, ok := s.Magnet().Transform(nav)
	require.True(t, ok)
	assert.False(t, tr.IsIdentity())

	in.x, in.y = -1, -1
	sm.Update(0.016)
	assert.Equal(t, magnetic.Identity, nav.Transform())
}

func TestLandingNavClickScrollsToSection(t *testing.T) {
	sm, s, in, _ := mountLanding(t)
	projects := s.Page().Buttons()[2]
	cx, cy := projects.Bounds().Center()

	in.x, in.y, in.clicked = int(cx), int(cy), true
	sm.Update(0.016)
	in.reset()

	var top float64
	for _, sec := range s.Page().Sections() {
		if sec.ID == ui.SectionProjects {
			top = sec.Top
		}
	}
	assert.Equal(t, top, s.Scroll().Target())
	for i := 0; i < 10*config.TPS; i++ {
		sm.Update(1.0 / config.TPS)
	}
	assert.Equal(t, ui.SectionProjects, s.Scroll().Active())
}

func TestLandingWheelAndKeys(t *testing.T) {
	sm, s, in, l := mountLanding(t)

	in.wheel = -1
	sm.Update(0.016)
	in.reset()
	assert.Equal(t, config.ScrollStep, s.Scroll().Target())

	in.keys = map[ebiten.Key]bool{ebiten.KeyHome: true}
	sm.Update(0.016)
	in.reset()
	assert.Zero(t, s.Scroll().Target())

	in.keys = map[ebiten.Key]bool{ebiten.KeyT: true}
	sm.Update(0.016)
	in.reset()
	assert.Equal(t, theme.Light, l.Theme)
}

func TestLandingTypewriterReveals(t *testing.T) {
	sm, s, _, _ := mountLanding(t)
	sm.Update(1.0)
	assert.Equal(t, 12, s.Title().Revealed())
}

func TestLandingReloadsFeed(t *testing.T) {
	sm, s, _, l := mountLanding(t)
	updates := make(chan defs.Update, 1)
	l.WatchFeed(updates)

	feed := defs.DefaultFeed()
	feed.Title = "Reloaded"
	feed.Contacts = nil
	updates <- defs.Update{Feed: feed}
	sm.Update(0.016)

	assert.Equal(t, "Reloaded", s.Title().Full())
	assert.Zero(t, s.Title().Revealed())
	assert.Equal(t, 4+len(feed.Projects)+1, s.Magnet().Len())
}

func TestLandingExitTearsDown(t *testing.T) {
	sm, s, in, l := mountLanding(t)
	in.x, in.y = 200, 200
	sm.Update(0.016)
	require.NotZero(t, l.Scheduler.Pending())

	sm.SetState(nil)
	assert.False(t, s.Mounted())
	assert.Zero(t, l.Scheduler.Pending())
	assert.Zero(t, s.Magnet().Len())
	assert.Zero(t, s.Trail().Len())
	for _, b := range s.Page().Buttons() {
		assert.Equal(t, magnetic.Identity, b.Transform())
	}
}

func TestLandingScrollRefreshesMagneticUnderStillPointer(t *testing.T) {
	sm, s, in, _ := mountLanding(t)
	link := s.Page().Buttons()[4]
	cx, _ := link.Rect.Center()
	screenY := 400.0

	in.x, in.y = int(cx), int(screenY+link.Rect.H/2)
	sm.Update(0.016)
	require.Equal(t, magnetic.Identity, link.Transform(), "link is below the fold")

	s.Scroll().ScrollTo(link.Rect.Y - screenY)
	for i := 0; i < 10*config.TPS; i++ {
		sm.Update(1.0 / config.TPS)
	}
	assert.Greater(t, link.Transform().Scale, 1.0, "link scrolled under the pointer")

	s.Scroll().ScrollTo(0)
	for i := 0; i < 10*config.TPS; i++ {
		sm.Update(1.0 / config.TPS)
	}
	assert.Equal(t, magnetic.Identity, link.Transform(), "link scrolled away from the pointer")
}

func TestLandingThemeToggleHover(t *testing.T) {
	sm, s, in, _ := mountLanding(t)
	cx, cy := s.Toggle().Bounds().Center()

	in.x, in.y = int(cx), int(cy)
	sm.Update(0.016)
	assert.True(t, s.Toggle().Hovered())

	in.x, in.y = 600, 400
	sm.Update(0.016)
	assert.False(t, s.Toggle().Hovered())
}

func TestLandingFollowerTracksPointer(t *testing.T) {
	sm, s, in, _ := mountLanding(t)
	sm.Update(0.016)
	_, _, ok := s.Follower().Position()
	assert.False(t, ok)

	in.x, in.y = 500, 300
	for i := 0; i < 3*config.TPS; i++ {
		sm.Update(1.0 / config.TPS)
	}
	x, y, ok := s.Follower().Position()
	require.True(t, ok)
	assert.InDelta(t, 500, x, 0.5)
	assert.InDelta(t, 300, y, 0.5)
}

func TestLandingSkillBarsStartWhenShown(t *testing.T) {
	sm, s, _, l := mountLanding(t)
	sm.Update(0.016)
	assert.False(t, s.Page().SkillBars().Shown())

	require.True(t, s.Scroll().ScrollToSection(ui.SectionSkills))
	for i := 0; i < 10*config.TPS; i++ {
		sm.Update(1.0 / config.TPS)
	}
	bars := s.Page().SkillBars()
	assert.True(t, bars.Shown())
	assert.Equal(t, 1.0, bars.Fraction(0, l.Scheduler.Now()))
}
