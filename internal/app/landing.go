// internal/app/landing.go
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"go-landing/internal/config"
	"go-landing/internal/defs"
	"go-landing/internal/event"
	"go-landing/internal/pointer"
	"go-landing/internal/snapshot"
	"go-landing/internal/theme"
	"go-landing/internal/timer"
	"go-landing/internal/utils"
	"go-landing/pkg/render"
)

// Options — пути и флаги запуска.
type Options struct {
	SettingsPath string
	ContentPath  string
	PrefsPath    string
	SnapshotDir  string
	Seed         int64
	Logger       *zap.Logger
	Opener       func(uri string) error // открывает внешнюю ссылку, nil — только лог
}

// Landing holds everything the states share: the virtual clock, the single
// pointer writer, settings, content and the theme preference.
type Landing struct {
	Logger      *zap.Logger
	Settings    config.Settings
	Scheduler   *timer.Scheduler
	Pointer     *pointer.Tracker
	Events      *event.Dispatcher
	Fonts       *render.Fonts
	Rng         *utils.PRNGService
	Feed        *defs.Feed
	Theme       theme.Theme
	SnapshotDir string

	themes *theme.Store
	opener func(uri string) error
	feeds  <-chan defs.Update
}

// New loads settings, content and the stored theme. Missing files fall back
// to defaults; a broken preference file is logged and ignored.
func New(opts Options) (*Landing, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	settings, err := config.LoadSettings(opts.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	feed := defs.DefaultFeed()
	if opts.ContentPath != "" {
		if feed, err = defs.LoadFeed(opts.ContentPath); err != nil {
			return nil, fmt.Errorf("failed to load content: %w", err)
		}
	}

	fonts, err := render.LoadFonts()
	if err != nil {
		return nil, err
	}

	l := &Landing{
		Logger:      logger,
		Settings:    settings,
		Scheduler:   timer.NewScheduler(),
		Pointer:     pointer.NewTracker(config.ScreenWidth, config.ScreenHeight),
		Events:      event.NewDispatcher(),
		Fonts:       fonts,
		Rng:         utils.NewPRNGService(opts.Seed),
		Feed:        feed,
		Theme:       theme.Dark,
		SnapshotDir: opts.SnapshotDir,
		opener:      opts.Opener,
	}
	if opts.PrefsPath != "" {
		l.themes = theme.NewStore(opts.PrefsPath)
		t, err := l.themes.Load()
		if err != nil {
			logger.Warn("Ignoring theme preference", zap.String("path", opts.PrefsPath), zap.Error(err))
		}
		l.Theme = t
	}

	listener := &eventLogger{logger: logger}
	for _, t := range []event.EventType{event.SplashFinished, event.ThemeChanged, event.FeedReloaded, event.SnapshotSaved} {
		l.Events.Subscribe(t, listener)
	}
	return l, nil
}

// Advance переводит кадровое время в секундах в виртуальное время таймеров.
func (l *Landing) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	l.Scheduler.Advance(time.Duration(dt * float64(time.Second)))
}

// Palette возвращает цвета текущей темы.
func (l *Landing) Palette() config.Palette {
	if l.Theme == theme.Light {
		return config.LightPalette
	}
	return config.DarkPalette
}

// ToggleTheme переключает тему и сохраняет её, если задан файл предпочтений.
// Ошибка записи не отменяет переключение.
func (l *Landing) ToggleTheme() theme.Theme {
	next := l.Theme.Toggled()
	if l.themes != nil {
		if _, err := l.themes.Toggle(l.Theme); err != nil {
			l.Logger.Error("Failed to persist theme", zap.Error(err))
		}
	}
	l.Theme = next
	l.Events.Dispatch(event.Event{Type: event.ThemeChanged, Data: next})
	return next
}

// WatchFeed подключает канал обновлений контента.
func (l *Landing) WatchFeed(updates <-chan defs.Update) {
	l.feeds = updates
}

// PollFeed забирает обновление контента без блокировки. Неудачная
// перезагрузка логируется, текущий контент остаётся.
func (l *Landing) PollFeed() bool {
	if l.feeds == nil {
		return false
	}
	select {
	case u := <-l.feeds:
		if u.Err != nil {
			l.Logger.Warn("Content reload failed", zap.Error(u.Err))
			return false
		}
		l.Feed = u.Feed
		l.Events.Dispatch(event.Event{Type: event.FeedReloaded, Data: u.Feed})
		return true
	default:
		return false
	}
}

// SaveSnapshot сохраняет кадр в формате WebP.
func (l *Landing) SaveSnapshot(pix []byte, width, height int, at time.Time) (string, error) {
	if l.SnapshotDir == "" {
		return "", fmt.Errorf("snapshot directory is not configured")
	}
	img, err := snapshot.FromRGBA(pix, width, height)
	if err != nil {
		return "", err
	}
	path, err := snapshot.Save(l.SnapshotDir, img, at)
	if err != nil {
		return "", err
	}
	l.Events.Dispatch(event.Event{Type: event.SnapshotSaved, Data: path})
	return path, nil
}

// OpenLink передаёт ссылку открывателю.
func (l *Landing) OpenLink(uri string) {
	l.Logger.Info("Opening link", zap.String("uri", uri))
	if l.opener == nil {
		return
	}
	if err := l.opener(uri); err != nil {
		l.Logger.Warn("Failed to open link", zap.String("uri", uri), zap.Error(err))
	}
}

type eventLogger struct {
	logger *zap.Logger
}

func (e *eventLogger) OnEvent(ev event.Event) {
	e.logger.Debug("Event", zap.String("type", string(ev.Type)), zap.Any("data", ev.Data))
}
