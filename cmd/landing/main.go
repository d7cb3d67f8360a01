// cmd/landing/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-landing/internal/app"
	"go-landing/internal/config"
	"go-landing/internal/defs"
	"go-landing/internal/logging"
	"go-landing/internal/state"
)

var (
	// Флаги запуска
	verbose      bool
	skipSplash   bool
	seed         int64
	settingsPath string
	contentPath  string
	prefsPath    string
	snapshotDir  string
	pprofAddr    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "landing",
	Short: "Animated landing page with a point field, magnetic buttons and a locale splash",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVar(&skipSplash, "skip-splash", false, "start on the landing page")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the field and trail (0 = time based)")
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "path to settings YAML")
	rootCmd.Flags().StringVar(&contentPath, "content", "", "path to content feed JSON, reloaded on change")
	rootCmd.Flags().StringVar(&prefsPath, "prefs", defaultPrefsPath(), "path to the theme preference file")
	rootCmd.Flags().StringVar(&snapshotDir, "snapshots", "snapshots", "directory for F12 frame snapshots")
	rootCmd.Flags().StringVar(&pprofAddr, "pprof", "", "serve pprof on this address, e.g. localhost:6060")
}

// AppGame — адаптер машины состояний к ebiten.Game.
type AppGame struct {
	ctx            context.Context
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func run(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if pprofAddr != "" {
		go func() {
			logger.Info("pprof listening", zap.String("addr", pprofAddr))
			if err := http.ListenAndServe(pprofAddr, nil); err != nil {
				logger.Warn("pprof stopped", zap.Error(err))
			}
		}()
	}

	l, err := app.New(app.Options{
		SettingsPath: settingsPath,
		ContentPath:  contentPath,
		PrefsPath:    prefsPath,
		SnapshotDir:  snapshotDir,
		Seed:         seed,
		Logger:       logger,
		Opener:       openBrowser,
	})
	if err != nil {
		return err
	}

	if contentPath != "" {
		w, err := defs.NewWatcher(contentPath, config.FeedDebounceMs*time.Millisecond)
		if err != nil {
			logger.Warn("Content hot reload disabled", zap.Error(err))
		} else {
			l.WatchFeed(w.Updates())
			go func() {
				if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Warn("Content watcher stopped", zap.Error(err))
				}
			}()
		}
	}

	sm := state.NewStateMachine()
	input := state.EbitenInput{}
	landing, err := state.NewLandingState(l, input)
	if err != nil {
		return fmt.Errorf("failed to build landing page: %w", err)
	}
	if skipSplash {
		sm.SetState(landing)
	} else {
		splash, err := state.NewSplashState(sm, l, input, landing)
		if err != nil {
			return fmt.Errorf("failed to build splash: %w", err)
		}
		sm.SetState(splash)
	}
	defer sm.Close()

	logger.Info("Starting",
		zap.Int("points", l.Settings.Field.Count),
		zap.String("theme", string(l.Theme)),
		zap.Bool("splash", !skipSplash))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	game := &AppGame{ctx: ctx, stateMachine: sm, lastUpdateTime: time.Now()}
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("render loop: %w", err)
	}
	return nil
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "landing-prefs.yaml"
	}
	return filepath.Join(dir, "go-landing", "prefs.yaml")
}

func openBrowser(uri string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", uri)
	default:
		cmd = exec.Command("xdg-open", uri)
	}
	return cmd.Start()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
