// cmd/field_viewer_raylib/main.go
package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"go-landing/internal/config"
	"go-landing/internal/field"
	"go-landing/internal/utils"
)

// ColorLerp выполняет линейную интерполяцию между двумя цветами
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

func main() {
	var settingsPath string
	var seed int64

	cmd := &cobra.Command{
		Use:   "field_viewer_raylib",
		Short: "Standalone 3D viewer of the landing point field",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(settingsPath)
			if err != nil {
				return err
			}
			cloud, err := field.Generate(settings.Field.Count, settings.Field.Radius, utils.NewPRNGService(seed))
			if err != nil {
				return err
			}
			run(cloud, settings.FieldConfig().Rates)
			return nil
		},
	}
	cmd.Flags().StringVar(&settingsPath, "settings", "", "path to settings YAML")
	cmd.Flags().Int64Var(&seed, "seed", 0, "point cloud seed (0 = time based)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cloud *field.Cloud, rates field.Rates) {
	// --- Инициализация ---
	const screenWidth = 1280
	const screenHeight = 720
	pal := config.DarkPalette
	background := rl.NewColor(pal.Background.R, pal.Background.G, pal.Background.B, 255)
	near := rl.NewColor(pal.Point.R, pal.Point.G, pal.Point.B, 255)
	far := ColorLerp(background, near, 0.25)

	rl.InitWindow(screenWidth, screenHeight, "Raylib Field Viewer | Mouse - Steer, Wheel - Zoom, Space - Pause")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	// --- Настройка 3D камеры ---
	camera := rl.Camera3D{}
	camera.Position = rl.NewVector3(0, 0, config.CameraDistance)
	camera.Target = rl.NewVector3(0, 0, 0)
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Fovy = 45
	camera.Projection = rl.CameraPerspective

	radius := float32(cloud.Radius())
	var orient field.Orientation
	paused := false

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			d := utils.Clamp(float64(camera.Position.Z)-float64(wheel)*0.2, 1.5*float64(radius), 12)
			camera.Position.Z = float32(d)
		}

		// Нормализованное смещение указателя, как у основной страницы
		m := rl.GetMousePosition()
		nx := utils.Clamp(2*float64(m.X)/screenWidth-1, -1, 1)
		ny := utils.Clamp(-(2*float64(m.Y)/screenHeight - 1), -1, 1)
		if !paused {
			orient = field.Advance(orient, float64(rl.GetFrameTime()), nx, ny, rates)
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(background)
		rl.BeginMode3D(camera)
		for i := 0; i < cloud.Len(); i++ {
			p := field.Rotate(cloud.At(i), orient)
			// Ближние точки ярче
			t := float32(utils.Clamp((p.Z+float64(radius))/(2*float64(radius)), 0, 1))
			rl.DrawPoint3D(rl.NewVector3(float32(p.X), float32(p.Y), float32(p.Z)), ColorLerp(far, near, t))
		}
		rl.EndMode3D()

		rl.DrawText(fmt.Sprintf("points %d  yaw %.3f  pitch %.3f", cloud.Len(), orient.Yaw, orient.Pitch), 10, 10, 20, rl.LightGray)
		rl.DrawFPS(screenWidth-90, 10)
		rl.EndDrawing()
	}
}
