package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
	"github.com/df07/go-tiled-pathtracer/pkg/scene"
)

// renderOverrides holds command line values that replace scene camera settings when positive
type renderOverrides struct {
	width   int
	spp     int
	depth   int
	threads int
}

func main() {
	sceneType := flag.String("scene", "cornell", "Scene to render: "+strings.Join(scene.Names(), ", "))
	configPath := flag.String("config", "", "TOML file with camera overrides")
	output := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	width := flag.Int("width", 0, "Image width override")
	spp := flag.Int("spp", 0, "Samples per pixel override")
	depth := flag.Int("depth", 0, "Max bounce depth override")
	threads := flag.Int("threads", 0, "Worker count (0 = one per CPU)")
	seed := flag.Int64("seed", 42, "Seed for scene layout and sampling")
	texture := flag.String("texture", "", "Image used as the earth texture")
	mesh := flag.String("mesh", "", "PLY mesh for the mesh scene")
	dumpConfig := flag.Bool("dump-config", false, "Print the resolved camera config as TOML and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Tiled Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	logger := renderer.NewDefaultLogger()
	opts := scene.Options{Seed: *seed, TexturePath: *texture, MeshPath: *mesh, Logger: logger}

	selectedScene, err := createScene(*sceneType, opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	config, err := resolveCameraConfig(selectedScene.Camera, *configPath, renderOverrides{
		width: *width, spp: *spp, depth: *depth, threads: *threads,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *dumpConfig {
		data, err := renderer.MarshalCameraConfig(config)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(data))
		return
	}

	filename := *output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", *sceneType, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := render(selectedScene, config, filename, logger); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// createScene builds a registered scene by name
func createScene(sceneType string, opts scene.Options) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given, choose one of: %s", strings.Join(scene.Names(), ", "))
	}
	return scene.New(sceneType, opts)
}

// resolveCameraConfig layers the TOML file and then the flag overrides onto the scene's camera
func resolveCameraConfig(base renderer.CameraConfig, configPath string, overrides renderOverrides) (renderer.CameraConfig, error) {
	config := base
	if configPath != "" {
		loaded, err := renderer.LoadCameraConfig(configPath, base)
		if err != nil {
			return base, err
		}
		config = loaded
	}

	if overrides.width > 0 {
		config.ImageWidth = overrides.width
	}
	if overrides.spp > 0 {
		config.SamplesPerPixel = overrides.spp
	}
	if overrides.depth > 0 {
		config.MaxDepth = overrides.depth
	}
	if overrides.threads > 0 {
		config.Threads = overrides.threads
	}
	return config, nil
}

// render traces the scene and writes it as a PNG
func render(s *scene.Scene, config renderer.CameraConfig, filename string, logger core.Logger) error {
	logger.Printf("Rendering scene %q (%d objects, %d lights)\n", s.Name, s.World.Len(), s.World.LightCount())

	camera := renderer.NewCameraBuilderFromConfig(config).Logger(logger).Build()
	pixels, stats := camera.RenderWithStats(s.World)
	logger.Printf("%s\n", stats)

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, renderer.ToImage(camera.Width(), camera.Height(), pixels)); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}
