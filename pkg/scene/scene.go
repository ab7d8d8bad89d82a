package scene

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
)

// Scene is a built world together with the camera it is meant to be viewed from
type Scene struct {
	Name   string
	World  *World
	Camera renderer.CameraConfig
}

// Options parameterize scene construction
type Options struct {
	Seed        int64       // Seeds random layouts, noise textures and the camera
	TexturePath string      // Earth texture image; empty uses a UV debug texture
	MeshPath    string      // PLY file for the mesh scene; empty uses a built-in octahedron
	Logger      core.Logger // Receives asset loading messages
}

// DefaultOptions returns options with seed 42 and no external assets
func DefaultOptions() Options {
	return Options{Seed: 42, Logger: core.NopLogger{}}
}

func (o Options) logger() core.Logger {
	if o.Logger == nil {
		return core.NopLogger{}
	}
	return o.Logger
}

// Constructor builds a named scene
type Constructor func(opts Options) (*Scene, error)

func infallible(build func(opts Options) *Scene) Constructor {
	return func(opts Options) (*Scene, error) {
		return build(opts), nil
	}
}

var registry = map[string]Constructor{
	"simple":            infallible(NewSimpleScene),
	"bouncing-spheres":  infallible(NewBouncingSpheresScene),
	"checkered-spheres": infallible(NewCheckeredSpheresScene),
	"earth":             infallible(NewEarthScene),
	"perlin-spheres":    infallible(NewPerlinSpheresScene),
	"quads":             infallible(NewQuadsScene),
	"simple-light":      infallible(NewSimpleLightScene),
	"cornell":           infallible(NewCornellScene),
	"cornell-smoke":     infallible(NewCornellSmokeScene),
	"final":             infallible(NewFinalScene),
	"mesh":              NewMeshScene,
}

// Names lists the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene, with its world's BVH already built
func New(name string, opts Options) (*Scene, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	s, err := build(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
	}
	s.World.Build()
	return s, nil
}

func newScene(name string, camera renderer.CameraConfig) *Scene {
	return &Scene{Name: name, World: NewWorld(), Camera: camera}
}

func newRandom(opts Options) *rand.Rand {
	return rand.New(rand.NewSource(opts.Seed))
}

// wideCamera is the 16:9 depth-of-field view shared by the sphere scenes
func wideCamera(opts Options) renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 16.0 / 9.0
	config.ImageWidth = 800
	config.SamplesPerPixel = 100
	config.MaxDepth = 50
	config.VFov = 20
	config.LookFrom = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.VUp = core.NewVec3(0, 1, 0)
	config.DefocusAngle = 0.6
	config.FocusDist = 10
	config.Seed = opts.Seed
	return config
}

// cornellCamera looks into the 555-unit Cornell room through its open side
func cornellCamera(opts Options) renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 1
	config.ImageWidth = 300
	config.SamplesPerPixel = 600
	config.MaxDepth = 80
	config.Background = core.Color{}
	config.VFov = 40
	config.LookFrom = core.NewVec3(278, 278, -800)
	config.LookAt = core.NewVec3(278, 278, 0)
	config.VUp = core.NewVec3(0, 1, 0)
	config.DefocusAngle = 0
	config.Seed = opts.Seed
	return config
}
