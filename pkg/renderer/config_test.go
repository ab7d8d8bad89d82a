package renderer

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

func TestDefaultCameraConfig(t *testing.T) {
	config := DefaultCameraConfig()

	assert.Equal(t, 1.0, config.AspectRatio)
	assert.Equal(t, 100, config.ImageWidth)
	assert.Equal(t, 10, config.SamplesPerPixel)
	assert.Equal(t, 10, config.MaxDepth)
	assert.Equal(t, 90.0, config.VFov)
	assert.Equal(t, core.NewVec3(0, 0, 0), config.LookFrom)
	assert.Equal(t, core.NewVec3(0, 0, -1), config.LookAt)
	assert.Equal(t, core.NewVec3(0, 1, 0), config.VUp)
	assert.Equal(t, 0.0, config.DefocusAngle)
	assert.Equal(t, 10.0, config.FocusDist)
	assert.Equal(t, runtime.NumCPU(), config.Threads)
	assert.Equal(t, core.NewColor(0.7, 0.8, 1.0), config.Background)
	assert.Equal(t, int64(42), config.Seed)
	assert.True(t, config.LightSampling)
}

func TestCameraBuilder_SetsEveryOption(t *testing.T) {
	config := NewCameraBuilder().
		AspectRatio(2).
		ImageWidth(64).
		SamplesPerPixel(9).
		MaxDepth(4).
		VFov(30).
		LookFrom(core.NewVec3(1, 2, 3)).
		LookAt(core.NewVec3(4, 5, 6)).
		VUp(core.NewVec3(0, 0, 1)).
		DefocusAngle(0.5).
		FocusDist(7).
		Threads(3).
		Background(core.NewColor(0.1, 0.2, 0.3)).
		Seed(99).
		LightSampling(false).
		Config()

	assert.Equal(t, CameraConfig{
		AspectRatio:     2,
		ImageWidth:      64,
		SamplesPerPixel: 9,
		MaxDepth:        4,
		VFov:            30,
		LookFrom:        core.NewVec3(1, 2, 3),
		LookAt:          core.NewVec3(4, 5, 6),
		VUp:             core.NewVec3(0, 0, 1),
		DefocusAngle:    0.5,
		FocusDist:       7,
		Threads:         3,
		Background:      core.NewColor(0.1, 0.2, 0.3),
		Seed:            99,
		LightSampling:   false,
	}, config)
}

func TestCameraBuilder_ZeroThreadsMeansAuto(t *testing.T) {
	camera := NewCameraBuilder().Threads(0).Build()
	assert.Equal(t, runtime.NumCPU(), camera.Threads())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "camera.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCameraConfig_OverlaysBase(t *testing.T) {
	path := writeConfig(t, `
image_width = 320
samples_per_pixel = 64
look_from = [13.0, 2.0, 3.0]
background = [0.0, 0.0, 0.0]
light_sampling = false
`)

	base := DefaultCameraConfig()
	base.VFov = 20
	config, err := LoadCameraConfig(path, base)
	require.NoError(t, err)

	assert.Equal(t, 320, config.ImageWidth)
	assert.Equal(t, 64, config.SamplesPerPixel)
	assert.Equal(t, core.NewVec3(13, 2, 3), config.LookFrom)
	assert.Equal(t, core.Color{}, config.Background)
	assert.False(t, config.LightSampling)

	// Untouched keys keep the base values
	assert.Equal(t, 20.0, config.VFov)
	assert.Equal(t, base.LookAt, config.LookAt)
	assert.Equal(t, base.Seed, config.Seed)
}

func TestLoadCameraConfig_Errors(t *testing.T) {
	base := DefaultCameraConfig()

	_, err := LoadCameraConfig(filepath.Join(t.TempDir(), "missing.toml"), base)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadCameraConfig(writeConfig(t, "image_width = \"wide\"\n"), base)
	assert.Error(t, err)

	_, err = LoadCameraConfig(writeConfig(t, "focal_length = 3\n"), base)
	assert.Error(t, err, "unknown keys are rejected")

	config, err := LoadCameraConfig(writeConfig(t, "not toml at all ["), base)
	assert.Error(t, err)
	assert.Equal(t, base, config)
}

func TestMarshalCameraConfig_LoadsBack(t *testing.T) {
	original := NewCameraBuilder().
		ImageWidth(800).
		LookFrom(core.NewVec3(278, 278, -800)).
		Background(core.NewColor(0.25, 0.5, 1)).
		Config()

	data, err := MarshalCameraConfig(original)
	require.NoError(t, err)

	path := writeConfig(t, string(data))
	loaded, err := LoadCameraConfig(path, DefaultCameraConfig())
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}
