package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"runtime"

	"obj-rasterizer/internal/mathutil"
)

// DefaultMeshPath is rendered when no mesh argument is given.
const DefaultMeshPath = "obj/african_head.obj"

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	Output    string `json:"output"`
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"` // batch output extension, e.g. ".tga"

	// Render settings
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	LightDir   *[3]float64 `json:"light_dir"`
	RotateDeg  [3]float64  `json:"rotate_deg"`
	Background *[4]uint8   `json:"background"`
	Fit        bool        `json:"fit"`
	Wireframe  bool        `json:"wireframe"`
	Label      bool        `json:"label"`
	Workers    int         `json:"workers"`
	Jobs       int         `json:"jobs"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output    string
	OutputDir string
	Format    string
	Width     int
	Height    int
	Workers   int
	Jobs      int
	Fit       bool
	Wireframe bool
	Label     bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Jobs > 0 {
		c.Jobs = flags.Jobs
	}
	if flags.Fit {
		c.Fit = true
	}
	if flags.Wireframe {
		c.Wireframe = true
	}
	if flags.Label {
		c.Label = true
	}

	if c.Output == "" {
		c.Output = "output.tga"
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = ".tga"
	} else if c.Format[0] != '.' {
		c.Format = "." + c.Format
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.LightDir == nil {
		c.LightDir = &[3]float64{0, 0, -1}
	}
	if c.Background == nil {
		c.Background = &[4]uint8{0, 0, 0, 255}
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Jobs <= 0 {
		c.Jobs = runtime.NumCPU()
	}
}

// Validate reports settings that cannot produce an image. Call after Resolve.
func (c *Config) Validate() error {
	if c.LightDir != nil && *c.LightDir == [3]float64{} {
		return errors.New("config: light_dir must be non-zero")
	}
	return nil
}

// Light returns the unit light direction.
func (c *Config) Light() mathutil.Vec3 {
	return mathutil.Vec3(*c.LightDir).Normalize()
}

// Rotation returns the model orientation, or nil when no rotation is set.
func (c *Config) Rotation() *mathutil.Mat3 {
	if c.RotateDeg == [3]float64{} {
		return nil
	}
	m := mathutil.EulerXYZ(mathutil.Vec3(c.RotateDeg))
	return &m
}

// BackgroundColor returns the canvas clear color.
func (c *Config) BackgroundColor() color.NRGBA {
	b := *c.Background
	return color.NRGBA{b[0], b[1], b[2], b[3]}
}
