package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/philipparndt/objwire/pkg/obj"
	"github.com/philipparndt/objwire/pkg/render"
)

// ErrInvalidOptions is returned when options cannot drive a window
var ErrInvalidOptions = errors.New("invalid options")

// Options configure the viewer window, camera and rotation
type Options struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Title       string `toml:"title"`
	Interactive bool   `toml:"interactive"` // keyboard driven; otherwise spins about axis 1
	Fit         bool   `toml:"fit"`         // frame the mesh bounding box instead of the fixed camera
	Watch       bool   `toml:"watch"`       // reload when the geometry or material file changes

	MaterialFile string `toml:"material_file"`
	MaterialName string `toml:"material_name"`

	LineWidth  float32    `toml:"line_width"`
	Background [3]float32 `toml:"background"`

	Camera   render.CameraConfig   `toml:"camera"`
	Rotation render.RotationConfig `toml:"rotation"`
}

// DefaultOptions returns an 800x600 interactive window with the default
// camera and rotation
func DefaultOptions() Options {
	bg := render.DefaultBackground
	return Options{
		Width:        800,
		Height:       600,
		Title:        "objwire",
		Interactive:  true,
		MaterialName: obj.DefaultMaterialName,
		LineWidth:    render.DefaultLineWidth,
		Background:   [3]float32{bg.R, bg.G, bg.B},
		Camera:       render.DefaultCamera(),
		Rotation:     render.DefaultRotation(),
	}
}

// LoadOptions reads a TOML file over the defaults. Keys missing from the
// file keep their default value; unknown keys are an error.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	file, err := os.Open(path)
	if err != nil {
		return opts, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(&opts); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return opts, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return opts, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks everything Run needs before a window is opened
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.LineWidth <= 0 {
		return fmt.Errorf("%w: line width %v", ErrInvalidOptions, o.LineWidth)
	}
	for _, c := range o.Background {
		if c < 0 || c > 1 {
			return fmt.Errorf("%w: background %v outside [0,1]", ErrInvalidOptions, o.Background)
		}
	}
	if o.Rotation.Speed < 0 {
		return fmt.Errorf("%w: negative rotation speed %v", ErrInvalidOptions, o.Rotation.Speed)
	}
	if o.Fit {
		// only the field of view survives framing
		cam := render.DefaultCamera()
		cam.FieldOfViewDegrees = o.Camera.FieldOfViewDegrees
		return cam.Validate()
	}
	return o.Camera.Validate()
}

// RenderOptions converts the window settings into renderer options
func (o Options) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.Background = obj.Color{R: o.Background[0], G: o.Background[1], B: o.Background[2]}
	opts.LineWidth = o.LineWidth
	return opts
}
