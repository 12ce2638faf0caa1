package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/philipparndt/objwire/pkg/obj"
	"github.com/philipparndt/objwire/pkg/render"
	"golang.org/x/image/draw"
)

// SnapshotOptions control an offscreen render
type SnapshotOptions struct {
	Width       int
	Height      int
	Supersample int // render at this multiple and scale down
	Render      render.Options
}

// DefaultSnapshotOptions renders 800x600 with 2x supersampling
func DefaultSnapshotOptions() SnapshotOptions {
	return SnapshotOptions{
		Width:       800,
		Height:      600,
		Supersample: 2,
		Render:      render.DefaultOptions(),
	}
}

// Snapshot renders one frame of the mesh through the dual-pass pipeline
func Snapshot(mesh *obj.Mesh, cam render.CameraConfig, rot render.RotationConfig, state render.FrameState, opts SnapshotOptions) (*image.RGBA, error) {
	ss := max(opts.Supersample, 1)

	dev, err := New(opts.Width*ss, opts.Height*ss)
	if err != nil {
		return nil, err
	}

	renderOpts := opts.Render
	if renderOpts.LineWidth <= 0 {
		renderOpts.LineWidth = render.DefaultLineWidth
	}
	renderOpts.LineWidth *= float32(ss)

	r, err := render.New(dev, mesh, renderOpts)
	if err != nil {
		return nil, err
	}
	defer r.Release()

	r.RenderFrame(cam, rot, state)

	src := dev.Image()
	if ss == 1 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// WritePNG encodes img to path
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}
