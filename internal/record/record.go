// Package record captures simulation frames into an MJPEG AVI file.
package record

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"fire-ca/internal/core"
	"fire-ca/internal/render"

	"github.com/charmbracelet/log"
	"github.com/icza/mjpeg"
)

// Options controls the encoded video.
type Options struct {
	Scale   int
	FPS     int
	Quality int
	// MaxFrames caps the recording; zero means until the sim finishes.
	MaxFrames int
	// HoldFrames repeats the final frame so the end state stays visible.
	HoldFrames int
}

// DefaultOptions returns the standard recording settings.
func DefaultOptions() Options {
	return Options{Scale: 4, FPS: 30, Quality: 85, MaxFrames: 5000, HoldFrames: 30}
}

// FrameSink receives encoded JPEG frames.
type FrameSink interface {
	AddFrame(jpegData []byte) error
	Close() error
}

// Recorder turns palette-indexed cell buffers into JPEG frames.
type Recorder struct {
	sink    FrameSink
	w, h    int
	palette []color.RGBA
	opts    Options
	buf     bytes.Buffer
	frames  int
}

// Create opens an AVI file sized for the sim at opts.Scale.
func Create(path string, size core.Size, palette []color.RGBA, opts Options) (*Recorder, error) {
	opts = opts.normalized()
	aw, err := mjpeg.New(path, int32(size.W*opts.Scale), int32(size.H*opts.Scale), int32(opts.FPS))
	if err != nil {
		return nil, fmt.Errorf("create avi %s: %w", path, err)
	}
	return NewRecorder(aw, size, palette, opts), nil
}

// NewRecorder wraps an existing sink.
func NewRecorder(sink FrameSink, size core.Size, palette []color.RGBA, opts Options) *Recorder {
	return &Recorder{sink: sink, w: size.W, h: size.H, palette: palette, opts: opts.normalized()}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	if o.FPS <= 0 {
		o.FPS = def.FPS
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = def.Quality
	}
	if o.HoldFrames < 0 {
		o.HoldFrames = 0
	}
	return o
}

// Frames reports how many frames were written.
func (r *Recorder) Frames() int { return r.frames }

// AddFrame encodes one cell buffer.
func (r *Recorder) AddFrame(cells []uint8) error {
	img := render.PaletteImage(cells, r.w, r.h, r.palette, r.opts.Scale)
	return r.addImage(img)
}

func (r *Recorder) addImage(img image.Image) error {
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &jpeg.Options{Quality: r.opts.Quality}); err != nil {
		return fmt.Errorf("encode frame %d: %w", r.frames, err)
	}
	if err := r.sink.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("add frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Close finalises the underlying file.
func (r *Recorder) Close() error {
	if err := r.sink.Close(); err != nil {
		return fmt.Errorf("close recording: %w", err)
	}
	return nil
}

// Run records sim from its current state until it finishes or MaxFrames is
// reached, then holds the last frame. The sink is not closed.
func (r *Recorder) Run(sim core.Sim, logger *log.Logger) error {
	if err := r.AddFrame(sim.Cells()); err != nil {
		return err
	}
	finished := false
	for r.opts.MaxFrames <= 0 || r.frames < r.opts.MaxFrames {
		finished = sim.Step()
		if err := r.AddFrame(sim.Cells()); err != nil {
			return err
		}
		if finished {
			break
		}
	}
	for i := 0; i < r.opts.HoldFrames; i++ {
		if err := r.AddFrame(sim.Cells()); err != nil {
			return err
		}
	}
	if logger != nil {
		logger.Info("recording complete", "sim", sim.Name(), "frames", r.frames, "finished", finished)
	}
	return nil
}
