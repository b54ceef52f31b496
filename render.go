package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dial-sweep.klederson.com/internal/config"
	"dial-sweep.klederson.com/internal/dial"
	"dial-sweep.klederson.com/internal/raster"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// frameOptions selects which moment of the animation gets rendered.
type frameOptions struct {
	Out      string
	Width    int
	Height   int
	Advances int
	Progress float64
	Frames   int
}

func (o frameOptions) validate() error {
	switch {
	case o.Out == "":
		return fmt.Errorf("--out is required")
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("size must be positive, got %dx%d", o.Width, o.Height)
	case o.Advances < 0:
		return fmt.Errorf("--advances must be >= 0, got %d", o.Advances)
	case o.Progress < 0 || o.Progress >= 1:
		return fmt.Errorf("--progress must be in [0, 1), got %g", o.Progress)
	case o.Frames < 1:
		return fmt.Errorf("--frames must be >= 1, got %d", o.Frames)
	}
	return nil
}

type encoder func(w io.Writer, cmds []dial.Command, width, height int) error

func newRenderCmd() *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Write dial frames to image files",
	}
	renderCmd.AddCommand(
		newFormatCmd("png", "Rasterize frames as PNG", raster.WritePNG),
		newFormatCmd("svg", "Write frames as SVG markup", raster.WriteSVG),
	)
	return renderCmd
}

func newFormatCmd(name, short string, enc encoder) *cobra.Command {
	opts := frameOptions{}
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := newLogger(settings.Log, false)
			if err != nil {
				return err
			}
			defer closeLog()

			cfg, err := settings.DialConfig()
			if err != nil {
				return err
			}
			return renderFrames(cfg, settings.Render.Diagnostics, opts, enc, log)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Out, "out", "o", "", "Output file; numbered when --frames > 1")
	f.IntVar(&opts.Width, "width", config.RenderWidth, "Image width in pixels")
	f.IntVar(&opts.Height, "height", config.RenderHeight, "Image height in pixels")
	f.IntVar(&opts.Advances, "advances", 0, "Completed sweeps before the frame")
	f.Float64Var(&opts.Progress, "progress", 0, "Progress of one further sweep, in [0, 1)")
	f.IntVar(&opts.Frames, "frames", 1, "Write this many frames across one sweep")
	return cmd
}

// renderFrames replays the requested advances and writes either one frame
// or Frames evenly spaced frames of the next sweep, endpoints included.
func renderFrames(cfg dial.Config, diagnostics bool, opts frameOptions, enc encoder, log logrus.FieldLogger) error {
	if err := opts.validate(); err != nil {
		return err
	}

	w := dial.New(cfg, dial.WithLogger(log), dial.WithDiagnostics(diagnostics))
	w.OnResize(float64(opts.Width), float64(opts.Height))
	for i := 0; i < opts.Advances; i++ {
		w.OnAdvance()
		w.OnTick(float64(cfg.DurationMs))
	}

	if opts.Frames == 1 {
		if opts.Progress > 0 {
			w.OnAdvance()
			w.OnTick(opts.Progress * float64(cfg.DurationMs))
		}
		return writeFrame(opts.Out, w.BuildDrawCommands(), opts, enc, log)
	}

	w.OnAdvance()
	last := opts.Frames - 1
	step := float64(cfg.DurationMs) / float64(last)
	for i := 0; i <= last; i++ {
		switch {
		case i == last:
			// summed steps can fall short of 1; the final frame must commit
			w.OnTick(float64(cfg.DurationMs))
		case i > 0:
			w.OnTick(step)
		}
		if err := writeFrame(frameName(opts.Out, i, opts.Frames), w.BuildDrawCommands(), opts, enc, log); err != nil {
			return err
		}
	}
	return nil
}

func writeFrame(path string, cmds []dial.Command, opts frameOptions, enc encoder, log logrus.FieldLogger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := enc(f, cmds, opts.Width, opts.Height); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.WithFields(logrus.Fields{"file": path, "commands": len(cmds)}).Info("frame written")
	return nil
}

// frameName numbers path for frame i of n: dial.png -> dial-003.png.
func frameName(path string, i, n int) string {
	if n <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(path, ext), i, ext)
}
