package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/huessenbergnetz/hbnsc/internal/icons"
	"github.com/huessenbergnetz/hbnsc/internal/platform"
)

// screenFlags describe the display an icon is resolved for.
type screenFlags struct {
	dir            string
	scales         []float64
	density        float64
	large          bool
	largeAvailable bool
}

func (f *screenFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.dir, "dir", "d", "", "Icon set root (default: platform icons directory)")
	cmd.Flags().Float64SliceVar(&f.scales, "scales", icons.DefaultScales, "Scale factors the icon set provides")
	cmd.Flags().Float64Var(&f.density, "density", 1.0, "Pixel ratio of the display")
	cmd.Flags().BoolVar(&f.large, "large", false, "Display is in a large size category")
	cmd.Flags().BoolVar(&f.largeAvailable, "large-available", false, "Icon set has -large variants")
}

func (f *screenFlags) provider(logger *zerolog.Logger) (*icons.Provider, error) {
	if f.density <= 0 {
		return nil, fmt.Errorf("density must be positive, got %v", f.density)
	}
	return icons.New(icons.Options{
		Scales:         f.scales,
		Dir:            f.dir,
		LargeAvailable: f.largeAvailable,
		PixelRatio:     f.density,
		Large:          f.large,
		DefaultDir:     platform.DefaultIconsDir(),
		Logger:         logger,
	}), nil
}

func newScaleCmd(logger *zerolog.Logger) *cobra.Command {
	var screen screenFlags

	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Print the scale factor and directory selected for a display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := screen.provider(logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scale: %s\n", icons.FormatScale(p.Scale()))
			fmt.Fprintf(cmd.OutOrStdout(), "dir:   %s\n", p.Dir())
			return nil
		},
	}
	screen.register(cmd)
	return cmd
}

func newIconCmd(logger *zerolog.Logger) *cobra.Command {
	var (
		screen screenFlags
		size   string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "icon <id>",
		Short: "Resolve an icon id like \"gear?#ff0000\" and write it as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := screen.provider(logger)
			if err != nil {
				return err
			}
			requested, err := ParseSize(size)
			if err != nil {
				return err
			}

			img, natural := p.Request(args[0], requested)
			if img == nil {
				name, _, _ := icons.SplitID(args[0])
				return fmt.Errorf("icon not found: %s", p.Path(name))
			}

			if out == "" {
				name, _, _ := icons.SplitID(args[0])
				out = filepath.Base(name) + ".png"
			}
			if err := writePNG(out, img); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d (natural %dx%d)\n",
				out, img.Bounds().Dx(), img.Bounds().Dy(), natural.X, natural.Y)
			return nil
		},
	}
	screen.register(cmd)
	cmd.Flags().StringVarP(&size, "size", "s", "", "Requested size as WIDTHxHEIGHT")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: <name>.png)")
	return cmd
}

// ParseSize parses "WIDTHxHEIGHT". An empty string means natural size.
func ParseSize(s string) (image.Point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return image.Point{}, nil
	}
	w, h, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return image.Point{}, fmt.Errorf("invalid size %q, expected WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width < 0 {
		return image.Point{}, fmt.Errorf("invalid width in size %q", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height < 0 {
		return image.Point{}, fmt.Errorf("invalid height in size %q", s)
	}
	return image.Point{X: width, Y: height}, nil
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
