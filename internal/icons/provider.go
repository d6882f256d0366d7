package icons

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
)

// IconsDir is the install location of the bundled icon set.
// It is set during build via -ldflags "-X github.com/huessenbergnetz/hbnsc/internal/icons.IconsDir=/usr/share/hbnsc/icons"
var IconsDir = ""

// DefaultName is the name the bundled icon set is registered under.
const DefaultName = "hbnsc"

// Options configure a Provider. PixelRatio and Large describe the screen and
// are supplied by the caller.
type Options struct {
	Scales         ScaleSet
	Dir            string // icon set root; blank selects DefaultDir
	LargeAvailable bool   // the set has "-large" variants
	PixelRatio     float64
	Large          bool // the screen belongs to a large size category
	DefaultDir     string
	Logger         *zerolog.Logger
}

// Provider serves icons from the directory chosen for one screen.
type Provider struct {
	dir   string
	scale float64
	large bool
	log   zerolog.Logger
}

// New picks the icon directory for the described screen.
func New(opts Options) *Provider {
	base := strings.TrimSpace(opts.Dir)
	if base == "" {
		base = opts.DefaultDir
	}

	large := opts.LargeAvailable && opts.Large
	scale := NearestScale(opts.Scales, opts.PixelRatio)

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	p := &Provider{
		dir:   ResolveDirectory(base, scale, large),
		scale: scale,
		large: large,
		log:   logger,
	}

	p.log.Debug().
		Float64("pixel_ratio", opts.PixelRatio).
		Float64("scale", scale).
		Bool("large", large).
		Str("dir", p.dir).
		Msg("icon provider created")

	return p
}

// NewDefault creates the provider for the bundled icon set.
func NewDefault(pixelRatio float64, logger *zerolog.Logger) *Provider {
	return New(Options{
		Scales:     DefaultScales,
		PixelRatio: pixelRatio,
		DefaultDir: IconsDir,
		Logger:     logger,
	})
}

// Dir returns the resolved icon directory, always ending in a slash.
func (p *Provider) Dir() string {
	return p.dir
}

// Scale returns the selected scale factor.
func (p *Provider) Scale() float64 {
	return p.scale
}

// Large reports whether large screen variants are served.
func (p *Provider) Large() bool {
	return p.large
}

// Path returns the file an icon name maps to.
func (p *Provider) Path(name string) string {
	return p.dir + name + ".png"
}

// SplitID separates an icon id at the first '?' into name and color specification.
func SplitID(id string) (name, colorSpec string, hasColor bool) {
	name, colorSpec, hasColor = strings.Cut(id, "?")
	return name, colorSpec, hasColor
}

// Load decodes the PNG for name.
func (p *Provider) Load(name string) (image.Image, error) {
	path := p.Path(name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon %s: %w", path, err)
	}
	return img, nil
}

// Request returns the icon for id together with its natural size.
// A requested size with both sides positive scales the result. An icon that
// can not be loaded yields a nil image.
func (p *Provider) Request(id string, requested image.Point) (image.Image, image.Point) {
	name, colorSpec, hasColor := SplitID(id)

	p.log.Debug().Str("path", p.Path(name)).Msg("loading icon")

	img, err := p.Load(name)
	if err != nil {
		p.log.Debug().Err(err).Str("id", id).Msg("icon not found")
		return nil, image.Point{}
	}
	natural := img.Bounds().Size()

	if hasColor {
		if c, ok := ParseColor(colorSpec); ok {
			img = TintImage(img, c)
		} else {
			p.log.Debug().Str("color", colorSpec).Msg("ignoring invalid icon color")
		}
	}

	if requested.X > 0 && requested.Y > 0 && requested != natural {
		img = scaleImage(img, requested)
	}

	return img, natural
}

// Resource returns the icon for id encoded as a Fyne resource, or nil when it can not be loaded.
func (p *Provider) Resource(id string, requested image.Point) fyne.Resource {
	img, _ := p.Request(id, requested)
	if img == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		p.log.Warn().Err(err).Str("id", id).Msg("failed to encode icon")
		return nil
	}
	return fyne.NewStaticResource(ResourceName(id, requested), buf.Bytes())
}

// ResourceName derives a unique resource name from an id and size, as Fyne caches textures by name.
func ResourceName(id string, requested image.Point) string {
	name, colorSpec, hasColor := SplitID(id)
	var b strings.Builder
	b.WriteString(name)
	if hasColor {
		b.WriteByte('_')
		b.WriteString(strings.TrimPrefix(colorSpec, "#"))
	}
	if requested.X > 0 && requested.Y > 0 {
		fmt.Fprintf(&b, "_%dx%d", requested.X, requested.Y)
	}
	b.WriteString(".png")
	return b.String()
}

// scaleImage resizes with nearest neighbour sampling, ignoring the aspect ratio.
// 16-bit sources keep their depth.
func scaleImage(src image.Image, size image.Point) image.Image {
	rect := image.Rect(0, 0, size.X, size.Y)
	var dst draw.Image = image.NewNRGBA(rect)
	if isDeep(src) {
		dst = image.NewNRGBA64(rect)
	}
	draw.NearestNeighbor.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)
	return dst
}
