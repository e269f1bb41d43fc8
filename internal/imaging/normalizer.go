package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder for image.Decode
	"image/png"
	"log/slog"

	"github.com/rwcarlsen/goexif/exif"
	xdraw "golang.org/x/image/draw"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/common"
)

// Minimum post-orientation resolution accepted for recognition.
const (
	MinWidth  = 500
	MinHeight = 300
)

// Config holds normalization bounds and behavior flags.
type Config struct {
	MaxWidth   int     // bound on normalized raster width; default 2048
	Contrast   float64 // linear contrast factor; default 1.1
	Brightness float64 // linear brightness factor; default 1.05
	Grayscale  bool    // convert to grayscale for grayscale-sensitive recognizers
}

// Result is the canonical raster produced for recognition and display. Text
// carries any plain text found on a PDF's first page, for classification
// tie-breaking; plain image uploads leave it empty.
type Result struct {
	PNG    []byte
	Width  int
	Height int
	Text   string
}

// Normalizer performs deterministic image/PDF preprocessing. It makes no
// external calls; identical input bytes yield identical output.
type Normalizer struct {
	cfg    Config
	logger *slog.Logger
}

func NewNormalizer(cfg Config, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxWidth <= 0 {
		cfg.MaxWidth = 2048
	}
	if cfg.Contrast <= 0 {
		cfg.Contrast = 1.1
	}
	if cfg.Brightness <= 0 {
		cfg.Brightness = 1.05
	}
	return &Normalizer{cfg: cfg, logger: logger}
}

// Normalize decodes data as the declared media type (PDFs use the first page
// only), corrects orientation, validates the minimum resolution, then applies
// grayscale/contrast/resize and re-encodes as PNG.
func (n *Normalizer) Normalize(data []byte, mediaType string) (*Result, error) {
	var (
		img  image.Image
		text string
		err  error
	)
	switch mediaType {
	case constants.MediaPDF:
		img, err = firstPageImage(data)
		if err != nil {
			return nil, err
		}
		text = firstPageText(data)
	case constants.MediaPNG, constants.MediaJPEG:
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %v: %w", mediaType, err, common.ErrUnsupportedFormat)
		}
		if mediaType == constants.MediaJPEG {
			img = applyEXIFOrientation(img, data)
		}
	default:
		return nil, fmt.Errorf("media type %q: %w", mediaType, common.ErrUnsupportedFormat)
	}

	b := img.Bounds()
	if b.Dx() < MinWidth || b.Dy() < MinHeight {
		n.logger.Warn("imaging.reject.too_small", "width", b.Dx(), "height", b.Dy())
		return nil, fmt.Errorf("resolution %dx%d below %dx%d: %w",
			b.Dx(), b.Dy(), MinWidth, MinHeight, common.ErrImageTooSmall)
	}

	if n.cfg.Grayscale {
		img = toGray(img)
	}
	img = enhance(img, n.cfg.Contrast, n.cfg.Brightness)
	img = resizeToWidth(img, n.cfg.MaxWidth)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode normalized png: %w", err)
	}
	out := img.Bounds()
	n.logger.Debug("imaging.normalized",
		"media_type", mediaType, "width", out.Dx(), "height", out.Dy(), "bytes", buf.Len())
	return &Result{PNG: buf.Bytes(), Width: out.Dx(), Height: out.Dy(), Text: text}, nil
}

// applyEXIFOrientation undoes camera rotation recorded in JPEG EXIF metadata.
// Images without EXIF (or without an Orientation tag) pass through untouched.
func applyEXIFOrientation(img image.Image, raw []byte) image.Image {
	x, err := exif.Decode(bytes.NewReader(raw))
	if err != nil {
		return img
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return img
	}
	orient, err := tag.Int(0)
	if err != nil {
		return img
	}
	switch orient {
	case 3:
		return rotate180(img)
	case 6:
		return rotate90(img)
	case 8:
		return rotate270(img)
	}
	return img
}

func rotate90(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.Y-1-y, x-b.Min.X, img.At(x, y))
		}
	}
	return out
}

func rotate180(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.X-1-x, b.Max.Y-1-y, img.At(x, y))
		}
	}
	return out
}

func rotate270(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(y-b.Min.Y, b.Max.X-1-x, img.At(x, y))
		}
	}
	return out
}

func toGray(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewGray(b)
	xdraw.Draw(out, b, img, b.Min, xdraw.Src)
	return out
}

// enhance applies a mild linear contrast stretch around mid-gray followed by
// a brightness factor, clamping to [0,255] per channel.
func enhance(img image.Image, contrast, brightness float64) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	adjust := func(v uint32) uint8 {
		f := float64(v >> 8)
		f = (f-128)*contrast + 128
		f *= brightness
		if f < 0 {
			f = 0
		}
		if f > 255 {
			f = 255
		}
		return uint8(f)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			i := out.PixOffset(x, y)
			out.Pix[i+0] = adjust(r)
			out.Pix[i+1] = adjust(g)
			out.Pix[i+2] = adjust(bl)
			out.Pix[i+3] = uint8(a >> 8)
		}
	}
	return out
}

// resizeToWidth downscales img to maxWidth preserving aspect ratio. Images at
// or below the bound are returned unchanged; we never upscale.
func resizeToWidth(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}
	ratio := float64(maxWidth) / float64(b.Dx())
	h := int(float64(b.Dy()) * ratio)
	out := image.NewNRGBA(image.Rect(0, 0, maxWidth, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, b, xdraw.Over, nil)
	return out
}
