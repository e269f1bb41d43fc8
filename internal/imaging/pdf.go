package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docuflow/idextract/internal/common"
)

// firstPageImage pulls a raster out of the first page of a PDF. Identity
// documents arrive as scans, so the page is expected to carry the scan as an
// embedded image XObject; we never render vector content.
func firstPageImage(data []byte) (img image.Image, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("parse pdf: %v: %w", r, common.ErrUnsupportedFormat)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse pdf: %v: %w", err, common.ErrUnsupportedFormat)
	}
	if r.NumPage() == 0 {
		return nil, fmt.Errorf("pdf has no pages: %w", common.ErrEmptyDocument)
	}

	page := r.Page(1)
	xobj := page.Resources().Key("XObject")
	for _, name := range xobj.Keys() {
		obj := xobj.Key(name)
		if obj.Kind() != pdf.Stream {
			continue
		}
		if obj.Key("Subtype").Name() != "Image" {
			continue
		}
		if hasFilter(obj, "DCTDecode") {
			// The stream body is a complete JPEG; locate it by its SOI
			// marker since the stream reader only undoes flate.
			if jp := scanEmbeddedJPEG(data); jp != nil {
				return jp, nil
			}
			continue
		}
		if im, ok := rawSampleImage(obj); ok {
			return im, nil
		}
	}

	// Some producers place the scan outside page-1 resources; fall back to
	// the first JPEG stream anywhere in the file.
	if jp := scanEmbeddedJPEG(data); jp != nil {
		return jp, nil
	}
	return nil, fmt.Errorf("no decodable image on first pdf page: %w", common.ErrUnsupportedFormat)
}

// firstPageText pulls whatever plain text the first page carries. Most scans
// have none; when a producer embedded an OCR text layer it feeds
// classification tie-breaking. Best-effort: any parse problem yields "".
func firstPageText(data []byte) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil || r.NumPage() == 0 {
		return ""
	}
	s, err := r.Page(1).GetPlainText(nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func hasFilter(obj pdf.Value, want string) bool {
	f := obj.Key("Filter")
	if f.Kind() == pdf.Name {
		return f.Name() == want
	}
	if f.Kind() == pdf.Array {
		for i := 0; i < f.Len(); i++ {
			if f.Index(i).Name() == want {
				return true
			}
		}
	}
	return false
}

// rawSampleImage rebuilds an image from a flate-compressed sample stream with
// an 8-bit DeviceGray or DeviceRGB color space.
func rawSampleImage(obj pdf.Value) (image.Image, bool) {
	w := int(obj.Key("Width").Int64())
	h := int(obj.Key("Height").Int64())
	bpc := int(obj.Key("BitsPerComponent").Int64())
	cs := obj.Key("ColorSpace").Name()
	if w <= 0 || h <= 0 || bpc != 8 {
		return nil, false
	}

	rc := obj.Reader()
	defer rc.Close()
	samples, err := io.ReadAll(rc)
	if err != nil {
		return nil, false
	}

	switch cs {
	case "DeviceGray":
		if len(samples) < w*h {
			return nil, false
		}
		out := image.NewGray(image.Rect(0, 0, w, h))
		copy(out.Pix, samples[:w*h])
		return out, true
	case "DeviceRGB":
		if len(samples) < w*h*3 {
			return nil, false
		}
		out := image.NewNRGBA(image.Rect(0, 0, w, h))
		for i := 0; i < w*h; i++ {
			out.Pix[i*4+0] = samples[i*3+0]
			out.Pix[i*4+1] = samples[i*3+1]
			out.Pix[i*4+2] = samples[i*3+2]
			out.Pix[i*4+3] = 0xff
		}
		return out, true
	}
	return nil, false
}

// scanEmbeddedJPEG finds the first JPEG SOI marker in data and decodes from
// there. The decoder stops at the EOI marker, so trailing PDF bytes are fine.
func scanEmbeddedJPEG(data []byte) image.Image {
	soi := []byte{0xff, 0xd8, 0xff}
	idx := bytes.Index(data, soi)
	if idx < 0 {
		return nil
	}
	img, err := jpeg.Decode(bytes.NewReader(data[idx:]))
	if err != nil {
		return nil
	}
	return img
}
