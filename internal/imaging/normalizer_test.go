package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuflow/idextract/constants"
	"github.com/docuflow/idextract/internal/common"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	return img
}

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(w, h)))
	return buf.Bytes()
}

func encodeTestJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(w, h), nil))
	return buf.Bytes()
}

func TestNormalizePNG(t *testing.T) {
	n := NewNormalizer(Config{}, nil)

	res, err := n.Normalize(encodeTestPNG(t, 800, 600), constants.MediaPNG)
	require.NoError(t, err)
	assert.Equal(t, 800, res.Width)
	assert.Equal(t, 600, res.Height)

	cfg, err := png.DecodeConfig(bytes.NewReader(res.PNG))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestNormalizeJPEGWithoutEXIF(t *testing.T) {
	n := NewNormalizer(Config{}, nil)

	res, err := n.Normalize(encodeTestJPEG(t, 640, 480), constants.MediaJPEG)
	require.NoError(t, err)
	assert.Equal(t, 640, res.Width)
	assert.Equal(t, 480, res.Height)
}

func TestNormalizeRejectsTooSmall(t *testing.T) {
	n := NewNormalizer(Config{}, nil)

	_, err := n.Normalize(encodeTestPNG(t, 400, 200), constants.MediaPNG)
	assert.ErrorIs(t, err, common.ErrImageTooSmall)

	// width passes, height does not
	_, err = n.Normalize(encodeTestPNG(t, 800, 299), constants.MediaPNG)
	assert.ErrorIs(t, err, common.ErrImageTooSmall)

	// exactly at the boundary is accepted
	_, err = n.Normalize(encodeTestPNG(t, 500, 300), constants.MediaPNG)
	assert.NoError(t, err)
}

func TestNormalizeRejectsUnsupported(t *testing.T) {
	n := NewNormalizer(Config{}, nil)

	_, err := n.Normalize([]byte("GIF89a..."), "image/gif")
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)

	_, err = n.Normalize([]byte("not an image"), constants.MediaPNG)
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestNormalizeDownscalesWideImages(t *testing.T) {
	n := NewNormalizer(Config{MaxWidth: 1024}, nil)

	res, err := n.Normalize(encodeTestPNG(t, 2000, 1000), constants.MediaPNG)
	require.NoError(t, err)
	assert.Equal(t, 1024, res.Width)
	assert.Equal(t, 512, res.Height)

	// never upscales
	res, err = n.Normalize(encodeTestPNG(t, 600, 400), constants.MediaPNG)
	require.NoError(t, err)
	assert.Equal(t, 600, res.Width)
}

func TestNormalizeGrayscale(t *testing.T) {
	n := NewNormalizer(Config{Grayscale: true}, nil)

	res, err := n.Normalize(encodeTestPNG(t, 600, 400), constants.MediaPNG)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(res.PNG))
	require.NoError(t, err)
	r, g, b, _ := img.At(100, 100).RGBA()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestNormalizeIsDeterministic(t *testing.T) {
	n := NewNormalizer(Config{}, nil)
	data := encodeTestPNG(t, 800, 600)

	a, err := n.Normalize(data, constants.MediaPNG)
	require.NoError(t, err)
	b, err := n.Normalize(data, constants.MediaPNG)
	require.NoError(t, err)
	assert.Equal(t, a.PNG, b.PNG)
}

func TestNormalizeEmptyPDF(t *testing.T) {
	n := NewNormalizer(Config{}, nil)

	_, err := n.Normalize([]byte("%PDF-1.4\n%%EOF"), constants.MediaPDF)
	assert.Error(t, err)
}

func TestRotationHelpers(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})

	r90 := rotate90(img)
	assert.Equal(t, 1, r90.Bounds().Dx())
	assert.Equal(t, 2, r90.Bounds().Dy())
	c := r90.At(0, 0)
	r, _, _, _ := c.RGBA()
	assert.Equal(t, uint32(0xffff), r) // red pixel moved to top-left column

	r180 := rotate180(img)
	r, _, _, _ = r180.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}
