package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// uniform square image in one color
func solidImage(size int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRasterize_Header(t *testing.T) {
	cmd := Rasterize(solidImage(16, color.Black), 16)

	// GS v 0 m xL xH yL yH for a 16x16 bitmap: 2 bytes per row, 16 rows
	assert.Equal(t, []byte{0x1D, 'v', '0', 0, 2, 0, 16, 0}, cmd[:8])
	assert.Len(t, cmd, 8+2*16)
}

func TestRasterize_BlackAndWhitePixels(t *testing.T) {
	black := Rasterize(solidImage(8, color.Black), 8)
	for _, b := range black[8:] {
		assert.Equal(t, byte(0xFF), b)
	}

	white := Rasterize(solidImage(8, color.White), 8)
	for _, b := range white[8:] {
		assert.Equal(t, byte(0x00), b)
	}
}

func TestRasterize_TransparentPrintsWhite(t *testing.T) {
	// fully transparent pixels must flatten onto white, not black
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	cmd := Rasterize(img, 8)
	for _, b := range cmd[8:] {
		assert.Equal(t, byte(0x00), b)
	}
}

func TestRasterize_ScalesToTargetWidth(t *testing.T) {
	cmd := Rasterize(solidImage(100, color.Black), 200)

	// 200 dots -> 25 bytes per row, square aspect preserved -> 200 rows
	assert.Equal(t, byte(25), cmd[4])
	assert.Equal(t, byte(0), cmd[5])
	assert.Equal(t, byte(200), cmd[6])
	assert.Equal(t, byte(0), cmd[7])
}

func TestRasterize_ClampsToPrintableWidth(t *testing.T) {
	cmd := Rasterize(solidImage(8, color.Black), 10000)

	// width clamps to 384 dots = 48 bytes per row
	assert.Equal(t, byte(48), cmd[4])
	assert.Equal(t, byte(0), cmd[5])
}

func TestRasterize_Deterministic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 20; x++ {
			if (x+y)%3 == 0 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}

	a := Rasterize(img, 40)
	b := Rasterize(img, 40)
	assert.Equal(t, a, b)
}
