package bitmap

import (
	"image"
	"image/color"

	"github.com/smallbiznis/pompabon/internal/escpos"
)

// luminance threshold below which a pixel prints black.
const threshold = 128

// Rasterize converts an image into a GS v 0 raster command sized to
// widthDots. Transparent pixels are composited onto white before
// thresholding so logos with alpha channels do not print as solid black.
//
// The conversion is deterministic: the same image and width always
// produce the same byte sequence.
func Rasterize(img image.Image, widthDots int) []byte {
	if widthDots <= 0 || widthDots > escpos.MaxRasterWidth {
		widthDots = escpos.MaxRasterWidth
	}

	img = flattenOnWhite(img)
	img = scaleToWidth(img, widthDots)

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	widthBytes := (width + 7) / 8

	// GS v 0 m xL xH yL yH d1...dk
	out := make([]byte, 0, 8+widthBytes*height)
	out = append(out,
		escpos.GS, 'v', '0', 0,
		byte(widthBytes%256), byte(widthBytes/256),
		byte(height%256), byte(height/256),
	)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x += 8 {
			var b byte
			for bit := 0; bit < 8; bit++ {
				px := x + bit
				if px >= width {
					continue
				}
				if gray(img.At(bounds.Min.X+px, bounds.Min.Y+y)) < threshold {
					b |= 1 << uint(7-bit)
				}
			}
			out = append(out, b)
		}
	}

	return out
}

// gray reduces a color to 8-bit luminance (Y = 0.299R + 0.587G + 0.114B).
func gray(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	r8 := uint32(r >> 8)
	g8 := uint32(g >> 8)
	b8 := uint32(b >> 8)
	return uint8((299*r8 + 587*g8 + 114*b8) / 1000)
}

func flattenOnWhite(img image.Image) image.Image {
	bounds := img.Bounds()
	flat := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a < 0xFFFF {
				alpha := float64(a) / 65535.0
				r = uint32(float64(r)*alpha + 65535*(1-alpha))
				g = uint32(float64(g)*alpha + 65535*(1-alpha))
				b = uint32(float64(b)*alpha + 65535*(1-alpha))
			}
			flat.SetRGBA(x, y, color.RGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: 0xFF,
			})
		}
	}

	return flat
}

// scaleToWidth resizes by nearest-neighbor sampling, preserving aspect
// ratio. Upscaling small logos keeps the output width predictable so the
// centered bitmap matches the configured dot width.
func scaleToWidth(img image.Image, widthDots int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == widthDots {
		return img
	}

	ratio := float64(width) / float64(widthDots)
	newHeight := int(float64(height) / ratio)
	if newHeight < 1 {
		newHeight = 1
	}

	resized := image.NewRGBA(image.Rect(0, 0, widthDots, newHeight))
	for y := 0; y < newHeight; y++ {
		for x := 0; x < widthDots; x++ {
			srcX := int(float64(x) * ratio)
			srcY := int(float64(y) * ratio)
			resized.Set(x, y, img.At(bounds.Min.X+srcX, bounds.Min.Y+srcY))
		}
	}

	return resized
}
