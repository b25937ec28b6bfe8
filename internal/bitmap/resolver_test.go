package bitmap

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.Black)
		}
	}

	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	assert.NoError(t, err)
	defer f.Close()
	assert.NoError(t, png.Encode(f, img))
	return path
}

func TestResolver_ResolvesPNG(t *testing.T) {
	resolver := NewResolver(NewService(), zap.NewNop())

	cmd, ok := resolver.Resolve(context.Background(), writeTestPNG(t), 40)
	assert.True(t, ok)
	assert.Equal(t, []byte{0x1D, 'v', '0', 0}, cmd[:4])
}

func TestResolver_MissingFileFallsBack(t *testing.T) {
	resolver := NewResolver(NewService(), zap.NewNop())

	cmd, ok := resolver.Resolve(context.Background(), "/does/not/exist.png", 200)
	assert.False(t, ok)
	assert.Nil(t, cmd)
}

func TestResolver_EmptyPathFallsBack(t *testing.T) {
	resolver := NewResolver(NewService(), zap.NewNop())

	cmd, ok := resolver.Resolve(context.Background(), "", 200)
	assert.False(t, ok)
	assert.Nil(t, cmd)
}

func TestResolver_CorruptImageFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	assert.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	resolver := NewResolver(NewService(), zap.NewNop())

	_, ok := resolver.Resolve(context.Background(), path, 200)
	assert.False(t, ok)
}
