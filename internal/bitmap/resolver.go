package bitmap

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"go.uber.org/zap"
)

// Service rasterizes an image reference into a printer bitmap command at
// a target width in dots.
type Service interface {
	Render(ctx context.Context, imagePath string, widthDots int) ([]byte, error)
}

type fileService struct{}

// NewService returns a Service that reads images from the local
// filesystem. PNG and JPEG are supported.
func NewService() Service {
	return fileService{}
}

func (fileService) Render(ctx context.Context, imagePath string, widthDots int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("open logo %s: %w", imagePath, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode logo %s: %w", imagePath, err)
	}

	return Rasterize(img, widthDots), nil
}

// Resolver wraps a Service with best-effort semantics: any rendering
// failure is logged and reported as absence, never as an error. Receipt
// composition must not fail just because the logo could not be rasterized.
type Resolver struct {
	svc Service
	log *zap.Logger
}

func NewResolver(svc Service, log *zap.Logger) *Resolver {
	return &Resolver{
		svc: svc,
		log: log.Named("bitmap.resolver"),
	}
}

// Resolve returns the bitmap command for imagePath, or ok=false when the
// image is missing or unreadable.
func (r *Resolver) Resolve(ctx context.Context, imagePath string, widthDots int) ([]byte, bool) {
	if imagePath == "" {
		return nil, false
	}

	cmd, err := r.svc.Render(ctx, imagePath, widthDots)
	if err != nil {
		r.log.Warn("logo rasterization failed, falling back to text header",
			zap.String("path", imagePath),
			zap.Error(err),
		)
		return nil, false
	}

	return cmd, true
}
