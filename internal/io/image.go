package ioutils

import (
	"bytes"
	"context"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// PhotoInfo describes a vehicle photo without decoding its pixels.
type PhotoInfo struct {
	// Format is the decoder name, e.g. "jpeg", "png" or "webp".
	Format string

	// Width and Height are the pixel dimensions.
	Width  int
	Height int
}

// ImageService provides image processing operations for vehicle photos.
//
// ImageService is used to:
//   - Inspect a photo's format and dimensions
//   - Resize photos into JPEG thumbnails
//
// Example usage:
//
//	svc := NewImageService()
//
//	info, _ := svc.Inspect(ctx, "photos/photo1.jpg")
//	fmt.Printf("%s %dx%d\n", info.Format, info.Width, info.Height)
//
//	data, _ := os.ReadFile("photos/photo1.jpg")
//	thumb, _ := svc.ResizeImage(ctx, data, 256, 256)
type ImageService struct {
	quality int
}

// NewImageService creates a new ImageService encoding JPEGs at quality 90.
func NewImageService() *ImageService {
	return &ImageService{quality: 90}
}

// Inspect reads the header of the image at path and returns its format and size.
func (s *ImageService) Inspect(ctx context.Context, path string) (PhotoInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return PhotoInfo{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return PhotoInfo{}, err
	}

	return PhotoInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// ResizeImage resizes an image to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved. Images already smaller than the maximum
// dimensions keep their size but are still re-encoded as JPEG.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Example:
//
//	// A 1500x1000 image becomes 256x170
//	thumb, err := svc.ResizeImage(ctx, imageData, 256, 256)
func (s *ImageService) ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// fitWithin scales width and height down to fit the bounds, keeping the aspect ratio.
func fitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		// Width is the limiting factor
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
