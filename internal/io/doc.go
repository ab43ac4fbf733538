// Package ioutils provides file system and image processing utilities.
//
// # Text Files
//
// Catalog files are opened with OpenUTF8, which fails the read on the first
// invalid UTF-8 sequence:
//
//	r, err := ioutils.OpenUTF8("cars.csv")
//	defer r.Close()
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("Liebherr: LTM/1") // Returns "Liebherr_ LTM_1"
//
// # Image Processing
//
// The ImageService inspects and resizes vehicle photos. JPEG, PNG and GIF are
// supported through the standard library; BMP, TIFF and WebP through
// golang.org/x/image.
//
//	svc := ioutils.NewImageService()
//	info, _ := svc.Inspect(ctx, "photos/truck.webp")
//	thumb, _ := svc.ResizeImage(ctx, data, 256, 256)
package ioutils
