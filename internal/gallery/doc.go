// Package gallery generates JPEG thumbnails for vehicle photos.
//
// Each vehicle's photo is looked up as PhotosDir/PhotoFileName, scaled to fit
// MaxSize x MaxSize and written to OutputDir as "<index>-<brand>.jpg", where
// index is the 1-based catalog position:
//
//	gen := gallery.NewGenerator(gallery.Config{
//	    PhotosDir:     "photos",
//	    OutputDir:     "thumbs",
//	    MaxSize:       256,
//	    MaxConcurrent: 4,
//	}, onEvent)
//	res, err := gen.Generate(ctx, vehicles)
//
// Photos are processed concurrently, bounded by MaxConcurrent.
package gallery
