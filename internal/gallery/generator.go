package gallery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/handiism/vehicle-catalog/internal/catalog"
	ioutils "github.com/handiism/vehicle-catalog/internal/io"
	"github.com/handiism/vehicle-catalog/internal/model"
	"golang.org/x/sync/errgroup"
)

// Config holds thumbnail generation settings.
type Config struct {
	// PhotosDir is where vehicle photo files are looked up.
	PhotosDir string

	// OutputDir receives the generated thumbnails.
	OutputDir string

	// MaxSize bounds thumbnail width and height in pixels.
	MaxSize int

	// MaxConcurrent bounds the number of photos processed at once.
	MaxConcurrent int
}

// Result summarizes a generation run.
type Result struct {
	Written int32
	Missing int32
	Invalid int32
}

// Generator writes JPEG thumbnails for catalog vehicles.
type Generator struct {
	cfg          Config
	imageService *ioutils.ImageService
	onProgress   func(catalog.Event)
}

// NewGenerator creates a new Generator.
func NewGenerator(cfg Config, onProgress func(catalog.Event)) *Generator {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 256
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	return &Generator{
		cfg:          cfg,
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}
}

// PhotoPath returns where the photo of v is expected on disk.
func (g *Generator) PhotoPath(v model.Vehicle) string {
	return filepath.Join(g.cfg.PhotosDir, v.Common().PhotoFileName)
}

// ThumbnailPath returns the output path for the vehicle at catalog index i.
func (g *Generator) ThumbnailPath(i int, v model.Vehicle) string {
	name := fmt.Sprintf("%03d-%s.jpg", i+1, ioutils.SanitizeFileName(v.Common().Brand))
	return filepath.Join(g.cfg.OutputDir, name)
}

// Generate writes one thumbnail per vehicle whose photo exists and decodes.
//
// Missing, unreadable or undecodable photos are reported as warnings and
// counted in the Result. Only failing to create or write the output aborts
// the run.
func (g *Generator) Generate(ctx context.Context, vehicles []model.Vehicle) (Result, error) {
	var res Result

	if err := ioutils.EnsureDir(g.cfg.OutputDir); err != nil {
		return res, fmt.Errorf("create thumbnails dir: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.MaxConcurrent)

	for i, v := range vehicles {
		i, v := i, v
		eg.Go(func() error {
			return g.generateOne(ctx, i, v, &res)
		})
	}

	if err := eg.Wait(); err != nil {
		return res, err
	}

	g.progress(catalog.Event{
		Message: fmt.Sprintf("Wrote %d thumbnails to %s", atomic.LoadInt32(&res.Written), g.cfg.OutputDir),
		Level:   catalog.LevelSuccess,
	})
	return res, nil
}

func (g *Generator) generateOne(ctx context.Context, i int, v model.Vehicle, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	photoPath := g.PhotoPath(v)
	data, err := os.ReadFile(photoPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			atomic.AddInt32(&res.Missing, 1)
			g.progress(catalog.Event{Message: fmt.Sprintf("Photo not found for %s: %s", v.Common().Brand, photoPath), Level: catalog.LevelWarning})
			return nil
		}
		atomic.AddInt32(&res.Invalid, 1)
		g.progress(catalog.Event{Message: fmt.Sprintf("Cannot read photo for %s: %v", v.Common().Brand, err), Level: catalog.LevelWarning})
		return nil
	}

	thumb, err := g.imageService.ResizeImage(ctx, data, g.cfg.MaxSize, g.cfg.MaxSize)
	if err != nil {
		atomic.AddInt32(&res.Invalid, 1)
		g.progress(catalog.Event{Message: fmt.Sprintf("Cannot decode %s: %v", photoPath, err), Level: catalog.LevelWarning})
		return nil
	}

	out := g.ThumbnailPath(i, v)
	if err := ioutils.WriteFile(ctx, out, thumb); err != nil {
		return fmt.Errorf("write thumbnail %s: %w", out, err)
	}

	atomic.AddInt32(&res.Written, 1)
	g.progress(catalog.Event{Message: fmt.Sprintf("Thumbnail %s", out), Level: catalog.LevelVerbose})
	return nil
}

func (g *Generator) progress(e catalog.Event) {
	if g.onProgress != nil {
		g.onProgress(e)
	}
}
