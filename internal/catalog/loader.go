package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	ioutils "github.com/handiism/vehicle-catalog/internal/io"
	"github.com/handiism/vehicle-catalog/internal/model"
	"golang.org/x/sync/errgroup"
)

// Level indicates the severity/type of a loader event.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event is a diagnostic emitted while loading a catalog.
type Event struct {
	Message string
	Level   Level
}

// Config holds loader settings.
type Config struct {
	// Comma is the field separator. The first row of a catalog is always
	// a header and is never read as data.
	Comma rune

	// MaxConcurrentLoads bounds the number of files LoadAll reads at once.
	MaxConcurrentLoads int
}

// DefaultConfig returns the settings for ';'-separated catalogs with a header row.
func DefaultConfig() Config {
	return Config{
		Comma:              ';',
		MaxConcurrentLoads: 2,
	}
}

// LoadError is a fatal failure to read a catalog: the file could not be
// opened, read or decoded as UTF-8. Per-row problems never produce a LoadError.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Stats summarizes one load.
type Stats struct {
	// Rows is the number of data rows read, header excluded.
	Rows int

	// Loaded is the number of vehicles produced.
	Loaded int

	// Skipped counts excluded rows per reason.
	Skipped map[SkipReason]int
}

// SkippedTotal returns the number of excluded rows.
func (s Stats) SkippedTotal() int {
	total := 0
	for _, n := range s.Skipped {
		total += n
	}
	return total
}

// Loader reads catalog files into ordered vehicle lists.
//
// Rows that cannot be turned into a vehicle are skipped and reported
// through the event callback at LevelVerbose; only I/O and decoding
// failures abort a load.
//
// Example:
//
//	loader := NewLoader(DefaultConfig(), func(e Event) {
//	    fmt.Println(e.Message)
//	})
//	vehicles, err := loader.Load("cars.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, v := range vehicles {
//	    fmt.Println(v)
//	}
type Loader struct {
	cfg     Config
	onEvent func(Event)
}

// NewLoader creates a Loader. onEvent may be nil; when LoadAll is used it
// is called from several goroutines.
func NewLoader(cfg Config, onEvent func(Event)) *Loader {
	if cfg.Comma == 0 {
		cfg.Comma = ';'
	}
	if cfg.MaxConcurrentLoads < 1 {
		cfg.MaxConcurrentLoads = 1
	}
	return &Loader{cfg: cfg, onEvent: onEvent}
}

// Load reads the catalog at path.
func (l *Loader) Load(path string) ([]model.Vehicle, error) {
	vehicles, _, err := l.LoadWithStats(path)
	return vehicles, err
}

// LoadWithStats reads the catalog at path and also returns load statistics.
//
// The file is closed on every return path.
func (l *Loader) LoadWithStats(path string) ([]model.Vehicle, Stats, error) {
	r, err := ioutils.OpenUTF8(path)
	if err != nil {
		return nil, Stats{}, &LoadError{Path: path, Err: err}
	}
	defer r.Close()

	vehicles, stats, err := l.read(r)
	if err != nil {
		return nil, stats, &LoadError{Path: path, Err: err}
	}

	l.event(Event{
		Message: fmt.Sprintf("Loaded %d vehicles from %s (%d rows skipped)", stats.Loaded, path, stats.SkippedTotal()),
		Level:   LevelInfo,
	})

	return vehicles, stats, nil
}

// LoadReader reads a catalog from r, which must yield UTF-8 text.
func (l *Loader) LoadReader(r io.Reader) ([]model.Vehicle, error) {
	vehicles, _, err := l.read(ioutils.NewUTF8Reader(r))
	return vehicles, err
}

// LoadAll reads several catalogs concurrently and returns their vehicles in
// the order of paths. The first fatal error cancels loads not yet started.
func (l *Loader) LoadAll(ctx context.Context, paths []string) ([][]model.Vehicle, error) {
	results := make([][]model.Vehicle, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.MaxConcurrentLoads)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			vehicles, err := l.Load(path)
			if err != nil {
				return err
			}
			results[i] = vehicles
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (l *Loader) read(r io.Reader) ([]model.Vehicle, Stats, error) {
	reader := csv.NewReader(r)
	reader.Comma = l.cfg.Comma
	reader.FieldsPerRecord = -1

	stats := Stats{Skipped: make(map[SkipReason]int)}
	vehicles := make([]model.Vehicle, 0)

	for first := true; ; first = false {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		var parseErr *csv.ParseError
		if err != nil && !errors.As(err, &parseErr) {
			return nil, stats, err
		}

		if first {
			continue
		}
		stats.Rows++

		var (
			res  RowResult
			line int
		)
		if parseErr != nil {
			res = skip(SkipMalformedRow, parseErr)
			line = parseErr.StartLine
		} else {
			res = ParseRow(record)
			line, _ = reader.FieldPos(0)
		}

		if !res.OK() {
			stats.Skipped[res.Skip]++
			l.event(Event{
				Message: fmt.Sprintf("Line %d skipped (%s): %v", line, res.Skip, res.Err),
				Level:   LevelVerbose,
			})
			continue
		}

		stats.Loaded++
		vehicles = append(vehicles, res.Vehicle)
	}

	return vehicles, stats, nil
}

func (l *Loader) event(e Event) {
	if l.onEvent != nil {
		l.onEvent(e)
	}
}

// Filter returns the vehicles whose kind is one of kinds, in their original
// order. With no kinds it returns vehicles unchanged.
func Filter(vehicles []model.Vehicle, kinds ...model.Kind) []model.Vehicle {
	if len(kinds) == 0 {
		return vehicles
	}

	want := make(map[model.Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}

	filtered := make([]model.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if want[v.Kind()] {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
