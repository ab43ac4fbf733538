package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/vehicle-catalog/internal/catalog"
	"github.com/handiism/vehicle-catalog/internal/config"
	"github.com/handiism/vehicle-catalog/internal/gallery"
	"github.com/handiism/vehicle-catalog/internal/model"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("vehicle-catalog", flag.ContinueOnError)
	flags.SetOutput(stderr)

	// Command line flags
	var (
		configFlag     = flags.String("config", "", "Path to config file")
		kindFlag       = flags.String("kind", "", "Only print these kinds (comma-separated: car,truck,spec_machine)")
		photosFlag     = flags.String("photos", "", "Directory holding vehicle photos")
		thumbnailsFlag = flags.String("thumbnails", "", "Write photo thumbnails to this directory")
		verboseFlag    = flags.Bool("verbose", false, "Report skipped rows")
	)

	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  vehicle-catalog [options] [file ...]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Prints one summary line per vehicle. Without files, the configured catalog (cars.csv) is read.")
		fmt.Fprintln(stderr)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			return fail(stderr, "Error loading config: %v", err)
		}
	}

	// Apply flags
	if *kindFlag != "" {
		settings.Kinds = strings.Split(*kindFlag, ",")
	}
	if *photosFlag != "" {
		settings.PhotosDir = *photosFlag
	}
	if *thumbnailsFlag != "" {
		settings.ThumbnailsDir = *thumbnailsFlag
	}
	if *verboseFlag {
		settings.Verbose = true
	}

	if err := settings.Validate(); err != nil {
		return fail(stderr, "Error: %v", err)
	}
	kinds, _ := settings.KindFilter()

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{settings.CatalogPath}
	}

	// Handle interrupts
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	report := reporter(stderr, settings.Verbose)
	loader := catalog.NewLoader(settings.ToLoaderConfig(), report)

	results, err := loader.LoadAll(ctx, paths)
	if err != nil {
		return fail(stderr, "Error: %v", err)
	}

	var vehicles []model.Vehicle
	for _, loaded := range results {
		vehicles = append(vehicles, loaded...)
	}
	vehicles = catalog.Filter(vehicles, kinds...)

	for _, v := range vehicles {
		fmt.Fprintln(stdout, v)
	}

	if settings.ThumbnailsDir == "" {
		return 0
	}

	gen := gallery.NewGenerator(settings.ToGalleryConfig(), report)
	res, err := gen.Generate(ctx, vehicles)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(stderr, "Thumbnail generation cancelled.")
			return 130
		}
		return fail(stderr, "Error generating thumbnails: %v", err)
	}
	if res.Missing > 0 || res.Invalid > 0 {
		fmt.Fprintln(stderr, warningStyle.Render(fmt.Sprintf("%d photos missing, %d unreadable", res.Missing, res.Invalid)))
	}
	return 0
}

// reporter prints loader and gallery events to w. Events may arrive from
// several goroutines.
func reporter(w io.Writer, verbose bool) func(catalog.Event) {
	var mu sync.Mutex
	return func(event catalog.Event) {
		var line string
		switch event.Level {
		case catalog.LevelVerbose:
			if !verbose {
				return
			}
			line = dimStyle.Render("   " + event.Message)
		case catalog.LevelInfo:
			if !verbose {
				return
			}
			line = "›  " + event.Message
		case catalog.LevelWarning:
			line = warningStyle.Render("!  " + event.Message)
		case catalog.LevelError:
			line = errorStyle.Render("✗  " + event.Message)
		case catalog.LevelSuccess:
			line = successStyle.Render("✓  " + event.Message)
		}

		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(w, line)
	}
}

func fail(stderr io.Writer, format string, args ...any) int {
	fmt.Fprintln(stderr, errorStyle.Render(fmt.Sprintf(format, args...)))
	return 1
}
