package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/handiism/vehicle-catalog/internal/catalog"
	"github.com/handiism/vehicle-catalog/internal/gallery"
	"github.com/handiism/vehicle-catalog/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Catalog settings
	CatalogPath        string   `json:"catalog_path"`
	Delimiter          string   `json:"delimiter"`
	Kinds              []string `json:"kinds"`
	MaxConcurrentLoads int      `json:"max_concurrent_loads"`

	// Photo settings
	PhotosDir               string `json:"photos_dir"`
	ThumbnailsDir           string `json:"thumbnails_dir"`
	ThumbnailMaxSize        int    `json:"thumbnail_max_size"`
	MaxConcurrentThumbnails int    `json:"max_concurrent_thumbnails"`

	// Output settings
	Verbose bool `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		CatalogPath:        "cars.csv",
		Delimiter:          ";",
		MaxConcurrentLoads: 2,

		ThumbnailMaxSize:        256,
		MaxConcurrentThumbnails: 4,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the delimiter and kind filter.
func (s *Settings) Validate() error {
	r := []rune(s.Delimiter)
	if len(r) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", s.Delimiter)
	}
	switch r[0] {
	case 0, '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("delimiter %q cannot separate CSV fields", s.Delimiter)
	}
	if _, err := s.KindFilter(); err != nil {
		return err
	}
	return nil
}

// KindFilter converts the configured kind names to model kinds.
func (s *Settings) KindFilter() ([]model.Kind, error) {
	kinds := make([]model.Kind, 0, len(s.Kinds))
	for _, name := range s.Kinds {
		kind, ok := model.ParseKind(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown vehicle kind %q", name)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// ToLoaderConfig converts settings to a catalog loader Config.
func (s *Settings) ToLoaderConfig() catalog.Config {
	cfg := catalog.DefaultConfig()
	if r := []rune(s.Delimiter); len(r) == 1 {
		cfg.Comma = r[0]
	}
	if s.MaxConcurrentLoads > 0 {
		cfg.MaxConcurrentLoads = s.MaxConcurrentLoads
	}
	return cfg
}

// ToGalleryConfig converts settings to a thumbnail gallery Config.
func (s *Settings) ToGalleryConfig() gallery.Config {
	return gallery.Config{
		PhotosDir:     s.PhotosDir,
		OutputDir:     s.ThumbnailsDir,
		MaxSize:       s.ThumbnailMaxSize,
		MaxConcurrent: s.MaxConcurrentThumbnails,
	}
}
