// Package pagination computes page windows for ranked record listings.
// Given a total record count and a caller's criteria it clamps the requested page,
// derives the 1-based rank range to fetch, and builds the navigation tokens
// (previous-window marker, page numbers, next-window marker) used to render a pager.
package pagination

import (
	"fmt"

	"noticeboard/pkg/config"
)

// DefaultNavWindowSize is the number of page links shown per navigation window.
const DefaultNavWindowSize = 10

// Config holds pagination configuration settings.
// These values can be loaded from environment variables or config files.
type Config struct {
	DefaultPage     int `yaml:"default_page"`      // Page used when the request omits one (typically 1)
	DefaultPageSize int `yaml:"default_page_size"` // Records per page when the request omits a size
	MaxPageSize     int `yaml:"max_page_size"`     // Upper bound accepted for a requested size
	NavWindowSize   int `yaml:"nav_window_size"`   // Page links per navigation window
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, size=10, max=100, nav window=10
func DefaultConfig() Config {
	return Config{
		DefaultPage:     1,
		DefaultPageSize: 10,
		MaxPageSize:     100,
		NavWindowSize:   DefaultNavWindowSize,
	}
}

// LoadFromEnv overlays pagination settings from environment variables onto base.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page number
//   - PAGINATION_DEFAULT_SIZE: Default records per page
//   - PAGINATION_MAX_SIZE: Maximum records per page
//   - PAGINATION_NAV_WINDOW: Page links per navigation window
//
// Unset or unparsable variables keep the value from base.
func LoadFromEnv(base Config) Config {
	return Config{
		DefaultPage:     config.GetEnvInt("PAGINATION_DEFAULT_PAGE", base.DefaultPage),
		DefaultPageSize: config.GetEnvInt("PAGINATION_DEFAULT_SIZE", base.DefaultPageSize),
		MaxPageSize:     config.GetEnvInt("PAGINATION_MAX_SIZE", base.MaxPageSize),
		NavWindowSize:   config.GetEnvInt("PAGINATION_NAV_WINDOW", base.NavWindowSize),
	}
}

// Validate reports settings the engine could never compute a page with.
func (c Config) Validate() error {
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("default_page_size must be positive, got %d", c.DefaultPageSize)
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("max_page_size (%d) must be >= default_page_size (%d)", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.NavWindowSize < 1 {
		return fmt.Errorf("nav_window_size must be positive, got %d", c.NavWindowSize)
	}
	return nil
}
