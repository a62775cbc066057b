package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Constants
const (
	DefaultConfigFile  = "ferienkalender.yaml"
	DefaultOutputDir   = "output"
	DefaultSchoolDir   = "output/school"
	DefaultSitemapFile = "sitemap_fragment.xml"
	DefaultBaseURL     = "https://public-holidays.github.io/holidays"
	DefaultYearsAhead  = 5
	DefaultUIDDomain   = "austrian-school-holidays.local"
	DefaultLogLevel    = "info"
	DefaultExample     = "Wien"

	// PlaceholderBaseURL must never end up in a published sitemap
	PlaceholderBaseURL = "https://yourdomain.com"

	FilePermissions = 0644
	DirPermissions  = 0755
	TmpSuffix       = ".tmp"

	DateLayout  = "2006-01-02"
	ICSDate     = "20060102"
	ICSDateTime = "20060102T150405Z"

	// ICS constants
	ICSProductID       = "-//Austrian School Holidays//AT"
	ICSPublicProductID = "-//Austrian Public Holidays//AT"
	ICSTimezone        = "Europe/Vienna"
	ICSLineEnding      = "\r\n"

	// Output file names
	SchoolFilePrefix    = "school_holidays_"
	PublicRollingFile   = "austrian_holidays.ics"
	PublicYearPrefix    = "austrian_holidays_"
	GermanFilePrefix    = "german_holidays_"
	CalendarFileSuffix  = ".ics"
	PublicCalendarScope = "at"

	// Holiday names
	SemesterBreakName    = "Semesterferien"
	SemesterBreakNameEN  = "Semester Break"
	SummerHolidaysName   = "Sommerferien"
	SummerHolidaysNameEN = "Summer Holidays"
)

// Errors
var (
	ErrUnknownRegion       = errors.New("unknown Bundesland")
	ErrNoSuchWeekday       = errors.New("no such weekday in month")
	ErrNoStatutorySaturday = errors.New("no Saturday within statutory window")
	ErrInvalidYearRange    = errors.New("invalid year range")
)

// Config holds the generator settings. Every field has a default, so the
// config file is optional.
type Config struct {
	// OutputDir receives the country calendars.
	OutputDir string `json:"output_dir"`
	// SchoolDir receives one school holiday calendar per Bundesland.
	SchoolDir string `json:"school_dir"`
	// BaseURL prefixes every sitemap location.
	BaseURL string `json:"base_url"`
	// SitemapFile is where the sitemap fragment is written.
	SitemapFile string `json:"sitemap_file"`
	// YearsAhead is the number of years generated after the current one.
	YearsAhead int `json:"years_ahead"`
	// UIDDomain is the right-hand side of every event UID.
	UIDDomain string `json:"uid_domain"`
	// LogLevel is a zerolog level name.
	LogLevel string `json:"log_level"`
	// ExampleRegion is the Bundesland printed after school generation.
	ExampleRegion string `json:"example_region"`
}

// defaultValues seeds koanf before the config file is loaded, so a file
// may set years_ahead to 0.
func defaultValues() map[string]any {
	return map[string]any{
		"output_dir":     DefaultOutputDir,
		"school_dir":     DefaultSchoolDir,
		"base_url":       DefaultBaseURL,
		"sitemap_file":   DefaultSitemapFile,
		"years_ahead":    DefaultYearsAhead,
		"uid_domain":     DefaultUIDDomain,
		"log_level":      DefaultLogLevel,
		"example_region": DefaultExample,
	}
}

// SetDefaults fills empty string fields. YearsAhead is left alone since 0
// is a valid setting.
func (c *Config) SetDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.SchoolDir == "" {
		c.SchoolDir = DefaultSchoolDir
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.SitemapFile == "" {
		c.SitemapFile = DefaultSitemapFile
	}
	if c.UIDDomain == "" {
		c.UIDDomain = DefaultUIDDomain
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.ExampleRegion == "" {
		c.ExampleRegion = DefaultExample
	}
}

// Validate checks the settings after defaults were applied.
func (c Config) Validate() error {
	if c.YearsAhead < 0 {
		return fmt.Errorf("years_ahead must not be negative, got %d", c.YearsAhead)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := ParseRegion(c.ExampleRegion); err != nil {
		return fmt.Errorf("example_region: %w", err)
	}
	return nil
}

// Example returns the configured example Bundesland.
func (c Config) Example() Region {
	r, err := ParseRegion(c.ExampleRegion)
	if err != nil {
		return Wien
	}
	return r
}

// BaseURLIsPlaceholder reports whether the operator still has to set base_url.
func (c Config) BaseURLIsPlaceholder() bool {
	return c.BaseURL == PlaceholderBaseURL
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	cfg := Config{YearsAhead: DefaultYearsAhead}
	cfg.SetDefaults()
	return cfg
}

// LoadConfig reads path if it exists and applies defaults. A missing file is
// not an error.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaultValues(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
