package app

import (
	"html"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gobwas/glob"
)

// SitemapTier is the refresh frequency and priority of a file category
type SitemapTier struct {
	ChangeFreq string
	Priority   float64
}

// Sitemap tiers per file category
var (
	TierCountryMain = SitemapTier{ChangeFreq: "yearly", Priority: 0.7}
	TierRolling     = SitemapTier{ChangeFreq: "yearly", Priority: 0.8}
	TierSingleYear  = SitemapTier{ChangeFreq: "never", Priority: 0.5}
	TierSchool      = SitemapTier{ChangeFreq: "yearly", Priority: 0.7}
)

// GermanStates lists the slugs of the German state calendars
var GermanStates = []string{
	"baden-wuerttemberg",
	"bayern",
	"berlin",
	"brandenburg",
	"bremen",
	"hamburg",
	"hessen",
	"mecklenburg-vorpommern",
	"niedersachsen",
	"nordrhein-westfalen",
	"rheinland-pfalz",
	"saarland",
	"sachsen",
	"sachsen-anhalt",
	"schleswig-holstein",
	"thueringen",
}

// SitemapGroup is a list of expected files in one directory sharing a tier.
// An empty Title continues the previous section without a comment line.
type SitemapGroup struct {
	Title string
	Dir   string
	Files []string
	Tier  SitemapTier
}

// SitemapEntry is one listed calendar file
type SitemapEntry struct {
	Path    string
	Loc     string
	LastMod string
	Tier    SitemapTier
}

// SitemapResult holds the entries in output order and the rendered fragment
type SitemapResult struct {
	Entries []SitemapEntry
	Content string
}

var publicYearPattern = glob.MustCompile(PublicYearPrefix + "*" + CalendarFileSuffix)

// SitemapGroups returns the expected calendar files of cfg in listing order:
// German state calendars, the Austrian rolling calendar, Austrian single-year
// calendars found in the output directory and the school calendars.
func SitemapGroups(cfg Config) []SitemapGroup {
	german := make([]string, 0, len(GermanStates))
	for _, state := range GermanStates {
		german = append(german, GermanFilePrefix+state+CalendarFileSuffix)
	}

	school := make([]string, 0, len(Regions))
	for _, region := range Regions {
		school = append(school, SchoolCalendarFile(region))
	}

	return []SitemapGroup{
		{Title: "German Holidays ICS Files", Dir: cfg.OutputDir, Files: german, Tier: TierCountryMain},
		{Title: "Austrian Holidays ICS Files", Dir: cfg.OutputDir, Files: []string{PublicRollingFile}, Tier: TierRolling},
		{Dir: cfg.OutputDir, Files: publicYearFiles(cfg.OutputDir), Tier: TierSingleYear},
		{Title: "Austrian School Holidays ICS Files", Dir: cfg.SchoolDir, Files: school, Tier: TierSchool},
	}
}

// publicYearFiles lists the single-year public calendars in dir by name.
func publicYearFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || e.Name() == PublicRollingFile {
			continue
		}
		if publicYearPattern.Match(e.Name()) {
			files = append(files, e.Name())
		}
	}
	return files
}

// fileExists reports whether path is a regular file. Any stat error counts
// as missing.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// lastModified returns the modification time of path, or fallback if it
// cannot be read.
func lastModified(path string, fallback time.Time) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return fallback
	}
	return info.ModTime()
}

// BuildSitemap lists every existing file of groups in declared order. Missing
// files are skipped; a file whose modification time cannot be read is dated
// now.
func BuildSitemap(groups []SitemapGroup, baseURL string, now time.Time) SitemapResult {
	lines := []string{
		"<!-- Sitemap fragment for ICS calendar files -->",
		"<!-- Generated: " + formatDate(now) + " -->",
		"<!-- Include this in your main sitemap.xml -->",
		"",
	}

	var entries []SitemapEntry
	for _, g := range groups {
		if g.Title != "" {
			lines = append(lines, "  <!-- "+g.Title+" -->")
		}

		for _, name := range g.Files {
			file := filepath.Join(g.Dir, name)
			if !fileExists(file) {
				continue
			}
			modified := lastModified(file, now)

			entry := SitemapEntry{
				Path:    file,
				Loc:     strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path.Join(filepath.ToSlash(g.Dir), name), "/"),
				LastMod: formatDate(modified),
				Tier:    g.Tier,
			}
			entries = append(entries, entry)
			lines = append(lines,
				"  <url>",
				"    <loc>"+html.EscapeString(entry.Loc)+"</loc>",
				"    <lastmod>"+entry.LastMod+"</lastmod>",
				"    <changefreq>"+entry.Tier.ChangeFreq+"</changefreq>",
				"    <priority>"+strconv.FormatFloat(entry.Tier.Priority, 'f', 1, 64)+"</priority>",
				"  </url>",
				"",
			)
		}
	}

	return SitemapResult{Entries: entries, Content: strings.Join(lines, "\n")}
}

// Sitemap builds the fragment for all known calendar files and writes it to
// the configured sitemap file.
func (g *Generator) Sitemap(now time.Time) (SitemapResult, error) {
	if g.Config.BaseURLIsPlaceholder() {
		g.Log.Warn().Str("base_url", g.Config.BaseURL).Msg("base_url is a placeholder")
		g.progress("⚠️  WARNING: Please set base_url in %s!", DefaultConfigFile)
		g.progress("   Current: %s", g.Config.BaseURL)
		g.progress("")
	}

	result := BuildSitemap(SitemapGroups(g.Config), g.Config.BaseURL, now)
	for _, e := range result.Entries {
		g.progress("✓ Added: %s", e.Path)
	}

	if err := WriteFileAtomic(g.Config.SitemapFile, []byte(result.Content)); err != nil {
		return result, err
	}

	g.progress("")
	g.progress("✓ Sitemap fragment generated: %s", g.Config.SitemapFile)
	g.progress("  Total ICS file URLs: %d", len(result.Entries))
	g.progress("  Last updated: %s", formatDate(now))
	return result, nil
}
