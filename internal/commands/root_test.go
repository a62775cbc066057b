package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/public-holidays/holidays/internal/app"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	fixed := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// nil args would make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestAllCommand(t *testing.T) {
	out, err := runCommand(t, "all")
	require.NoError(t, err)

	for _, region := range app.Regions {
		_, statErr := os.Stat(filepath.Join("output", "school", app.SchoolCalendarFile(region)))
		assert.NoError(t, statErr, region)
	}
	_, err = os.Stat(filepath.Join("output", app.PublicRollingFile))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join("output", app.PublicYearFile(2030)))
	assert.NoError(t, err)

	sitemap, err := os.ReadFile(app.DefaultSitemapFile)
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), app.DefaultBaseURL+"/output/school/school_holidays_wien.ics")
	assert.Contains(t, string(sitemap), app.DefaultBaseURL+"/output/austrian_holidays_2025.ics")

	assert.Contains(t, out, "Austrian School Holidays Generator (2025-2030)")
	assert.Contains(t, out, "Example: Wien School Holidays 2025")
	assert.Contains(t, out, "2025-06-28 to 2026-09-06 (436 days)")
	assert.Contains(t, out, "Total ICS file URLs: 16")
}

func TestRootRunsAll(t *testing.T) {
	_, err := runCommand(t)
	require.NoError(t, err)

	_, err = os.Stat(app.DefaultSitemapFile)
	assert.NoError(t, err)
}

func TestSchoolCommandUsesConfig(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(app.DefaultConfigFile, []byte("school_dir: ferien\nyears_ahead: 1\n"), 0o644))

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"school"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join("ferien", "school_holidays_tirol.ics"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "X-WR-CALNAME:Schulferien Tirol")
}

func TestSitemapCommandWarnsOnPlaceholder(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(app.DefaultConfigFile, []byte("base_url: \""+app.PlaceholderBaseURL+"\"\n"), 0o644))

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"sitemap"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "WARNING")
	assert.Contains(t, out.String(), "Total ICS file URLs: 0")
}

func TestCommandsTakeNoArguments(t *testing.T) {
	for _, name := range []string{"school", "public", "sitemap", "all"} {
		t.Run(name, func(t *testing.T) {
			_, err := runCommand(t, name, "extra")
			assert.Error(t, err)
		})
	}
}

func TestSchoolCommandPrintsConfiguredExample(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(app.DefaultConfigFile, []byte("years_ahead: 0\nexample_region: Tirol\n"), 0o644))

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"school"})
	require.NoError(t, cmd.Execute())

	year := time.Now().Year()
	assert.Contains(t, out.String(), fmt.Sprintf("Austrian School Holidays Generator (%d-%d)", year, year))
	assert.Contains(t, out.String(), fmt.Sprintf("Example: Tirol School Holidays %d", year))
}
