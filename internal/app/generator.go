package app

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Generator writes calendar and sitemap files according to Config. Progress
// lines for the operator go to Out, diagnostics to Log.
type Generator struct {
	Config Config
	Log    zerolog.Logger
	Out    io.Writer
}

// NewGenerator returns a Generator that reports progress to out.
func NewGenerator(cfg Config, log zerolog.Logger, out io.Writer) *Generator {
	return &Generator{Config: cfg, Log: log, Out: out}
}

// DefaultYears is the current year and the configured number of years ahead.
func (g *Generator) DefaultYears(now time.Time) YearRange {
	return YearRange{From: now.Year(), To: now.Year() + g.Config.YearsAhead}
}

func (g *Generator) progress(format string, args ...any) {
	if g.Out == nil {
		return
	}
	if _, err := fmt.Fprintf(g.Out, format+"\n", args...); err != nil {
		g.Log.Warn().Err(err).Msg("failed to write progress")
	}
}

// writeCalendar renders c and writes it atomically to path.
func (g *Generator) writeCalendar(path string, c Calendar, productID string, stamp time.Time) error {
	data := RenderICS(c, productID, g.Config.UIDDomain, stamp)
	if err := WriteFileAtomic(path, data); err != nil {
		return err
	}
	g.Log.Debug().Str("path", path).Int("events", len(c.Periods)).Msg("calendar written")
	return nil
}
