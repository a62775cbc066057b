package app

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

var icsTextEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// escapeText escapes an iCalendar TEXT value (RFC 5545 3.3.11)
func escapeText(s string) string {
	return icsTextEscaper.Replace(s)
}

// EventUID builds the stable UID of a period: start date, English name and scope.
// Regenerating a calendar yields the same UIDs, so subscribed clients update
// events instead of duplicating them.
func EventUID(p HolidayPeriod, scope, domain string) string {
	return fmt.Sprintf("%s-%s-%s@%s", p.Start.Format(ICSDate), slugify(p.NameEN), scope, domain)
}

// icsWriter collects content lines and joins them with CRLF
type icsWriter struct {
	buf bytes.Buffer
}

func (w *icsWriter) line(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteString(ICSLineEnding)
}

// RenderICS renders the calendar as an iCalendar document with one all-day
// event per period. DTEND is exclusive, so it is the day after End.
func RenderICS(c Calendar, productID, domain string, stamp time.Time) []byte {
	w := &icsWriter{}
	dtstamp := stamp.UTC().Format(ICSDateTime)

	// ICS header
	w.line("BEGIN:VCALENDAR")
	w.line("VERSION:2.0")
	w.line("PRODID:%s", productID)
	w.line("CALSCALE:GREGORIAN")
	w.line("METHOD:PUBLISH")
	w.line("X-WR-CALNAME:%s", escapeText(c.Name))
	w.line("X-WR-TIMEZONE:%s", ICSTimezone)
	w.line("X-WR-CALDESC:%s", escapeText(c.Description))

	for _, p := range c.Periods {
		description := p.NameEN
		if c.DescribeEvent != nil {
			description = c.DescribeEvent(p)
		}

		// Event - all-day event
		w.line("BEGIN:VEVENT")
		w.line("DTSTART;VALUE=DATE:%s", p.Start.Format(ICSDate))
		w.line("DTEND;VALUE=DATE:%s", p.End.AddDate(0, 0, 1).Format(ICSDate))
		w.line("DTSTAMP:%s", dtstamp)
		w.line("UID:%s", EventUID(p, c.Scope, domain))
		w.line("SUMMARY:%s", escapeText(p.Name))
		w.line("DESCRIPTION:%s", escapeText(description))
		w.line("TRANSP:TRANSPARENT")
		w.line("STATUS:CONFIRMED")
		w.line("SEQUENCE:0")
		w.line("END:VEVENT")
	}

	w.line("END:VCALENDAR")
	return w.buf.Bytes()
}
