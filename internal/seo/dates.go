package seo

import (
	"fmt"
	"strings"
	"time"
)

// rssDateLayout is the RFC 822 shape mandated by RSS 2.0: English day/month
// tables, unpadded day-of-month, zero-padded clock fields, literal GMT.
const rssDateLayout = "Mon, 2 Jan 2006 15:04:05 GMT"

// FormatRSSDate renders t as an RFC 822 timestamp from its UTC clock fields.
func FormatRSSDate(t time.Time) string {
	return t.UTC().Format(rssDateLayout)
}

// FormatRSSDateString parses an ISO-8601 timestamp and renders it as RFC 822.
func FormatRSSDateString(iso string) (string, error) {
	t, err := ParseDate(iso)
	if err != nil {
		return "", err
	}
	return FormatRSSDate(t), nil
}

// FormatISODate renders the calendar date (YYYY-MM-DD) of t in UTC, the form
// expected by sitemap lastmod elements.
func FormatISODate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ISODateFromString truncates an ISO-8601 timestamp at the T separator.
func ISODateFromString(iso string) string {
	if i := strings.IndexByte(iso, 'T'); i >= 0 {
		return iso[:i]
	}
	return iso
}

// ParseDate accepts the timestamp forms content records carry: RFC 3339 with
// or without sub-second precision, or a bare calendar date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
