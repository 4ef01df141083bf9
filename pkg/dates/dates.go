// Package dates parses the loosely formatted date cells found in the sheets
// and renders them for display.
package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/harrisonrobin/sheetdash/pkg/model"
)

// ErrUnparsable is returned for text that is not a recognisable date.
var ErrUnparsable = errors.New("unparsable date")

// MonthNames is a month-name table indexed from January.
type MonthNames [12]string

var (
	ShortEnglish    = MonthNames{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	ShortIndonesian = MonthNames{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}
	FullIndonesian  = MonthNames{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"}
)

var layouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"02-Jan-2006",
}

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// Parse reads s as a calendar date in the local zone. Slash separated text is
// always day/month/year, even when the first part is above 12; out of range
// parts roll over the way time.Date normalises them.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if model.IsBlank(s) {
		return time.Time{}, ErrUnparsable
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, s)
		}
		var n [3]int
		for i, p := range parts {
			v, err := strconv.Atoi(leadingInt.FindString(strings.TrimSpace(p)))
			if err != nil {
				return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, s)
			}
			n[i] = v
		}
		return time.Date(n[2], time.Month(n[1]), n[0], 0, 0, 0, 0, time.Local), nil
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, s)
}

// Format renders t as "DD <month> YYYY".
func Format(t time.Time, names MonthNames) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), names[t.Month()-1], t.Year())
}

// FormatShort renders t as "Jan 2".
func FormatShort(t time.Time) string {
	return fmt.Sprintf("%s %d", ShortEnglish[t.Month()-1], t.Day())
}

// Display formats a date cell, returning Unset for blank cells and the
// original text when it cannot be parsed.
func Display(s string, names MonthNames) string {
	if model.IsBlank(s) {
		return model.Unset
	}
	t, err := Parse(s)
	if err != nil {
		return s
	}
	return Format(t, names)
}

// DisplayShort is Display with the "Jan 2" form.
func DisplayShort(s string) string {
	if model.IsBlank(s) {
		return model.Unset
	}
	t, err := Parse(s)
	if err != nil {
		return s
	}
	return FormatShort(t)
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
