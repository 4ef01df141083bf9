package dates

import (
	"errors"
	"testing"
	"time"
)

func TestParseDayFirst(t *testing.T) {
	tests := []struct {
		in    string
		day   int
		month time.Month
		year  int
	}{
		{"15/03/2024", 15, time.March, 2024},
		{"25/01/2024", 25, time.January, 2024},
		{"01/02/2024", 1, time.February, 2024},
		{" 5/6/2024 ", 5, time.June, 2024},
		{"2024-03-15", 15, time.March, 2024},
		{"Mar 15, 2024", 15, time.March, 2024},
		{"15 March 2024", 15, time.March, 2024},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got.Day() != tt.day || got.Month() != tt.month || got.Year() != tt.year {
			t.Errorf("Parse(%q): expected %d/%d/%d, got %v", tt.in, tt.day, tt.month, tt.year, got)
		}
		if got.Location() != time.Local {
			t.Errorf("Parse(%q): expected local time, got %v", tt.in, got.Location())
		}
	}
}

func TestParseRollsOver(t *testing.T) {
	got, err := Parse("32/01/2024")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Month() != time.February || got.Day() != 1 {
		t.Errorf("Expected 1 February, got %v", got)
	}
}

func TestParseUnparsable(t *testing.T) {
	for _, in := range []string{"", "-", "soon", "1/2", "a/b/c", "1/2/3/4"} {
		if _, err := Parse(in); !errors.Is(err, ErrUnparsable) {
			t.Errorf("Parse(%q): expected ErrUnparsable, got %v", in, err)
		}
	}
}

func TestDisplay(t *testing.T) {
	if got := Display("15/03/2024", FullIndonesian); got != "15 Maret 2024" {
		t.Errorf("Expected 15 Maret 2024, got %s", got)
	}
	if got := Display("05/12/2024", ShortIndonesian); got != "05 Des 2024" {
		t.Errorf("Expected 05 Des 2024, got %s", got)
	}
	if got := Display("07/05/2024", ShortEnglish); got != "07 May 2024" {
		t.Errorf("Expected 07 May 2024, got %s", got)
	}
	if got := Display("", FullIndonesian); got != "-" {
		t.Errorf("Expected -, got %s", got)
	}
	if got := Display("next week", FullIndonesian); got != "next week" {
		t.Errorf("Expected original text, got %s", got)
	}
}

func TestDisplayShort(t *testing.T) {
	if got := DisplayShort("15/03/2024"); got != "Mar 15" {
		t.Errorf("Expected Mar 15, got %s", got)
	}
	if got := DisplayShort("-"); got != "-" {
		t.Errorf("Expected -, got %s", got)
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 1, 10, 17, 45, 3, 9, time.UTC)
	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if got := DateOnly(in); !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if !DateOnly(time.Time{}).IsZero() {
		t.Error("Expected zero time to stay zero")
	}
}
