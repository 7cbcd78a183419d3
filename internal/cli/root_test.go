package cli

import (
	"testing"

	"github.com/sablereed/ritual/internal/analytics"
)

func TestParseDateArg(t *testing.T) {
	got, err := parseDateArg("2026-08-31")
	if err != nil {
		t.Fatalf("parseDateArg returned error: %v", err)
	}
	if got != "2026-08-31" {
		t.Errorf("parseDateArg = %q, want 2026-08-31", got)
	}

	if _, err := parseDateArg("08/31/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if _, err := parseDateArg("not-a-date"); err == nil {
		t.Error("expected error for garbage input")
	}

	today, err := parseDateArg("today")
	if err != nil {
		t.Fatalf("parseDateArg(today) returned error: %v", err)
	}
	if len(today) != 10 {
		t.Errorf("today key %q is not YYYY-MM-DD shaped", today)
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"7", 7, false},
		{"30", 30, false},
		{"90", 90, false},
		{"all", analytics.RangeAll, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"week", 0, true},
	}
	for _, tt := range tests {
		got, err := parseRange(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseRange(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRange(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseRange(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatShortDate(t *testing.T) {
	if got := formatShortDate("2026-08-31"); got != "Aug 31" {
		t.Errorf("formatShortDate = %q, want Aug 31", got)
	}
	// Unparseable keys pass through untouched
	if got := formatShortDate("bogus"); got != "bogus" {
		t.Errorf("formatShortDate(bogus) = %q", got)
	}
}

func TestResample(t *testing.T) {
	series := make([]analytics.SeriesPoint, 100)
	for i := range series {
		series[i] = analytics.SeriesPoint{Daily: 1, Cumulative: i + 1}
	}

	out := resample(series, 10)
	if len(out) != 10 {
		t.Fatalf("resample length = %d, want 10", len(out))
	}
	if out[len(out)-1].Cumulative != 100 {
		t.Errorf("last resampled point = %d, want the series total 100", out[len(out)-1].Cumulative)
	}
	for i := 1; i < len(out); i++ {
		if out[i].Cumulative < out[i-1].Cumulative {
			t.Fatalf("resampled cumulative not monotone at %d", i)
		}
	}

	// Short series are returned as-is
	short := series[:5]
	if got := resample(short, 10); len(got) != 5 {
		t.Errorf("resample of short series length = %d, want 5", len(got))
	}
}
