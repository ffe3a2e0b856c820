package model

import (
	"testing"
	"time"
)

func TestParseBool(t *testing.T) {
	trueCases := []string{"true", "TRUE", "True", "1", "yes", "YES", " yes "}
	for _, v := range trueCases {
		if !ParseBool(v) {
			t.Errorf("ParseBool(%q) = false, want true", v)
		}
	}

	falseCases := []string{"", "false", "0", "no", "y", "t", "2", "risk"}
	for _, v := range falseCases {
		if ParseBool(v) {
			t.Errorf("ParseBool(%q) = true, want false", v)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-03-10", "2026-03-10"},
		{"2026-03-10T14:22:05Z", "2026-03-10"},
		{"2026-03-10T14:22:05", "2026-03-10"},
		{"2026-03-10 14:22:05", "2026-03-10"},
		{"2026/03/10", "2026-03-10"},
	}
	for _, c := range cases {
		got := ParseDate(c.in)
		if got == nil {
			t.Errorf("ParseDate(%q) = nil, want %s", c.in, c.want)
			continue
		}
		if got.Format("2006-01-02") != c.want {
			t.Errorf("ParseDate(%q) = %s, want %s", c.in, got.Format("2006-01-02"), c.want)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, v := range []string{"", "   ", "not-a-date", "03/10/2026 late"} {
		if got := ParseDate(v); got != nil {
			t.Errorf("ParseDate(%q) = %v, want nil", v, got)
		}
	}
}

func TestDayStart(t *testing.T) {
	ts := time.Date(2026, 3, 10, 23, 59, 58, 123, time.UTC)
	got := DayStart(ts)
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DayStart = %v, want %v", got, want)
	}
}

func TestFormatYMD(t *testing.T) {
	ts := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	if got := FormatYMD(ts); got != "2026/03/05" {
		t.Errorf("FormatYMD = %q, want 2026/03/05", got)
	}
}
