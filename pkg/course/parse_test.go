package course

import (
	"reflect"
	"testing"
)

func TestParseDays(t *testing.T) {
	cases := []struct {
		in   string
		want []Day
	}{
		{"M/W", []Day{Monday, Wednesday}},
		{"T Th", []Day{Tuesday, Thursday}},
		{"MWF", []Day{Monday, Wednesday, Friday}},
		{"TTh", []Day{Tuesday, Thursday}},
		{"Tues, Thurs", []Day{Tuesday, Thursday}},
		{"", nil},
	}

	for _, c := range cases {
		got, err := ParseDays(c.in)
		if err != nil {
			t.Errorf("ParseDays(%q) returned error: %v", c.in, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseDays(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDaysUnknown(t *testing.T) {
	if _, err := ParseDays("X/Y"); err == nil {
		t.Errorf("expected error for unknown day codes")
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want Minutes
	}{
		{"8:30 AM", 510},
		{"12:00 PM", 720},
		{"12:30 AM", 30},
		{"1:00PM", 780},
		{"13:00", 780},
		{"23:59", 1439},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if err != nil {
			t.Errorf("ParseClock(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, in := range []string{"", "25:00", "8:60", "morning"} {
		if _, err := ParseClock(in); err == nil {
			t.Errorf("ParseClock(%q) should have failed", in)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	if got := Minutes(510).Clock(); got != "8:30 AM" {
		t.Errorf("Minutes(510).Clock() = %q, want %q", got, "8:30 AM")
	}
	if got := Minutes(780).Clock(); got != "1:00 PM" {
		t.Errorf("Minutes(780).Clock() = %q, want %q", got, "1:00 PM")
	}
	if got := Minutes(0).Clock(); got != "12:00 AM" {
		t.Errorf("Minutes(0).Clock() = %q, want %q", got, "12:00 AM")
	}
}

func TestNormalizeCode(t *testing.T) {
	cases := map[string]string{
		"cis2750":   "CIS*2750",
		"CIS*2750":  "CIS*2750",
		" acct1220": "ACCT*1220",
		"":          "",
	}
	for in, want := range cases {
		if got := NormalizeCode(in); got != want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", in, got, want)
		}
	}
}
