package domain

import "testing"

func TestDurationHours(t *testing.T) {
	testCases := []struct {
		duration string
		hours    float64
		ok       bool
	}{
		{"3 hours", 3, true},
		{"2.5 hours", 2.5, true},
		{"0 hours", 0, true},
		{"45 minutes", 45, true},
		{"", 0, false},
		{"about an hour", 0, false},
		{"-1 hours", 0, false},
	}

	for _, tc := range testCases {
		c := Course{Duration: tc.duration}
		h, ok := c.DurationHours()
		if ok != tc.ok {
			t.Errorf("DurationHours(%q) ok = %v, want %v", tc.duration, ok, tc.ok)
			continue
		}
		if ok && h != tc.hours {
			t.Errorf("DurationHours(%q) = %f, want %f", tc.duration, h, tc.hours)
		}
	}
}
