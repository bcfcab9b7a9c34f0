package domain

import (
	"strconv"
	"strings"
)

// Course is the canonical representation of a recommended course inside this
// client. Backend responses (/recommendations, /ai_courses) unmarshal directly
// into this model.
type Course struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Provider    string  `json:"provider"`
	Description string  `json:"description"`
	IsPaid      bool    `json:"is_paid"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"` // "<number> <unit>", e.g. "3 hours"
	Level       string  `json:"level"`
	Subject     string  `json:"subject"`
	Rating      float64 `json:"rating,omitempty"`
	AIEnhanced  bool    `json:"ai_enhanced,omitempty"`
}

// DurationHours parses the leading token of Duration as a float.
// ok is false when the field is empty or the token is not a number;
// duration-bucket filtering treats that as "matches nothing".
func (c Course) DurationHours() (float64, bool) {
	fields := strings.Fields(c.Duration)
	if len(fields) == 0 {
		return 0, false
	}
	h, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || h < 0 {
		return 0, false
	}
	return h, true
}
