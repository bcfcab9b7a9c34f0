package filter

import (
	"sort"
	"strings"

	"upskill-recommender/internal/domain"
)

// Selector value meaning "no restriction" for every facet.
const All = "all"

// Paid filter values.
const (
	PaidAll  = "all"
	PaidFree = "free"
	PaidOnly = "paid"
)

// Duration buckets, keyed off the leading numeric token of Course.Duration
// (hours). Short is <=2h, medium is 2-5h, long is >5h.
const (
	DurationAll    = "all"
	DurationShort  = "short"
	DurationMedium = "medium"
	DurationLong   = "long"
)

// Config is the active filter/search selection. The zero value matches
// nothing useful; use Default() for an all-pass config.
type Config struct {
	Search   string
	Platform string
	Paid     string
	Subject  string
	Level    string
	Duration string
}

// Default returns a config with every facet set to All and an empty search
// term, i.e. the identity filter.
func Default() Config {
	return Config{
		Platform: All,
		Paid:     PaidAll,
		Subject:  All,
		Level:    All,
		Duration: DurationAll,
	}
}

// Result is the filtered subset plus the facet values present in it.
// Subjects and Levels are distinct and sorted ascending; they feed the
// subject/level selectors.
type Result struct {
	Courses  []domain.Course
	Subjects []string
	Levels   []string
}

// Apply filters the full result set through cfg, preserving order.
// It is pure: no side effects, deterministic, safe to re-run on every
// change to the full set or any config field.
//
// A selection that is no longer present in the facet values stays applied
// (possibly producing an empty subset) rather than being silently cleared.
func Apply(full []domain.Course, cfg Config) Result {
	out := Result{Courses: make([]domain.Course, 0, len(full))}
	for _, c := range full {
		if matches(c, cfg) {
			out.Courses = append(out.Courses, c)
		}
	}
	out.Subjects = distinctSorted(out.Courses, func(c domain.Course) string { return c.Subject })
	out.Levels = distinctSorted(out.Courses, func(c domain.Course) string { return c.Level })
	return out
}

func matches(c domain.Course, cfg Config) bool {
	if term := strings.TrimSpace(cfg.Search); term != "" {
		t := strings.ToLower(term)
		if !strings.Contains(strings.ToLower(c.Title), t) &&
			!strings.Contains(strings.ToLower(c.Description), t) {
			return false
		}
	}
	if cfg.Platform != "" && cfg.Platform != All && c.Provider != cfg.Platform {
		return false
	}
	switch cfg.Paid {
	case PaidOnly:
		if !c.IsPaid {
			return false
		}
	case PaidFree:
		if c.IsPaid {
			return false
		}
	}
	if cfg.Subject != "" && cfg.Subject != All && c.Subject != cfg.Subject {
		return false
	}
	if cfg.Level != "" && cfg.Level != All && c.Level != cfg.Level {
		return false
	}
	return matchesDuration(c, cfg.Duration)
}

func matchesDuration(c domain.Course, bucket string) bool {
	if bucket == "" || bucket == DurationAll {
		return true
	}
	h, ok := c.DurationHours()
	if !ok {
		// unparseable duration matches no concrete bucket
		return false
	}
	switch bucket {
	case DurationShort:
		return h <= 2
	case DurationMedium:
		return h > 2 && h <= 5
	case DurationLong:
		return h > 5
	}
	return true
}

func distinctSorted(courses []domain.Course, key func(domain.Course) string) []string {
	seen := make(map[string]bool, len(courses))
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		k := key(c)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
