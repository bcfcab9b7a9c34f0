package filter

import (
	"reflect"
	"testing"

	"upskill-recommender/internal/domain"
)

func sampleCourses() []domain.Course {
	// 6 Coursera (3 free, 3 paid), 4 Udemy (all free)
	return []domain.Course{
		{Title: "Python Basics", Description: "Intro to Python", Provider: "Coursera", IsPaid: false, Duration: "2 hours", Level: "Beginner", Subject: "Programming"},
		{Title: "Advanced Python", Description: "Deep dive", Provider: "Coursera", IsPaid: true, Price: 49, Duration: "6 hours", Level: "Advanced", Subject: "Programming"},
		{Title: "Data Science 101", Description: "Pandas and friends", Provider: "Coursera", IsPaid: false, Duration: "3 hours", Level: "Beginner", Subject: "Data Science"},
		{Title: "Machine Learning", Description: "Supervised learning", Provider: "Coursera", IsPaid: true, Price: 79, Duration: "10 hours", Level: "Intermediate", Subject: "Machine Learning"},
		{Title: "SQL Fundamentals", Description: "Queries and joins", Provider: "Coursera", IsPaid: false, Duration: "1.5 hours", Level: "Beginner", Subject: "Data Science"},
		{Title: "Deep Learning", Description: "Neural networks", Provider: "Coursera", IsPaid: true, Price: 99, Duration: "12 hours", Level: "Advanced", Subject: "Machine Learning"},
		{Title: "Web Development", Description: "HTML and CSS", Provider: "Udemy", IsPaid: false, Duration: "4 hours", Level: "Beginner", Subject: "Web Development"},
		{Title: "React Crash Course", Description: "Components and hooks", Provider: "Udemy", IsPaid: false, Duration: "2.5 hours", Level: "Intermediate", Subject: "Web Development"},
		{Title: "Node.js APIs", Description: "REST backends", Provider: "Udemy", IsPaid: false, Duration: "5 hours", Level: "Intermediate", Subject: "Web Development"},
		{Title: "Docker for Devs", Description: "Containers explained", Provider: "Udemy", IsPaid: false, Duration: "2 hours", Level: "Beginner", Subject: "DevOps"},
	}
}

func TestApplyIdentity(t *testing.T) {
	full := sampleCourses()
	res := Apply(full, Default())

	if !reflect.DeepEqual(res.Courses, full) {
		t.Errorf("Expected all-\"all\" config to return the full set, got %d of %d", len(res.Courses), len(full))
	}
}

func TestApplyIdempotent(t *testing.T) {
	full := sampleCourses()
	cfg := Default()
	cfg.Paid = PaidFree
	cfg.Duration = DurationShort

	once := Apply(full, cfg)
	twice := Apply(once.Courses, cfg)

	if !reflect.DeepEqual(once.Courses, twice.Courses) {
		t.Errorf("Expected filtering to be idempotent: first=%d second=%d", len(once.Courses), len(twice.Courses))
	}
}

func TestApplyPlatformAndPaid(t *testing.T) {
	cfg := Default()
	cfg.Platform = "Coursera"
	cfg.Paid = PaidFree

	res := Apply(sampleCourses(), cfg)

	if len(res.Courses) != 3 {
		t.Fatalf("Expected 3 free Coursera courses, got %d", len(res.Courses))
	}
	for _, c := range res.Courses {
		if c.Provider != "Coursera" {
			t.Errorf("Expected provider Coursera, got %q", c.Provider)
		}
		if c.IsPaid {
			t.Errorf("Expected free course, got paid %q", c.Title)
		}
	}
}

func TestApplySearch(t *testing.T) {
	cfg := Default()
	cfg.Search = "python"

	res := Apply(sampleCourses(), cfg)

	if len(res.Courses) != 2 {
		t.Fatalf("Expected 2 matches for %q, got %d", cfg.Search, len(res.Courses))
	}

	// matches description too
	cfg.Search = "NEURAL"
	res = Apply(sampleCourses(), cfg)
	if len(res.Courses) != 1 || res.Courses[0].Title != "Deep Learning" {
		t.Errorf("Expected description match for %q, got %v", cfg.Search, res.Courses)
	}
}

func TestDurationBuckets(t *testing.T) {
	two := domain.Course{Title: "x", Duration: "2 hours"}
	twoHalf := domain.Course{Title: "y", Duration: "2.5 hours"}
	bad := domain.Course{Title: "z", Duration: "self paced"}

	testCases := []struct {
		course domain.Course
		bucket string
		want   bool
	}{
		{two, DurationShort, true},
		{two, DurationMedium, false},
		{twoHalf, DurationMedium, true},
		{twoHalf, DurationShort, false},
		{bad, DurationShort, false},
		{bad, DurationMedium, false},
		{bad, DurationLong, false},
		{bad, DurationAll, true},
	}

	for _, tc := range testCases {
		cfg := Default()
		cfg.Duration = tc.bucket
		res := Apply([]domain.Course{tc.course}, cfg)
		got := len(res.Courses) == 1
		if got != tc.want {
			t.Errorf("duration %q in bucket %q = %v, want %v", tc.course.Duration, tc.bucket, got, tc.want)
		}
	}
}

func TestFacetValues(t *testing.T) {
	cfg := Default()
	cfg.Platform = "Udemy"

	res := Apply(sampleCourses(), cfg)

	wantSubjects := []string{"DevOps", "Web Development"}
	if !reflect.DeepEqual(res.Subjects, wantSubjects) {
		t.Errorf("Subjects = %v, want %v", res.Subjects, wantSubjects)
	}
	wantLevels := []string{"Beginner", "Intermediate"}
	if !reflect.DeepEqual(res.Levels, wantLevels) {
		t.Errorf("Levels = %v, want %v", res.Levels, wantLevels)
	}
}

func TestStaleSelectionStaysApplied(t *testing.T) {
	// Subject selected from a wider facet set, then platform narrows the
	// results so that subject disappears. The selection must stay applied
	// and yield zero rows, not reset to "all".
	cfg := Default()
	cfg.Subject = "Machine Learning"
	cfg.Platform = "Udemy"

	res := Apply(sampleCourses(), cfg)

	if len(res.Courses) != 0 {
		t.Errorf("Expected stale subject selection to yield 0 courses, got %d", len(res.Courses))
	}
	if len(res.Subjects) != 0 {
		t.Errorf("Expected no available subjects, got %v", res.Subjects)
	}
}

func TestUnknownSelectorValuesTolerated(t *testing.T) {
	cfg := Default()
	cfg.Platform = "NotARealPlatform"

	res := Apply(sampleCourses(), cfg)
	if len(res.Courses) != 0 {
		t.Errorf("Expected unknown platform to match nothing, got %d", len(res.Courses))
	}

	// empty string behaves like "all", not like a literal value
	cfg = Config{}
	res = Apply(sampleCourses(), cfg)
	if len(res.Courses) != len(sampleCourses()) {
		t.Errorf("Expected zero-value config to pass everything, got %d", len(res.Courses))
	}
}
