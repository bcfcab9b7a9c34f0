package recommend

import (
	"testing"

	"upskill-recommender/internal/domain"
	"upskill-recommender/internal/filter"
)

func testCourses() []domain.Course {
	return []domain.Course{
		{Title: "Python Basics", Provider: "Coursera", Duration: "2 hours", Level: "Beginner", Subject: "Programming"},
		{Title: "Machine Learning", Provider: "Coursera", IsPaid: true, Duration: "10 hours", Level: "Advanced", Subject: "Machine Learning"},
		{Title: "Web Development", Provider: "Udemy", Duration: "4 hours", Level: "Beginner", Subject: "Web Development"},
		{Title: "React Crash Course", Provider: "Udemy", Duration: "2.5 hours", Level: "Intermediate", Subject: "Web Development"},
	}
}

func TestSessionRecomputesOnFilterChange(t *testing.T) {
	s := NewSession(8)
	gen := s.beginSubmission()
	s.commitResults(gen, testCourses())

	v := s.View()
	if len(v.Filtered) != 4 {
		t.Fatalf("Expected 4 courses before filtering, got %d", len(v.Filtered))
	}

	s.UpdateFilter(func(c *filter.Config) { c.Platform = "Udemy" })

	v = s.View()
	if len(v.Filtered) != 2 {
		t.Errorf("Expected 2 Udemy courses, got %d", len(v.Filtered))
	}
	if len(v.Subjects) != 1 || v.Subjects[0] != "Web Development" {
		t.Errorf("Subjects = %v, want [Web Development]", v.Subjects)
	}
}

func TestSessionPageResetsOnFilterChange(t *testing.T) {
	s := NewSession(2)
	gen := s.beginSubmission()
	s.commitResults(gen, testCourses())

	s.SetPage(2)
	if v := s.View(); v.Page != 2 {
		t.Fatalf("Page = %d, want 2", v.Page)
	}

	s.UpdateFilter(func(c *filter.Config) { c.Level = "Beginner" })
	if v := s.View(); v.Page != 1 {
		t.Errorf("Page after filter change = %d, want 1", v.Page)
	}
}

func TestSessionStaleSelectionKept(t *testing.T) {
	s := NewSession(8)
	gen := s.beginSubmission()
	s.commitResults(gen, testCourses())

	// select a subject, then narrow the platform so the subject vanishes
	s.UpdateFilter(func(c *filter.Config) { c.Subject = "Machine Learning" })
	s.UpdateFilter(func(c *filter.Config) { c.Platform = "Udemy" })

	v := s.View()
	if v.Filter.Subject != "Machine Learning" {
		t.Errorf("Subject selection was cleared to %q", v.Filter.Subject)
	}
	if len(v.Filtered) != 0 {
		t.Errorf("Expected stale selection to yield 0 courses, got %d", len(v.Filtered))
	}
}

func TestSessionSetPageClamps(t *testing.T) {
	s := NewSession(2) // 4 courses -> 2 pages
	gen := s.beginSubmission()
	s.commitResults(gen, testCourses())

	s.SetPage(99)
	if v := s.View(); v.Page != 2 {
		t.Errorf("Page = %d, want clamp to 2", v.Page)
	}
	s.SetPage(-1)
	if v := s.View(); v.Page != 1 {
		t.Errorf("Page = %d, want clamp to 1", v.Page)
	}
}

func TestSessionBeginSubmissionClearsState(t *testing.T) {
	s := NewSession(8)
	gen := s.beginSubmission()
	s.commitResults(gen, testCourses())
	s.commitCareerPath(gen, &domain.CareerPath{CurrentRole: "Dev"})
	s.commitAICourses(gen, []domain.Course{{Title: "AI pick", AIEnhanced: true}})

	s.beginSubmission()

	v := s.View()
	if v.Status != StatusLoading {
		t.Errorf("Status = %q, want loading", v.Status)
	}
	if v.TotalFull != 0 || len(v.Filtered) != 0 {
		t.Errorf("Expected results cleared, got %d/%d", v.TotalFull, len(v.Filtered))
	}
	if v.CareerPath != nil || len(v.AICourses) != 0 {
		t.Error("Expected career path and AI courses cleared")
	}
	if v.Page != 1 {
		t.Errorf("Page = %d, want 1", v.Page)
	}
}

func TestSessionStaleCommitsDiscarded(t *testing.T) {
	s := NewSession(8)
	old := s.beginSubmission()
	latest := s.beginSubmission()

	if s.commitResults(old, testCourses()) {
		t.Error("Expected stale commitResults to be a no-op")
	}
	s.commitCareerPath(old, &domain.CareerPath{CurrentRole: "Stale"})
	s.failSubmission(old, "stale error")

	v := s.View()
	if v.TotalFull != 0 || v.CareerPath != nil || v.Status != StatusLoading || v.ErrMessage != "" {
		t.Errorf("Stale commits leaked into view: %+v", v)
	}

	if !s.commitResults(latest, testCourses()) {
		t.Error("Expected latest commitResults to land")
	}
}
