package recommend

import (
	"sync"

	"upskill-recommender/internal/domain"
	"upskill-recommender/internal/filter"
	"upskill-recommender/internal/paginate"
)

// Status of the current submission.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Session owns all mutable recommendation state: the active filter config,
// the full result set, the derived filtered subset and facet values, the
// current page and the submission status.
//
// It is the single writer boundary: the orchestrator mutates it on submission
// events, filter/page setters mutate it on user events, and everything is
// serialized through one mutex. The filtered subset is recomputed on every
// change to the full set or the filter config, never patched incrementally.
type Session struct {
	mu sync.Mutex

	pageSize int
	gen      uint64

	cfg      filter.Config
	full     []domain.Course
	filtered []domain.Course
	subjects []string
	levels   []string
	page     int

	status Status
	errMsg string

	career    *domain.CareerPath
	aiCourses []domain.Course
}

func NewSession(pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = 8
	}
	return &Session{
		pageSize: pageSize,
		cfg:      filter.Default(),
		page:     1,
		status:   StatusIdle,
	}
}

// UpdateFilter mutates the filter config and re-derives the filtered subset,
// facet values and page (reset to 1).
func (s *Session) UpdateFilter(mutate func(*filter.Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.cfg)
	s.recomputeLocked()
}

// Filter returns a copy of the active filter config.
func (s *Session) Filter() filter.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// SetPage clamps the requested page into the valid range for the current
// filtered subset.
func (s *Session) SetPage(num int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = paginate.Clamp(num, paginate.TotalPages(len(s.filtered), s.pageSize))
}

// recomputeLocked is the reactive derivation step: it must run after every
// mutation of full or cfg. Caller holds s.mu.
func (s *Session) recomputeLocked() {
	res := filter.Apply(s.full, s.cfg)
	s.filtered = res.Courses
	s.subjects = res.Subjects
	s.levels = res.Levels
	s.page = 1
}

/* -------- submission transitions (orchestrator only) -------- */

// beginSubmission starts a new generation: prior results, career path and AI
// courses are cleared, page resets and status flips to loading. The returned
// token guards every later commit of this submission.
func (s *Session) beginSubmission() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.full = nil
	s.career = nil
	s.aiCourses = nil
	s.status = StatusLoading
	s.errMsg = ""
	s.recomputeLocked()
	return s.gen
}

// current reports whether gen is still the latest submission. Caller holds s.mu.
func (s *Session) currentLocked(gen uint64) bool { return gen == s.gen }

func (s *Session) commitCareerPath(gen uint64, cp *domain.CareerPath) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.currentLocked(gen) {
		return
	}
	s.career = cp
}

func (s *Session) commitAICourses(gen uint64, courses []domain.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.currentLocked(gen) || len(courses) == 0 {
		return
	}
	s.aiCourses = courses
}

// commitResults installs the full result set for gen and reports whether the
// commit happened (false when superseded).
func (s *Session) commitResults(gen uint64, courses []domain.Course) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.currentLocked(gen) {
		return false
	}
	s.full = courses
	s.status = StatusSuccess
	s.recomputeLocked()
	return true
}

// failSubmission marks gen as failed; the full set stays cleared so no stale
// data is shown.
func (s *Session) failSubmission(gen uint64, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.currentLocked(gen) {
		return
	}
	s.status = StatusError
	s.errMsg = msg
}

// settleIdle ends the success flash for gen.
func (s *Session) settleIdle(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.currentLocked(gen) || s.status != StatusSuccess {
		return
	}
	s.status = StatusIdle
}

/* -------- read side -------- */

// View is an immutable snapshot of everything a front-end renders.
type View struct {
	Status     Status
	ErrMessage string

	CareerPath *domain.CareerPath
	AICourses  []domain.Course

	Filter     filter.Config
	TotalFull  int
	Filtered   []domain.Course
	Subjects   []string
	Levels     []string

	Page       int
	PageSize   int
	TotalPages int
	PageItems  []domain.Course
	Window     paginate.Window
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := paginate.TotalPages(len(s.filtered), s.pageSize)
	v := View{
		Status:     s.status,
		ErrMessage: s.errMsg,
		CareerPath: s.career,
		AICourses:  append([]domain.Course(nil), s.aiCourses...),
		Filter:     s.cfg,
		TotalFull:  len(s.full),
		Filtered:   append([]domain.Course(nil), s.filtered...),
		Subjects:   append([]string(nil), s.subjects...),
		Levels:     append([]string(nil), s.levels...),
		Page:       s.page,
		PageSize:   s.pageSize,
		TotalPages: total,
		Window:     paginate.WindowAround(s.page, total, paginate.DefaultWindowWidth),
	}
	v.PageItems = paginate.Page(v.Filtered, s.pageSize, s.page)
	return v
}
