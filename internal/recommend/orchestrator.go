package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"upskill-recommender/internal/api"
	"upskill-recommender/internal/concurrency"
)

// DefaultSuccessFlash is how long the success status is shown before the
// session settles back to idle.
const DefaultSuccessFlash = 1200 * time.Millisecond

// Orchestrator drives the remote calls behind one submission: career path,
// optional AI course suggestions and the recommendations themselves.
//
// Every submission owns a generation token from Session.beginSubmission;
// completions of a superseded submission are discarded, so a second Submit
// racing the first can never be overwritten by stale responses.
type Orchestrator struct {
	API     *api.Client
	Startup *Startup
	Session *Session
	Log     zerolog.Logger

	// SuccessFlash overrides DefaultSuccessFlash when > 0 (tests use a
	// short value).
	SuccessFlash time.Duration
}

func NewOrchestrator(c *api.Client, st *Startup, s *Session, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{API: c, Startup: st, Session: s, Log: log}
}

// Submit runs the full flow for a user-entered role. The AI-course step only
// runs when the user asked for it and the backend advertised the capability
// at startup.
func (o *Orchestrator) Submit(ctx context.Context, role, skills, goal string, useAI bool) error {
	wantAI := useAI && o.Startup != nil && o.Startup.GeminiAvailable
	return o.run(ctx, role, skills, goal, useAI, wantAI)
}

// SubmitForRole is the guided "pick a suggested role" shortcut: same flow and
// guard semantics as Submit, AI step skipped unconditionally.
func (o *Orchestrator) SubmitForRole(ctx context.Context, role string) error {
	return o.run(ctx, role, "", "", false, false)
}

func (o *Orchestrator) run(ctx context.Context, role, skills, goal string, useAI, fetchAI bool) error {
	role = strings.TrimSpace(role)
	if role == "" {
		return ErrEmptyRole
	}

	cfg := o.Session.Filter()
	gen := o.Session.beginSubmission()

	// Career path and AI suggestions are independent of the recommendations
	// call; run them alongside it and absorb their failures.
	sideDone := make(chan struct{})
	go func() {
		defer close(sideDone)
		o.fetchSides(ctx, gen, role, skills, fetchAI)
	}()

	courses, err := o.API.Recommendations(ctx, api.Query{
		JobRole:  role,
		Skills:   skills,
		Goal:     goal,
		UseAI:    useAI,
		Platform: cfg.Platform,
		Paid:     cfg.Paid,
	})
	<-sideDone

	if err != nil {
		o.Session.failSubmission(gen, RetryMessage)
		o.Log.Warn().Err(err).Str("role", role).Msg("recommendations fetch failed")
		return fmt.Errorf("fetch recommendations: %w", err)
	}

	if o.Session.commitResults(gen, courses) {
		flash := o.SuccessFlash
		if flash <= 0 {
			flash = DefaultSuccessFlash
		}
		time.AfterFunc(flash, func() { o.Session.settleIdle(gen) })
		o.Log.Info().Str("role", role).Int("courses", len(courses)).Msg("recommendations loaded")
	}
	return nil
}

// fetchSides runs the non-fatal lookups of a submission. Each commit is
// generation-guarded on the session side.
func (o *Orchestrator) fetchSides(ctx context.Context, gen uint64, role, skills string, fetchAI bool) {
	type side func(context.Context) error

	sides := []side{
		func(ctx context.Context) error {
			cp, err := o.API.CareerPath(ctx, role)
			if err != nil {
				return fmt.Errorf("career path: %w", err)
			}
			o.Session.commitCareerPath(gen, cp)
			return nil
		},
	}
	if fetchAI {
		sides = append(sides, func(ctx context.Context) error {
			courses, err := o.API.AICourses(ctx, role, skills)
			if err != nil {
				return fmt.Errorf("ai courses: %w", err)
			}
			o.Session.commitAICourses(gen, courses)
			return nil
		})
	}

	errs := concurrency.ForEach(ctx, sides, len(sides), func(ctx context.Context, _ int, fn side) error {
		return fn(ctx)
	})
	for _, err := range errs {
		// degraded, not failed: the panels simply don't render
		o.Log.Debug().Err(err).Str("role", role).Msg("optional lookup unavailable")
	}
}
