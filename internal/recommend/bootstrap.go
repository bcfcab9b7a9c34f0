package recommend

import (
	"context"

	"upskill-recommender/internal/api"
	"upskill-recommender/internal/concurrency"
)

// Startup is the process-wide data loaded once at start: available platforms,
// the skill suggestion list and the AI capability flag. Read-only afterwards.
type Startup struct {
	Platforms       []string
	Skills          []string
	GeminiAvailable bool
}

// SuggestedSkills returns the first n skills for display as examples.
func (s *Startup) SuggestedSkills(n int) []string {
	if n <= 0 || n > len(s.Skills) {
		n = len(s.Skills)
	}
	return s.Skills[:n]
}

// LoadStartup fetches platforms, skills and the capability probe in parallel.
// Any failure yields a *StartupError; the caller decides how hard to degrade.
func LoadStartup(ctx context.Context, c *api.Client) (*Startup, error) {
	st := &Startup{}

	loaders := []func(context.Context) error{
		func(ctx context.Context) error {
			platforms, err := c.Platforms(ctx)
			if err != nil {
				return err
			}
			st.Platforms = platforms
			return nil
		},
		func(ctx context.Context) error {
			skills, err := c.Skills(ctx)
			if err != nil {
				return err
			}
			st.Skills = skills
			return nil
		},
		func(ctx context.Context) error {
			info, err := c.Info(ctx)
			if err != nil {
				return err
			}
			st.GeminiAvailable = info.GeminiAvailable
			return nil
		},
	}

	errs := concurrency.ForEach(ctx, loaders, len(loaders), func(ctx context.Context, _ int, load func(context.Context) error) error {
		return load(ctx)
	})
	if len(errs) > 0 {
		return st, &StartupError{Errs: errs}
	}
	return st, nil
}
