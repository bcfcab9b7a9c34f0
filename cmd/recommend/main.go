package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"upskill-recommender/internal/api"
	"upskill-recommender/internal/config"
	"upskill-recommender/internal/devutil"
	"upskill-recommender/internal/domain"
	"upskill-recommender/internal/filter"
	"upskill-recommender/internal/logger"
	"upskill-recommender/internal/recommend"
)

// The guided shortcut roles offered when no -role is given.
var suggestedRoles = []string{
	"Full Stack Web Developer",
	"Digital Marketer",
	"Data Scientist",
}

func main() {
	var (
		role     = flag.String("role", "", "current job role (e.g. \"Data Scientist\")")
		skills   = flag.String("skills", "", "current skills, comma-separated")
		goal     = flag.String("goal", "", "learning goal")
		useAI    = flag.Bool("use-ai", false, "ask for AI-enhanced suggestions (needs backend support)")
		pick     = flag.Int("pick", 0, "submit one of the suggested roles (1-3) instead of -role")
		search   = flag.String("search", "", "search term over title/description")
		platform = flag.String("platform", "all", "platform filter")
		paid     = flag.String("paid", "all", "price filter: all, free or paid")
		subject  = flag.String("subject", "all", "subject filter")
		level    = flag.String("level", "all", "level filter")
		duration = flag.String("duration", "all", "duration filter: all, short, medium or long")
		page     = flag.Int("page", 1, "result page to display")
		verbose  = flag.Bool("v", false, "verbose output")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl := logger.New()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := api.New(cfg.APIBaseURL)
	client.HTTP.Timeout = time.Duration(cfg.HTTPTimeoutSec) * time.Second

	startup, err := recommend.LoadStartup(ctx, client)
	if err != nil {
		// degraded: no platform/skill suggestions, but submissions still work
		fmt.Println("WARNING: failed to load data. Please ensure the backend is running.")
		zl.Warn().Err(err).Msg("startup load failed")
	}

	session := recommend.NewSession(cfg.PageSize)
	session.UpdateFilter(func(c *filter.Config) {
		c.Search = *search
		c.Platform = *platform
		c.Paid = *paid
		c.Subject = *subject
		c.Level = *level
		c.Duration = *duration
	})

	orch := recommend.NewOrchestrator(client, startup, session, zl)
	orch.SuccessFlash = time.Duration(cfg.SuccessFlashMsec) * time.Millisecond

	if *role == "" && *pick == 0 {
		fmt.Println("Pick a role with -role, or one of the suggestions with -pick:")
		for i, r := range suggestedRoles {
			fmt.Printf("  %d) %s\n", i+1, r)
		}
		if len(startup.Skills) > 0 {
			fmt.Printf("Popular skills: %s...\n", strings.Join(startup.SuggestedSkills(10), ", "))
		}
		return
	}

	if *pick > 0 {
		if *pick > len(suggestedRoles) {
			log.Fatalf("-pick must be between 1 and %d", len(suggestedRoles))
		}
		err = orch.SubmitForRole(ctx, suggestedRoles[*pick-1])
	} else {
		err = orch.Submit(ctx, *role, *skills, *goal, *useAI)
	}

	v := session.View()
	if err != nil {
		if v.ErrMessage != "" {
			fmt.Println(v.ErrMessage)
		}
		zl.Error().Err(err).Msg("submission failed")
		return
	}

	session.SetPage(*page)
	v = session.View()

	printCareerPath(v)
	printAICourses(v)
	printResults(v, *verbose)
}

func printCareerPath(v recommend.View) {
	cp := v.CareerPath
	if cp == nil {
		return
	}
	fmt.Printf("\nCareer path for %s\n", cp.CurrentRole)
	if len(cp.NextRoles) > 0 {
		fmt.Printf("  next: %s\n", strings.Join(cp.NextRoles, ", "))
	}
	if len(cp.RequiredSkills) > 0 {
		fmt.Printf("  key skills: %s\n", strings.Join(cp.RequiredSkills, ", "))
	}
}

func printAICourses(v recommend.View) {
	if len(v.AICourses) == 0 {
		return
	}
	fmt.Printf("\nAI-generated course suggestions (%d)\n", len(v.AICourses))
	for _, c := range v.AICourses {
		fmt.Printf("  - %s\n", courseLine(c))
	}
}

func printResults(v recommend.View, verbose bool) {
	if len(v.Filtered) == 0 {
		fmt.Println("\nNo recommendations matched. Try widening the filters.")
		return
	}

	from := (v.Page-1)*v.PageSize + 1
	to := from + len(v.PageItems) - 1
	fmt.Printf("\nRecommended courses (%d), showing %d-%d\n", len(v.Filtered), from, to)

	if len(v.Subjects) > 0 {
		fmt.Printf("subjects: %s\n", strings.Join(v.Subjects, ", "))
	}
	if len(v.Levels) > 0 {
		fmt.Printf("levels:   %s\n", strings.Join(v.Levels, ", "))
	}
	fmt.Println()

	for i, c := range v.PageItems {
		fmt.Printf("%2d) %s\n", from+i, courseLine(c))
		if verbose {
			fmt.Printf("      %v\n", devutil.Pick(c, "url", "description", "rating"))
		}
	}

	if v.TotalPages > 1 {
		fmt.Printf("\n%s\n", paginationStrip(v))
	}
}

func courseLine(c domain.Course) string {
	var b strings.Builder
	b.WriteString(c.Title)
	fmt.Fprintf(&b, " [%s]", c.Provider)
	if c.IsPaid {
		fmt.Fprintf(&b, " paid $%.2f", c.Price)
	} else {
		b.WriteString(" free")
	}
	if c.Duration != "" {
		fmt.Fprintf(&b, " | %s", c.Duration)
	}
	if c.Level != "" {
		fmt.Fprintf(&b, " | %s", c.Level)
	}
	if c.AIEnhanced {
		b.WriteString(" | AI")
	}
	return b.String()
}

// paginationStrip renders the sliding window the way the web UI shows its
// page buttons: [1] ... [4] [5] [6] ... [9], current page starred.
func paginationStrip(v recommend.View) string {
	var parts []string
	w := v.Window

	if w.GapBefore {
		parts = append(parts, "[1]", "...")
	} else if len(w.Pages) > 0 && w.Pages[0] == 2 {
		parts = append(parts, "[1]")
	}
	for _, p := range w.Pages {
		if p == v.Page {
			parts = append(parts, fmt.Sprintf("[*%d*]", p))
		} else {
			parts = append(parts, fmt.Sprintf("[%d]", p))
		}
	}
	if w.GapAfter {
		parts = append(parts, "...", fmt.Sprintf("[%d]", v.TotalPages))
	} else if len(w.Pages) > 0 && w.Pages[len(w.Pages)-1] == v.TotalPages-1 {
		parts = append(parts, fmt.Sprintf("[%d]", v.TotalPages))
	}
	return "pages: " + strings.Join(parts, " ")
}
