package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"upskill-recommender/internal/api"
	"upskill-recommender/internal/config"
	"upskill-recommender/internal/export"
	"upskill-recommender/internal/filter"
	"upskill-recommender/internal/sftpclient"
)

func main() {
	var (
		role       = flag.String("role", "", "job role to fetch recommendations for (required)")
		skills     = flag.String("skills", "", "current skills, comma-separated")
		goal       = flag.String("goal", "", "learning goal")
		outPath    = flag.String("out", "recommendations.csv", "output csv path")
		compress   = flag.Bool("br", false, "brotli-compress the output (.br appended)")
		uploadSFTP = flag.Bool("sftp", false, "upload the generated file via SFTP")

		platform = flag.String("platform", "all", "platform filter")
		paid     = flag.String("paid", "all", "price filter: all, free or paid")
		subject  = flag.String("subject", "all", "subject filter")
		level    = flag.String("level", "all", "level filter")
		duration = flag.String("duration", "all", "duration filter: all, short, medium or long")
		search   = flag.String("search", "", "search term over title/description")
	)
	flag.Parse()

	if *role == "" {
		log.Fatal("missing -role")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client := api.New(cfg.APIBaseURL)
	client.HTTP.Timeout = time.Duration(cfg.HTTPTimeoutSec) * time.Second

	// platform/paid get pushed down to the backend; the rest is client-side
	courses, err := client.Recommendations(ctx, api.Query{
		JobRole:  *role,
		Skills:   *skills,
		Goal:     *goal,
		Platform: *platform,
		Paid:     *paid,
	})
	if err != nil {
		log.Fatalf("fetch recommendations: %v", err)
	}

	fcfg := filter.Default()
	fcfg.Platform = *platform
	fcfg.Paid = *paid
	fcfg.Subject = *subject
	fcfg.Level = *level
	fcfg.Duration = *duration
	fcfg.Search = *search
	res := filter.Apply(courses, fcfg)

	target := *outPath
	if *compress {
		target += ".br"
	}
	if dir := filepath.Dir(target); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	f, err := os.Create(target)
	if err != nil {
		log.Fatal(err)
	}
	if *compress {
		err = export.WriteCoursesCSVBrotli(f, res.Courses)
	} else {
		err = export.WriteCoursesCSV(f, res.Courses)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("write %s: %v", target, err)
	}

	fmt.Printf("OK: wrote %d of %d courses to %s\n", len(res.Courses), len(courses), target)

	if *uploadSFTP {
		err := sftpclient.UploadFile(ctx, sftpclient.Config{
			Host:      cfg.SFTPHost,
			Port:      cfg.SFTPPort,
			User:      cfg.SFTPUser,
			Pass:      cfg.SFTPPass,
			RemoteDir: cfg.SFTPRemoteDir,
		}, target, filepath.Base(target))
		if err != nil {
			log.Fatalf("sftp upload: %v", err)
		}
		fmt.Println("OK: uploaded via SFTP")
	}
}
