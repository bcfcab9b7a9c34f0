package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/andybalholm/brotli"

	"upskill-recommender/internal/domain"
)

// Keep header order EXACT; downstream spreadsheets key off column position.
var coursesHeader = []string{
	"TITLE",
	"URL",
	"PROVIDER",
	"DESCRIPTION",
	"IS_PAID",
	"PRICE",
	"DURATION",
	"LEVEL",
	"SUBJECT",
	"RATING",
	"AI_ENHANCED",
}

// WriteCoursesCSV writes the recommended courses as CSV.
func WriteCoursesCSV(w io.Writer, courses []domain.Course) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(coursesHeader); err != nil {
		return err
	}
	for _, c := range courses {
		if err := cw.Write(toRow(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCoursesCSVBrotli is WriteCoursesCSV with brotli compression, for
// uploads where the export can run to thousands of rows.
func WriteCoursesCSVBrotli(w io.Writer, courses []domain.Course) error {
	bw := brotli.NewWriter(w)
	if err := WriteCoursesCSV(bw, courses); err != nil {
		bw.Close()
		return err
	}
	return bw.Close()
}

func toRow(c domain.Course) []string {
	price := ""
	if c.IsPaid {
		price = strconv.FormatFloat(c.Price, 'f', -1, 64)
	}
	rating := ""
	if c.Rating > 0 {
		rating = strconv.FormatFloat(c.Rating, 'f', 1, 64)
	}
	return []string{
		c.Title,
		c.URL,
		c.Provider,
		c.Description,
		strconv.FormatBool(c.IsPaid),
		price,
		c.Duration,
		c.Level,
		c.Subject,
		rating,
		strconv.FormatBool(c.AIEnhanced),
	}
}
