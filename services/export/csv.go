package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"mentorloop/models"
)

// csvHeader is the fixed column set consumers of the export rely on.
var csvHeader = []string{"Date", "Time", "Mentee", "Title", "Status", "Note", "Created", "Updated"}

// CSVFileName returns the attachment name for an export generated now.
func CSVFileName(now time.Time) string {
	return fmt.Sprintf("bookings-%s.csv", now.Format("2006-01-02"))
}

// quote wraps a field in double quotes, doubling any embedded quote. Every
// field is quoted unconditionally so the output shape is stable regardless of
// content.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quote(f)
	}
	_, err := fmt.Fprintf(w, "%s\r\n", strings.Join(quoted, ","))
	return err
}

// WriteCSV renders the booking collection as CSV. names maps requester ids
// to display names for the Mentee column; missing entries fall back to the
// raw id.
func WriteCSV(w io.Writer, bookings []models.Booking, names map[string]string) error {
	if err := writeRow(w, csvHeader); err != nil {
		return err
	}
	for _, b := range bookings {
		mentee := names[b.RequesterID]
		if mentee == "" {
			mentee = b.RequesterID
		}
		row := []string{
			b.Date,
			b.Time,
			mentee,
			b.Title,
			b.Status,
			b.Note,
			b.CreatedAt.Format(time.RFC3339),
			b.UpdatedAt.Format(time.RFC3339),
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}
