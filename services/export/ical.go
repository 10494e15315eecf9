package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"mentorloop/models"
)

const (
	icalProdID         = "-//mentorloop//booking core//EN"
	defaultSummary     = "Mentorship Session"
	sessionDuration    = time.Hour
	icalDateTimeLayout = "20060102T150405"
	icalDateLayout     = "20060102"
)

// escapeText escapes the characters iCalendar text values treat specially.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

func writeLine(w io.Writer, line string) error {
	_, err := io.WriteString(w, line+"\r\n")
	return err
}

// WriteICal renders the approved bookings in the collection as an iCalendar
// feed for the viewing actor. Date and time render as floating local time
// with no timezone conversion. names resolves the counterpart's display name
// for the event description.
func WriteICal(w io.Writer, bookings []models.Booking, viewer models.Actor, names map[string]string) error {
	header := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + icalProdID,
		"CALSCALE:GREGORIAN",
	}
	for _, line := range header {
		if err := writeLine(w, line); err != nil {
			return err
		}
	}

	for _, b := range bookings {
		if b.Status != models.StatusApproved {
			continue
		}
		if err := writeEvent(w, b, viewer, names); err != nil {
			return err
		}
	}

	return writeLine(w, "END:VCALENDAR")
}

func writeEvent(w io.Writer, b models.Booking, viewer models.Actor, names map[string]string) error {
	summary := b.Title
	if summary == "" {
		summary = defaultSummary
	}

	// The counterpart is whoever the viewer is meeting.
	counterpartID := b.RequesterID
	if viewer.ID == b.RequesterID {
		counterpartID = b.ProviderID
	}
	counterpart := names[counterpartID]
	if counterpart == "" {
		counterpart = counterpartID
	}

	description := "Session with " + counterpart
	if b.Note != "" {
		description += "\n" + b.Note
	}

	lines := []string{
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:booking-%s@mentorloop", b.ID),
		"SUMMARY:" + escapeText(summary),
		"DESCRIPTION:" + escapeText(description),
		"STATUS:CONFIRMED",
	}

	start, end, dateOnly := eventSpan(b)
	if dateOnly {
		lines = append(lines,
			"DTSTART;VALUE=DATE:"+start.Format(icalDateLayout),
			"DTEND;VALUE=DATE:"+end.Format(icalDateLayout),
		)
	} else {
		lines = append(lines,
			"DTSTART:"+start.Format(icalDateTimeLayout),
			"DTEND:"+end.Format(icalDateTimeLayout),
		)
	}
	lines = append(lines, "END:VEVENT")

	for _, line := range lines {
		if err := writeLine(w, line); err != nil {
			return err
		}
	}
	return nil
}

// eventSpan computes the event start and end. A booking without a time of
// day becomes an all-day event; otherwise the session gets a fixed one-hour
// duration.
func eventSpan(b models.Booking) (start, end time.Time, dateOnly bool) {
	day, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		day = b.CreatedAt
	}
	if b.Time == "" {
		return day, day.AddDate(0, 0, 1), true
	}
	tod, err := time.Parse("15:04:05", b.Time)
	if err != nil {
		return day, day.AddDate(0, 0, 1), true
	}
	start = time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, day.Location())
	return start, start.Add(sessionDuration), false
}
