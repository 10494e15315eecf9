package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"mentorloop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportBooking(id string) models.Booking {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return models.Booking{
		ID:          id,
		ProviderID:  "mentor-1",
		RequesterID: "mentee-1",
		Date:        "2026-03-20",
		Time:        "14:00:00",
		Title:       "Go interfaces deep dive",
		Note:        "Bring questions",
		Status:      models.StatusApproved,
		CreatedAt:   created,
		UpdatedAt:   created.Add(2 * time.Hour),
	}
}

func TestCSVFileName(t *testing.T) {
	now := time.Date(2026, 3, 11, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "bookings-2026-03-11.csv", CSVFileName(now))
}

func TestWriteCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, nil))

	assert.True(t, strings.HasSuffix(buf.String(), "\r\n"), "rows end with CRLF")
	lines := strings.Split(strings.TrimRight(buf.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 1)
	assert.Equal(t, `"Date","Time","Mentee","Title","Status","Note","Created","Updated"`, lines[0])
}

func TestWriteCSVRows(t *testing.T) {
	var buf bytes.Buffer
	b := exportBooking("bk-1")
	names := map[string]string{"mentee-1": "Ben"}
	require.NoError(t, WriteCSV(&buf, []models.Booking{b}, names))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "2026-03-20", row[0])
	assert.Equal(t, "14:00:00", row[1])
	assert.Equal(t, "Ben", row[2])
	assert.Equal(t, "Go interfaces deep dive", row[3])
	assert.Equal(t, "approved", row[4])
	assert.Equal(t, "Bring questions", row[5])
	assert.Equal(t, "2026-03-10T09:00:00Z", row[6])
	assert.Equal(t, "2026-03-10T11:00:00Z", row[7])
}

func TestWriteCSVEscapesAwkwardContent(t *testing.T) {
	b := exportBooking("bk-1")
	b.Title = `Say "hello", world`
	b.Note = "line one\nline two"

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []models.Booking{b}, nil))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `Say "hello", world`, records[1][3])
	assert.Equal(t, "line one\nline two", records[1][5])
}

func TestWriteCSVUnknownMenteeFallsBackToID(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []models.Booking{exportBooking("bk-1")}, nil))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "mentee-1", records[1][2])
}

func TestWriteCSVQuotesEveryField(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []models.Booking{exportBooking("bk-1")}, nil))

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\r\n"), "\r\n") {
		assert.True(t, strings.HasPrefix(line, `"`))
		assert.True(t, strings.HasSuffix(line, `"`))
		assert.Len(t, strings.Split(line, `","`), len(csvHeader))
	}
}
