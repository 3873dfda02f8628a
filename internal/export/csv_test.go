package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bananadb/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 19)
	assert.Equal(t, "Make", row[0])
	assert.Equal(t, "Model", row[1])
	assert.Equal(t, "Created At", row[18])
}

func TestWriteListings_Row(t *testing.T) {
	hp := 190.0
	doors := 5
	location := "München"
	created := time.Date(2024, 3, 7, 10, 30, 0, 0, time.UTC)

	listing := domain.CarListing{
		Make:          "BMW",
		Model:         "320d",
		Year:          2019,
		Mileage:       85000,
		Price:         21500,
		PowerHP:       &hp,
		NumberOfDoors: &doors,
		Location:      &location,
		IsFavorite:    true,
		Source:        "mobile.de",
		CreatedAt:     created,
	}

	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	require.NoError(t, w.WriteListings([]domain.CarListing{listing}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, "BMW", row[0])
	assert.Equal(t, "320d", row[1])
	assert.Equal(t, "2019", row[2])
	assert.Equal(t, "85000", row[3])
	assert.Equal(t, "21500.00", row[4])
	assert.Equal(t, "190", row[9])
	assert.Equal(t, "5", row[11])
	assert.Equal(t, "München", row[14])
	assert.Equal(t, "Yes", row[16])
	assert.Equal(t, "mobile.de", row[17])
	assert.Equal(t, "2024-03-07T10:30:00Z", row[18])
}

func TestWriteListings_NilOptionalsBlank(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	require.NoError(t, w.WriteListings([]domain.CarListing{{Make: "Audi", Model: "A4"}}))
	w.Flush()

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, "", row[5])
	assert.Equal(t, "", row[6])
	assert.Equal(t, "", row[13])
	assert.Equal(t, "No", row[16])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "07_03_2024_BMW_320D_19_21_ESTATE", SanitizeFilename("07.03.2024.BMW.320D.19/21.ESTATE"))
	assert.Equal(t, "already-safe_name", SanitizeFilename("already-safe_name"))
	assert.Equal(t, "a_b", SanitizeFilename("a...___b"))
	assert.Equal(t, "", SanitizeFilename("///"))
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'x'
	}

	assert.Len(t, SanitizeFilename(string(long)), 100)
}

func TestBuildFilename(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	assert.Equal(t, "my_project_"+today+".csv", BuildFilename("my project", "csv"))
	assert.Equal(t, "listings_"+today+".xlsx", BuildFilename("///", "xlsx"))
}
