// Package export renders car listings as downloadable CSV and XLSX
// files for the review table.
package export

import (
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"bananadb/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the export header row (19 columns).
var columns = []string{
	"Make",
	"Model",
	"Year",
	"Mileage",
	"Price",
	"CO2",
	"Fuel Type",
	"First Registration",
	"Power (kW)",
	"Power (HP)",
	"Gear Type",
	"Doors",
	"Seats",
	"Seller",
	"Location",
	"Listing URL",
	"Favorite",
	"Source",
	"Created At",
}

// CSVWriter wraps csv.Writer for exporting listings as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteListings converts a batch of listings to CSV rows and writes them.
func (w *CSVWriter) WriteListings(listings []domain.CarListing) error {
	for i := range listings {
		if err := w.csv.Write(listingToRow(&listings[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// listingToRow converts a single listing to a 19-element string slice.
func listingToRow(l *domain.CarListing) []string {
	row := make([]string, len(columns))
	row[0] = l.Make
	row[1] = l.Model
	row[2] = strconv.Itoa(l.Year)
	row[3] = strconv.Itoa(l.Mileage)
	row[4] = formatMoney(l.Price)
	row[5] = formatFloatPtr(l.CO2)
	row[6] = formatStringPtr(l.FuelType)
	row[7] = formatStringPtr(l.FirstRegistrationDate)
	row[8] = formatFloatPtr(l.PowerKW)
	row[9] = formatFloatPtr(l.PowerHP)
	row[10] = formatStringPtr(l.GearType)
	row[11] = formatIntPtr(l.NumberOfDoors)
	row[12] = formatIntPtr(l.NumberOfSeats)
	row[13] = formatStringPtr(l.Seller)
	row[14] = formatStringPtr(l.Location)
	row[15] = formatStringPtr(l.ListingURL)
	row[16] = formatBool(l.IsFavorite)
	row[17] = l.Source
	row[18] = l.CreatedAt.Format(time.RFC3339)
	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatStringPtr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a project name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	base := SanitizeFilename(name)
	if base == "" {
		base = "listings"
	}
	return base + "_" + time.Now().Format("2006-01-02") + "." + ext
}
