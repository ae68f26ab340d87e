package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"mrtrack/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the visit CSV header row.
var columns = []string{
	"Visit ID",
	"Date",
	"Time",
	"Field Rep ID",
	"Field Rep",
	"Doctor ID",
	"Doctor",
	"Products Promoted",
	"Business Generated",
	"Latitude",
	"Longitude",
	"Notes",
}

// Writer wraps csv.Writer for exporting doctor visits.
type Writer struct {
	csv          *csv.Writer
	productNames map[string]string
}

// NewWriter creates a Writer that writes CSV to w. productNames resolves
// promoted product ids; unknown ids are written as-is.
func NewWriter(w io.Writer, productNames map[string]string) *Writer {
	return &Writer{csv: csv.NewWriter(w), productNames: productNames}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteVisits converts a batch of visits to CSV rows and writes them.
func (w *Writer) WriteVisits(visits []domain.DoctorVisit) error {
	for i := range visits {
		if err := w.csv.Write(w.visitToRow(&visits[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func (w *Writer) visitToRow(v *domain.DoctorVisit) []string {
	products := make([]string, len(v.ProductsPromoted))
	for i, id := range v.ProductsPromoted {
		if name, ok := w.productNames[id]; ok {
			products[i] = name
		} else {
			products[i] = id
		}
	}

	return []string{
		v.ID,
		v.Date,
		v.Time,
		v.FieldRepID,
		v.FieldRepName,
		v.DoctorID,
		v.DoctorName,
		strings.Join(products, "; "),
		FormatRupees(v.BusinessGenerated),
		formatCoord(v.Location.Lat),
		formatCoord(v.Location.Lng),
		v.Notes,
	}
}

// FormatRupees renders a whole-rupee amount with two decimals.
func FormatRupees(amount int64) string {
	return decimal.NewFromInt(amount).StringFixed(2)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
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

// BuildFilename returns {sanitized_name}_{day}.{ext} for Content-Disposition.
func BuildFilename(name, day, ext string) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), day, ext)
}
