package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"mrtrack/internal/domain"
)

// ReadDoctors parses a doctor roster from the first sheet of an .xlsx file.
// Row 1 is a header; columns are matched by name, case-insensitively:
// id, name, qualification, specialization, town, area, phone, email,
// latitude, longitude. id and name are required; rows missing either are
// skipped. A location is set only when both coordinates parse.
func ReadDoctors(r io.Reader) ([]domain.Doctor, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("xlsx: read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("xlsx: sheet is empty")
	}

	col := make(map[string]int)
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"id", "name"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("xlsx: missing %q column", required)
		}
	}

	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	doctors := make([]domain.Doctor, 0, len(rows)-1)
	for _, row := range rows[1:] {
		d := domain.Doctor{
			ID:             get(row, "id"),
			Name:           get(row, "name"),
			Qualification:  get(row, "qualification"),
			Specialization: get(row, "specialization"),
			Town:           get(row, "town"),
			Area:           get(row, "area"),
			Phone:          get(row, "phone"),
			Email:          get(row, "email"),
			CreatedAt:      get(row, "created_at"),
		}
		if d.ID == "" || d.Name == "" {
			continue
		}
		lat, latErr := strconv.ParseFloat(get(row, "latitude"), 64)
		lng, lngErr := strconv.ParseFloat(get(row, "longitude"), 64)
		if latErr == nil && lngErr == nil {
			d.Location = &domain.GeoPoint{Lat: lat, Lng: lng}
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}
