package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed dataset.csv
var embeddedDataset []byte

// ErrDuplicateQuadkey is returned when two rows share an identifier.
var ErrDuplicateQuadkey = errors.New("duplicate quadkey")

// Columns of the upstream dataset-links layout.
const (
	colLocation = "location"
	colQuadkey  = "quadkey"
	colURL      = "url"
	colSize     = "size"
	colDate     = "uploaddate"
)

// Load returns the catalog records. An empty path loads the embedded dataset.
func Load(path string) ([]Record, error) {
	if strings.TrimSpace(path) == "" {
		return Parse(bytes.NewReader(embeddedDataset))
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = file.Close() }()

	records, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Parse reads CSV rows with a Location,QuadKey,Url,Size,UploadDate header.
// Header names are matched case-insensitively and may appear in any order.
func Parse(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse catalog: missing header")
		}
		return nil, fmt.Errorf("parse catalog header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, required := range []string{colLocation, colQuadkey, colURL, colSize, colDate} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("parse catalog: missing column %q", required)
		}
	}

	var records []Record
	seen := make(map[string]int)
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("parse catalog line %d: %w", line, err)
		}
		field := func(name string) string {
			i := index[name]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		rec := Record{
			Region:  field(colLocation),
			Quadkey: field(colQuadkey),
			URL:     field(colURL),
			Size:    field(colSize),
			Updated: field(colDate),
		}
		if rec.Quadkey == "" {
			return nil, fmt.Errorf("parse catalog line %d: empty quadkey", line)
		}
		if prev, ok := seen[rec.Quadkey]; ok {
			return nil, fmt.Errorf("parse catalog line %d: %w %s (first seen on line %d)", line, ErrDuplicateQuadkey, rec.Quadkey, prev)
		}
		seen[rec.Quadkey] = line
		records = append(records, rec)
	}
	return records, nil
}
