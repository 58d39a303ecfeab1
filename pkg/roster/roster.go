// Package roster reads badge records from a CSV file.
//
// The first row names the columns. Only the name column is required; title
// and pronoun columns may be missing entirely or left blank per row. Rows
// keep their file order, which is the order badges are printed in.
package roster

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/errors"
)

// Default column names.
const (
	DefaultNameColumn     = "badge_name"
	DefaultTitleColumn    = "badge_title"
	DefaultPronounsColumn = "badge_gender"
)

// Record is one badge holder.
type Record struct {
	Name     string
	Title    string
	Pronouns string
	// Line is the 1-based line of the record in the input file.
	Line int
}

// Columns names the CSV header fields that feed a Record.
type Columns struct {
	Name     string
	Title    string
	Pronouns string
}

// DefaultColumns returns the standard column names.
func DefaultColumns() Columns {
	return Columns{
		Name:     DefaultNameColumn,
		Title:    DefaultTitleColumn,
		Pronouns: DefaultPronounsColumn,
	}
}

// ReadFile reads the records in the CSV file at path.
func ReadFile(path string, cols Columns) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open input %s", path)
	}
	defer f.Close()
	return Read(f, cols)
}

// Read parses CSV records from r. Header names are matched ignoring case
// and surrounding whitespace. Blank lines are skipped. A row without a name
// is an error naming its line.
func Read(r io.Reader, cols Columns) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidInput, "input is empty, expected a header row")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read header")
	}

	idx := indexHeader(header)
	nameCol, ok := idx[normalize(cols.Name)]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing name column %q", cols.Name)
	}
	titleCol := column(idx, cols.Title)
	pronounCol := column(idx, cols.Pronouns)

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
		}
		line, _ := cr.FieldPos(0)
		if blank(row) {
			continue
		}

		rec := Record{
			Name:     field(row, nameCol),
			Title:    field(row, titleCol),
			Pronouns: field(row, pronounCol),
			Line:     line,
		}
		if rec.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: empty %s", line, cols.Name)
		}
		records = append(records, rec)
	}
	return records, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = normalize(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	return idx
}

func column(idx map[string]int, name string) int {
	if name == "" {
		return -1
	}
	if i, ok := idx[normalize(name)]; ok {
		return i
	}
	return -1
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
