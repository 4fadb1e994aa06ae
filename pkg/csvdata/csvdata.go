// Package csvdata loads mail-merge recipient data from CSV files.
package csvdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// headerMinFields is the header detection rule: the first row containing
// at least this many fields is the header row. Rows before it are
// discarded, every row after it is a data row. The rule is fragile on
// purpose and must not be "improved".
const headerMinFields = 3

// ErrNoHeader indicates the file contains no row with enough fields to
// qualify as a header.
var ErrNoHeader = errors.New("no header row found (no row with 3 or more fields)")

// Dataset holds the parsed CSV content: the detected header row and the
// ordered data rows that followed it.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// Load reads and parses the CSV file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Read parses CSV content from r. Embedded NUL bytes are stripped before
// parsing, matching files exported from tools that pad fields with NULs.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(&nulStripper{r: r})
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	ds := &Dataset{}
	for _, rec := range records {
		if ds.Headers == nil {
			if len(rec) >= headerMinFields {
				ds.Headers = rec
			}
			continue
		}
		ds.Rows = append(ds.Rows, rec)
	}

	if ds.Headers == nil {
		return nil, ErrNoHeader
	}
	return ds, nil
}

// Count returns the number of data rows.
func (d *Dataset) Count() int {
	return len(d.Rows)
}

// Context builds the template context for one row: header names mapped to
// the row's fields. Pairing stops at the shorter of the two lists and a
// duplicated header keeps the last value. The whole mapping is also
// reachable under the "data" key, so templates can index headers that are
// not valid identifiers.
func (d *Dataset) Context(row []string) map[string]any {
	fields := make(map[string]any, len(d.Headers))
	for i, h := range d.Headers {
		if i >= len(row) {
			break
		}
		fields[h] = row[i]
	}

	ctx := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		ctx[k] = v
	}
	if _, ok := ctx["data"]; !ok {
		ctx["data"] = fields
	}
	return ctx
}

// EmailColumn guesses which header holds email addresses. It returns the
// first header containing "email" or "e-mail", falling back to the first
// header. Meant as a prompt default, not a guarantee.
func (d *Dataset) EmailColumn() string {
	for _, h := range d.Headers {
		l := strings.ToLower(h)
		if strings.Contains(l, "email") || strings.Contains(l, "e-mail") {
			return h
		}
	}
	if len(d.Headers) > 0 {
		return d.Headers[0]
	}
	return ""
}

// nulStripper removes NUL bytes from the wrapped reader's stream.
type nulStripper struct {
	r io.Reader
}

func (s *nulStripper) Read(p []byte) (int, error) {
	for {
		n, err := s.r.Read(p)
		if n > 0 {
			k := 0
			for i := range n {
				if p[i] != 0 {
					p[k] = p[i]
					k++
				}
			}
			// A read that stripped every byte must not surface as
			// (0, nil), or long NUL runs starve the consumer into
			// io.ErrNoProgress. Read again until something survives.
			if k > 0 || err != nil {
				return k, err
			}
			continue
		}
		return n, err
	}
}
