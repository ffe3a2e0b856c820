// Package ingest loads the governance tables: HTTP transfer, CSV row
// decoding, typed record mapping, and the streamed block index build.
package ingest

import (
	"encoding/csv"
	"errors"
	"io"
)

// Row is a single header-keyed CSV record.
type Row map[string]string

// RowScanner streams header-keyed rows from a CSV source. Malformed records
// (parse errors, rows shorter than the header) are skipped and counted, not
// fatal; only transport-level failures terminate the scan.
type RowScanner struct {
	reader  *csv.Reader
	header  []string
	current Row
	rows    int
	skipped int
	err     error
	done    bool
}

// NewRowScanner creates a scanner reading CSV with a leading header row.
func NewRowScanner(r io.Reader) *RowScanner {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &RowScanner{reader: cr}
}

// Scan advances to the next valid row. It returns false at end of input or
// on a non-recoverable read error.
func (s *RowScanner) Scan() bool {
	if s.done {
		return false
	}

	if s.header == nil {
		header, err := s.reader.Read()
		if err != nil {
			s.done = true
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
			return false
		}
		s.header = header
	}

	for {
		record, err := s.reader.Read()
		if errors.Is(err, io.EOF) {
			s.done = true
			return false
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				s.rows++
				s.skipped++
				continue
			}
			s.done = true
			s.err = err
			return false
		}

		s.rows++
		if len(record) < len(s.header) {
			s.skipped++
			continue
		}

		row := make(Row, len(s.header))
		for i, name := range s.header {
			row[name] = record[i]
		}
		s.current = row
		return true
	}
}

// Row returns the most recently scanned row.
func (s *RowScanner) Row() Row {
	return s.current
}

// Rows returns the number of records consumed so far, valid or not.
func (s *RowScanner) Rows() int {
	return s.rows
}

// Skipped returns the number of malformed records dropped so far.
func (s *RowScanner) Skipped() int {
	return s.skipped
}

// Err returns the terminal error, if the scan ended on one.
func (s *RowScanner) Err() error {
	return s.err
}

// ReadRows consumes an entire CSV source and returns its valid rows plus the
// count of malformed rows that were skipped.
func ReadRows(r io.Reader) ([]Row, int, error) {
	scanner := NewRowScanner(r)
	var rows []Row
	for scanner.Scan() {
		rows = append(rows, scanner.Row())
	}
	if err := scanner.Err(); err != nil {
		return nil, scanner.Skipped(), err
	}
	return rows, scanner.Skipped(), nil
}
