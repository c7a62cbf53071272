// Package exchange reads and writes the flat CSV form of the session
// ledger. Parsing is all-or-nothing: the whole file is decoded and
// checked before any row reaches the ledger, so a malformed file
// never leaves a partial import behind.
package exchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"chrona/internal/domain"
)

// TimeLayout is the timestamp format used in CSV files.
const TimeLayout = "2006-01-02 15:04:05"

// Header is the required CSV column order.
var Header = []string{"id", "start", "end", "app", "category", "notes", "duration_min"}

// Write serializes sessions as CSV in ledger order.
func Write(w io.Writer, sessions []*domain.Session) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, s := range sessions {
		row := []string{
			s.ID,
			s.StartedAt.Format(TimeLayout),
			s.EndedAt.Format(TimeLayout),
			s.App,
			string(s.Category),
			s.Notes,
			strconv.FormatFloat(s.DurationMin, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// Parse decodes a full CSV stream into session records. Durations are
// taken from the file as-is (the source is trusted); only structural
// and format errors are rejected. All row errors are accumulated and
// returned together so the user sees the whole damage at once.
func Parse(r io.Reader) ([]*domain.Session, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	head, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty file: missing csv header")
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	if err := checkHeader(head); err != nil {
		return nil, err
	}

	var sessions []*domain.Session
	var errs []error
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", line, err))
			continue
		}
		s, err := parseRow(record)
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", line, err))
			continue
		}
		sessions = append(sessions, s)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return sessions, nil
}

func checkHeader(head []string) error {
	for i, want := range Header {
		got := strings.ToLower(strings.TrimSpace(head[i]))
		if got != want {
			return fmt.Errorf("unexpected csv header: column %d is %q, want %q", i+1, head[i], want)
		}
	}
	return nil
}

func parseRow(record []string) (*domain.Session, error) {
	start, err := time.ParseInLocation(TimeLayout, record[1], time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid start %q (expected %s)", record[1], TimeLayout)
	}
	end, err := time.ParseInLocation(TimeLayout, record[2], time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid end %q (expected %s)", record[2], TimeLayout)
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(record[6]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid duration_min %q", record[6])
	}
	if duration < 0 {
		return nil, fmt.Errorf("negative duration_min %q", record[6])
	}

	return &domain.Session{
		ID:          strings.TrimSpace(record[0]),
		StartedAt:   start,
		EndedAt:     end,
		App:         record[3],
		Category:    domain.Category(record[4]),
		Notes:       record[5],
		DurationMin: duration,
	}, nil
}
