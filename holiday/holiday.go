// Package holiday provides a calendar holiday set used to keep generated
// transactions off non-banking days.
//
// The set holds ISO 8601 date strings (YYYY-MM-DD) supplied by the caller,
// typically loaded from a JSON file of public holidays. Saturdays are a
// separate, calendar-computed rule applied by the statement package; they
// are never merged into the set.
package holiday

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DateFormat is the ISO 8601 date layout used for set membership.
const DateFormat = "2006-01-02"

// Set is a collection of calendar dates keyed by their ISO date string.
type Set map[string]struct{}

// NewSet creates an empty holiday set.
func NewSet() Set {
	return make(Set)
}

// FromStrings builds a set from ISO date strings. Invalid entries are
// rejected so a malformed holiday file fails loudly instead of silently
// never matching.
func FromStrings(dates []string) (Set, error) {
	s := make(Set, len(dates))
	for _, d := range dates {
		if _, err := time.Parse(DateFormat, d); err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", d, err)
		}
		s[d] = struct{}{}
	}
	return s, nil
}

// FromDates builds a set from time values, truncated to their calendar date.
func FromDates(dates ...time.Time) Set {
	s := make(Set, len(dates))
	for _, d := range dates {
		s[d.Format(DateFormat)] = struct{}{}
	}
	return s
}

// Add inserts a date into the set.
func (s Set) Add(date time.Time) {
	s[date.Format(DateFormat)] = struct{}{}
}

// Contains reports whether the calendar date of t is in the set.
func (s Set) Contains(t time.Time) bool {
	_, ok := s[t.Format(DateFormat)]
	return ok
}

// ContainsString reports whether an ISO date string is in the set.
func (s Set) ContainsString(date string) bool {
	_, ok := s[date]
	return ok
}

// Dates returns the member dates as ISO strings in unspecified order.
func (s Set) Dates() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	return dates
}

// holidayFile is the on-disk JSON object form: {"dates": ["2024-01-01", ...]}.
type holidayFile struct {
	Dates []string `json:"dates"`
}

// Load reads a holiday set from a JSON file. Both a bare array of ISO date
// strings and an object with a "dates" key are accepted, matching the two
// shapes holiday feeds commonly come in.
func Load(path string) (Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday file: %w", err)
	}

	var dates []string
	if err := json.Unmarshal(raw, &dates); err != nil {
		var file holidayFile
		if err := json.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("invalid holiday file %s: %w", path, err)
		}
		dates = file.Dates
	}

	return FromStrings(dates)
}
