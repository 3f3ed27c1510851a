package seasons

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
)

const (
	minYear = 1000
	maxYear = 9998
)

var (
	// ErrInvalidRange is returned when the start year is after the end year.
	ErrInvalidRange = errors.New("start year must not be after end year")
	// ErrInvalidYear is returned when a year cannot produce an 8-digit season identifier.
	ErrInvalidYear = errors.New("year must be a four-digit year")
)

// ID is an 8-digit season identifier, e.g. "20242025" for the season starting in 2024.
type ID string

// New builds the season identifier for the season starting in startYear.
func New(startYear int) ID {
	return ID(strconv.Itoa(startYear) + strconv.Itoa(startYear+1))
}

// StartYear returns the first calendar year of the season, or 0 when the id is malformed.
func (id ID) StartYear() int {
	if len(id) != 8 {
		return 0
	}
	year, err := strconv.Atoi(string(id[:4]))
	if err != nil {
		return 0
	}
	return year
}

// Label renders the id as "2024-2025" for logs.
func (id ID) Label() string {
	if len(id) != 8 {
		return string(id)
	}
	return string(id[:4]) + "-" + string(id[4:])
}

func (id ID) String() string {
	return string(id)
}

// Range is an inclusive span of season start years.
type Range struct {
	start int
	end   int
}

// NewRange validates the years and returns the inclusive range.
func NewRange(start, end int) (Range, error) {
	if err := validateYear(start); err != nil {
		return Range{}, fmt.Errorf("start year %d: %w", start, err)
	}
	if err := validateYear(end); err != nil {
		return Range{}, fmt.Errorf("end year %d: %w", end, err)
	}
	if start > end {
		return Range{}, fmt.Errorf("%d > %d: %w", start, end, ErrInvalidRange)
	}
	return Range{start: start, end: end}, nil
}

func validateYear(year int) error {
	if year < minYear || year > maxYear {
		return ErrInvalidYear
	}
	return nil
}

// Start returns the first season start year.
func (r Range) Start() int { return r.start }

// End returns the last season start year.
func (r Range) End() int { return r.end }

// Len returns the number of seasons in the range.
func (r Range) Len() int {
	if r.start == 0 && r.end == 0 {
		return 0
	}
	return r.end - r.start + 1
}

// All yields each season id in ascending order. The sequence can be iterated repeatedly.
func (r Range) All() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		if r.Len() == 0 {
			return
		}
		for year := r.start; year <= r.end; year++ {
			if !yield(New(year)) {
				return
			}
		}
	}
}

// List collects the range into a slice.
func (r Range) List() []ID {
	return slices.Collect(r.All())
}

// Strings collects the range as plain strings for serialization.
func (r Range) Strings() []string {
	out := make([]string, 0, r.Len())
	for id := range r.All() {
		out = append(out, string(id))
	}
	return out
}
