package roster

import (
	"errors"
	"sort"
	"strconv"
)

var (
	ErrUndefinedColumn   = errors.New("undefined column name")
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrInvalidAttendance = errors.New("invalid attendance count")
)

// Record is a single student row from the gradebook worksheet. Records are
// value types - reconciliation replaces the record in the roster rather than
// updating it in place.
type Record struct {
	ID       string
	Username string
	Score    int
}

// Roster is the set of enrolled students for a tutorial session, keyed by
// username. Usernames are unique - a worksheet with a duplicate username
// fails on load.
type Roster map[string]Record

// Records returns all the roster records, sorted by student ID.
func (r Roster) Records() []Record {
	records := make([]Record, 0, len(r))
	for _, record := range r {
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool { return idLess(records[i].ID, records[j].ID) })

	return records
}

// idLess orders student IDs numerically when both parse as integers and
// lexicographically otherwise.
func idLess(p, q string) bool {
	if u, err := strconv.Atoi(p); err == nil {
		if v, err := strconv.Atoi(q); err == nil {
			return u < v
		}
	}

	return p < q
}
