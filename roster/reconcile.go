package roster

import (
	"fmt"
	"sort"
)

// Policy computes the new session score from the student's current score and
// the number of times they checked in. Both rules treat attendance as an
// upper bound contribution for the session, not a running tally.
type Policy func(score int, count int, maxScore int) int

// ReplacePolicy is the current scoring rule: a student below the cap gets the
// check-in count as their score - an earlier partial credit is overwritten,
// not added to. A student already at the cap is never reduced by a later run.
func ReplacePolicy(score int, count int, maxScore int) int {
	if score < maxScore {
		return count
	}

	return maxScore
}

// MonotonicPolicy is the legacy scoring rule: a first check-in scores 1 and a
// nonzero score is never lowered (or raised above the cap) by attendance
// alone.
func MonotonicPolicy(score int, count int, maxScore int) int {
	if score <= 0 {
		return 1
	}

	return min(score, maxScore)
}

var policies = map[string]Policy{
	"replace":   ReplacePolicy,
	"monotonic": MonotonicPolicy,
}

func LookupPolicy(name string) (Policy, error) {
	if policy, ok := policies[name]; ok {
		return policy, nil
	}

	return nil, fmt.Errorf("unknown scoring policy '%s'", name)
}

// Update records a single score transition for the run report.
type Update struct {
	Username string
	Old      int
	New      int
}

// Report is the outcome of a reconciliation run: the score transitions
// applied and the attendees that could not be matched to the roster.
type Report struct {
	Updated   []Update
	Unmatched []string
}

// Reconcile merges the attendance tokens into the roster. Usernames not in
// the roster are skipped and reported - they never become an error. A
// username checked in more than twice in one session fails the run before
// anything is written.
//
// Returns the full set of roster records - attended or not - sorted by
// student ID.
func Reconcile(usernames []string, roster Roster, policy Policy, maxScore int) ([]Record, Report, error) {
	report := Report{}

	marks := map[string]int{}
	for _, username := range usernames {
		marks[username]++
	}

	distinct := make([]string, 0, len(marks))
	for username := range marks {
		distinct = append(distinct, username)
	}

	sort.Strings(distinct)

	for _, username := range distinct {
		record, ok := roster[username]
		if !ok {
			report.Unmatched = append(report.Unmatched, username)
			continue
		}

		if marks[username] > 2 {
			return nil, Report{}, fmt.Errorf("%w for username %s (count: %v)", ErrInvalidAttendance, username, marks[username])
		}

		score := policy(record.Score, marks[username], maxScore)

		roster[username] = Record{
			ID:       record.ID,
			Username: username,
			Score:    score,
		}

		report.Updated = append(report.Updated, Update{
			Username: username,
			Old:      record.Score,
			New:      score,
		})
	}

	return roster.Records(), report, nil
}
