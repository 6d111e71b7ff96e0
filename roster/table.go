package roster

import (
	"fmt"
	"strconv"
	"strings"
)

// The gradebook schema is fixed: the first three header cells of the sheet
// must be 'OrgDefinedId', 'Username' and the session score column (any header
// with a 'Tutorial' prefix), in any order. Anything else is a schema error.
type columns struct {
	id       int
	username int
	score    int
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{id: -1, username: -1, score: -1}

	for i := 0; i < 3; i++ {
		v := cell(header, i)

		switch {
		case v == "OrgDefinedId":
			cols.id = i

		case v == "Username":
			cols.username = i

		case strings.HasPrefix(v, "Tutorial"):
			cols.score = i

		default:
			return columns{}, fmt.Errorf("%w '%s'", ErrUndefinedColumn, v)
		}
	}

	// A repeated header leaves one of the roles unassigned.
	if cols.id < 0 || cols.username < 0 || cols.score < 0 {
		return columns{}, fmt.Errorf("%w (duplicate header)", ErrUndefinedColumn)
	}

	return cols, nil
}

// makeRoster builds the username-keyed roster from the raw worksheet rows
// (row 0 is the header row). In carry mode a score that is present and
// greater than zero is carried forward (clamped to maxScore); otherwise the
// score is reset to 0 ahead of reconciliation.
func makeRoster(rows [][]string, carry bool, maxScore int) (Roster, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	// ... count non-empty rows to bound the iteration
	count := 0
	for _, row := range rows {
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				count++
				break
			}
		}
	}

	// ... records
	roster := Roster{}
	for _, row := range rows[1:count] {
		username := cell(row, cols.username)
		if _, ok := roster[username]; ok {
			return nil, fmt.Errorf("%w '%s'", ErrDuplicateUsername, username)
		}

		score, present, err := parseScore(cell(row, cols.score))
		if err != nil {
			return nil, err
		}

		record := Record{
			ID:       cell(row, cols.id),
			Username: username,
			Score:    0,
		}

		if carry && present && score > 0 {
			record.Score = min(score, maxScore)
		}

		roster[username] = record
	}

	return roster, nil
}

// rosterToRows lays the records out in worksheet column order. A score of 0
// is stored as an empty cell rather than a literal 0.
func rosterToRows(records []Record, cols columns) [][]any {
	rows := make([][]any, len(records))

	for i, record := range records {
		row := make([]any, 3)

		row[cols.id] = record.ID
		row[cols.username] = record.Username

		if record.Score > 0 {
			row[cols.score] = record.Score
		} else {
			row[cols.score] = nil
		}

		rows[i] = row
	}

	return rows
}

func parseScore(v string) (int, bool, error) {
	s := strings.TrimSpace(v)
	if s == "" {
		return 0, false, nil
	}

	if score, err := strconv.Atoi(s); err == nil {
		return score, true, nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true, nil
	}

	return 0, false, fmt.Errorf("invalid score '%s'", v)
}

func cell(row []string, ix int) string {
	if ix < 0 || ix >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[ix])
}
