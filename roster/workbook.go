package roster

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// Workbook is the gradebook xlsx file. Each tutorial session has its own
// worksheet, named 'Tutorial <N>'.
//
// The file is opened twice per run - a read pass for Load and a fresh
// writable handle for Save. The save is in place and not transactional: a
// concurrent writer to the same file is undefined behaviour.
type Workbook struct {
	file  string
	sheet string
}

func NewWorkbook(file string, tutorial int) Workbook {
	return Workbook{
		file:  file,
		sheet: fmt.Sprintf("Tutorial %v", tutorial),
	}
}

func (w Workbook) File() string {
	return w.file
}

func (w Workbook) Sheet() string {
	return w.sheet
}

// Load reads the tutorial worksheet into a roster. With carry set, scores
// already in the sheet are carried forward (clamped to maxScore); otherwise
// every score starts the run at 0.
func (w Workbook) Load(carry bool, maxScore int) (Roster, error) {
	f, err := excelize.OpenFile(w.file)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook %s (%w)", w.file, err)
	}

	defer f.Close()

	rows, err := f.GetRows(w.sheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read worksheet '%s' (%w)", w.sheet, err)
	}

	roster, err := makeRoster(rows, carry, maxScore)
	if err != nil {
		return nil, fmt.Errorf("unable to parse worksheet '%s' (%w)", w.sheet, err)
	}

	return roster, nil
}

// Save overwrites the id, username and score cells row by row, in student ID
// order, and persists the workbook to the path it was opened from. Returns
// the number of rows written.
func (w Workbook) Save(records []Record) (int, error) {
	f, err := excelize.OpenFile(w.file)
	if err != nil {
		return 0, fmt.Errorf("unable to open workbook %s (%w)", w.file, err)
	}

	defer f.Close()

	header, err := f.GetRows(w.sheet)
	if err != nil {
		return 0, fmt.Errorf("unable to read worksheet '%s' (%w)", w.sheet, err)
	}

	if len(header) == 0 {
		return 0, fmt.Errorf("empty sheet")
	}

	cols, err := resolveColumns(header[0])
	if err != nil {
		return 0, fmt.Errorf("unable to parse worksheet '%s' (%w)", w.sheet, err)
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return idLess(sorted[i].ID, sorted[j].ID) })

	for i, row := range rosterToRows(sorted, cols) {
		for col, v := range row {
			ref, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return 0, err
			}

			if err := f.SetCellValue(w.sheet, ref, v); err != nil {
				return 0, fmt.Errorf("unable to update worksheet '%s' (%w)", w.sheet, err)
			}
		}
	}

	if err := f.Save(); err != nil {
		return 0, fmt.Errorf("unable to write workbook %s (%w)", w.file, err)
	}

	return len(sorted), nil
}
