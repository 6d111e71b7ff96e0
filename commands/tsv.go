package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// sheetToTSV writes a gradebook worksheet out as TSV, with the columns
// reordered to 'OrgDefinedId', 'Username', 'Tutorial <N>' and then whatever
// else the worksheet carries. Rows without a username are dropped.
func sheetToTSV(f io.Writer, data *sheets.ValueRange) error {
	if len(data.Values) == 0 {
		return fmt.Errorf("empty sheet")
	}

	// .. build index
	index := map[string]int{}
	row := data.Values[0]
	for i, v := range row {
		k := normalise(v.(string))
		if _, ok := index[k]; ok {
			return fmt.Errorf("duplicate column name '%s'", v.(string))
		}

		index[k] = i
	}

	// ... header
	row = data.Values[0]
	header := []string{}

	if ix, ok := index["orgdefinedid"]; ok {
		header = append(header, clean(row[ix].(string)))
	}

	if ix, ok := index["username"]; ok {
		header = append(header, clean(row[ix].(string)))
	}

	score := -1
	for i, v := range row {
		if strings.HasPrefix(normalise(v.(string)), "tutorial") {
			score = i
			header = append(header, clean(row[i].(string)))
			break
		}
	}

	for i, v := range row {
		k := normalise(v.(string))
		if k != "orgdefinedid" && k != "username" && i != score {
			header = append(header, clean(v.(string)))
		}
	}

	if len(header) == 0 {
		return fmt.Errorf("missing/invalid header row")
	}

	if len(header) < 1 || normalise(header[0]) != "orgdefinedid" {
		return fmt.Errorf("missing 'OrgDefinedId' column")
	}

	if len(header) < 2 || normalise(header[1]) != "username" {
		return fmt.Errorf("missing 'Username' column")
	}

	if len(header) < 3 || !strings.HasPrefix(normalise(header[2]), "tutorial") {
		return fmt.Errorf("missing 'Tutorial' score column")
	}

	// ... records
	records := [][]string{}
	for _, row := range data.Values[1:] {
		if ix := index["username"]; ix >= len(row) {
			continue
		} else if username, ok := row[ix].(string); !ok || strings.TrimSpace(username) == "" {
			continue
		}

		record := []string{}
		for _, h := range header {
			k := normalise(h)
			v := ""
			if ix, ok := index[k]; ok && ix < len(row) {
				if u, ok := row[ix].(string); ok {
					v = u
				}
			}

			record = append(record, clean(v))
		}

		records = append(records, record)
	}

	// ... write to file
	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write(header)
	for _, record := range records {
		w.Write(record)
	}

	w.Flush()

	return nil
}

// tsvToSheet reads a TSV file back into a pair of value ranges - the header
// row and the data rows - addressed within the given worksheet range.
func tsvToSheet(f io.Reader, area string) (*sheets.ValueRange, *sheets.ValueRange, error) {
	match := regexp.MustCompile(`(.+?)!([a-zA-Z]+)([0-9]+):([a-zA-Z]+)([0-9]+)?`).FindStringSubmatch(area)
	if len(match) < 5 {
		return nil, nil, fmt.Errorf("invalid spreadsheet range '%s'", area)
	}

	name := match[1]
	left := match[2]
	top, _ := strconv.Atoi(match[3])
	right := match[4]

	r := csv.NewReader(f)
	r.Comma = '\t'

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("TSV file is empty")
	}

	// header
	h := make([]interface{}, len(records[0]))

	for i, v := range records[0] {
		h[i] = fmt.Sprintf("%v", v)
	}

	header := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s%v", name, left, top, right, top),
		Values: [][]interface{}{h},
	}

	// data
	rows := make([][]interface{}, 0)

	for _, record := range records[1:] {
		row := make([]interface{}, len(record))

		for i, v := range record {
			row[i] = fmt.Sprintf("%v", v)
		}

		rows = append(rows, row)
	}

	data := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s", name, left, top+1, right),
		Values: rows,
	}

	return &header, &data, nil
}
