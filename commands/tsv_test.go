package commands

import (
	"reflect"
	"strings"
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestSheetToTSV(t *testing.T) {
	expected := `OrgDefinedId	Username	Tutorial 6	Email
#100	#alice	2	alice@example.com
#101	#bob		bob@example.com
`

	var f strings.Builder
	var data = sheets.ValueRange{
		Values: [][]interface{}{
			[]interface{}{"OrgDefinedId", "Username", "Tutorial 6", "Email"},
			[]interface{}{"#100", "#alice", "2", "alice@example.com"},
			[]interface{}{"#101", "#bob", "", "bob@example.com"},
		},
	}

	err := sheetToTSV(&f, &data)
	if err != nil {
		t.Fatalf("Unexpected error returned from sheetToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestSheetToTSVWithOutOfOrderColumns(t *testing.T) {
	expected := `OrgDefinedId	Username	Tutorial 6
#100	#alice	2
`

	var f strings.Builder
	var data = sheets.ValueRange{
		Values: [][]interface{}{
			[]interface{}{"Tutorial 6", "OrgDefinedId", "Username"},
			[]interface{}{"2", "#100", "#alice"},
		},
	}

	err := sheetToTSV(&f, &data)
	if err != nil {
		t.Fatalf("Unexpected error returned from sheetToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestSheetToTSVDropsRowsWithoutUsername(t *testing.T) {
	expected := `OrgDefinedId	Username	Tutorial 6
#100	#alice	2
`

	var f strings.Builder
	var data = sheets.ValueRange{
		Values: [][]interface{}{
			[]interface{}{"OrgDefinedId", "Username", "Tutorial 6"},
			[]interface{}{"#100", "#alice", "2"},
			[]interface{}{"#101", "", ""},
		},
	}

	err := sheetToTSV(&f, &data)
	if err != nil {
		t.Fatalf("Unexpected error returned from sheetToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestSheetToTSVWithEmptySheet(t *testing.T) {
	var f strings.Builder
	var data = sheets.ValueRange{}

	err := sheetToTSV(&f, &data)
	if err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}

func TestSheetToTSVWithMissingUsername(t *testing.T) {
	var f strings.Builder

	data := sheets.ValueRange{
		Values: [][]interface{}{
			[]interface{}{"OrgDefinedId", "Tutorial 6"},
		},
	}

	err := sheetToTSV(&f, &data)
	if err == nil {
		t.Fatalf("Expected error return for missing 'Username' column, got %v", err)
	}
}

func TestSheetToTSVWithMissingScoreColumn(t *testing.T) {
	var f strings.Builder

	data := sheets.ValueRange{
		Values: [][]interface{}{
			[]interface{}{"OrgDefinedId", "Username", "Email"},
		},
	}

	err := sheetToTSV(&f, &data)
	if err == nil {
		t.Fatalf("Expected error return for missing 'Tutorial' column, got %v", err)
	}
}

func TestSheetToTSVWithDuplicateColumn(t *testing.T) {
	var f strings.Builder

	data := sheets.ValueRange{
		Values: [][]interface{}{
			[]interface{}{"OrgDefinedId", "Username", "Username"},
		},
	}

	err := sheetToTSV(&f, &data)
	if err == nil {
		t.Fatalf("Expected error return for duplicate column, got %v", err)
	}
}

func TestTSVToSheet(t *testing.T) {
	tsv := `OrgDefinedId	Username	Tutorial 6
#100	#alice	2
#101	#bob
`

	header, data, err := tsvToSheet(strings.NewReader(tsv), "Tutorial 6!A1:C")
	if err != nil {
		t.Fatalf("Unexpected error returned from tsvToSheet (%v)", err)
	}

	if expected := "Tutorial 6!A1:C1"; header.Range != expected {
		t.Errorf("Incorrect header range - expected:%v, got:%v", expected, header.Range)
	}

	if expected := "Tutorial 6!A2:C"; data.Range != expected {
		t.Errorf("Incorrect data range - expected:%v, got:%v", expected, data.Range)
	}

	expected := [][]interface{}{
		[]interface{}{"#100", "#alice", "2"},
		[]interface{}{"#101", "#bob", ""},
	}

	if !reflect.DeepEqual(data.Values, expected) {
		t.Errorf("Incorrect data\n   expected: %v\n   got:      %v\n", expected, data.Values)
	}
}

func TestTSVToSheetWithInvalidRange(t *testing.T) {
	_, _, err := tsvToSheet(strings.NewReader("OrgDefinedId\tUsername\tTutorial 6\n"), "qwerty")
	if err == nil {
		t.Fatalf("Expected error return for invalid range, got %v", err)
	}
}
