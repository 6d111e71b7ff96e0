package roster

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseAttendanceBotFormat(t *testing.T) {
	expected := []string{"#alice", "#bob", "#alice"}

	log := `#alice,2023-09-28 18:01:22
#bob,2023-09-28 18:01:25
#alice,2023-09-28 19:15:40
`

	usernames, err := ParseAttendance(strings.NewReader(log), FormatBot)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseAttendance (%v)", err)
	}

	if !reflect.DeepEqual(usernames, expected) {
		t.Errorf("Incorrect usernames\n   expected: %v\n   got:      %v\n", expected, usernames)
	}
}

func TestParseAttendanceBotFormatWithUsernameOnlyRecords(t *testing.T) {
	expected := []string{"#alice", "#bob"}

	log := "#alice\n#bob\n"

	usernames, err := ParseAttendance(strings.NewReader(log), FormatBot)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseAttendance (%v)", err)
	}

	if !reflect.DeepEqual(usernames, expected) {
		t.Errorf("Incorrect usernames\n   expected: %v\n   got:      %v\n", expected, usernames)
	}
}

func TestParseAttendanceBotFormatWithMissingUsername(t *testing.T) {
	log := `#alice,2023-09-28 18:01:22
bob,2023-09-28 18:01:25
`

	_, err := ParseAttendance(strings.NewReader(log), FormatBot)
	if err == nil {
		t.Fatalf("Expected error return for record without a username, got %v", err)
	}
}

func TestParseAttendancePlainFormat(t *testing.T) {
	expected := []string{"#alice", "#bob", "#alice"}

	log := "#alice\n#bob\n\n#alice\n"

	usernames, err := ParseAttendance(strings.NewReader(log), FormatPlain)
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseAttendance (%v)", err)
	}

	if !reflect.DeepEqual(usernames, expected) {
		t.Errorf("Incorrect usernames\n   expected: %v\n   got:      %v\n", expected, usernames)
	}
}

func TestParseAttendanceWithUnknownFormat(t *testing.T) {
	_, err := ParseAttendance(strings.NewReader("#alice\n"), Format("qwerty"))
	if err == nil {
		t.Fatalf("Expected error return for unknown format, got %v", err)
	}
}

func TestLoadAttendanceWithMissingFile(t *testing.T) {
	_, err := LoadAttendance("no-such-file", FormatBot)
	if err == nil {
		t.Fatalf("Expected error return for missing file, got %v", err)
	}
}
