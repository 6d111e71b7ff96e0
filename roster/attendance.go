package roster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format selects the attendance log flavour - 'bot' files are the
// comma-separated records produced by the attendance bot, 'plain' files are
// the older one-username-per-line lists.
type Format string

const (
	FormatBot   Format = "bot"
	FormatPlain Format = "plain"
)

// LoadAttendance reads the attendance log and returns the username tokens in
// file order, duplicates included. A student who checked in twice appears
// twice.
func LoadAttendance(file string, format Format) ([]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read attendance file (%w)", err)
	}

	defer f.Close()

	usernames, err := ParseAttendance(f, format)
	if err != nil {
		return nil, fmt.Errorf("unable to parse attendance file %s (%w)", file, err)
	}

	return usernames, nil
}

func ParseAttendance(r io.Reader, format Format) ([]string, error) {
	switch format {
	case FormatBot, "":
		return parseBot(r)

	case FormatPlain:
		return parsePlain(r)

	default:
		return nil, fmt.Errorf("unknown attendance log format '%v'", format)
	}
}

// parseBot extracts the username from each record: the first comma-delimited
// field with a '#' prefix. The '#' is part of the username as stored in the
// gradebook and is kept. A record without a '#' field fails the whole parse.
func parseBot(r io.Reader) ([]string, error) {
	usernames := []string{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		token := ""
		for _, field := range strings.SplitN(scanner.Text(), ",", 2) {
			if strings.HasPrefix(field, "#") {
				token = strings.TrimSpace(field)
				break
			}
		}

		if token == "" {
			return nil, fmt.Errorf("no username in record at line %v", line)
		}

		usernames = append(usernames, token)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return usernames, nil
}

func parsePlain(r io.Reader) ([]string, error) {
	usernames := []string{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if username := strings.TrimSpace(scanner.Text()); username != "" {
			usernames = append(usernames, username)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return usernames, nil
}
