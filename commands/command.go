package commands

import (
	"fmt"
	"log"
	"strings"
)

const APP = "rollcall-app-sheets"
const VERSION = "v0.1.0"

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

// Options are the global command line options, bound to the root command's
// persistent flags.
var Options = struct {
	Config string
	Debug  bool
}{
	Config: "",
	Debug:  false,
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func debugf(format string, args ...any) {
	if Options.Debug {
		log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
	}
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}

func errorf(format string, args ...any) {
	log.Printf("%-5s %s", "ERROR", fmt.Sprintf(format, args...))
}
