package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rollcall/rollcall-app-sheets/config"
	"github.com/rollcall/rollcall-app-sheets/roster"
)

var updateCmd = Update{
	dir:        "",
	roster:     "",
	attendance: "",
	tutorial:   0,
	maxScore:   0,
	policy:     "",
	format:     "",
	reset:      false,
	dryrun:     false,
	yes:        false,
}

// UpdateCmd reconciles a bot attendance log against the gradebook workbook.
var UpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Reconciles a bot attendance log against the gradebook workbook",
	Long: `Locates the gradebook workbook and the bot attendance log by filename prefix,
matches the attendees against the student list in the 'Tutorial <N>' worksheet,
recalculates the per-session attendance scores and writes them back to the
worksheet.

Attendees that are not in the student list are skipped with a warning. A
student checked in more than twice in one session fails the run before
anything is written.`,
	Example: `  rollcall-app-sheets update --tutorial 6
  rollcall-app-sheets update --tutorial 6 --dir ./gradebooks --dry-run
  rollcall-app-sheets --config rollcall.yaml update --reset`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateCmd.Execute(cmd)
	},
}

type Update struct {
	dir        string
	roster     string
	attendance string
	tutorial   int
	maxScore   int
	policy     string
	format     string
	reset      bool
	dryrun     bool
	yes        bool
}

func init() {
	flagset := UpdateCmd.Flags()

	flagset.StringVar(&updateCmd.dir, "dir", updateCmd.dir, "Directory scanned for the gradebook and attendance files. Defaults to the working directory")
	flagset.StringVar(&updateCmd.roster, "roster", updateCmd.roster, "Gradebook workbook filename prefix e.g. 'tutorials_merged'")
	flagset.StringVar(&updateCmd.attendance, "attendance", updateCmd.attendance, "Bot attendance log filename prefix e.g. 'bot_input'")
	flagset.IntVar(&updateCmd.tutorial, "tutorial", updateCmd.tutorial, "Tutorial number for the week - names the 'Tutorial <N>' worksheet")
	flagset.IntVar(&updateCmd.maxScore, "max-score", updateCmd.maxScore, "Maximum score a student can get for the session")
	flagset.StringVar(&updateCmd.policy, "policy", updateCmd.policy, "Scoring rule - 'replace' or 'monotonic'")
	flagset.StringVar(&updateCmd.format, "format", updateCmd.format, "Attendance log format - 'bot' or 'plain'")
	flagset.BoolVar(&updateCmd.reset, "reset", updateCmd.reset, "Resets all existing scores in the worksheet before updating")
	flagset.BoolVar(&updateCmd.dryrun, "dry-run", updateCmd.dryrun, "Runs the reconciliation without writing to the workbook")
	flagset.BoolVar(&updateCmd.yes, "yes", updateCmd.yes, "Answers 'y' to the reset confirmation prompt")
}

func (cmd *Update) Execute(c *cobra.Command) error {
	cfg, err := cmd.configure(c)
	if err != nil {
		return err
	}

	policy, err := roster.LookupPolicy(cfg.Policy)
	if err != nil {
		return err
	}

	// ... resetting is destructive: get confirmation before going anywhere
	//     near the workbook
	if !cfg.Overwrite {
		warnf("you are about to reset all existing scores in 'Tutorial %v'", cfg.Tutorial)
		if !cmd.yes && !confirm() {
			fmt.Println("Aborting...")
			return nil
		}
	} else {
		infof("updating scores in 'Tutorial %v'", cfg.Tutorial)
	}

	workbook, err := roster.FindFile(cfg.Workdir, cfg.Roster)
	if err != nil {
		return fmt.Errorf("unable to locate gradebook file '%s*' (%w)", cfg.Roster, err)
	}

	infof("found file %s", workbook)

	attendance, err := roster.FindFile(cfg.Workdir, cfg.Attendance)
	if err != nil {
		return fmt.Errorf("unable to locate attendance file '%s*' (%w)", cfg.Attendance, err)
	}

	infof("found file %s", attendance)

	usernames, err := roster.LoadAttendance(attendance, roster.Format(cfg.Format))
	if err != nil {
		return err
	}

	infof("loaded %v attendance records from %s", len(usernames), attendance)

	w := roster.NewWorkbook(workbook, cfg.Tutorial)

	students, err := w.Load(cfg.Overwrite, cfg.MaxScore)
	if err != nil {
		return err
	}

	infof("found %v students in %s", len(students), workbook)

	records, report, err := roster.Reconcile(usernames, students, policy, cfg.MaxScore)
	if err != nil {
		return err
	}

	for _, u := range report.Updated {
		infof("updated %-25v -  old:%v  new:%v", u.Username, u.Old, u.New)
	}

	for _, username := range report.Unmatched {
		warnf("username %v not found in student list", username)
	}

	if cmd.dryrun {
		infof("dry run - %s not updated", workbook)
		return nil
	}

	count, err := w.Save(records)
	if err != nil {
		return err
	}

	infof("successfully wrote %v students to %s", count, workbook)

	return nil
}

// configure resolves the effective run configuration: defaults, overlaid with
// the --config file (if any), overlaid with the flags that were set on the
// command line.
func (cmd *Update) configure(c *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if Options.Config != "" {
		loaded, err := config.Load(Options.Config)
		if err != nil {
			return cfg, err
		}

		cfg = loaded
	}

	flagset := c.Flags()

	if flagset.Changed("dir") {
		cfg.Workdir = cmd.dir
	}

	if flagset.Changed("roster") {
		cfg.Roster = cmd.roster
	}

	if flagset.Changed("attendance") {
		cfg.Attendance = cmd.attendance
	}

	if flagset.Changed("tutorial") {
		cfg.Tutorial = cmd.tutorial
	}

	if flagset.Changed("max-score") {
		cfg.MaxScore = cmd.maxScore
	}

	if flagset.Changed("policy") {
		cfg.Policy = cmd.policy
	}

	if flagset.Changed("format") {
		cfg.Format = cmd.format
	}

	if cmd.reset {
		cfg.Overwrite = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func confirm() bool {
	fmt.Print("Do you wish to continue (y/N)?: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}

	return strings.ToLower(strings.TrimSpace(line)) == "y"
}
