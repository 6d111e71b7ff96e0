package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var getCmd = Get{
	workdir:     DEFAULT_WORKDIR,
	credentials: DEFAULT_CREDENTIALS,
	url:         "",
	area:        "",
	file:        time.Now().Format("gradebook 2006-01-02T150405.tsv"),
}

// GetCmd retrieves a gradebook worksheet from Google Sheets and stores it to
// a local TSV file.
var GetCmd = &cobra.Command{
	Use:   "get",
	Short: "Downloads a Google Sheets gradebook worksheet to a TSV file",
	Long: `Downloads a gradebook worksheet to a local TSV file, with the columns
reordered to 'OrgDefinedId', 'Username' and the 'Tutorial <N>' score column.`,
	Example: `  rollcall-app-sheets get --credentials "credentials.json" \
                          --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \
                          --range "Tutorial 6!A1:C" \
                          --file "tutorial6.tsv"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return getCmd.Execute()
	},
}

type Get struct {
	workdir     string
	credentials string
	url         string
	area        string
	file        string
}

func init() {
	flagset := GetCmd.Flags()

	flagset.StringVar(&getCmd.workdir, "workdir", getCmd.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&getCmd.credentials, "credentials", getCmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&getCmd.url, "url", getCmd.url, "Spreadsheet URL")
	flagset.StringVar(&getCmd.area, "range", getCmd.area, "Spreadsheet range e.g. 'Tutorial 6!A1:C'")
	flagset.StringVar(&getCmd.file, "file", getCmd.file, "TSV file name. Defaults to 'gradebook <yyyy-mm-dd HHmmss>.tsv'")
}

func (cmd *Get) Execute() error {
	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	spreadsheet, err := spreadsheetId(cmd.url)
	if err != nil {
		return err
	}

	debugf("spreadsheet - ID:%s  range:%s", spreadsheet, cmd.area)

	// ... authorise
	client, err := authorize(cmd.credentials, SHEETS, filepath.Join(cmd.workdir, ".google"))
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(context.Background(), option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	response, err := google.Spreadsheets.Values.Get(spreadsheet, cmd.area).Do()
	if err != nil {
		return fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	if len(response.Values) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	tmp, err := os.CreateTemp(os.TempDir(), "gradebook")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := sheetToTSV(tmp, response); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("retrieved worksheet to file %s", cmd.file)

	return nil
}
