package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var putCmd = Put{
	workdir:     DEFAULT_WORKDIR,
	credentials: DEFAULT_CREDENTIALS,
	url:         "",
	area:        "",
	file:        "",
}

// PutCmd stores a local TSV file to a Google Sheets gradebook worksheet.
var PutCmd = &cobra.Command{
	Use:   "put",
	Short: "Uploads a TSV file to a Google Sheets gradebook worksheet",
	Long: `Uploads a TSV file to a gradebook worksheet, replacing the existing
header and data rows in the given range.`,
	Example: `  rollcall-app-sheets put --credentials "credentials.json" \
                          --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \
                          --range "Tutorial 6!A1:C" \
                          --file "tutorial6.tsv"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return putCmd.Execute()
	},
}

type Put struct {
	workdir     string
	credentials string
	url         string
	area        string
	file        string
}

func init() {
	flagset := PutCmd.Flags()

	flagset.StringVar(&putCmd.workdir, "workdir", putCmd.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&putCmd.credentials, "credentials", putCmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&putCmd.url, "url", putCmd.url, "Spreadsheet URL")
	flagset.StringVar(&putCmd.area, "range", putCmd.area, "Spreadsheet range e.g. 'Tutorial 6!A1:C'")
	flagset.StringVar(&putCmd.file, "file", putCmd.file, "TSV file")
}

func (cmd *Put) Execute() error {
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

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	id, err := spreadsheetId(cmd.url)
	if err != nil {
		return err
	}

	debugf("spreadsheet - ID:%s  range:%s", id, cmd.area)

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	header, data, err := tsvToSheet(f, cmd.area)
	if err != nil {
		return fmt.Errorf("error reading TSV file (%v)", err)
	}

	// ... authorise
	client, err := authorize(cmd.credentials, SHEETS, filepath.Join(cmd.workdir, ".google"))
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(context.Background(), option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	spreadsheet, err := getSpreadsheet(google, id)
	if err != nil {
		return err
	}

	if _, err := getSheet(spreadsheet, cmd.area); err != nil {
		return err
	}

	// ... replace worksheet content
	infof("clearing existing records from worksheet")
	if err := clear(google, spreadsheet, []string{cmd.area}); err != nil {
		return err
	}

	infof("uploading %s to worksheet", cmd.file)

	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             []*sheets.ValueRange{header, data},
	}

	if _, err := google.Spreadsheets.Values.BatchUpdate(spreadsheet.SpreadsheetId, &rq).Do(); err != nil {
		return err
	}

	infof("uploaded %v records to worksheet", len(data.Values))

	return nil
}
