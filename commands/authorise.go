package commands

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var authoriseCmd = Authorise{
	workdir:     DEFAULT_WORKDIR,
	credentials: DEFAULT_CREDENTIALS,
	url:         "",
}

// AuthoriseCmd runs the OAuth2 browser flow and caches the Google Sheets API
// tokens for the other commands.
var AuthoriseCmd = &cobra.Command{
	Use:     "authorise",
	Aliases: []string{"authorize"},
	Short:   "Authorises " + APP + " to access a Google Sheets worksheet",
	Long: `Runs the OAuth2 authorisation flow for the Google Sheets API and caches the
granted tokens in the working directory for use by 'get' and 'put'.`,
	Example: `  rollcall-app-sheets authorise --credentials "credentials.json" --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return authoriseCmd.Execute()
	},
}

type Authorise struct {
	workdir     string
	credentials string
	url         string
}

func init() {
	flagset := AuthoriseCmd.Flags()

	flagset.StringVar(&authoriseCmd.workdir, "workdir", authoriseCmd.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&authoriseCmd.credentials, "credentials", authoriseCmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&authoriseCmd.url, "url", authoriseCmd.url, "Spreadsheet URL")
}

func (cmd *Authorise) Execute() error {
	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	if _, err := spreadsheetId(cmd.url); err != nil {
		return err
	}

	if err := authenticate(cmd.credentials, SHEETS, filepath.Join(cmd.workdir, ".google")); err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	return nil
}

func authenticate(credentials string, scope string, workdir string) error {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return err
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return err
	}

	// ... start HTTP server on localhost for the OAuth2 callback
	authorised := make(chan string)
	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, rq *http.Request) {
		state := rq.FormValue("state")
		code := rq.FormValue("code")

		if state == "state-token" && code != "" {
			fmt.Fprintln(w, "Authorised - you can close this window")
			authorised <- code
			return
		}

		http.Error(w, "invalid authorisation response", http.StatusBadRequest)
	})

	srv := &http.Server{
		Addr:    ":80",
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			errorf("%v", err)
			os.Exit(1)
		}
	}()

	// ... CTRL-C handler
	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt)

	// ... open OAuth2 URL in browser
	if err := browse(url); err != nil {
		fmt.Println("Could not open the authorisation page in your browser - please open the following URL manually:")
		fmt.Println(url)
	}

	// ... wait for authorisation
	select {
	case <-interrupt:
		fmt.Printf("\n.. cancelled\n\n")

	case code := <-authorised:
		token, err := config.Exchange(context.TODO(), code)
		if err != nil {
			return fmt.Errorf("unable to retrieve token from web (%v)", err)
		}

		saveToken(tokens(credentials, scope, workdir), token)
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		warnf("%v", err)
	}

	return nil
}

func browse(url string) error {
	open := "xdg-open"
	if runtime.GOOS == "darwin" {
		open = "open"
	}

	command := exec.Command(open, url)
	if _, err := command.CombinedOutput(); err != nil {
		return err
	}

	return nil
}
