package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// authorize builds an HTTP client for the Google Sheets API from the OAuth2
// credentials file and the token cache in workdir. If there is no cached
// token it falls back to the console authorisation flow.
func authorize(credentials string, scope string, workdir string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, err
	}

	return getClient(tokens(credentials, scope, workdir), config), nil
}

// tokens derives the token cache file path from the credentials file name and
// the requested scope.
func tokens(credentials string, scope string, workdir string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	if strings.HasPrefix(scope, SHEETS) {
		return filepath.Join(workdir, fmt.Sprintf("%s.sheets", name))
	}

	return filepath.Join(workdir, fmt.Sprintf("%s.tokens", name))
}

// Retrieve a token, saves the token, then returns the generated client.
func getClient(tokens string, config *oauth2.Config) *http.Client {
	token, err := tokenFromFile(tokens)
	if err != nil {
		token = getTokenFromConsole(config)
		saveToken(tokens, token)
	}

	return config.Client(context.Background(), token)
}

// Request a token from the web, then returns the retrieved token.
func getTokenFromConsole(config *oauth2.Config) *oauth2.Token {
	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", url)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		errorf("unable to read authorization code (%v)", err)
		os.Exit(1)
	}

	token, err := config.Exchange(context.TODO(), code)
	if err != nil {
		errorf("unable to retrieve token from web (%v)", err)
		os.Exit(1)
	}

	return token
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)

	return token, err
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) {
	fmt.Printf("Saving credential file to: %s\n", path)

	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		errorf("unable to create token cache directory (%v)", err)
		os.Exit(1)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		errorf("unable to cache oauth token (%v)", err)
		os.Exit(1)
	}

	defer f.Close()

	json.NewEncoder(f).Encode(token)
}
