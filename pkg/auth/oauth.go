package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	// ClientSecretsFile is the OAuth client downloaded from the Google Cloud console,
	// looked up in the config directory.
	ClientSecretsFile = "credentials.json"

	// TokenFile holds the access and refresh token obtained by -auth.
	TokenFile = "token.json"

	// LocalhostAuthPort is where the local callback server listens for the redirect.
	LocalhostAuthPort = "6789"

	xdgAppName = "sheetdash"
)

// Scopes requested for the dashboard. It never writes to a spreadsheet.
var Scopes = []string{sheets.SpreadsheetsReadonlyScope}

// GetConfig creates an oauth2.Config from the client secrets file.
func GetConfig(scopes []string) (*oauth2.Config, error) {
	xdgConfigBase, err := GetXdgHome()
	if err != nil {
		return nil, err
	}

	clientSecretsFile := filepath.Join(xdgConfigBase, ClientSecretsFile)
	b, err := os.ReadFile(clientSecretsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file %s: %w", clientSecretsFile, err)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	config.RedirectURL = RedirectURL(config.RedirectURL)
	return config, nil
}

// RedirectURL pins localhost and out-of-band redirects to the local callback port.
func RedirectURL(configured string) string {
	if configured == "urn:ietf:wg:oauth:2.0:oob" || configured == "" {
		return "http://" + net.JoinHostPort("localhost", LocalhostAuthPort) + callbackPath
	}
	u, err := url.Parse(configured)
	if err != nil {
		log.Printf("Warning: could not parse RedirectURL '%s': %v. Using it as is.", configured, err)
		return configured
	}
	if u.Hostname() != "localhost" && u.Hostname() != "127.0.0.1" {
		log.Printf("Warning: RedirectURL %s is not a localhost callback", configured)
		return configured
	}
	if u.Port() != LocalhostAuthPort {
		u.Host = net.JoinHostPort(u.Hostname(), LocalhostAuthPort)
	}
	return u.String()
}

// ClientOptions returns the options for building a Sheets service. A
// non-empty API key is enough for sheets shared by link; otherwise the OAuth
// token stored by -auth is used.
func ClientOptions(ctx context.Context, apiKey string) ([]option.ClientOption, error) {
	if apiKey != "" {
		return []option.ClientOption{option.WithAPIKey(apiKey)}, nil
	}
	client, err := GetClient(ctx, Scopes, false)
	if err != nil {
		return nil, fmt.Errorf("no API key configured and OAuth client unavailable: %w", err)
	}
	return []option.ClientOption{option.WithHTTPClient(client)}, nil
}

// GetClient returns an authenticated *http.Client. With interactive set and no
// stored token, it runs the browser authorization flow; otherwise a missing
// token is an error.
func GetClient(ctx context.Context, scopes []string, interactive bool) (*http.Client, error) {
	config, err := GetConfig(scopes)
	if err != nil {
		return nil, err
	}

	xdgConfigBase, err := GetXdgHome()
	if err != nil {
		return nil, err
	}

	tokenFile := filepath.Join(xdgConfigBase, TokenFile)
	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		if !interactive {
			return nil, fmt.Errorf("no token at %s, run with -auth first: %w", tokenFile, err)
		}
		log.Printf("No existing token found at %s. Initiating web authorization flow...", tokenFile)
		tok, err = getTokenFromWeb(ctx, config)
		if err != nil {
			return nil, fmt.Errorf("failed to get token from web: %w", err)
		}
		if err := saveToken(tokenFile, tok); err != nil {
			return nil, err
		}
	}

	// Persist refreshed tokens so the next run starts from a valid access token.
	src := config.TokenSource(ctx, tok)
	current, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("unable to refresh token: %w", err)
	}
	if current.AccessToken != tok.AccessToken || current.RefreshToken != tok.RefreshToken {
		if err := saveToken(tokenFile, current); err != nil {
			log.Printf("Warning: could not save refreshed token: %v", err)
		}
	}
	return oauth2.NewClient(ctx, oauth2.ReuseTokenSource(current, src)), nil
}

// Authenticate removes any stored token and runs the browser flow again.
func Authenticate(ctx context.Context) (string, error) {
	xdgConfigBase, err := GetXdgHome()
	if err != nil {
		return "", err
	}
	tokenFile := filepath.Join(xdgConfigBase, TokenFile)
	if err := os.Remove(tokenFile); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("could not delete token file '%s': %w", tokenFile, err)
	}
	if _, err := GetClient(ctx, Scopes, true); err != nil {
		return "", err
	}
	return tokenFile, nil
}

// callbackPath is where Google redirects after consent.
const callbackPath = "/oauth2callback"

// authTimeout bounds how long the browser flow waits for consent.
var authTimeout = 5 * time.Minute

// getTokenFromWeb prints the consent URL and waits on the local callback for
// a code carrying the state issued for this run.
func getTokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	state := uuid.NewString()
	results := make(chan callback, 1)

	mux := http.NewServeMux()
	// Any path: a configured redirect may not use callbackPath.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		res := callbackResult(r.URL.Query(), state)
		if res.err != nil {
			http.Error(w, res.err.Error(), http.StatusBadRequest)
		} else {
			fmt.Fprintln(w, "sheetdash is authorized. You can close this window.")
		}
		select {
		case results <- res:
		default:
		}
	})

	listener, err := net.Listen("tcp", net.JoinHostPort("localhost", LocalhostAuthPort))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %s for the OAuth callback: %w", LocalhostAuthPort, err)
	}
	server := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go server.Serve(listener)
	defer server.Close()

	fmt.Printf("Open this URL to give sheetdash read access to your spreadsheets:\n%s\n",
		config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent")))

	ctx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()
	select {
	case res := <-results:
		if res.err != nil {
			return nil, res.err
		}
		tok, err := config.Exchange(ctx, res.code)
		if err != nil {
			return nil, fmt.Errorf("unable to exchange authorization code: %w", err)
		}
		return tok, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for authorization: %w", ctx.Err())
	}
}

type callback struct {
	code string
	err  error
}

// callbackResult validates the redirect query against the expected state.
func callbackResult(q url.Values, state string) callback {
	if e := q.Get("error"); e != "" {
		return callback{err: fmt.Errorf("authorization denied: %s", e)}
	}
	if q.Get("state") != state {
		return callback{err: fmt.Errorf("state mismatch in OAuth callback")}
	}
	code := q.Get("code")
	if code == "" {
		return callback{err: fmt.Errorf("authorization code not found in redirect")}
	}
	return callback{code: code}
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token from file %s: %w", file, err)
	}
	return tok, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("could not create token directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth token to %s: %w", path, err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// GetXdgHome returns ~/.config/sheetdash.
func GetXdgHome() (string, error) {
	xdgHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(xdgHome, ".config", xdgAppName), nil
}
