package auth

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestRedirectURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"urn:ietf:wg:oauth:2.0:oob", "http://localhost:6789/oauth2callback"},
		{"", "http://localhost:6789/oauth2callback"},
		{"http://localhost", "http://localhost:6789"},
		{"http://localhost:8080/cb", "http://localhost:6789/cb"},
		{"http://127.0.0.1:6789/cb", "http://127.0.0.1:6789/cb"},
		{"https://example.com/cb", "https://example.com/cb"},
	}
	for _, tt := range tests {
		if got := RedirectURL(tt.in); got != tt.want {
			t.Errorf("RedirectURL(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestClientOptionsWithAPIKey(t *testing.T) {
	opts, err := ClientOptions(context.Background(), "key-123")
	if err != nil {
		t.Fatalf("ClientOptions failed: %v", err)
	}
	if len(opts) != 1 {
		t.Errorf("Expected 1 option, got %d", len(opts))
	}
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", TokenFile)
	tok := &oauth2.Token{AccessToken: "a", RefreshToken: "r", Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
	if err := saveToken(path, tok); err != nil {
		t.Fatalf("saveToken failed: %v", err)
	}
	got, err := tokenFromFile(path)
	if err != nil {
		t.Fatalf("tokenFromFile failed: %v", err)
	}
	if got.AccessToken != "a" || got.RefreshToken != "r" || !got.Expiry.Equal(tok.Expiry) {
		t.Errorf("Expected %+v, got %+v", tok, got)
	}
}

func TestCallbackResult(t *testing.T) {
	tests := []struct {
		name    string
		query   url.Values
		code    string
		wantErr bool
	}{
		{"valid", url.Values{"state": {"s1"}, "code": {"abc"}}, "abc", false},
		{"wrong state", url.Values{"state": {"other"}, "code": {"abc"}}, "", true},
		{"missing code", url.Values{"state": {"s1"}}, "", true},
		{"denied", url.Values{"state": {"s1"}, "error": {"access_denied"}}, "", true},
	}
	for _, tt := range tests {
		got := callbackResult(tt.query, "s1")
		if (got.err != nil) != tt.wantErr {
			t.Errorf("%s: expected error %v, got %v", tt.name, tt.wantErr, got.err)
		}
		if got.code != tt.code {
			t.Errorf("%s: expected code %q, got %q", tt.name, tt.code, got.code)
		}
	}
}
