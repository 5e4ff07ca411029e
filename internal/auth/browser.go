package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	localServerPort = "8080"
	callbackPath    = "/oauth2callback"
)

// GetClient returns an authenticated HTTP client for the Google
// Calendar API, reusing a cached token when one exists and otherwise
// running the browser-based OAuth flow.
func GetClient(ctx context.Context, oauthConfig *oauth2.Config, tokenPath string) (*http.Client, error) {
	// Try to load existing token
	tok, err := LoadToken(tokenPath)
	if err == nil {
		return oauthConfig.Client(ctx, tok), nil
	}

	// Token not found, initiate OAuth flow
	tok, err = GetTokenFromWeb(ctx, oauthConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to get token from web: %w", err)
	}

	// Save the token for future use
	if err := SaveToken(tokenPath, tok); err != nil {
		return nil, fmt.Errorf("unable to save token: %w", err)
	}

	return oauthConfig.Client(ctx, tok), nil
}

// GetTokenFromWeb initiates the browser-based OAuth flow: a local
// server receives the callback, the state parameter is verified, and
// the authorization code is exchanged for a token.
func GetTokenFromWeb(ctx context.Context, oauthConfig *oauth2.Config) (*oauth2.Token, error) {
	oauthConfig.RedirectURL = fmt.Sprintf("http://localhost:%s%s", localServerPort, callbackPath)

	state := uuid.NewString()
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	server := &http.Server{
		Addr:    ":" + localServerPort,
		Handler: mux,
	}

	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("state"); got != state {
			errCh <- fmt.Errorf("state mismatch in OAuth callback")
			fmt.Fprintf(w, "Error: state mismatch")
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			errCh <- fmt.Errorf("no authorization code received")
			fmt.Fprintf(w, "Error: No authorization code received")
			return
		}

		codeCh <- code
		fmt.Fprintf(w, "Authorization successful! You can close this window and return to the terminal.")
	})

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("failed to start local server: %w", err)
		}
	}()

	authURL := oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)

	slog.Info("opening browser for authorization")
	slog.Info("if the browser doesn't open automatically, visit this URL", "url", authURL)

	if err := openBrowser(authURL); err != nil {
		slog.Warn("failed to open browser automatically", "error", err)
	}

	// Wait for authorization code or error
	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		server.Shutdown(ctx)
		return nil, err
	case <-ctx.Done():
		server.Shutdown(ctx)
		return nil, ctx.Err()
	}

	server.Shutdown(ctx)

	tok, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to exchange authorization code: %w", err)
	}

	return tok, nil
}

// openBrowser opens the specified URL in the default browser
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform")
	}

	return cmd.Start()
}
