// Package auth produces authenticated HTTP clients for the Google
// Calendar API, either from a service account key (non-interactive)
// or through the browser-based OAuth flow with a cached token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/drewfead/coursecal/internal/config"
)

// ClientFromConfig returns an authenticated HTTP client using the
// credential paths in cfg, falling back to the default locations under
// the config directory. A service account key, when present, wins over
// the interactive OAuth flow.
func ClientFromConfig(ctx context.Context, cfg *config.Config) (*http.Client, error) {
	serviceAccountPath, err := resolvePath(cfg.ServiceAccountPath, config.GetServiceAccountPath)
	if err != nil {
		return nil, err
	}
	if fileExists(serviceAccountPath) {
		slog.Info("using service account authentication", "mode", "automated")
		return GetServiceAccountClient(ctx, serviceAccountPath)
	}

	credentialsPath, err := resolvePath(cfg.CredentialsPath, config.GetCredentialsPath)
	if err != nil {
		return nil, err
	}
	if !fileExists(credentialsPath) {
		return nil, fmt.Errorf("no credentials configured: expected %s or %s", serviceAccountPath, credentialsPath)
	}

	tokenPath, err := resolvePath(cfg.TokenPath, config.GetTokenPath)
	if err != nil {
		return nil, err
	}

	slog.Info("using OAuth user authentication", "mode", "interactive")
	oauthConfig, err := LoadOAuthConfig(credentialsPath)
	if err != nil {
		return nil, err
	}
	return GetClient(ctx, oauthConfig, tokenPath)
}

func resolvePath(configured string, defaultFn func() (string, error)) (string, error) {
	if configured != "" {
		return configured, nil
	}
	path, err := defaultFn()
	if err != nil {
		return "", fmt.Errorf("unable to resolve credential path: %w", err)
	}
	return path, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist) && err == nil
}
