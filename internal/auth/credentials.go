package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// CredentialType represents the type of authentication credentials
type CredentialType int

const (
	CredentialTypeUnknown CredentialType = iota
	CredentialTypeOAuthClient
	CredentialTypeServiceAccount
)

func (t CredentialType) String() string {
	switch t {
	case CredentialTypeOAuthClient:
		return "OAuth Client"
	case CredentialTypeServiceAccount:
		return "Service Account"
	default:
		return "Unknown"
	}
}

// DetectCredentialType examines the JSON structure to determine credential type
func DetectCredentialType(data []byte) (CredentialType, error) {
	var check map[string]interface{}
	if err := json.Unmarshal(data, &check); err != nil {
		return CredentialTypeUnknown, fmt.Errorf("failed to parse credential file: %w", err)
	}

	// Service account has "type": "service_account"
	if typ, ok := check["type"].(string); ok && typ == "service_account" {
		return CredentialTypeServiceAccount, nil
	}

	// OAuth client has "installed" or "web" key
	if _, ok := check["installed"]; ok {
		return CredentialTypeOAuthClient, nil
	}
	if _, ok := check["web"]; ok {
		return CredentialTypeOAuthClient, nil
	}

	return CredentialTypeUnknown, fmt.Errorf("unknown credential type")
}

// LoadOAuthConfig loads OAuth client credentials from the specified
// file path and scopes them to the Calendar API.
func LoadOAuthConfig(credentialsPath string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	credType, err := DetectCredentialType(b)
	if err != nil {
		return nil, err
	}
	if credType != CredentialTypeOAuthClient {
		return nil, fmt.Errorf("expected OAuth client credentials, got %s", credType)
	}

	oauthConfig, err := google.ConfigFromJSON(b, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}

	return oauthConfig, nil
}

// GetServiceAccountClient creates an authenticated HTTP client using a service account
func GetServiceAccountClient(ctx context.Context, keyPath string) (*http.Client, error) {
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account key: %w", err)
	}

	// Verify this is a service account credential
	credType, err := DetectCredentialType(data)
	if err != nil {
		return nil, err
	}
	if credType != CredentialTypeServiceAccount {
		return nil, fmt.Errorf("expected service account credentials, got %s", credType)
	}

	// Create JWT config from service account JSON
	jwtConfig, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account key: %w", err)
	}

	// Service accounts don't need token refresh - they generate tokens on demand
	return jwtConfig.Client(ctx), nil
}
