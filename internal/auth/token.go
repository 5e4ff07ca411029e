package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// Token files hold refresh tokens, so they are never world-readable.
const tokenFilePermMode = 0o600

// LoadToken reads a cached OAuth token from tokenPath. A missing or
// unreadable file is an error; callers treat it as "run the flow".
func LoadToken(tokenPath string) (*oauth2.Token, error) {
	data, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read token file: %w", err)
	}

	tok := &oauth2.Token{}
	if err := json.Unmarshal(data, tok); err != nil {
		return nil, fmt.Errorf("unable to decode token: %w", err)
	}
	return tok, nil
}

// SaveToken caches an OAuth token at tokenPath with restricted
// permissions so later runs skip the browser flow.
func SaveToken(tokenPath string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("unable to encode token: %w", err)
	}

	if err := os.WriteFile(tokenPath, data, tokenFilePermMode); err != nil {
		return fmt.Errorf("unable to write token file: %w", err)
	}
	return nil
}
