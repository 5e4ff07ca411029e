package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName      = "coursecal"
	configFile         = "config.yaml"
	credentialsFile    = "credentials.json"
	serviceAccountFile = "service-account.json"
	tokenFile          = "token.json"
	configDirPermMode  = 0o700
)

// GetConfigDir returns the configuration directory path (~/.config/coursecal)
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", configDirName), nil
}

func pathInConfigDir(file string) (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, file), nil
}

// GetConfigPath returns the path to the YAML config file
func GetConfigPath() (string, error) {
	return pathInConfigDir(configFile)
}

// GetCredentialsPath returns the path to the OAuth credentials file
func GetCredentialsPath() (string, error) {
	return pathInConfigDir(credentialsFile)
}

// GetServiceAccountPath returns the path to the service account key file
func GetServiceAccountPath() (string, error) {
	return pathInConfigDir(serviceAccountFile)
}

// GetTokenPath returns the path to the OAuth token file
func GetTokenPath() (string, error) {
	return pathInConfigDir(tokenFile)
}

// EnsureConfigDir creates the configuration directory if it doesn't
// exist. Restricted permissions: the directory holds credentials and
// tokens.
func EnsureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, configDirPermMode); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}
