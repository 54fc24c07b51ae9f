package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// StorageConfig optionally overrides the workspace storage directory per
// operating system. Keys are GOOS-style names (darwin, linux, windows).
type StorageConfig struct {
	WorkspaceStorageDirs map[string]string `yaml:"workspace_storage_dirs"`
}

// LoadStorageConfig reads a YAML storage config file.
func LoadStorageConfig(path string) (*StorageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg StorageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// DefaultWorkspaceStorageDir returns the platform Cursor workspaceStorage
// directory.
func DefaultWorkspaceStorageDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library/Application Support/Cursor/User/workspaceStorage"), nil
	case "linux":
		return filepath.Join(home, ".config/Cursor/User/workspaceStorage"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Cursor", "User", "workspaceStorage"), nil
	default:
		return "", fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}

// ResolveWorkspaceStorage picks the workspace storage root: a config file
// override when one names the current OS, otherwise the platform default.
// The returned directory must exist.
func ResolveWorkspaceStorage(configPath string) (string, error) {
	var dir string

	if configPath != "" {
		cfg, err := LoadStorageConfig(configPath)
		if err != nil {
			return "", err
		}
		if d, ok := cfg.WorkspaceStorageDirs[runtime.GOOS]; ok {
			dir = expandPath(d)
		}
	}

	if dir == "" {
		d, err := DefaultWorkspaceStorageDir()
		if err != nil {
			return "", err
		}
		dir = d
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("workspace storage directory not found: %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("workspace storage path is not a directory: %s", dir)
	}

	LogDebug("workspace storage directory: %s", dir)
	return dir, nil
}

func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
