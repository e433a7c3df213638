package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/storage/postgres"
	"github.com/julianstephens/reboot/internal/storage/sqlite"
)

var ErrEmbeddedCredentials = errors.New(`PostgreSQL connection strings with embedded credentials are not allowed.
Use the OS keyring ('reboot keyring set'), the REBOOT_DB_CONNECTION environment variable, or a .pgpass file instead`)

// OpenStore picks a backend from config: a PostgreSQL URL, a .json file,
// or a SQLite database file.
func OpenStore(config string) (storage.Provider, error) {
	switch {
	case postgres.IsConnString(config):
		if postgres.HasEmbeddedCredentials(config) {
			return nil, ErrEmbeddedCredentials
		}
		return postgres.New(config), nil
	case strings.HasSuffix(strings.ToLower(config), ".json"):
		path, err := ExpandHome(config)
		if err != nil {
			return nil, err
		}
		return storage.NewJSONStore(path), nil
	default:
		path, err := ExpandHome(config)
		if err != nil {
			return nil, err
		}
		return sqlite.NewStore(path), nil
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// OpenSecretStore opens a PostgreSQL store from a connection string read
// from the environment or the OS keyring, where embedded credentials are
// expected.
func OpenSecretStore(dsn string) (storage.Provider, error) {
	if !postgres.IsConnString(dsn) {
		return nil, fmt.Errorf("stored connection string is not a PostgreSQL URL")
	}
	return postgres.New(dsn), nil
}
