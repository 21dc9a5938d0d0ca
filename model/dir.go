package model

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultModelDir resolves the directory cmd/intentcli loads model JSON
// files from by default: $XDG_CONFIG_HOME/intentcore/models, falling back
// to xdg's platform default when that variable is unset (app.ConfigPath's
// use of xdg.ConfigFile is the model for this).
func DefaultModelDir() (string, error) {
	return xdg.ConfigFile(filepath.Join("intentcore", "models"))
}
