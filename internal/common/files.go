package common

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

var explicitDir string

// SetExplicitDir overrides config dir resolution, set from --config.
func SetExplicitDir(dir string) {
	explicitDir = dir
	slog.Info("common", "configdir", dir)
}

func ConfigDir() string {
	if explicitDir != "" {
		return explicitDir
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		slog.Error("common", "files", err)
		os.Exit(1)
	}

	usrCfgDir := filepath.Join(dir, "ferret")

	if FileExists(usrCfgDir) {
		return usrCfgDir
	}

	for _, v := range xdg.ConfigDirs {
		if FileExists(v) {
			return filepath.Join(v, "ferret")
		}
	}

	return ""
}

// ConfigFile resolves <name>.toml in the config dir, falling back to the
// XDG config dirs.
func ConfigFile(name string) string {
	name = fmt.Sprintf("%s.toml", name)

	file := filepath.Join(ConfigDir(), name)

	if FileExists(file) {
		return file
	}

	for _, v := range xdg.ConfigDirs {
		if FileExists(v) {
			return filepath.Join(v, "ferret", name)
		}
	}

	return ""
}

func CacheFile(file string) string {
	d, _ := os.UserCacheDir()

	return filepath.Join(d, "ferret", file)
}

func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
