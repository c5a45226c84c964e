package config

import (
	"os"

	"github.com/OpenPeeDeeP/xdg"
)

// RuntimeConfig holds the process-level facts that exist outside the
// rc-file option store: build identity, debug flag, and the directory the
// CLI persists its own state (trace2 logs, cached config dumps) under.
type RuntimeConfig struct {
	Debug     bool
	Version   string
	Commit    string
	BuildDate string
	ConfigDir string
}

// NewRuntimeConfig resolves ConfigDir via XDG and folds in the DEBUG env
// var the way the debugging flag is folded in on top of an explicit flag.
func NewRuntimeConfig(version, commit, date string, debuggingFlag bool) (*RuntimeConfig, error) {
	dirs := xdg.New("", "tig")
	configDir := dirs.ConfigHome()
	if envDir := os.Getenv("TIG_CONFIG_DIR"); envDir != "" {
		configDir = envDir
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, err
	}

	return &RuntimeConfig{
		Debug:     debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		ConfigDir: configDir,
	}, nil
}
