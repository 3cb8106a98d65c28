// Config loading for the sedctl CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dukaforge/sedctl/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyMode      = "mode"
	cfgKeyAuditLog  = "audit_log"
	cfgKeySystemLog = "system_log"

	// Client modes.
	modeStandard = "standard"
	modeKMIP     = "kmip"
)

// defaultConfigYAML is written to config.yaml on first run when the
// configuration directory is writable.
const defaultConfigYAML = `# sedctl configuration

# Client mode: standard (local device library) or kmip (key server).
mode: standard

# Audit log location (optional; overridable by SEDCTL_AUDIT_LOG)
# audit_log:

# System log probed read-only for driver entries (optional)
# system_log:
`

// loadConfig reads config.yaml from the resolved configuration
// directory using Viper. A missing config file is not an error; the
// defaults stand in.
func loadConfig() (*viper.Viper, error) {
	configDir, err := paths.ResolveConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	// Best effort: the default directory is root-owned, and help
	// invocations by unprivileged users must still work.
	ensureDefaultConfigFile(configDir)

	v := viper.New()
	v.SetDefault(cfgKeyMode, modeStandard)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureDefaultConfigFile creates the configuration directory and a
// commented default config.yaml if neither exists yet.
func ensureDefaultConfigFile(configDir string) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return
	}

	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil || !os.IsNotExist(err) {
		return
	}
	_ = os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
