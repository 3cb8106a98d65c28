// Package paths resolves the well-known file locations sedctl touches:
// the configuration directory, the audit log it appends to, and the
// system log it reads for correlating driver-level entries.
package paths

import (
	"os"
	"path/filepath"
)

// Default locations. The audit log is written by every invocation; the
// system log candidates are only ever opened read-only.
const (
	DefaultConfigDir  = "/etc/sedctl"
	DefaultAuditLog   = "/var/log/sedctl.log"
	DefaultSystemLog  = "/var/log/messages"
	FallbackSystemLog = "/var/log/syslog"
)

// Environment variable names for location overrides.
const (
	EnvConfigDir = "SEDCTL_CONFIG_DIR"
	EnvAuditLog  = "SEDCTL_AUDIT_LOG"
	EnvSystemLog = "SEDCTL_SYSTEM_LOG"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: SEDCTL_CONFIG_DIR env > DefaultConfigDir.
func ResolveConfigDir() (string, error) {
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir, nil
}

// ResolveAuditLog returns the audit log path following the precedence
// chain: config value > SEDCTL_AUDIT_LOG env > DefaultAuditLog.
func ResolveAuditLog(configValue string) (string, error) {
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvAuditLog); env != "" {
		return filepath.Abs(env)
	}
	return DefaultAuditLog, nil
}

// SystemLogCandidates returns the system log paths to probe, in order.
// An explicit config value or env override names a single path;
// otherwise the conventional primary and fallback locations are tried.
func SystemLogCandidates(configValue string) []string {
	if configValue != "" {
		return []string{configValue}
	}
	if env := os.Getenv(EnvSystemLog); env != "" {
		return []string{env}
	}
	return []string{DefaultSystemLog, FallbackSystemLog}
}
