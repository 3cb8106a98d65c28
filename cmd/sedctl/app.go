// Engine assembly for the sedctl CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/dukaforge/sedctl/internal/auditlog"
	"github.com/dukaforge/sedctl/internal/cli"
	"github.com/dukaforge/sedctl/internal/device"
	"github.com/dukaforge/sedctl/internal/paths"
	"github.com/dukaforge/sedctl/internal/printer"
	"github.com/dukaforge/sedctl/internal/status"
)

const (
	appName    = "sedctl"
	appVersion = "0.3.1"
)

// newEngine wires the dispatch engine from configuration: printer,
// audit logger (mirroring warnings), status decoder for the configured
// mode, and the command table.
func newEngine(cfg *viper.Viper, p *printer.Printer, dev device.Client, keys device.KeyServer) (*cli.Engine, error) {
	auditPath, err := paths.ResolveAuditLog(cfg.GetString(cfgKeyAuditLog))
	if err != nil {
		return nil, fmt.Errorf("resolve audit log: %w", err)
	}
	audit := auditlog.New(auditPath, appName)
	p.Mirror = audit.Append

	mode := status.ModeStandard
	if cfg.GetString(cfgKeyMode) == modeKMIP {
		mode = status.ModeKMIP
	}

	return &cli.Engine{
		App: &cli.App{
			Name:  appName,
			Title: "sedctl -- a utility for managing self-encrypting drives",
			Info:  "--<command> [option...]",
			Note:  "The '<device>' must be a block device (e.g. /dev/nvme0n1).",
			Man:   appName,
		},
		Commands:   buildCommands(dev, keys, mode, p),
		Printer:    p,
		Decoder:    status.NewDecoder(mode, p),
		Audit:      audit,
		Hardware:   dev.Completion,
		SystemLogs: paths.SystemLogCandidates(cfg.GetString(cfgKeySystemLog)),
	}, nil
}

// buildCommands assembles the command table. Order matters: resolution
// is first match wins, and the first entry is named in the help footer.
func buildCommands(dev device.Client, keys device.KeyServer, mode status.Mode, p *printer.Printer) []*cli.Command {
	return []*cli.Command{
		discoverCommand(dev),
		ownershipCommand(dev),
		activateLSPCommand(dev),
		setupGlobalRangeCommand(dev),
		lockUnlockCommand(dev),
		revertCommand(dev),
		keyCommand(keys, mode),
		connectionTestCommand(keys, mode),
		versionCommand(p),
	}
}
